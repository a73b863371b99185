package plan

import "context"

// Repository is the persistence contract for plans. FindByCode returns nil
// when the code is absent.
type Repository interface {
	FindAll(ctx context.Context) ([]*Plan, error)
	FindByCode(ctx context.Context, code uint) (*Plan, error)
	Save(ctx context.Context, p *Plan) error
	Update(ctx context.Context, p *Plan) error
}
