package customer

import "context"

// Repository is the persistence contract for customers. FindByCode returns
// nil when the code is absent.
type Repository interface {
	FindAll(ctx context.Context) ([]*Customer, error)
	FindByCode(ctx context.Context, code uint) (*Customer, error)
	Save(ctx context.Context, c *Customer) error
}
