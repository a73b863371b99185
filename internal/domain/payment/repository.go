package payment

import "context"

// Repository is the persistence contract for the payment ledger.
type Repository interface {
	FindBySubscription(ctx context.Context, subscriptionCode uint) ([]*Payment, error)
	Save(ctx context.Context, p *Payment) error
	NextCode(ctx context.Context) (uint, error)
}
