package subscription

import (
	"context"
	"time"
)

// Repository is the persistence contract for subscriptions. Listing
// operations return rows ordered by ascending code; lookups return nil when
// the code is absent.
type Repository interface {
	FindAll(ctx context.Context) ([]*Subscription, error)
	FindByCode(ctx context.Context, code uint) (*Subscription, error)
	FindByCustomer(ctx context.Context, customerCode uint) ([]*Subscription, error)
	FindByPlan(ctx context.Context, planCode uint) ([]*Subscription, error)
	// FindByStatus filters the full set through IsActive(now) at query time so
	// the status engine stays the single source of truth for activity.
	FindByStatus(ctx context.Context, active bool, now time.Time) ([]*Subscription, error)
	Save(ctx context.Context, sub *Subscription) error
	Update(ctx context.Context, sub *Subscription) error
	Delete(ctx context.Context, code uint) error
	// NextCode returns max(code)+1, or 1 for an empty store. Read-then-use
	// with no atomicity guarantee: concurrent creators can race and the
	// second insert fails on the duplicate code. Swap in an atomic sequence
	// behind this method before allowing concurrent writers.
	NextCode(ctx context.Context) (uint, error)
}
