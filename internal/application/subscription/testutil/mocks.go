package testutil

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"time"

	"gestao/internal/domain/customer"
	"gestao/internal/domain/payment"
	"gestao/internal/domain/plan"
	"gestao/internal/domain/subscription"
	apperrors "gestao/internal/shared/errors"
	"gestao/internal/shared/logger"
)

// NewMockLogger returns a logger that discards all output.
func NewMockLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// MockSubscriptionRepository is an in-memory subscription.Repository.
type MockSubscriptionRepository struct {
	subs map[uint]*subscription.Subscription
	// Err, when set, is returned by every operation.
	Err error
}

func NewMockSubscriptionRepository() *MockSubscriptionRepository {
	return &MockSubscriptionRepository{subs: make(map[uint]*subscription.Subscription)}
}

func (m *MockSubscriptionRepository) Add(sub *subscription.Subscription) {
	m.subs[sub.Code()] = sub
}

func (m *MockSubscriptionRepository) sorted() []*subscription.Subscription {
	out := make([]*subscription.Subscription, 0, len(m.subs))
	for _, sub := range m.subs {
		out = append(out, sub)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code() < out[j].Code() })
	return out
}

func (m *MockSubscriptionRepository) FindAll(ctx context.Context) ([]*subscription.Subscription, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.sorted(), nil
}

func (m *MockSubscriptionRepository) FindByCode(ctx context.Context, code uint) (*subscription.Subscription, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.subs[code], nil
}

func (m *MockSubscriptionRepository) FindByCustomer(ctx context.Context, customerCode uint) ([]*subscription.Subscription, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]*subscription.Subscription, 0)
	for _, sub := range m.sorted() {
		if sub.CustomerCode() == customerCode {
			out = append(out, sub)
		}
	}
	return out, nil
}

func (m *MockSubscriptionRepository) FindByPlan(ctx context.Context, planCode uint) ([]*subscription.Subscription, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]*subscription.Subscription, 0)
	for _, sub := range m.sorted() {
		if sub.PlanCode() == planCode {
			out = append(out, sub)
		}
	}
	return out, nil
}

func (m *MockSubscriptionRepository) FindByStatus(ctx context.Context, active bool, now time.Time) ([]*subscription.Subscription, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]*subscription.Subscription, 0)
	for _, sub := range m.sorted() {
		if sub.IsActive(now) == active {
			out = append(out, sub)
		}
	}
	return out, nil
}

func (m *MockSubscriptionRepository) Save(ctx context.Context, sub *subscription.Subscription) error {
	if m.Err != nil {
		return m.Err
	}
	if _, exists := m.subs[sub.Code()]; exists {
		return apperrors.NewConflictError("subscription already exists")
	}
	m.subs[sub.Code()] = sub
	return nil
}

func (m *MockSubscriptionRepository) Update(ctx context.Context, sub *subscription.Subscription) error {
	if m.Err != nil {
		return m.Err
	}
	if _, exists := m.subs[sub.Code()]; !exists {
		return apperrors.NewNotFoundError("subscription not found")
	}
	m.subs[sub.Code()] = sub
	return nil
}

func (m *MockSubscriptionRepository) Delete(ctx context.Context, code uint) error {
	if m.Err != nil {
		return m.Err
	}
	if _, exists := m.subs[code]; !exists {
		return apperrors.NewNotFoundError("subscription not found")
	}
	delete(m.subs, code)
	return nil
}

func (m *MockSubscriptionRepository) NextCode(ctx context.Context) (uint, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	var max uint
	for code := range m.subs {
		if code > max {
			max = code
		}
	}
	return max + 1, nil
}

// MockPlanRepository is an in-memory plan.Repository.
type MockPlanRepository struct {
	plans map[uint]*plan.Plan
	Err   error
}

func NewMockPlanRepository() *MockPlanRepository {
	return &MockPlanRepository{plans: make(map[uint]*plan.Plan)}
}

func (m *MockPlanRepository) Add(p *plan.Plan) {
	m.plans[p.Code()] = p
}

func (m *MockPlanRepository) FindAll(ctx context.Context) ([]*plan.Plan, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]*plan.Plan, 0, len(m.plans))
	for _, p := range m.plans {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code() < out[j].Code() })
	return out, nil
}

func (m *MockPlanRepository) FindByCode(ctx context.Context, code uint) (*plan.Plan, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.plans[code], nil
}

func (m *MockPlanRepository) Save(ctx context.Context, p *plan.Plan) error {
	if m.Err != nil {
		return m.Err
	}
	m.plans[p.Code()] = p
	return nil
}

func (m *MockPlanRepository) Update(ctx context.Context, p *plan.Plan) error {
	if m.Err != nil {
		return m.Err
	}
	if _, exists := m.plans[p.Code()]; !exists {
		return apperrors.NewNotFoundError("plan not found")
	}
	m.plans[p.Code()] = p
	return nil
}

// MockCustomerRepository is an in-memory customer.Repository.
type MockCustomerRepository struct {
	customers map[uint]*customer.Customer
	Err       error
}

func NewMockCustomerRepository() *MockCustomerRepository {
	return &MockCustomerRepository{customers: make(map[uint]*customer.Customer)}
}

func (m *MockCustomerRepository) Add(c *customer.Customer) {
	m.customers[c.Code()] = c
}

func (m *MockCustomerRepository) FindAll(ctx context.Context) ([]*customer.Customer, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]*customer.Customer, 0, len(m.customers))
	for _, c := range m.customers {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code() < out[j].Code() })
	return out, nil
}

func (m *MockCustomerRepository) FindByCode(ctx context.Context, code uint) (*customer.Customer, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.customers[code], nil
}

func (m *MockCustomerRepository) Save(ctx context.Context, c *customer.Customer) error {
	if m.Err != nil {
		return m.Err
	}
	m.customers[c.Code()] = c
	return nil
}

// MockPaymentRepository is an in-memory payment.Repository.
type MockPaymentRepository struct {
	payments map[uint]*payment.Payment
	Err      error
}

func NewMockPaymentRepository() *MockPaymentRepository {
	return &MockPaymentRepository{payments: make(map[uint]*payment.Payment)}
}

func (m *MockPaymentRepository) FindBySubscription(ctx context.Context, subscriptionCode uint) ([]*payment.Payment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]*payment.Payment, 0)
	for _, p := range m.payments {
		if p.SubscriptionCode() == subscriptionCode {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code() < out[j].Code() })
	return out, nil
}

func (m *MockPaymentRepository) Save(ctx context.Context, p *payment.Payment) error {
	if m.Err != nil {
		return m.Err
	}
	if _, exists := m.payments[p.Code()]; exists {
		return apperrors.NewConflictError("payment already exists")
	}
	m.payments[p.Code()] = p
	return nil
}

func (m *MockPaymentRepository) NextCode(ctx context.Context) (uint, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	var max uint
	for code := range m.payments {
		if code > max {
			max = code
		}
	}
	return max + 1, nil
}
