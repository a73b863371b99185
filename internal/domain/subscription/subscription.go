package subscription

import (
	"fmt"
	"strings"
	"time"
)

// GracePeriodDays is the payment tolerance: a subscription lapses when more
// than this many days pass after the last recorded payment.
const GracePeriodDays = 30

// FidelityYears is the length of the loyalty window fixed at creation.
const FidelityYears = 1

// Subscription is the aggregate binding a customer to a plan. Activity is
// derived from the three stored dates, never stored.
type Subscription struct {
	code            uint
	planCode        uint
	customerCode    uint
	fidelityStart   time.Time
	fidelityEnd     time.Time
	lastPaymentDate time.Time
	finalCost       float64
	description     string
}

// NewSubscription creates a subscription starting at startDate. The fidelity
// window is fixed at exactly one calendar year and the first payment is
// assumed made at creation.
func NewSubscription(code, planCode, customerCode uint, startDate time.Time, finalCost float64, description string) (*Subscription, error) {
	if code == 0 {
		return nil, fmt.Errorf("subscription code is required")
	}
	if planCode == 0 {
		return nil, fmt.Errorf("plan code is required")
	}
	if customerCode == 0 {
		return nil, fmt.Errorf("customer code is required")
	}
	if finalCost <= 0 {
		return nil, fmt.Errorf("final cost must be greater than zero")
	}
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("description is required")
	}

	return &Subscription{
		code:            code,
		planCode:        planCode,
		customerCode:    customerCode,
		fidelityStart:   startDate,
		fidelityEnd:     startDate.AddDate(FidelityYears, 0, 0),
		lastPaymentDate: startDate,
		finalCost:       finalCost,
		description:     description,
	}, nil
}

// ReconstructSubscription rebuilds a subscription from persistence.
func ReconstructSubscription(code, planCode, customerCode uint, fidelityStart, fidelityEnd, lastPaymentDate time.Time, finalCost float64, description string) (*Subscription, error) {
	if code == 0 {
		return nil, fmt.Errorf("subscription code cannot be zero")
	}
	if planCode == 0 {
		return nil, fmt.Errorf("plan code is required")
	}
	if customerCode == 0 {
		return nil, fmt.Errorf("customer code is required")
	}
	if finalCost <= 0 {
		return nil, fmt.Errorf("final cost must be greater than zero")
	}

	return &Subscription{
		code:            code,
		planCode:        planCode,
		customerCode:    customerCode,
		fidelityStart:   fidelityStart,
		fidelityEnd:     fidelityEnd,
		lastPaymentDate: lastPaymentDate,
		finalCost:       finalCost,
		description:     description,
	}, nil
}

func (s *Subscription) Code() uint {
	return s.code
}

func (s *Subscription) PlanCode() uint {
	return s.planCode
}

func (s *Subscription) CustomerCode() uint {
	return s.customerCode
}

func (s *Subscription) FidelityStart() time.Time {
	return s.fidelityStart
}

func (s *Subscription) FidelityEnd() time.Time {
	return s.fidelityEnd
}

func (s *Subscription) LastPaymentDate() time.Time {
	return s.lastPaymentDate
}

func (s *Subscription) FinalCost() float64 {
	return s.finalCost
}

func (s *Subscription) Description() string {
	return s.description
}

// IsActive reports whether the subscription is active at the given instant.
// All three boundaries are inclusive: now within the fidelity window and no
// more than GracePeriodDays after the last payment.
func (s *Subscription) IsActive(now time.Time) bool {
	if now.Before(s.fidelityStart) {
		return false
	}
	if now.After(s.fidelityEnd) {
		return false
	}
	graceLimit := s.lastPaymentDate.AddDate(0, 0, GracePeriodDays)
	return !now.After(graceLimit)
}

// StatusAt returns ATIVO or CANCELADO for the given instant. Pure function of
// the stored dates; callers must inject now.
func (s *Subscription) StatusAt(now time.Time) Status {
	if s.IsActive(now) {
		return StatusActive
	}
	return StatusCancelled
}

// RecordPayment advances the last payment date. No monotonicity check is
// performed; ordering of payment dates is the caller's responsibility.
func (s *Subscription) RecordPayment(paymentDate time.Time) {
	s.lastPaymentDate = paymentDate
}

// RenewFidelity replaces the fidelity end, final cost and description
// together. Nothing is mutated when validation fails.
func (s *Subscription) RenewFidelity(newEnd time.Time, newCost float64, newDescription string) error {
	if newCost <= 0 {
		return fmt.Errorf("final cost must be greater than zero")
	}
	if newEnd.Before(s.fidelityStart) {
		return fmt.Errorf("fidelity end cannot precede fidelity start")
	}

	s.fidelityEnd = newEnd
	s.finalCost = newCost
	s.description = newDescription
	return nil
}
