package payment

import (
	"fmt"
	"time"
)

// Payment is a ledger entry for a subscription. It is stored for auditing
// only; no activity computation reads it.
type Payment struct {
	code             uint
	subscriptionCode uint
	amountPaid       float64
	paymentDate      time.Time
}

func NewPayment(code, subscriptionCode uint, amountPaid float64, paymentDate time.Time) (*Payment, error) {
	if code == 0 {
		return nil, fmt.Errorf("payment code is required")
	}
	if subscriptionCode == 0 {
		return nil, fmt.Errorf("subscription code is required")
	}
	if amountPaid <= 0 {
		return nil, fmt.Errorf("amount paid must be greater than zero")
	}

	return &Payment{
		code:             code,
		subscriptionCode: subscriptionCode,
		amountPaid:       amountPaid,
		paymentDate:      paymentDate,
	}, nil
}

// ReconstructPayment rebuilds a payment from persistence.
func ReconstructPayment(code, subscriptionCode uint, amountPaid float64, paymentDate time.Time) (*Payment, error) {
	if code == 0 {
		return nil, fmt.Errorf("payment code cannot be zero")
	}
	return &Payment{
		code:             code,
		subscriptionCode: subscriptionCode,
		amountPaid:       amountPaid,
		paymentDate:      paymentDate,
	}, nil
}

func (p *Payment) Code() uint {
	return p.code
}

func (p *Payment) SubscriptionCode() uint {
	return p.subscriptionCode
}

func (p *Payment) AmountPaid() float64 {
	return p.amountPaid
}

func (p *Payment) PaymentDate() time.Time {
	return p.paymentDate
}
