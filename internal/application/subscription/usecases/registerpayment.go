package usecases

import (
	"context"
	"fmt"
	"time"

	"gestao/internal/domain/payment"
	"gestao/internal/domain/subscription"
	apperrors "gestao/internal/shared/errors"
	"gestao/internal/shared/logger"
)

type RegisterPaymentCommand struct {
	SubscriptionCode uint
	Amount           float64
	// PaymentDate is when the payment was made; zero means "now".
	PaymentDate time.Time
}

type RegisterPaymentResult struct {
	Payment *payment.Payment
	// Status of the subscription right after the payment was applied.
	Status subscription.Status
}

type RegisterPaymentUseCase struct {
	subscriptionRepo subscription.Repository
	paymentRepo      payment.Repository
	now              func() time.Time
	logger           logger.Interface
}

func NewRegisterPaymentUseCase(
	subscriptionRepo subscription.Repository,
	paymentRepo payment.Repository,
	now func() time.Time,
	logger logger.Interface,
) *RegisterPaymentUseCase {
	return &RegisterPaymentUseCase{
		subscriptionRepo: subscriptionRepo,
		paymentRepo:      paymentRepo,
		now:              now,
		logger:           logger,
	}
}

// Execute appends a ledger entry and advances the subscription's last payment
// date. The ledger write happens first; the advanced date only matters once
// both are persisted.
func (uc *RegisterPaymentUseCase) Execute(ctx context.Context, cmd RegisterPaymentCommand) (*RegisterPaymentResult, error) {
	sub, err := uc.subscriptionRepo.FindByCode(ctx, cmd.SubscriptionCode)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err, "code", cmd.SubscriptionCode)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		uc.logger.Warnw("subscription not found", "code", cmd.SubscriptionCode)
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("subscription with code %d not found", cmd.SubscriptionCode))
	}

	paymentDate := cmd.PaymentDate
	if paymentDate.IsZero() {
		paymentDate = uc.now()
	}

	code, err := uc.paymentRepo.NextCode(ctx)
	if err != nil {
		uc.logger.Errorw("failed to allocate payment code", "error", err)
		return nil, fmt.Errorf("failed to allocate payment code: %w", err)
	}

	entry, err := payment.NewPayment(code, cmd.SubscriptionCode, cmd.Amount, paymentDate)
	if err != nil {
		uc.logger.Warnw("invalid payment input", "error", err)
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.paymentRepo.Save(ctx, entry); err != nil {
		uc.logger.Errorw("failed to save payment", "error", err, "code", code)
		return nil, err
	}

	sub.RecordPayment(paymentDate)
	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to update subscription after payment", "error", err, "code", sub.Code())
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}

	uc.logger.Infow("payment registered",
		"payment_code", entry.Code(),
		"subscription_code", sub.Code(),
		"amount", entry.AmountPaid(),
	)

	return &RegisterPaymentResult{
		Payment: entry,
		Status:  sub.StatusAt(uc.now()),
	}, nil
}
