package usecases

import (
	"context"
	"fmt"
	"time"

	"gestao/internal/application/subscription/dto"
	"gestao/internal/domain/customer"
	"gestao/internal/domain/subscription"
	apperrors "gestao/internal/shared/errors"
	"gestao/internal/shared/logger"
)

type ListCustomerSubscriptionsCommand struct {
	CustomerCode uint
}

type ListCustomerSubscriptionsUseCase struct {
	subscriptionRepo subscription.Repository
	customerRepo     customer.Repository
	now              func() time.Time
	logger           logger.Interface
}

func NewListCustomerSubscriptionsUseCase(
	subscriptionRepo subscription.Repository,
	customerRepo customer.Repository,
	now func() time.Time,
	logger logger.Interface,
) *ListCustomerSubscriptionsUseCase {
	return &ListCustomerSubscriptionsUseCase{
		subscriptionRepo: subscriptionRepo,
		customerRepo:     customerRepo,
		now:              now,
		logger:           logger,
	}
}

// Execute lists the subscriptions of one customer. The customer must exist; a
// customer without subscriptions yields an empty list.
func (uc *ListCustomerSubscriptionsUseCase) Execute(ctx context.Context, cmd ListCustomerSubscriptionsCommand) ([]dto.SubscriptionSummaryDTO, error) {
	existing, err := uc.customerRepo.FindByCode(ctx, cmd.CustomerCode)
	if err != nil {
		uc.logger.Errorw("failed to look up customer", "customer_code", cmd.CustomerCode, "error", err)
		return nil, fmt.Errorf("failed to look up customer: %w", err)
	}
	if existing == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("customer %d not found", cmd.CustomerCode))
	}

	subs, err := uc.subscriptionRepo.FindByCustomer(ctx, cmd.CustomerCode)
	if err != nil {
		uc.logger.Errorw("failed to list customer subscriptions", "customer_code", cmd.CustomerCode, "error", err)
		return nil, fmt.Errorf("failed to list customer subscriptions: %w", err)
	}

	return dto.NewSubscriptionSummaryDTOs(subs, uc.now()), nil
}
