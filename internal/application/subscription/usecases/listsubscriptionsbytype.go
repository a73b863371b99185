package usecases

import (
	"context"
	"fmt"
	"time"

	"gestao/internal/application/subscription/dto"
	"gestao/internal/domain/subscription"
	apperrors "gestao/internal/shared/errors"
	"gestao/internal/shared/logger"
)

type ListSubscriptionsByTypeCommand struct {
	Filter dto.ListFilter
}

type ListSubscriptionsByTypeUseCase struct {
	subscriptionRepo subscription.Repository
	now              func() time.Time
	logger           logger.Interface
}

func NewListSubscriptionsByTypeUseCase(
	subscriptionRepo subscription.Repository,
	now func() time.Time,
	logger logger.Interface,
) *ListSubscriptionsByTypeUseCase {
	return &ListSubscriptionsByTypeUseCase{
		subscriptionRepo: subscriptionRepo,
		now:              now,
		logger:           logger,
	}
}

// Execute lists subscriptions by filter. The same evaluation instant is used
// for filtering and for the projected status, so the two always agree.
func (uc *ListSubscriptionsByTypeUseCase) Execute(ctx context.Context, cmd ListSubscriptionsByTypeCommand) ([]dto.SubscriptionSummaryDTO, error) {
	now := uc.now()

	var subs []*subscription.Subscription
	var err error

	switch cmd.Filter {
	case dto.FilterAll:
		subs, err = uc.subscriptionRepo.FindAll(ctx)
	case dto.FilterActive:
		subs, err = uc.subscriptionRepo.FindByStatus(ctx, true, now)
	case dto.FilterCancelled:
		subs, err = uc.subscriptionRepo.FindByStatus(ctx, false, now)
	default:
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("invalid subscription filter: %s", cmd.Filter))
	}

	if err != nil {
		uc.logger.Errorw("failed to list subscriptions", "filter", cmd.Filter, "error", err)
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	return dto.NewSubscriptionSummaryDTOs(subs, now), nil
}
