package usecases

import (
	"context"
	"fmt"
	"time"

	"gestao/internal/application/subscription/dto"
	"gestao/internal/domain/plan"
	"gestao/internal/domain/subscription"
	apperrors "gestao/internal/shared/errors"
	"gestao/internal/shared/logger"
)

type ListPlanSubscriptionsCommand struct {
	PlanCode uint
}

type ListPlanSubscriptionsUseCase struct {
	subscriptionRepo subscription.Repository
	planRepo         plan.Repository
	now              func() time.Time
	logger           logger.Interface
}

func NewListPlanSubscriptionsUseCase(
	subscriptionRepo subscription.Repository,
	planRepo plan.Repository,
	now func() time.Time,
	logger logger.Interface,
) *ListPlanSubscriptionsUseCase {
	return &ListPlanSubscriptionsUseCase{
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		now:              now,
		logger:           logger,
	}
}

// Execute lists the subscriptions of one plan. The plan must exist; a plan
// without subscriptions yields an empty list.
func (uc *ListPlanSubscriptionsUseCase) Execute(ctx context.Context, cmd ListPlanSubscriptionsCommand) ([]dto.SubscriptionSummaryDTO, error) {
	existing, err := uc.planRepo.FindByCode(ctx, cmd.PlanCode)
	if err != nil {
		uc.logger.Errorw("failed to look up plan", "plan_code", cmd.PlanCode, "error", err)
		return nil, fmt.Errorf("failed to look up plan: %w", err)
	}
	if existing == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("plan %d not found", cmd.PlanCode))
	}

	subs, err := uc.subscriptionRepo.FindByPlan(ctx, cmd.PlanCode)
	if err != nil {
		uc.logger.Errorw("failed to list plan subscriptions", "plan_code", cmd.PlanCode, "error", err)
		return nil, fmt.Errorf("failed to list plan subscriptions: %w", err)
	}

	return dto.NewSubscriptionSummaryDTOs(subs, uc.now()), nil
}
