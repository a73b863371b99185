package usecases

import (
	"context"
	"fmt"
	"time"

	"gestao/internal/domain/plan"
	apperrors "gestao/internal/shared/errors"
	"gestao/internal/shared/logger"
)

type UpdatePlanCostCommand struct {
	PlanCode uint
	NewCost  float64
}

type UpdatePlanCostUseCase struct {
	planRepo plan.Repository
	now      func() time.Time
	logger   logger.Interface
}

func NewUpdatePlanCostUseCase(
	planRepo plan.Repository,
	now func() time.Time,
	logger logger.Interface,
) *UpdatePlanCostUseCase {
	return &UpdatePlanCostUseCase{
		planRepo: planRepo,
		now:      now,
		logger:   logger,
	}
}

// Execute changes a plan's monthly cost. The effective date is stamped with
// the moment of the change. Existing subscriptions keep their contracted
// final cost.
func (uc *UpdatePlanCostUseCase) Execute(ctx context.Context, cmd UpdatePlanCostCommand) (*plan.Plan, error) {
	targetPlan, err := uc.planRepo.FindByCode(ctx, cmd.PlanCode)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "error", err, "plan_code", cmd.PlanCode)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	if targetPlan == nil {
		uc.logger.Warnw("plan not found", "plan_code", cmd.PlanCode)
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("plan with code %d not found", cmd.PlanCode))
	}

	if err := targetPlan.UpdateMonthlyCost(cmd.NewCost, uc.now()); err != nil {
		uc.logger.Warnw("invalid plan cost", "error", err, "plan_code", cmd.PlanCode, "new_cost", cmd.NewCost)
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.planRepo.Update(ctx, targetPlan); err != nil {
		uc.logger.Errorw("failed to update plan", "error", err, "plan_code", cmd.PlanCode)
		return nil, err
	}

	uc.logger.Infow("plan cost updated",
		"plan_code", targetPlan.Code(),
		"monthly_cost", targetPlan.MonthlyCost(),
		"effective_date", targetPlan.EffectiveDate(),
	)

	return targetPlan, nil
}
