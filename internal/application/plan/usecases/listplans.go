package usecases

import (
	"context"
	"fmt"

	"gestao/internal/application/plan/dto"
	"gestao/internal/domain/plan"
	"gestao/internal/shared/logger"
)

type ListPlansUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewListPlansUseCase(planRepo plan.Repository, logger logger.Interface) *ListPlansUseCase {
	return &ListPlansUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *ListPlansUseCase) Execute(ctx context.Context) ([]dto.PlanDTO, error) {
	plans, err := uc.planRepo.FindAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list plans", "error", err)
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	return dto.NewPlanDTOs(plans), nil
}
