package usecases

import (
	"context"
	"fmt"
	"time"

	"gestao/internal/domain/customer"
	"gestao/internal/domain/plan"
	"gestao/internal/domain/subscription"
	apperrors "gestao/internal/shared/errors"
	"gestao/internal/shared/logger"
)

type CreateSubscriptionCommand struct {
	CustomerCode uint
	PlanCode     uint
	FinalCost    float64
	Description  string
	// StartDate opens the fidelity window; zero means "now".
	StartDate time.Time
}

type CreateSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	planRepo         plan.Repository
	customerRepo     customer.Repository
	now              func() time.Time
	logger           logger.Interface
}

func NewCreateSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	planRepo plan.Repository,
	customerRepo customer.Repository,
	now func() time.Time,
	logger logger.Interface,
) *CreateSubscriptionUseCase {
	return &CreateSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		customerRepo:     customerRepo,
		now:              now,
		logger:           logger,
	}
}

// Execute validates the preconditions in a fixed order: customer existence,
// plan existence, then the aggregate's own input validation.
func (uc *CreateSubscriptionUseCase) Execute(ctx context.Context, cmd CreateSubscriptionCommand) (*subscription.Subscription, error) {
	targetCustomer, err := uc.customerRepo.FindByCode(ctx, cmd.CustomerCode)
	if err != nil {
		uc.logger.Errorw("failed to get customer", "error", err, "customer_code", cmd.CustomerCode)
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	if targetCustomer == nil {
		uc.logger.Warnw("customer not found", "customer_code", cmd.CustomerCode)
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("customer with code %d not found", cmd.CustomerCode))
	}

	targetPlan, err := uc.planRepo.FindByCode(ctx, cmd.PlanCode)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "error", err, "plan_code", cmd.PlanCode)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	if targetPlan == nil {
		uc.logger.Warnw("plan not found", "plan_code", cmd.PlanCode)
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("plan with code %d not found", cmd.PlanCode))
	}

	startDate := cmd.StartDate
	if startDate.IsZero() {
		startDate = uc.now()
	}

	code, err := uc.subscriptionRepo.NextCode(ctx)
	if err != nil {
		uc.logger.Errorw("failed to allocate subscription code", "error", err)
		return nil, fmt.Errorf("failed to allocate subscription code: %w", err)
	}

	sub, err := subscription.NewSubscription(code, cmd.PlanCode, cmd.CustomerCode, startDate, cmd.FinalCost, cmd.Description)
	if err != nil {
		uc.logger.Warnw("invalid subscription input", "error", err)
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.subscriptionRepo.Save(ctx, sub); err != nil {
		uc.logger.Errorw("failed to save subscription", "error", err, "code", code)
		return nil, err
	}

	uc.logger.Infow("subscription created",
		"code", sub.Code(),
		"customer_code", sub.CustomerCode(),
		"plan_code", sub.PlanCode(),
		"fidelity_end", sub.FidelityEnd(),
	)

	return sub, nil
}
