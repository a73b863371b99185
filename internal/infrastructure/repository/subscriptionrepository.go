package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"gestao/internal/domain/subscription"
	"gestao/internal/infrastructure/persistence/mappers"
	"gestao/internal/infrastructure/persistence/models"
	apperrors "gestao/internal/shared/errors"
	"gestao/internal/shared/logger"
)

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SubscriptionMapper
	logger logger.Interface
}

func NewSubscriptionRepository(
	db *gorm.DB,
	logger logger.Interface,
) subscription.Repository {
	return &SubscriptionRepositoryImpl{
		db:     db,
		mapper: mappers.NewSubscriptionMapper(),
		logger: logger,
	}
}

func (r *SubscriptionRepositoryImpl) FindAll(ctx context.Context) ([]*subscription.Subscription, error) {
	var modelList []*models.SubscriptionModel

	if err := r.db.WithContext(ctx).Order("id ASC").Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list subscriptions", "error", err)
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		r.logger.Errorw("failed to map subscription models to entities", "error", err)
		return nil, fmt.Errorf("failed to map subscriptions: %w", err)
	}

	return entities, nil
}

func (r *SubscriptionRepositoryImpl) FindByCode(ctx context.Context, code uint) (*subscription.Subscription, error) {
	var model models.SubscriptionModel

	if err := r.db.WithContext(ctx).First(&model, code).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscription by code", "code", code, "error", err)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map subscription model to entity", "code", code, "error", err)
		return nil, fmt.Errorf("failed to map subscription: %w", err)
	}

	return entity, nil
}

func (r *SubscriptionRepositoryImpl) FindByCustomer(ctx context.Context, customerCode uint) ([]*subscription.Subscription, error) {
	var modelList []*models.SubscriptionModel

	if err := r.db.WithContext(ctx).Where("customer_id = ?", customerCode).Order("id ASC").Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to get subscriptions by customer", "customer_code", customerCode, "error", err)
		return nil, fmt.Errorf("failed to get subscriptions: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		r.logger.Errorw("failed to map subscription models to entities", "customer_code", customerCode, "error", err)
		return nil, fmt.Errorf("failed to map subscriptions: %w", err)
	}

	return entities, nil
}

func (r *SubscriptionRepositoryImpl) FindByPlan(ctx context.Context, planCode uint) ([]*subscription.Subscription, error) {
	var modelList []*models.SubscriptionModel

	if err := r.db.WithContext(ctx).Where("plan_id = ?", planCode).Order("id ASC").Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to get subscriptions by plan", "plan_code", planCode, "error", err)
		return nil, fmt.Errorf("failed to get subscriptions: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		r.logger.Errorw("failed to map subscription models to entities", "plan_code", planCode, "error", err)
		return nil, fmt.Errorf("failed to map subscriptions: %w", err)
	}

	return entities, nil
}

// FindByStatus loads the full set and filters it through the entity's
// activity rule. Activity depends on the evaluation instant, so it cannot be
// expressed as a stored-column predicate without duplicating the rule in SQL.
func (r *SubscriptionRepositoryImpl) FindByStatus(ctx context.Context, active bool, now time.Time) ([]*subscription.Subscription, error) {
	entities, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]*subscription.Subscription, 0, len(entities))
	for _, entity := range entities {
		if entity.IsActive(now) == active {
			filtered = append(filtered, entity)
		}
	}

	return filtered, nil
}

func (r *SubscriptionRepositoryImpl) Save(ctx context.Context, sub *subscription.Subscription) error {
	model, err := r.mapper.ToModel(sub)
	if err != nil {
		r.logger.Errorw("failed to map subscription entity to model", "error", err)
		return fmt.Errorf("failed to map subscription entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			r.logger.Warnw("subscription code already exists", "code", model.ID)
			return apperrors.NewConflictError(fmt.Sprintf("subscription with code %d already exists", model.ID))
		}
		r.logger.Errorw("failed to create subscription in database", "error", err)
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	r.logger.Infow("subscription created successfully", "code", model.ID, "customer_id", model.CustomerID, "plan_id", model.PlanID)
	return nil
}

func (r *SubscriptionRepositoryImpl) Update(ctx context.Context, sub *subscription.Subscription) error {
	model, err := r.mapper.ToModel(sub)
	if err != nil {
		r.logger.Errorw("failed to map subscription entity to model", "code", sub.Code(), "error", err)
		return fmt.Errorf("failed to map subscription entity: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.SubscriptionModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"plan_id":           model.PlanID,
			"customer_id":       model.CustomerID,
			"fidelity_start":    model.FidelityStart,
			"fidelity_end":      model.FidelityEnd,
			"last_payment_date": model.LastPaymentDate,
			"final_cost":        model.FinalCost,
			"description":       model.Description,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update subscription", "code", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update subscription: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.SubscriptionModel{}).Where("id = ?", model.ID).Count(&count).Error; err != nil {
			r.logger.Errorw("failed to verify subscription existence", "code", model.ID, "error", err)
			return fmt.Errorf("failed to update subscription: %w", err)
		}
		if count == 0 {
			return apperrors.NewNotFoundError(fmt.Sprintf("subscription with code %d not found", model.ID))
		}
	}

	r.logger.Infow("subscription updated successfully", "code", model.ID)
	return nil
}

func (r *SubscriptionRepositoryImpl) Delete(ctx context.Context, code uint) error {
	result := r.db.WithContext(ctx).Delete(&models.SubscriptionModel{}, code)
	if result.Error != nil {
		r.logger.Errorw("failed to delete subscription", "code", code, "error", result.Error)
		return fmt.Errorf("failed to delete subscription: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("subscription with code %d not found", code))
	}

	r.logger.Infow("subscription deleted successfully", "code", code)
	return nil
}

func (r *SubscriptionRepositoryImpl) NextCode(ctx context.Context) (uint, error) {
	var maxCode uint

	if err := r.db.WithContext(ctx).Model(&models.SubscriptionModel{}).
		Select("COALESCE(MAX(id), 0)").
		Scan(&maxCode).Error; err != nil {
		r.logger.Errorw("failed to compute next subscription code", "error", err)
		return 0, fmt.Errorf("failed to compute next subscription code: %w", err)
	}

	return maxCode + 1, nil
}
