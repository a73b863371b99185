package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gestao/internal/domain/plan"
	"gestao/internal/infrastructure/persistence/mappers"
	"gestao/internal/infrastructure/persistence/models"
	apperrors "gestao/internal/shared/errors"
	"gestao/internal/shared/logger"
)

type PlanRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PlanMapper
	logger logger.Interface
}

func NewPlanRepository(
	db *gorm.DB,
	logger logger.Interface,
) plan.Repository {
	return &PlanRepositoryImpl{
		db:     db,
		mapper: mappers.NewPlanMapper(),
		logger: logger,
	}
}

func (r *PlanRepositoryImpl) FindAll(ctx context.Context) ([]*plan.Plan, error) {
	var modelList []*models.PlanModel

	if err := r.db.WithContext(ctx).Order("id ASC").Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list plans", "error", err)
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		r.logger.Errorw("failed to map plan models to entities", "error", err)
		return nil, fmt.Errorf("failed to map plans: %w", err)
	}

	return entities, nil
}

func (r *PlanRepositoryImpl) FindByCode(ctx context.Context, code uint) (*plan.Plan, error) {
	var model models.PlanModel

	if err := r.db.WithContext(ctx).First(&model, code).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get plan by code", "code", code, "error", err)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map plan model to entity", "code", code, "error", err)
		return nil, fmt.Errorf("failed to map plan: %w", err)
	}

	return entity, nil
}

func (r *PlanRepositoryImpl) Save(ctx context.Context, p *plan.Plan) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		r.logger.Errorw("failed to map plan entity to model", "error", err)
		return fmt.Errorf("failed to map plan entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			r.logger.Warnw("plan code already exists", "code", model.ID)
			return apperrors.NewConflictError(fmt.Sprintf("plan with code %d already exists", model.ID))
		}
		r.logger.Errorw("failed to create plan in database", "error", err)
		return fmt.Errorf("failed to create plan: %w", err)
	}

	r.logger.Infow("plan created successfully", "code", model.ID, "name", model.Name)
	return nil
}

func (r *PlanRepositoryImpl) Update(ctx context.Context, p *plan.Plan) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		r.logger.Errorw("failed to map plan entity to model", "code", p.Code(), "error", err)
		return fmt.Errorf("failed to map plan entity: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.PlanModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":           model.Name,
			"monthly_cost":   model.MonthlyCost,
			"effective_date": model.EffectiveDate,
			"description":    model.Description,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update plan", "code", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update plan: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.PlanModel{}).Where("id = ?", model.ID).Count(&count).Error; err != nil {
			r.logger.Errorw("failed to verify plan existence", "code", model.ID, "error", err)
			return fmt.Errorf("failed to update plan: %w", err)
		}
		if count == 0 {
			return apperrors.NewNotFoundError(fmt.Sprintf("plan with code %d not found", model.ID))
		}
	}

	r.logger.Infow("plan updated successfully", "code", model.ID)
	return nil
}
