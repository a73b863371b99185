package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gestao/internal/domain/customer"
	"gestao/internal/infrastructure/persistence/mappers"
	"gestao/internal/infrastructure/persistence/models"
	apperrors "gestao/internal/shared/errors"
	"gestao/internal/shared/logger"
)

type CustomerRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CustomerMapper
	logger logger.Interface
}

func NewCustomerRepository(
	db *gorm.DB,
	logger logger.Interface,
) customer.Repository {
	return &CustomerRepositoryImpl{
		db:     db,
		mapper: mappers.NewCustomerMapper(),
		logger: logger,
	}
}

func (r *CustomerRepositoryImpl) FindAll(ctx context.Context) ([]*customer.Customer, error) {
	var modelList []*models.CustomerModel

	if err := r.db.WithContext(ctx).Order("id ASC").Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list customers", "error", err)
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		r.logger.Errorw("failed to map customer models to entities", "error", err)
		return nil, fmt.Errorf("failed to map customers: %w", err)
	}

	return entities, nil
}

func (r *CustomerRepositoryImpl) FindByCode(ctx context.Context, code uint) (*customer.Customer, error) {
	var model models.CustomerModel

	if err := r.db.WithContext(ctx).First(&model, code).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get customer by code", "code", code, "error", err)
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map customer model to entity", "code", code, "error", err)
		return nil, fmt.Errorf("failed to map customer: %w", err)
	}

	return entity, nil
}

func (r *CustomerRepositoryImpl) Save(ctx context.Context, c *customer.Customer) error {
	model, err := r.mapper.ToModel(c)
	if err != nil {
		r.logger.Errorw("failed to map customer entity to model", "error", err)
		return fmt.Errorf("failed to map customer entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			r.logger.Warnw("customer already exists", "code", model.ID, "email", model.Email)
			return apperrors.NewConflictError(fmt.Sprintf("customer with code %d or email %s already exists", model.ID, model.Email))
		}
		r.logger.Errorw("failed to create customer in database", "error", err)
		return fmt.Errorf("failed to create customer: %w", err)
	}

	r.logger.Infow("customer created successfully", "code", model.ID, "email", model.Email)
	return nil
}
