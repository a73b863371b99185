package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gestao/internal/domain/payment"
	"gestao/internal/infrastructure/persistence/mappers"
	"gestao/internal/infrastructure/persistence/models"
	apperrors "gestao/internal/shared/errors"
	"gestao/internal/shared/logger"
)

type PaymentRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PaymentMapper
	logger logger.Interface
}

func NewPaymentRepository(
	db *gorm.DB,
	logger logger.Interface,
) payment.Repository {
	return &PaymentRepositoryImpl{
		db:     db,
		mapper: mappers.NewPaymentMapper(),
		logger: logger,
	}
}

func (r *PaymentRepositoryImpl) FindBySubscription(ctx context.Context, subscriptionCode uint) ([]*payment.Payment, error) {
	var modelList []*models.PaymentModel

	if err := r.db.WithContext(ctx).Where("subscription_id = ?", subscriptionCode).Order("id ASC").Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to get payments by subscription", "subscription_code", subscriptionCode, "error", err)
		return nil, fmt.Errorf("failed to get payments: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		r.logger.Errorw("failed to map payment models to entities", "subscription_code", subscriptionCode, "error", err)
		return nil, fmt.Errorf("failed to map payments: %w", err)
	}

	return entities, nil
}

func (r *PaymentRepositoryImpl) Save(ctx context.Context, p *payment.Payment) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		r.logger.Errorw("failed to map payment entity to model", "error", err)
		return fmt.Errorf("failed to map payment entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			r.logger.Warnw("payment code already exists", "code", model.ID)
			return apperrors.NewConflictError(fmt.Sprintf("payment with code %d already exists", model.ID))
		}
		r.logger.Errorw("failed to create payment in database", "error", err)
		return fmt.Errorf("failed to create payment: %w", err)
	}

	r.logger.Infow("payment recorded successfully", "code", model.ID, "subscription_id", model.SubscriptionID)
	return nil
}

func (r *PaymentRepositoryImpl) NextCode(ctx context.Context) (uint, error) {
	var maxCode uint

	if err := r.db.WithContext(ctx).Model(&models.PaymentModel{}).
		Select("COALESCE(MAX(id), 0)").
		Scan(&maxCode).Error; err != nil {
		r.logger.Errorw("failed to compute next payment code", "error", err)
		return 0, fmt.Errorf("failed to compute next payment code: %w", err)
	}

	return maxCode + 1, nil
}
