package mappers

import (
	"fmt"

	"gestao/internal/domain/subscription"
	"gestao/internal/infrastructure/persistence/models"
	"gestao/internal/shared/biztime"
	"gestao/internal/shared/mapper"
)

type SubscriptionMapper interface {
	ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error)
	ToModel(entity *subscription.Subscription) (*models.SubscriptionModel, error)
	ToEntities(models []*models.SubscriptionModel) ([]*subscription.Subscription, error)
}

type SubscriptionMapperImpl struct{}

func NewSubscriptionMapper() SubscriptionMapper {
	return &SubscriptionMapperImpl{}
}

func (m *SubscriptionMapperImpl) ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error) {
	if model == nil {
		return nil, nil
	}

	fidelityStart, err := biztime.ParseStored(model.FidelityStart)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fidelity start: %w", err)
	}
	fidelityEnd, err := biztime.ParseStored(model.FidelityEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fidelity end: %w", err)
	}
	lastPaymentDate, err := biztime.ParseStored(model.LastPaymentDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse last payment date: %w", err)
	}

	entity, err := subscription.ReconstructSubscription(
		model.ID,
		model.PlanID,
		model.CustomerID,
		fidelityStart,
		fidelityEnd,
		lastPaymentDate,
		model.FinalCost,
		model.Description,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct subscription entity: %w", err)
	}

	return entity, nil
}

func (m *SubscriptionMapperImpl) ToModel(entity *subscription.Subscription) (*models.SubscriptionModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.SubscriptionModel{
		ID:              entity.Code(),
		PlanID:          entity.PlanCode(),
		CustomerID:      entity.CustomerCode(),
		FidelityStart:   biztime.FormatStored(entity.FidelityStart()),
		FidelityEnd:     biztime.FormatStored(entity.FidelityEnd()),
		LastPaymentDate: biztime.FormatStored(entity.LastPaymentDate()),
		FinalCost:       entity.FinalCost(),
		Description:     entity.Description(),
	}, nil
}

func (m *SubscriptionMapperImpl) ToEntities(modelList []*models.SubscriptionModel) ([]*subscription.Subscription, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.SubscriptionModel) uint { return model.ID })
}
