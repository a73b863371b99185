package mappers

import (
	"fmt"

	"gestao/internal/domain/payment"
	"gestao/internal/infrastructure/persistence/models"
	"gestao/internal/shared/biztime"
	"gestao/internal/shared/mapper"
)

type PaymentMapper interface {
	ToEntity(model *models.PaymentModel) (*payment.Payment, error)
	ToModel(entity *payment.Payment) (*models.PaymentModel, error)
	ToEntities(models []*models.PaymentModel) ([]*payment.Payment, error)
}

type PaymentMapperImpl struct{}

func NewPaymentMapper() PaymentMapper {
	return &PaymentMapperImpl{}
}

func (m *PaymentMapperImpl) ToEntity(model *models.PaymentModel) (*payment.Payment, error) {
	if model == nil {
		return nil, nil
	}

	paymentDate, err := biztime.ParseStored(model.PaymentDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse payment date: %w", err)
	}

	entity, err := payment.ReconstructPayment(model.ID, model.SubscriptionID, model.AmountPaid, paymentDate)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct payment entity: %w", err)
	}

	return entity, nil
}

func (m *PaymentMapperImpl) ToModel(entity *payment.Payment) (*models.PaymentModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.PaymentModel{
		ID:             entity.Code(),
		SubscriptionID: entity.SubscriptionCode(),
		AmountPaid:     entity.AmountPaid(),
		PaymentDate:    biztime.FormatStored(entity.PaymentDate()),
	}, nil
}

func (m *PaymentMapperImpl) ToEntities(modelList []*models.PaymentModel) ([]*payment.Payment, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.PaymentModel) uint { return model.ID })
}
