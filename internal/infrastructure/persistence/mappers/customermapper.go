package mappers

import (
	"fmt"

	"gestao/internal/domain/customer"
	"gestao/internal/infrastructure/persistence/models"
	"gestao/internal/shared/mapper"
)

type CustomerMapper interface {
	ToEntity(model *models.CustomerModel) (*customer.Customer, error)
	ToModel(entity *customer.Customer) (*models.CustomerModel, error)
	ToEntities(models []*models.CustomerModel) ([]*customer.Customer, error)
}

type CustomerMapperImpl struct{}

func NewCustomerMapper() CustomerMapper {
	return &CustomerMapperImpl{}
}

func (m *CustomerMapperImpl) ToEntity(model *models.CustomerModel) (*customer.Customer, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := customer.ReconstructCustomer(model.ID, model.Name, model.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct customer entity: %w", err)
	}

	return entity, nil
}

func (m *CustomerMapperImpl) ToModel(entity *customer.Customer) (*models.CustomerModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.CustomerModel{
		ID:    entity.Code(),
		Name:  entity.Name(),
		Email: entity.Email(),
	}, nil
}

func (m *CustomerMapperImpl) ToEntities(modelList []*models.CustomerModel) ([]*customer.Customer, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.CustomerModel) uint { return model.ID })
}
