package mappers

import (
	"fmt"

	"gestao/internal/domain/plan"
	"gestao/internal/infrastructure/persistence/models"
	"gestao/internal/shared/biztime"
	"gestao/internal/shared/mapper"
)

type PlanMapper interface {
	ToEntity(model *models.PlanModel) (*plan.Plan, error)
	ToModel(entity *plan.Plan) (*models.PlanModel, error)
	ToEntities(models []*models.PlanModel) ([]*plan.Plan, error)
}

type PlanMapperImpl struct{}

func NewPlanMapper() PlanMapper {
	return &PlanMapperImpl{}
}

func (m *PlanMapperImpl) ToEntity(model *models.PlanModel) (*plan.Plan, error) {
	if model == nil {
		return nil, nil
	}

	effectiveDate, err := biztime.ParseStored(model.EffectiveDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse effective date: %w", err)
	}

	entity, err := plan.ReconstructPlan(model.ID, model.Name, model.MonthlyCost, effectiveDate, model.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct plan entity: %w", err)
	}

	return entity, nil
}

func (m *PlanMapperImpl) ToModel(entity *plan.Plan) (*models.PlanModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.PlanModel{
		ID:            entity.Code(),
		Name:          entity.Name(),
		MonthlyCost:   entity.MonthlyCost(),
		EffectiveDate: biztime.FormatStored(entity.EffectiveDate()),
		Description:   entity.Description(),
	}, nil
}

func (m *PlanMapperImpl) ToEntities(modelList []*models.PlanModel) ([]*plan.Plan, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.PlanModel) uint { return model.ID })
}
