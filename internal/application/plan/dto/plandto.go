package dto

import (
	"gestao/internal/domain/plan"
	"gestao/internal/shared/biztime"
)

type PlanDTO struct {
	Code          uint    `json:"code"`
	Name          string  `json:"name"`
	MonthlyCost   float64 `json:"monthlyCost"`
	EffectiveDate string  `json:"effectiveDate"`
	Description   string  `json:"description"`
}

func NewPlanDTO(p *plan.Plan) PlanDTO {
	return PlanDTO{
		Code:          p.Code(),
		Name:          p.Name(),
		MonthlyCost:   p.MonthlyCost(),
		EffectiveDate: biztime.FormatStored(p.EffectiveDate()),
		Description:   p.Description(),
	}
}

func NewPlanDTOs(plans []*plan.Plan) []PlanDTO {
	dtos := make([]PlanDTO, 0, len(plans))
	for _, p := range plans {
		dtos = append(dtos, NewPlanDTO(p))
	}
	return dtos
}
