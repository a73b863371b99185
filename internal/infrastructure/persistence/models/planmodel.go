package models

import "gestao/internal/shared/constants"

// PlanModel represents the database persistence model for plans.
// EffectiveDate is stored as an ISO-8601 string, matching the original
// storage layout.
type PlanModel struct {
	ID            uint    `gorm:"primarykey"`
	Name          string  `gorm:"not null;size:100"`
	MonthlyCost   float64 `gorm:"not null"`
	EffectiveDate string  `gorm:"not null;size:40"`
	Description   string  `gorm:"not null;size:500"`
}

// TableName specifies the table name for GORM
func (PlanModel) TableName() string {
	return constants.TablePlans
}
