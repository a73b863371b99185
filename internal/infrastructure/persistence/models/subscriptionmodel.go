package models

import "gestao/internal/shared/constants"

// SubscriptionModel represents the database persistence model for
// subscriptions. Dates are stored as ISO-8601 strings; the derived activity
// status is intentionally not a column.
type SubscriptionModel struct {
	ID              uint    `gorm:"primarykey"`
	PlanID          uint    `gorm:"not null;index"`
	CustomerID      uint    `gorm:"not null;index"`
	FidelityStart   string  `gorm:"not null;size:40"`
	FidelityEnd     string  `gorm:"not null;size:40"`
	LastPaymentDate string  `gorm:"not null;size:40"`
	FinalCost       float64 `gorm:"not null"`
	Description     string  `gorm:"not null;size:500"`
}

// TableName specifies the table name for GORM
func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}
