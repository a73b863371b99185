package models

import "gestao/internal/shared/constants"

// PaymentModel represents the database persistence model for the payment
// ledger.
type PaymentModel struct {
	ID             uint    `gorm:"primarykey"`
	SubscriptionID uint    `gorm:"not null;index"`
	AmountPaid     float64 `gorm:"not null"`
	PaymentDate    string  `gorm:"not null;size:40"`
}

// TableName specifies the table name for GORM
func (PaymentModel) TableName() string {
	return constants.TablePayments
}
