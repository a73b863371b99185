package models

import "gestao/internal/shared/constants"

// CustomerModel represents the database persistence model for customers.
// This is the anti-corruption layer between domain and database.
type CustomerModel struct {
	ID    uint   `gorm:"primarykey"`
	Name  string `gorm:"not null;size:100"`
	Email string `gorm:"uniqueIndex;not null;size:255"`
}

// TableName specifies the table name for GORM
func (CustomerModel) TableName() string {
	return constants.TableCustomers
}
