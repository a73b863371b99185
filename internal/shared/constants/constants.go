// Package constants defines shared constant values used across the application.
package constants

// Environment names
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// Database table names
const (
	TableCustomers     = "customers"
	TablePlans         = "plans"
	TableSubscriptions = "subscriptions"
	TablePayments      = "payments"
)
