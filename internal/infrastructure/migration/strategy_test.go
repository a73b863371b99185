package migration

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gestao/internal/shared/constants"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection keeps the in-memory database alive for the whole test.
	sqlDB.SetMaxOpenConns(1)

	return db
}

func TestNewManagerStrategySelection(t *testing.T) {
	tests := []struct {
		environment string
		wantName    string
	}{
		{constants.EnvDevelopment, "gorm_auto_migrate"},
		{constants.EnvTest, "golang_migrate"},
		{constants.EnvProduction, "golang_migrate"},
		{"default", "gorm_auto_migrate"},
		{"", "gorm_auto_migrate"},
	}

	for _, tt := range tests {
		t.Run(tt.environment, func(t *testing.T) {
			manager := NewManager(tt.environment, "sqlite")
			assert.Equal(t, tt.wantName, manager.GetStrategy().GetName())
		})
	}
}

func TestGooseStrategyMigrate(t *testing.T) {
	db := openTestDB(t)

	strategy := NewGooseStrategy("scripts/goose", "sqlite")
	require.Equal(t, "goose", strategy.GetName())

	require.NoError(t, strategy.Migrate(db))

	// The schema is usable after migrating.
	require.NoError(t, db.Exec(`INSERT INTO customers (id, name, email) VALUES (1, 'Ana Souza', 'ana@example.com')`).Error)

	var count int64
	require.NoError(t, db.Raw(`SELECT COUNT(*) FROM customers`).Scan(&count).Error)
	assert.Equal(t, int64(1), count)

	// Migrating an up-to-date database is a no-op.
	require.NoError(t, strategy.Migrate(db))
}

func TestGooseStrategyMigrateDown(t *testing.T) {
	db := openTestDB(t)

	strategy := NewGooseStrategy("scripts/goose", "sqlite")
	require.NoError(t, strategy.Migrate(db))

	gooseStrategy, ok := strategy.(*GooseStrategy)
	require.True(t, ok)
	require.NoError(t, gooseStrategy.MigrateDown(db, 1))

	// The tables are gone after rolling back.
	var count int64
	err := db.Raw(`SELECT COUNT(*) FROM customers`).Scan(&count).Error
	assert.Error(t, err)
}

func TestGormAutoMigrateStrategy(t *testing.T) {
	db := openTestDB(t)

	strategy := NewGormAutoMigrateStrategy()
	require.Equal(t, "gorm_auto_migrate", strategy.GetName())

	require.NoError(t, strategy.Migrate(db, AutoMigrateModels()...))

	var count int64
	require.NoError(t, db.Raw(`SELECT COUNT(*) FROM subscriptions`).Scan(&count).Error)
	assert.Equal(t, int64(0), count)
}
