package repository

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gestao/internal/domain/subscription"
	"gestao/internal/infrastructure/persistence/models"
	apperrors "gestao/internal/shared/errors"
	"gestao/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.CustomerModel{},
		&models.PlanModel{},
		&models.SubscriptionModel{},
		&models.PaymentModel{},
	)
	require.NoError(t, err)

	return db
}

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestSubscription(t *testing.T, code, planCode, customerCode uint, start time.Time) *subscription.Subscription {
	t.Helper()

	sub, err := subscription.NewSubscription(code, planCode, customerCode, start, 49.90, "annual contract")
	require.NoError(t, err)
	return sub
}

func TestSubscriptionRepository_SaveAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubscriptionRepository(db, testLogger())
	ctx := context.Background()
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("save and round trip by code", func(t *testing.T) {
		sub := newTestSubscription(t, 1, 10, 20, start)
		require.NoError(t, repo.Save(ctx, sub))

		found, err := repo.FindByCode(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, uint(10), found.PlanCode())
		assert.Equal(t, uint(20), found.CustomerCode())
		assert.True(t, found.FidelityStart().Equal(start))
		assert.True(t, found.FidelityEnd().Equal(start.AddDate(1, 0, 0)))
		assert.True(t, found.LastPaymentDate().Equal(start))
		assert.InDelta(t, 49.90, found.FinalCost(), 1e-9)
	})

	t.Run("absent code returns nil without error", func(t *testing.T) {
		found, err := repo.FindByCode(ctx, 999)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("duplicate code returns conflict", func(t *testing.T) {
		sub := newTestSubscription(t, 1, 10, 20, start)
		err := repo.Save(ctx, sub)
		require.Error(t, err)
		assert.True(t, apperrors.IsConflictError(err))
	})
}

func TestSubscriptionRepository_FindByCustomerAndPlan(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubscriptionRepository(db, testLogger())
	ctx := context.Background()
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, newTestSubscription(t, 3, 10, 20, start)))
	require.NoError(t, repo.Save(ctx, newTestSubscription(t, 1, 10, 20, start)))
	require.NoError(t, repo.Save(ctx, newTestSubscription(t, 2, 11, 21, start)))

	t.Run("filters by customer in ascending code order", func(t *testing.T) {
		subs, err := repo.FindByCustomer(ctx, 20)
		require.NoError(t, err)
		require.Len(t, subs, 2)
		assert.Equal(t, uint(1), subs[0].Code())
		assert.Equal(t, uint(3), subs[1].Code())
	})

	t.Run("filters by plan", func(t *testing.T) {
		subs, err := repo.FindByPlan(ctx, 11)
		require.NoError(t, err)
		require.Len(t, subs, 1)
		assert.Equal(t, uint(2), subs[0].Code())
	})

	t.Run("unknown customer yields empty slice", func(t *testing.T) {
		subs, err := repo.FindByCustomer(ctx, 99)
		require.NoError(t, err)
		assert.Empty(t, subs)
	})
}

func TestSubscriptionRepository_FindByStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubscriptionRepository(db, testLogger())
	ctx := context.Background()
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// Code 1 paid recently, code 2 lapsed past the payment tolerance.
	require.NoError(t, repo.Save(ctx, newTestSubscription(t, 1, 10, 20, start)))

	lapsed := newTestSubscription(t, 2, 10, 21, start)
	require.NoError(t, repo.Save(ctx, lapsed))

	now := start.AddDate(0, 0, 45)

	active, err := repo.FindByStatus(ctx, true, now)
	require.NoError(t, err)
	assert.Empty(t, active)

	// A payment 10 days before the evaluation instant keeps code 1 active.
	sub, err := repo.FindByCode(ctx, 1)
	require.NoError(t, err)
	sub.RecordPayment(now.AddDate(0, 0, -10))
	require.NoError(t, repo.Update(ctx, sub))

	active, err = repo.FindByStatus(ctx, true, now)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, uint(1), active[0].Code())

	cancelled, err := repo.FindByStatus(ctx, false, now)
	require.NoError(t, err)
	require.Len(t, cancelled, 1)
	assert.Equal(t, uint(2), cancelled[0].Code())
}

func TestSubscriptionRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubscriptionRepository(db, testLogger())
	ctx := context.Background()
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("persists recorded payment", func(t *testing.T) {
		sub := newTestSubscription(t, 1, 10, 20, start)
		require.NoError(t, repo.Save(ctx, sub))

		paidAt := start.AddDate(0, 1, 0)
		sub.RecordPayment(paidAt)
		require.NoError(t, repo.Update(ctx, sub))

		found, err := repo.FindByCode(ctx, 1)
		require.NoError(t, err)
		assert.True(t, found.LastPaymentDate().Equal(paidAt))
	})

	t.Run("absent code returns not found", func(t *testing.T) {
		ghost := newTestSubscription(t, 42, 10, 20, start)
		err := repo.Update(ctx, ghost)
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestSubscriptionRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubscriptionRepository(db, testLogger())
	ctx := context.Background()
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, newTestSubscription(t, 1, 10, 20, start)))

	t.Run("removes existing row", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, 1))

		found, err := repo.FindByCode(ctx, 1)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("absent code returns not found", func(t *testing.T) {
		err := repo.Delete(ctx, 1)
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestSubscriptionRepository_NextCode(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubscriptionRepository(db, testLogger())
	ctx := context.Background()
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	code, err := repo.NextCode(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint(1), code)

	require.NoError(t, repo.Save(ctx, newTestSubscription(t, 7, 10, 20, start)))

	code, err = repo.NextCode(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint(8), code)
}
