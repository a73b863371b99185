package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestao/internal/application/subscription/testutil"
	"gestao/internal/domain/plan"
	apperrors "gestao/internal/shared/errors"
)

func TestUpdatePlanCost(t *testing.T) {
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 6, 15, 9, 30, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	t.Run("updates cost and stamps effective date", func(t *testing.T) {
		repo := testutil.NewMockPlanRepository()
		p, err := plan.NewPlan(1, "Standard", 49.90, created, "Most popular plan")
		require.NoError(t, err)
		repo.Add(p)

		uc := NewUpdatePlanCostUseCase(repo, clock, testutil.NewMockLogger())

		updated, err := uc.Execute(context.Background(), UpdatePlanCostCommand{PlanCode: 1, NewCost: 39.90})
		require.NoError(t, err)
		assert.InDelta(t, 39.90, updated.MonthlyCost(), 1e-9)
		assert.True(t, updated.EffectiveDate().Equal(now))

		stored, err := repo.FindByCode(context.Background(), 1)
		require.NoError(t, err)
		assert.InDelta(t, 39.90, stored.MonthlyCost(), 1e-9)
	})

	t.Run("unknown plan", func(t *testing.T) {
		uc := NewUpdatePlanCostUseCase(testutil.NewMockPlanRepository(), clock, testutil.NewMockLogger())

		_, err := uc.Execute(context.Background(), UpdatePlanCostCommand{PlanCode: 9, NewCost: 39.90})
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("non-positive cost leaves plan untouched", func(t *testing.T) {
		repo := testutil.NewMockPlanRepository()
		p, err := plan.NewPlan(1, "Standard", 49.90, created, "Most popular plan")
		require.NoError(t, err)
		repo.Add(p)

		uc := NewUpdatePlanCostUseCase(repo, clock, testutil.NewMockLogger())

		_, err = uc.Execute(context.Background(), UpdatePlanCostCommand{PlanCode: 1, NewCost: 0})
		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))

		stored, err := repo.FindByCode(context.Background(), 1)
		require.NoError(t, err)
		assert.InDelta(t, 49.90, stored.MonthlyCost(), 1e-9)
		assert.True(t, stored.EffectiveDate().Equal(created))
	})
}
