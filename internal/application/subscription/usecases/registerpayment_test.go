package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestao/internal/application/subscription/testutil"
	"gestao/internal/domain/subscription"
	apperrors "gestao/internal/shared/errors"
)

func TestRegisterPayment(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("payment reactivates a lapsed subscription", func(t *testing.T) {
		subRepo := testutil.NewMockSubscriptionRepository()
		paymentRepo := testutil.NewMockPaymentRepository()

		sub, err := subscription.NewSubscription(1, 2, 1, start, 49.90, "Annual contract")
		require.NoError(t, err)
		subRepo.Add(sub)

		// 45 days after the last payment the subscription has lapsed.
		now := start.AddDate(0, 0, 45)
		require.False(t, sub.IsActive(now))

		uc := NewRegisterPaymentUseCase(subRepo, paymentRepo, fixedClock(now), testutil.NewMockLogger())

		result, err := uc.Execute(context.Background(), RegisterPaymentCommand{
			SubscriptionCode: 1,
			Amount:           49.90,
		})
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.Equal(t, uint(1), result.Payment.Code())
		assert.Equal(t, subscription.StatusActive, result.Status)

		stored, err := subRepo.FindByCode(context.Background(), 1)
		require.NoError(t, err)
		assert.True(t, stored.LastPaymentDate().Equal(now))

		ledger, err := paymentRepo.FindBySubscription(context.Background(), 1)
		require.NoError(t, err)
		require.Len(t, ledger, 1)
		assert.InDelta(t, 49.90, ledger[0].AmountPaid(), 1e-9)
	})

	t.Run("unknown subscription", func(t *testing.T) {
		uc := NewRegisterPaymentUseCase(testutil.NewMockSubscriptionRepository(), testutil.NewMockPaymentRepository(), fixedClock(start), testutil.NewMockLogger())

		_, err := uc.Execute(context.Background(), RegisterPaymentCommand{SubscriptionCode: 9, Amount: 49.90})
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("non-positive amount rejected before any write", func(t *testing.T) {
		subRepo := testutil.NewMockSubscriptionRepository()
		paymentRepo := testutil.NewMockPaymentRepository()

		sub, err := subscription.NewSubscription(1, 2, 1, start, 49.90, "Annual contract")
		require.NoError(t, err)
		subRepo.Add(sub)

		uc := NewRegisterPaymentUseCase(subRepo, paymentRepo, fixedClock(start), testutil.NewMockLogger())

		_, err = uc.Execute(context.Background(), RegisterPaymentCommand{SubscriptionCode: 1, Amount: 0})
		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))

		ledger, err := paymentRepo.FindBySubscription(context.Background(), 1)
		require.NoError(t, err)
		assert.Empty(t, ledger)
		assert.True(t, sub.LastPaymentDate().Equal(start))
	})

	t.Run("payment beyond the fidelity window does not reactivate", func(t *testing.T) {
		subRepo := testutil.NewMockSubscriptionRepository()
		paymentRepo := testutil.NewMockPaymentRepository()

		sub, err := subscription.NewSubscription(1, 2, 1, start, 49.90, "Annual contract")
		require.NoError(t, err)
		subRepo.Add(sub)

		now := start.AddDate(1, 1, 0)
		uc := NewRegisterPaymentUseCase(subRepo, paymentRepo, fixedClock(now), testutil.NewMockLogger())

		result, err := uc.Execute(context.Background(), RegisterPaymentCommand{SubscriptionCode: 1, Amount: 49.90})
		require.NoError(t, err)
		assert.Equal(t, subscription.StatusCancelled, result.Status)
	})
}
