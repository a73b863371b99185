package subscription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- helpers ---

func newSubscriptionAt(t *testing.T, start time.Time) *Subscription {
	t.Helper()
	sub, err := NewSubscription(1, 1, 1, start, 39.90, "promo")
	require.NoError(t, err)
	require.NotNil(t, sub)
	return sub
}

func reconstructWithDates(t *testing.T, start, end, lastPayment time.Time) *Subscription {
	t.Helper()
	sub, err := ReconstructSubscription(1, 2, 3, start, end, lastPayment, 49.90, "basic")
	require.NoError(t, err)
	return sub
}

func TestNewSubscription_ValidInput(t *testing.T) {
	start := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	sub, err := NewSubscription(7, 2, 3, start, 39.90, "promo")

	require.NoError(t, err)
	require.NotNil(t, sub)

	assert.Equal(t, uint(7), sub.Code())
	assert.Equal(t, uint(2), sub.PlanCode())
	assert.Equal(t, uint(3), sub.CustomerCode())
	assert.Equal(t, start, sub.FidelityStart())
	assert.Equal(t, start.AddDate(1, 0, 0), sub.FidelityEnd(), "fidelity window should be one calendar year")
	assert.Equal(t, start, sub.LastPaymentDate(), "first payment is assumed made at creation")
	assert.Equal(t, 39.90, sub.FinalCost())
	assert.Equal(t, "promo", sub.Description())
}

func TestNewSubscription_InvalidInput(t *testing.T) {
	start := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		code         uint
		planCode     uint
		customerCode uint
		finalCost    float64
		description  string
		wantErr      string
	}{
		{"zero code", 0, 1, 1, 10, "desc", "subscription code is required"},
		{"zero plan code", 1, 0, 1, 10, "desc", "plan code is required"},
		{"zero customer code", 1, 1, 0, 10, "desc", "customer code is required"},
		{"zero cost", 1, 1, 1, 0, "desc", "final cost must be greater than zero"},
		{"negative cost", 1, 1, 1, -5, "desc", "final cost must be greater than zero"},
		{"blank description", 1, 1, 1, 10, "   ", "description is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub, err := NewSubscription(tt.code, tt.planCode, tt.customerCode, start, tt.finalCost, tt.description)
			assert.Error(t, err)
			assert.Nil(t, sub)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestIsActive_InsideWindow(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sub := newSubscriptionAt(t, start)

	assert.True(t, sub.IsActive(start))
	assert.True(t, sub.IsActive(start.AddDate(0, 0, 15)))
}

func TestIsActive_BeforeFidelityStart(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sub := newSubscriptionAt(t, start)

	assert.False(t, sub.IsActive(start.Add(-time.Second)))
}

func TestIsActive_FidelityEndBoundary(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)
	// Keep the payment fresh so only the fidelity boundary is exercised.
	sub := reconstructWithDates(t, start, end, end)

	assert.True(t, sub.IsActive(end), "boundary is inclusive")
	assert.Equal(t, StatusActive, sub.StatusAt(end))

	dayAfter := end.AddDate(0, 0, 1)
	assert.False(t, sub.IsActive(dayAfter))
	assert.Equal(t, StatusCancelled, sub.StatusAt(dayAfter))
}

func TestIsActive_GracePeriodBoundary(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)
	lastPayment := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	sub := reconstructWithDates(t, start, end, lastPayment)

	graceLimit := lastPayment.AddDate(0, 0, GracePeriodDays)
	assert.True(t, sub.IsActive(graceLimit), "exactly 30 days after payment is still active")

	assert.False(t, sub.IsActive(graceLimit.AddDate(0, 0, 1)), "31 days after payment has lapsed")
}

func TestStatusAt_Idempotent(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sub := newSubscriptionAt(t, start)
	now := start.AddDate(0, 0, 10)

	first := sub.StatusAt(now)
	second := sub.StatusAt(now)

	assert.Equal(t, first, second, "status is a pure function of dates and now")
	assert.Equal(t, StatusActive, first)
}

func TestStatusAt_CancelledLongAfterCreation(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sub := newSubscriptionAt(t, start)

	// 400 days out is past both the fidelity window and the grace period.
	assert.Equal(t, StatusCancelled, sub.StatusAt(start.AddDate(0, 0, 400)))
}

func TestRecordPayment_AdvancesDate(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sub := newSubscriptionAt(t, start)

	paid := start.AddDate(0, 1, 0)
	sub.RecordPayment(paid)

	assert.Equal(t, paid, sub.LastPaymentDate())
	assert.True(t, sub.IsActive(paid.AddDate(0, 0, 30)))
}

func TestRecordPayment_PermissiveBackdating(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	sub := newSubscriptionAt(t, start)

	// Backdated payments are accepted; ordering is the caller's concern.
	older := start.AddDate(0, -1, 0)
	sub.RecordPayment(older)

	assert.Equal(t, older, sub.LastPaymentDate())
}

func TestRenewFidelity_ReplacesAllThreeFields(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sub := newSubscriptionAt(t, start)

	newEnd := start.AddDate(2, 0, 0)
	err := sub.RenewFidelity(newEnd, 29.90, "renewed")

	require.NoError(t, err)
	assert.Equal(t, newEnd, sub.FidelityEnd())
	assert.Equal(t, 29.90, sub.FinalCost())
	assert.Equal(t, "renewed", sub.Description())
	assert.Equal(t, start, sub.FidelityStart(), "fidelity start is never touched")
	assert.Equal(t, start, sub.LastPaymentDate(), "last payment is never touched")
}

func TestRenewFidelity_InvalidCostMutatesNothing(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sub := newSubscriptionAt(t, start)
	originalEnd := sub.FidelityEnd()

	err := sub.RenewFidelity(start.AddDate(2, 0, 0), 0, "renewed")

	assert.Error(t, err)
	assert.Equal(t, originalEnd, sub.FidelityEnd())
	assert.Equal(t, 39.90, sub.FinalCost())
	assert.Equal(t, "promo", sub.Description())
}

func TestRenewFidelity_EndBeforeStartRejected(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sub := newSubscriptionAt(t, start)

	err := sub.RenewFidelity(start.AddDate(0, 0, -1), 10, "renewed")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cannot precede fidelity start")
}

func TestReconstructSubscription_ZeroCode(t *testing.T) {
	now := time.Now().UTC()
	sub, err := ReconstructSubscription(0, 1, 1, now, now, now, 10, "x")

	assert.Error(t, err)
	assert.Nil(t, sub)
}
