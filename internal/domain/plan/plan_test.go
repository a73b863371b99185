package plan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlan_ValidInput(t *testing.T) {
	effective := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	p, err := NewPlan(1, "Basic", 49.90, effective, "entry plan")

	require.NoError(t, err)
	assert.Equal(t, uint(1), p.Code())
	assert.Equal(t, "Basic", p.Name())
	assert.Equal(t, 49.90, p.MonthlyCost())
	assert.Equal(t, effective, p.EffectiveDate())
	assert.Equal(t, "entry plan", p.Description())
}

func TestNewPlan_InvalidInput(t *testing.T) {
	effective := time.Now().UTC()

	tests := []struct {
		name        string
		code        uint
		planName    string
		monthlyCost float64
	}{
		{"zero code", 0, "Basic", 10},
		{"blank name", 1, "  ", 10},
		{"zero cost", 1, "Basic", 0},
		{"negative cost", 1, "Basic", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPlan(tt.code, tt.planName, tt.monthlyCost, effective, "desc")
			assert.Error(t, err)
			assert.Nil(t, p)
		})
	}
}

func TestUpdateMonthlyCost_StampsEffectiveDate(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p, err := NewPlan(1, "Basic", 49.90, created, "entry plan")
	require.NoError(t, err)

	changed := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)
	require.NoError(t, p.UpdateMonthlyCost(59.90, changed))

	assert.Equal(t, 59.90, p.MonthlyCost())
	assert.Equal(t, changed, p.EffectiveDate(), "effective date moves with the cost change")
}

func TestUpdateMonthlyCost_RejectsNonPositive(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p, err := NewPlan(1, "Basic", 49.90, created, "entry plan")
	require.NoError(t, err)

	assert.Error(t, p.UpdateMonthlyCost(0, time.Now().UTC()))
	assert.Error(t, p.UpdateMonthlyCost(-10, time.Now().UTC()))
	assert.Equal(t, 49.90, p.MonthlyCost())
	assert.Equal(t, created, p.EffectiveDate())
}
