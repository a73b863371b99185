package plan

import (
	"fmt"
	"strings"
	"time"
)

// Plan represents a service plan. The monthly cost and its effective date
// always change together: the effective date records when the cost last
// changed.
type Plan struct {
	code          uint
	name          string
	monthlyCost   float64
	effectiveDate time.Time
	description   string
}

func NewPlan(code uint, name string, monthlyCost float64, effectiveDate time.Time, description string) (*Plan, error) {
	if code == 0 {
		return nil, fmt.Errorf("plan code is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("plan name is required")
	}
	if monthlyCost <= 0 {
		return nil, fmt.Errorf("monthly cost must be greater than zero")
	}

	return &Plan{
		code:          code,
		name:          name,
		monthlyCost:   monthlyCost,
		effectiveDate: effectiveDate,
		description:   description,
	}, nil
}

// ReconstructPlan rebuilds a plan from persistence.
func ReconstructPlan(code uint, name string, monthlyCost float64, effectiveDate time.Time, description string) (*Plan, error) {
	if code == 0 {
		return nil, fmt.Errorf("plan code cannot be zero")
	}
	return &Plan{
		code:          code,
		name:          name,
		monthlyCost:   monthlyCost,
		effectiveDate: effectiveDate,
		description:   description,
	}, nil
}

func (p *Plan) Code() uint {
	return p.code
}

func (p *Plan) Name() string {
	return p.name
}

func (p *Plan) MonthlyCost() float64 {
	return p.monthlyCost
}

func (p *Plan) EffectiveDate() time.Time {
	return p.effectiveDate
}

func (p *Plan) Description() string {
	return p.description
}

// UpdateMonthlyCost changes the monthly cost and stamps the effective date
// with the moment of the change.
func (p *Plan) UpdateMonthlyCost(newCost float64, now time.Time) error {
	if newCost <= 0 {
		return fmt.Errorf("monthly cost must be greater than zero")
	}
	p.monthlyCost = newCost
	p.effectiveDate = now
	return nil
}
