package seeds

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"gestao/internal/domain/customer"
	"gestao/internal/domain/plan"
	"gestao/internal/domain/subscription"
	"gestao/internal/infrastructure/persistence/models"
	"gestao/internal/infrastructure/repository"
	"gestao/internal/shared/biztime"
	"gestao/internal/shared/logger"
)

// Fixture is the YAML shape of the seed data file.
type Fixture struct {
	Customers []struct {
		Code  uint   `yaml:"code"`
		Name  string `yaml:"name"`
		Email string `yaml:"email"`
	} `yaml:"customers"`
	Plans []struct {
		Code          uint    `yaml:"code"`
		Name          string  `yaml:"name"`
		MonthlyCost   float64 `yaml:"monthly_cost"`
		EffectiveDate string  `yaml:"effective_date"`
		Description   string  `yaml:"description"`
	} `yaml:"plans"`
	Subscriptions []struct {
		Code         uint    `yaml:"code"`
		PlanCode     uint    `yaml:"plan_code"`
		CustomerCode uint    `yaml:"customer_code"`
		StartDate    string  `yaml:"start_date"`
		FinalCost    float64 `yaml:"final_cost"`
		Description  string  `yaml:"description"`
	} `yaml:"subscriptions"`
}

// Seeder loads the YAML fixture and populates an empty database through the
// domain constructors, so seed data passes the same validation as live data.
type Seeder struct {
	db          *gorm.DB
	fixturePath string
	logger      logger.Interface
}

func NewSeeder(db *gorm.DB, fixturePath string) *Seeder {
	return &Seeder{
		db:          db,
		fixturePath: fixturePath,
		logger:      logger.NewLogger().With("component", "seeder"),
	}
}

// Run seeds the database. A non-empty customers table means the database was
// already seeded; the run becomes a no-op.
func (s *Seeder) Run(ctx context.Context) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.CustomerModel{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check existing data: %w", err)
	}
	if count > 0 {
		s.logger.Infow("database already seeded, skipping", "customers", count)
		return nil
	}

	fixture, err := s.loadFixture()
	if err != nil {
		return err
	}

	customerRepo := repository.NewCustomerRepository(s.db, s.logger)
	planRepo := repository.NewPlanRepository(s.db, s.logger)
	subscriptionRepo := repository.NewSubscriptionRepository(s.db, s.logger)

	for _, c := range fixture.Customers {
		entity, err := customer.NewCustomer(c.Code, c.Name, c.Email)
		if err != nil {
			return fmt.Errorf("invalid customer fixture %d: %w", c.Code, err)
		}
		if err := customerRepo.Save(ctx, entity); err != nil {
			return fmt.Errorf("failed to seed customer %d: %w", c.Code, err)
		}
	}

	for _, p := range fixture.Plans {
		effectiveDate, err := biztime.ParseDate(p.EffectiveDate)
		if err != nil {
			return fmt.Errorf("invalid effective date in plan fixture %d: %w", p.Code, err)
		}
		entity, err := plan.NewPlan(p.Code, p.Name, p.MonthlyCost, effectiveDate, p.Description)
		if err != nil {
			return fmt.Errorf("invalid plan fixture %d: %w", p.Code, err)
		}
		if err := planRepo.Save(ctx, entity); err != nil {
			return fmt.Errorf("failed to seed plan %d: %w", p.Code, err)
		}
	}

	for _, sub := range fixture.Subscriptions {
		startDate, err := biztime.ParseDate(sub.StartDate)
		if err != nil {
			return fmt.Errorf("invalid start date in subscription fixture %d: %w", sub.Code, err)
		}
		entity, err := subscription.NewSubscription(sub.Code, sub.PlanCode, sub.CustomerCode, startDate, sub.FinalCost, sub.Description)
		if err != nil {
			return fmt.Errorf("invalid subscription fixture %d: %w", sub.Code, err)
		}
		if err := subscriptionRepo.Save(ctx, entity); err != nil {
			return fmt.Errorf("failed to seed subscription %d: %w", sub.Code, err)
		}
	}

	s.logger.Infow("database seeded successfully",
		"customers", len(fixture.Customers),
		"plans", len(fixture.Plans),
		"subscriptions", len(fixture.Subscriptions))

	return nil
}

func (s *Seeder) loadFixture() (*Fixture, error) {
	data, err := os.ReadFile(s.fixturePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture file %s: %w", s.fixturePath, err)
	}

	var fixture Fixture
	if err := yaml.Unmarshal(data, &fixture); err != nil {
		return nil, fmt.Errorf("failed to parse fixture file %s: %w", s.fixturePath, err)
	}

	return &fixture, nil
}
