package seed

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"gestao/internal/infrastructure/config"
	"gestao/internal/infrastructure/database"
	"gestao/internal/infrastructure/migration"
	"gestao/internal/infrastructure/persistence/seeds"
	"gestao/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the database with sample data",
		Long:  `Load the YAML fixture into an empty database. Does nothing when data is already present.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "default", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	manager := migration.NewManager(env, cfg.Database.Driver)
	if err := manager.Migrate(database.Get(), migration.AutoMigrateModels()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	seeder := seeds.NewSeeder(database.Get(), cfg.Seed.FixturePath)
	if err := seeder.Run(context.Background()); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	return nil
}
