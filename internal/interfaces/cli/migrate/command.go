package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"gestao/internal/infrastructure/config"
	"gestao/internal/infrastructure/database"
	"gestao/internal/infrastructure/migration"
	"gestao/internal/shared/logger"
)

var (
	env          string
	strategyName string
	name         string
	steps        int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and creating new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "default", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&strategyName, "strategy", "s", "golang-migrate", "Migration strategy (golang-migrate, goose)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations to bring the database schema up to date.`,
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and status of the database.`,
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create new migration files with the specified name.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	cmd.MarkFlagRequired("name")

	return cmd
}

func initEnv() (string, string, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return "", "", fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return "", "", fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return "", "", fmt.Errorf("failed to initialize database: %w", err)
	}

	scriptsPath, err := filepath.Abs("./internal/infrastructure/migration/scripts")
	if err != nil {
		return "", "", fmt.Errorf("failed to get scripts path: %w", err)
	}

	return scriptsPath, cfg.Database.Driver, nil
}

// newStrategy builds the selected migration strategy. Goose migrations live in
// their own subdirectory because the two tools use incompatible file layouts.
func newStrategy(scriptsPath, driver string) (migration.Strategy, error) {
	switch strategyName {
	case "golang-migrate":
		return migration.NewGolangMigrateStrategy(scriptsPath, driver), nil
	case "goose":
		return migration.NewGooseStrategy(filepath.Join(scriptsPath, "goose"), driver), nil
	default:
		return nil, fmt.Errorf("unknown migration strategy: %s", strategyName)
	}
}

func runUp(cmd *cobra.Command, args []string) error {
	scriptsPath, driver, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	strategy, err := newStrategy(scriptsPath, driver)
	if err != nil {
		return err
	}

	if err := strategy.Migrate(database.Get()); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	scriptsPath, driver, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	strategy, err := newStrategy(scriptsPath, driver)
	if err != nil {
		return err
	}

	switch s := strategy.(type) {
	case *migration.GolangMigrateStrategy:
		err = s.MigrateDown(database.Get(), steps)
	case *migration.GooseStrategy:
		err = s.MigrateDown(database.Get(), steps)
	default:
		return fmt.Errorf("down migration is not supported by strategy %s", strategy.GetName())
	}
	if err != nil {
		return fmt.Errorf("down migration failed: %w", err)
	}

	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	scriptsPath, driver, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	strategy, err := newStrategy(scriptsPath, driver)
	if err != nil {
		return err
	}

	switch s := strategy.(type) {
	case *migration.GolangMigrateStrategy:
		version, dirty, err := s.GetVersion(database.Get())
		if err != nil {
			return fmt.Errorf("failed to get migration version: %w", err)
		}

		fmt.Printf("\nMigration Status:\n")
		fmt.Printf("  Environment:     %s\n", env)
		fmt.Printf("  Current Version: %d\n", version)
		fmt.Printf("  Dirty:           %t\n", dirty)
	case *migration.GooseStrategy:
		if err := s.Status(database.Get()); err != nil {
			return fmt.Errorf("failed to get migration status: %w", err)
		}
	default:
		return fmt.Errorf("status check is not supported by strategy %s", strategy.GetName())
	}

	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	scriptsPath, err := filepath.Abs("./internal/infrastructure/migration/scripts")
	if err != nil {
		return fmt.Errorf("failed to get scripts path: %w", err)
	}

	generator := migration.NewGenerator(scriptsPath)
	if err := generator.CreateMigration(name); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}

	fmt.Printf("Migration '%s' created successfully\n", name)
	return nil
}
