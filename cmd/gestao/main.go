package main

import (
	"os"

	"github.com/spf13/cobra"

	"gestao/internal/interfaces/cli/migrate"
	"gestao/internal/interfaces/cli/seed"
	"gestao/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gestao",
		Short: "Gestao - subscription management service",
		Long:  `Gestao manages plans, customers and subscriptions, deriving subscription status from fidelity and payment dates.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
