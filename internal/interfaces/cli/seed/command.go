// Package seed implements the command that loads sample data.
package seed

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tracklite/tracklite/internal/infrastructure/config"
	"github.com/tracklite/tracklite/internal/infrastructure/database"
	"github.com/tracklite/tracklite/internal/infrastructure/migration"
	"github.com/tracklite/tracklite/internal/infrastructure/seed"
	"github.com/tracklite/tracklite/internal/shared/logger"
)

var (
	env      string
	baseOnly bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load sample data",
		Long:  `Wipe the database and load the embedded sample users, labels, and tickets.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&baseOnly, "base-only", false, "Seed only users and labels, no tickets")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if env == "production" {
		return fmt.Errorf("refusing to seed a production database")
	}

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

	// The schema must exist before fixtures can load.
	manager := migration.NewManager(env)
	if err := manager.Migrate(database.Get(), migration.AutoMigrateModels()...); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if err := seed.NewSeeder(database.Get()).Run(baseOnly); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	logger.Info("seeding completed", "base_only", baseOnly)
	return nil
}
