package main

import (
	"context"
	root "domainfinder"
	"domainfinder/internal/config"
	"domainfinder/pkg/logger"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCommand constructs the 'migrate' subcommand that brings the domain
// tables and the river queue tables to their latest versions.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			migrations, err := fs.Sub(root.Migrations, "migrations")
			if err != nil {
				return fmt.Errorf("could not open embedded migrations: %w", err)
			}

			versions, err := strg.Migrate(ctx, migrations)
			if err != nil {
				logger.Error(ctx, "could not migrate database", zap.Error(err))

				return fmt.Errorf("could not migrate database: %w", err)
			}
			logger.Info(ctx, "database migrated",
				zap.Int64("schemaVersion", versions.Schema),
				zap.Int("riverVersion", versions.River))

			return nil
		},
	}

	return cmd
}
