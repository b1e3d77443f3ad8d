package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordplay/assets"
	"github.com/robalobadob/wordplay/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and exit",
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := database.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	if err := database.Migrate(cmd.Context(), db, assets.Migrations()); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	log.Info().Str("db", cfg.DBPath).Msg("migrations applied")
	return nil
}
