package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mauv0809/movie-dashboard/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the movie tables in Postgres",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Database.URL == "" {
			return eris.New("migrate: database.url is required")
		}

		zap.L().Info("running migrations")
		if err := db.RunMigrations(cfg.Database.URL); err != nil {
			return err
		}
		zap.L().Info("migrations complete")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
