package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mauv0809/movie-dashboard/internal/db"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace the Postgres movie tables with the configured CSV files",
	Long: "Reads data.movies_path and data.country_codes_path (local paths or http(s) URLs) " +
		"and copies them, in file order, into the tables created by migrate. " +
		"Existing rows are removed first. Run this before serving with data.source=postgres.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Database.URL == "" {
			return eris.New("seed: database.url is required")
		}
		ctx := cmd.Context()

		ds, err := loadCSV(ctx, cfg)
		if err != nil {
			return err
		}

		pool, err := db.Connect(ctx, cfg.Database.URL)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := db.NewRepository(pool).Replace(ctx, ds); err != nil {
			return err
		}
		zap.L().Info("tables seeded",
			zap.Int("movies", len(ds.Movies)),
			zap.Int("country_codes", len(ds.CountryCodes)),
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
