package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mauv0809/movie-dashboard/internal/config"
	"github.com/mauv0809/movie-dashboard/internal/dashboard"
	"github.com/mauv0809/movie-dashboard/internal/dataset"
	"github.com/mauv0809/movie-dashboard/internal/db"
	"github.com/mauv0809/movie-dashboard/internal/handlers"
	"github.com/mauv0809/movie-dashboard/internal/ingest"
)

const shutdownTimeout = 10 * time.Second

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Load the movie tables and serve the dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		ds, err := loadDataset(ctx, cfg)
		if err != nil {
			return err
		}
		rows, cols := ds.Shape()
		zap.L().Info("dataset loaded",
			zap.String("source", cfg.Data.Source),
			zap.Int("rows", rows),
			zap.Int("columns", cols),
			zap.Int("financed", len(ds.Financed)),
			zap.Int("country_codes", len(ds.CountryCodes)),
		)

		e := newServer(dashboard.New(ds))

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := e.Shutdown(shutdownCtx); err != nil {
				zap.L().Error("server shutdown", zap.Error(err))
			}
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := e.Start(fmt.Sprintf(":%d", port)); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

// loadDataset reads the movie and country tables from the configured source.
// CSV paths may be local files or http(s) URLs.
func loadDataset(ctx context.Context, c *config.Config) (*dataset.Dataset, error) {
	switch c.Data.Source {
	case config.SourcePostgres:
		pool, err := db.Connect(ctx, c.Database.URL)
		if err != nil {
			return nil, err
		}
		defer pool.Close()
		return db.NewRepository(pool).Load(ctx)
	case config.SourceCSV:
		return loadCSV(ctx, c)
	default:
		return nil, eris.Errorf("unknown data source %q", c.Data.Source)
	}
}

// loadCSV reads the CSV tables named by data.movies_path and
// data.country_codes_path.
func loadCSV(ctx context.Context, c *config.Config) (*dataset.Dataset, error) {
	client := ingest.NewClient(ingest.Options{
		Timeout: time.Duration(c.Data.FetchTimeoutSecs) * time.Second,
	})
	return dataset.Load(ctx, client.Open, c.Data.MoviesPath, c.Data.CountryCodesPath)
}

// newServer wires middleware and routes around a prepared dashboard.
func newServer(d *dashboard.Dashboard) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			}
			if v.Error == nil {
				zap.L().Info("request", fields...)
			} else {
				zap.L().Error("request", append(fields, zap.Error(v.Error))...)
			}
			return nil
		},
	}))
	e.Use(middleware.Recover())

	handlers.New(d).Register(e)
	return e
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.Flags().AddFlagSet(serveCmd.Flags())
	rootCmd.AddCommand(serveCmd)
}
