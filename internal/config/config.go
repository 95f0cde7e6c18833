// Package config loads dashboard settings from config.yaml, .env and the
// environment, and initialises the global zap logger.
package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Data sources accepted by data.source.
const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
)

// Config holds the full application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server" mapstructure:"server"`
	Data     DataConfig     `yaml:"data" mapstructure:"data"`
	Database DatabaseConfig `yaml:"database" mapstructure:"database"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// DataConfig selects where the movie and country tables come from.
type DataConfig struct {
	Source           string `yaml:"source" mapstructure:"source"`
	MoviesPath       string `yaml:"movies_path" mapstructure:"movies_path"`
	CountryCodesPath string `yaml:"country_codes_path" mapstructure:"country_codes_path"`
	// FetchTimeoutSecs bounds the download of http(s) paths.
	FetchTimeoutSecs int `yaml:"fetch_timeout_secs" mapstructure:"fetch_timeout_secs"`
}

type DatabaseConfig struct {
	URL string `yaml:"url" mapstructure:"url"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment. A .env file in the
// working directory is applied to the process environment first.
func Load() (*Config, error) {
	// Missing .env is the normal case outside local dev.
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("MOVIEDASH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Plain names used by container platforms.
	if err := v.BindEnv("server.port", "MOVIEDASH_SERVER_PORT", "PORT"); err != nil {
		return nil, eris.Wrap(err, "config: bind server.port")
	}
	if err := v.BindEnv("database.url", "MOVIEDASH_DATABASE_URL", "DATABASE_URL"); err != nil {
		return nil, eris.Wrap(err, "config: bind database.url")
	}

	v.SetDefault("server.port", 8080)
	v.SetDefault("data.source", SourceCSV)
	v.SetDefault("data.movies_path", "data/imbd-movies.csv")
	v.SetDefault("data.country_codes_path", "data/iso3-country-codes.csv")
	v.SetDefault("data.fetch_timeout_secs", 60)
	v.SetDefault("database.url", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks the settings the serve and migrate commands depend on.
func (c *Config) Validate() error {
	var problems []string

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		problems = append(problems, "server.port must be between 1 and 65535")
	}
	switch c.Data.Source {
	case SourceCSV:
		if c.Data.MoviesPath == "" {
			problems = append(problems, "data.movies_path is required for csv source")
		}
		if c.Data.CountryCodesPath == "" {
			problems = append(problems, "data.country_codes_path is required for csv source")
		}
		if c.Data.FetchTimeoutSecs < 0 {
			problems = append(problems, "data.fetch_timeout_secs must not be negative")
		}
	case SourcePostgres:
		if c.Database.URL == "" {
			problems = append(problems, "database.url is required for postgres source")
		}
	default:
		problems = append(problems, "data.source must be csv or postgres, got "+c.Data.Source)
	}

	if len(problems) > 0 {
		return eris.Errorf("config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
