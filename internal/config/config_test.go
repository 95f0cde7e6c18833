package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// chdirTemp moves into an empty directory so no config.yaml or .env is found.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, SourceCSV, cfg.Data.Source)
	assert.Equal(t, "data/imbd-movies.csv", cfg.Data.MoviesPath)
	assert.Equal(t, "data/iso3-country-codes.csv", cfg.Data.CountryCodesPath)
	assert.Equal(t, 60, cfg.Data.FetchTimeoutSecs)
	assert.Empty(t, cfg.Database.URL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromYAML(t *testing.T) {
	dir := chdirTemp(t)

	yaml := `
server:
  port: 9090
data:
  source: postgres
database:
  url: postgres://localhost/movies
log:
  level: debug
  format: console
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, SourcePostgres, cfg.Data.Source)
	assert.Equal(t, "postgres://localhost/movies", cfg.Database.URL)
	assert.Equal(t, "console", cfg.Log.Format)
	// Defaults still apply for unset values
	assert.Equal(t, "data/imbd-movies.csv", cfg.Data.MoviesPath)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := chdirTemp(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("log:\n  level: debug\n"), 0644))
	t.Setenv("MOVIEDASH_LOG_LEVEL", "warn")
	t.Setenv("MOVIEDASH_DATA_MOVIES_PATH", "/srv/movies.csv")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/srv/movies.csv", cfg.Data.MoviesPath)
}

func TestLoadPlainEnvNames(t *testing.T) {
	chdirTemp(t)

	t.Setenv("PORT", "3000")
	t.Setenv("DATABASE_URL", "postgres://db/movies")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "postgres://db/movies", cfg.Database.URL)
}

func TestLoadPrefixedEnvWinsOverPlain(t *testing.T) {
	chdirTemp(t)

	t.Setenv("PORT", "3000")
	t.Setenv("MOVIEDASH_SERVER_PORT", "4000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 4000, cfg.Server.Port)
}

func TestLoadDotEnv(t *testing.T) {
	dir := chdirTemp(t)

	// t.Setenv registers cleanup for a variable godotenv will set.
	t.Setenv("MOVIEDASH_DATA_SOURCE", "")
	require.NoError(t, os.Unsetenv("MOVIEDASH_DATA_SOURCE"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("MOVIEDASH_DATA_SOURCE=postgres\n"), 0644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, SourcePostgres, cfg.Data.Source)
}

func TestLoadMalformedYAML(t *testing.T) {
	dir := chdirTemp(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server: [\n"), 0644))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: read file")
}

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: 8080},
		Data: DataConfig{
			Source:           SourceCSV,
			MoviesPath:       "movies.csv",
			CountryCodesPath: "codes.csv",
		},
		Log: LogConfig{Level: "info", Format: "json"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid csv", func(*Config) {}, ""},
		{"valid postgres", func(c *Config) {
			c.Data.Source = SourcePostgres
			c.Database.URL = "postgres://localhost/movies"
		}, ""},
		{"unknown source", func(c *Config) { c.Data.Source = "sqlite" }, "data.source must be csv or postgres"},
		{"postgres without url", func(c *Config) { c.Data.Source = SourcePostgres }, "database.url is required"},
		{"missing movies path", func(c *Config) { c.Data.MoviesPath = "" }, "data.movies_path is required"},
		{"negative fetch timeout", func(c *Config) { c.Data.FetchTimeoutSecs = -1 }, "data.fetch_timeout_secs"},
		{"zero port", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = -1
	cfg.Data.Source = SourcePostgres

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.port")
	assert.Contains(t, err.Error(), "database.url")
}

func TestInitLoggerConsole(t *testing.T) {
	err := InitLogger(LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerJSON(t *testing.T) {
	err := InitLogger(LogConfig{Level: "info", Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerInvalidLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "invalid", Format: "json"})
	assert.Error(t, err)
}
