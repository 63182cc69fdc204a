package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "./tradebook.sqlite", cfg.Journal.DBPath)
}

func TestLoadFromFileYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tradebook.yaml")
	content := `
journal:
  db_path: /tmp/j.sqlite
  trades_file: /tmp/trades.csv
analytics:
  timezone: America/New_York
logging:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/j.sqlite", cfg.Journal.DBPath)
	assert.Equal(t, "America/New_York", cfg.Analytics.Timezone)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/New_York", loc.String())
}

func TestLoadFromFileJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tradebook.json")
	content := `{"journal": {"db_path": "/tmp/j.sqlite"}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/j.sqlite", cfg.Journal.DBPath)
}

func TestLoadFromFileMissing(t *testing.T) {
	t.Parallel()

	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidateRejectsBadFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing_db_path", func(c *Config) { c.Journal.DBPath = "" }},
		{"bad_timezone", func(c *Config) { c.Analytics.Timezone = "Mars/Olympus" }},
		{"bad_level", func(c *Config) { c.Logging.Level = "loud" }},
		{"bad_format", func(c *Config) { c.Logging.Format = "xml" }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.yaml")

	cfg := Default()
	cfg.Analytics.Timezone = "UTC"
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	loc, err := loaded.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestLocationDefaultsToLocal(t *testing.T) {
	t.Parallel()

	cfg := Default()
	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)
}
