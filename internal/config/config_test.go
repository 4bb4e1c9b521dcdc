package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/humeraxkhan/SENSOR-NAME-EXTRACTOR/internal/domain"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 4, cfg.Extraction.Workers)
	assert.Equal(t, 256, cfg.Extraction.ChunkSize)
	assert.Equal(t, "xlsx", cfg.Export.Format)
	assert.Equal(t, DefaultOutputPath, cfg.Export.OutputPath)
	assert.Equal(t, "Sensor Queries", cfg.Export.SheetName)
	assert.Equal(t, "0.0.0.0:8090", cfg.Addr())
	assert.Equal(t, int64(10<<20), cfg.Server.MaxUploadBytes)
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "xlsx", cfg.Export.Format)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := writeConfig(t, `
extraction:
  workers: 8
  chunk_size: 64
export:
  format: csv
  output_path: out/queries.csv
server:
  port: 9000
  request_timeout: 5s
observability:
  log_level: debug
  log_format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Extraction.Workers)
	assert.Equal(t, 64, cfg.Extraction.ChunkSize)
	assert.Equal(t, "csv", cfg.Export.Format)
	assert.Equal(t, "out/queries.csv", cfg.Export.OutputPath)
	assert.Equal(t, "Sensor Queries", cfg.Export.SheetName, "unset keys keep defaults")
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "debug", cfg.Observability.LogLevel)
	assert.Equal(t, "json", cfg.Observability.LogFormat)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SENSOR_WORKERS", "2")
	t.Setenv("SENSOR_CHUNK_SIZE", "10")
	t.Setenv("SENSOR_EXPORT_FORMAT", "JSON")
	t.Setenv("SENSOR_OUTPUT_PATH", "queries.json")
	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("SERVER_PORT", "7000")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Extraction.Workers)
	assert.Equal(t, 10, cfg.Extraction.ChunkSize)
	assert.Equal(t, "json", cfg.Export.Format)
	assert.Equal(t, "queries.json", cfg.Export.OutputPath)
	assert.Equal(t, "127.0.0.1:7000", cfg.Addr())
	assert.Equal(t, "warn", cfg.Observability.LogLevel)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config file")
	assert.True(t, domain.IsType(err, domain.ErrorTypeConfig))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeConfig(t, "extraction: [not, a, map]"))
	assert.ErrorContains(t, err, "parse config file")

	_, err = Load(writeConfig(t, "export:\n  format: pdf\n"))
	assert.ErrorContains(t, err, "invalid export format")
	assert.True(t, domain.IsType(err, domain.ErrorTypeConfig))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"zero workers", func(c *Config) { c.Extraction.Workers = 0 }, "workers"},
		{"too many workers", func(c *Config) { c.Extraction.Workers = 65 }, "workers"},
		{"zero chunk", func(c *Config) { c.Extraction.ChunkSize = 0 }, "chunk_size"},
		{"empty sheet", func(c *Config) { c.Export.SheetName = " " }, "sheet_name"},
		{"long sheet", func(c *Config) { c.Export.SheetName = "This sheet name is far too long for Excel" }, "31"},
		{"bad port", func(c *Config) { c.Server.Port = 70000 }, "port"},
		{"bad upload limit", func(c *Config) { c.Server.MaxUploadBytes = 0 }, "max_upload_bytes"},
		{"bad log format", func(c *Config) { c.Observability.LogFormat = "xml" }, "log format"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tc.errMsg)
		})
	}
}
