// Package config provides configuration loading for the sensor extractor.
// Supports YAML files, .env files, and environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/humeraxkhan/SENSOR-NAME-EXTRACTOR/internal/domain"
)

// DefaultOutputPath is the file name the exported workbook gets unless overridden.
const DefaultOutputPath = "sensor_queries_cleaned_tagged.xlsx"

// Config holds all configuration for the extractor.
type Config struct {
	Extraction    ExtractionConfig    `yaml:"extraction"`
	Export        ExportConfig        `yaml:"export"`
	Server        ServerConfig        `yaml:"server"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// ExtractionConfig controls how a transcript is split across workers.
type ExtractionConfig struct {
	Workers   int `yaml:"workers"`
	ChunkSize int `yaml:"chunk_size"` // lines per work item
}

// ExportConfig holds output artifact settings.
type ExportConfig struct {
	Format     string `yaml:"format"` // xlsx, csv or json
	OutputPath string `yaml:"output_path"`
	SheetName  string `yaml:"sheet_name"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host             string        `yaml:"host"`
	Port             int           `yaml:"port"`
	ReadTimeout      time.Duration `yaml:"read_timeout"`
	WriteTimeout     time.Duration `yaml:"write_timeout"`
	RequestTimeout   time.Duration `yaml:"request_timeout"`
	GracefulShutdown time.Duration `yaml:"graceful_shutdown"`
	MaxUploadBytes   int64         `yaml:"max_upload_bytes"`
}

// ObservabilityConfig holds logging settings.
type ObservabilityConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// Load reads configuration from a YAML file and applies environment overrides.
// An empty path skips the file and uses defaults plus env.
func Load(path string) (*Config, error) {
	// Missing .env files are fine.
	_ = godotenv.Load()

	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, domain.ConfigError("read config file", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, domain.ConfigError("parse config file", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, domain.ConfigError("validate config", err)
	}

	return cfg, nil
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Extraction: ExtractionConfig{
			Workers:   4,
			ChunkSize: 256,
		},
		Export: ExportConfig{
			Format:     "xlsx",
			OutputPath: DefaultOutputPath,
			SheetName:  "Sensor Queries",
		},
		Server: ServerConfig{
			Host:             "0.0.0.0",
			Port:             8090,
			ReadTimeout:      30 * time.Second,
			WriteTimeout:     30 * time.Second,
			RequestTimeout:   30 * time.Second,
			GracefulShutdown: 10 * time.Second,
			MaxUploadBytes:   10 << 20,
		},
		Observability: ObservabilityConfig{
			LogLevel:  "info",
			LogFormat: "console",
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Extraction.Workers < 1 || c.Extraction.Workers > 64 {
		return fmt.Errorf("workers must be between 1 and 64, got %d", c.Extraction.Workers)
	}

	if c.Extraction.ChunkSize < 1 {
		return fmt.Errorf("chunk_size must be positive, got %d", c.Extraction.ChunkSize)
	}

	switch c.Export.Format {
	case "xlsx", "csv", "json":
	default:
		return fmt.Errorf("invalid export format: %s", c.Export.Format)
	}

	if strings.TrimSpace(c.Export.SheetName) == "" {
		return fmt.Errorf("sheet_name is required")
	}

	// Excel rejects longer sheet names.
	if len([]rune(c.Export.SheetName)) > 31 {
		return fmt.Errorf("sheet_name must be at most 31 characters")
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be positive")
	}

	if c.Observability.LogFormat != "console" && c.Observability.LogFormat != "json" {
		return fmt.Errorf("invalid log format: %s", c.Observability.LogFormat)
	}

	return nil
}

// Addr returns the host:port the HTTP server listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// applyEnvOverrides applies environment variable overrides to config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SENSOR_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Extraction.Workers = n
		}
	}

	if v := os.Getenv("SENSOR_CHUNK_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Extraction.ChunkSize = n
		}
	}

	if v := os.Getenv("SENSOR_EXPORT_FORMAT"); v != "" {
		cfg.Export.Format = strings.ToLower(v)
	}

	if v := os.Getenv("SENSOR_OUTPUT_PATH"); v != "" {
		cfg.Export.OutputPath = v
	}

	if v := os.Getenv("SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}

	if v := os.Getenv("SERVER_PORT"); v != "" {
		var port int
		if _, err := fmt.Sscanf(v, "%d", &port); err == nil {
			cfg.Server.Port = port
		}
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Observability.LogLevel = v
	}

	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Observability.LogFormat = v
	}
}
