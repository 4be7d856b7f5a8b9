// pkg/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Source drivers the pipeline can load raw menus from.
const (
	DriverPostgres  = "postgres"
	DriverSnowflake = "snowflake"
)

// Config represents the application configuration
type Config struct {
	// Where raw menu records are loaded from. Cleaned records and
	// audit rows always persist to Postgres.
	SourceDriver string

	Snowflake *SnowflakeConfig
	Postgres  *PostgresConfig

	// Pipeline settings
	WorkerPoolSize int
	BatchSize      int
	DateLowerBound time.Time

	// Logging
	LogLevel  string
	LogFormat string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	lowerBound, err := time.Parse("2006-01-02", getEnv("DATE_LOWER_BOUND", "1840-01-01"))
	if err != nil {
		return nil, fmt.Errorf("invalid DATE_LOWER_BOUND: %w", err)
	}

	cfg := &Config{
		SourceDriver:   getEnv("SOURCE_DRIVER", DriverPostgres),
		WorkerPoolSize: getEnvAsInt("WORKER_POOL_SIZE", 0), // 0 means use runtime.NumCPU()
		BatchSize:      getEnvAsInt("BATCH_SIZE", 1000),
		DateLowerBound: lowerBound,
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
	}

	pgConfig, err := LoadPostgresConfig()
	if err != nil {
		return nil, errors.New("failed to load PostgreSQL configuration: " + err.Error())
	}
	cfg.Postgres = pgConfig

	// Snowflake is only needed when it is the raw source.
	if cfg.SourceDriver == DriverSnowflake {
		snowConfig, err := LoadSnowflakeConfig()
		if err != nil {
			return nil, errors.New("failed to load Snowflake configuration: " + err.Error())
		}
		cfg.Snowflake = snowConfig
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures all required configuration is present and valid
func (c *Config) Validate() error {
	switch c.SourceDriver {
	case DriverPostgres:
	case DriverSnowflake:
		if c.Snowflake == nil {
			return errors.New("snowflake configuration is required for the snowflake source")
		}
	default:
		return fmt.Errorf("unknown source driver %q", c.SourceDriver)
	}

	if c.Postgres == nil {
		return errors.New("postgreSQL configuration is required")
	}

	if c.BatchSize <= 0 {
		return errors.New("batch size must be positive")
	}

	if c.WorkerPoolSize < 0 {
		return errors.New("worker pool size cannot be negative")
	}

	return nil
}

// Helper functions for environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
