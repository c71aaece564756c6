package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverMemory   = "memory"
)

type Config struct {
	DB       DBConfig
	Export   ExportConfig
	LogLevel string
}

type DBConfig struct {
	Driver   string
	Path     string // sqlite file
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

type ExportConfig struct {
	Output string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	driver := strings.ToLower(getEnv("DB_DRIVER", DriverSQLite))
	defPort := "5432"
	if driver == DriverMySQL {
		defPort = "3306"
	}
	port, err := strconv.Atoi(getEnv("DB_PORT", defPort))
	if err != nil {
		return nil, fmt.Errorf("DB_PORT: %w", err)
	}

	cfg := &Config{
		DB: DBConfig{
			Driver:   driver,
			Path:     getEnv("DB_PATH", "menu_database.db"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     port,
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "menu"),
		},
		Export: ExportConfig{
			Output: getEnv("QR_OUTPUT", "menu_qr.png"),
		},
		LogLevel: strings.ToLower(getEnv("LOG_LEVEL", "info")),
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the driver and log level.
func (c *Config) Validate() error {
	switch c.DB.Driver {
	case DriverSQLite, DriverPostgres, DriverMySQL, DriverMemory:
	default:
		return fmt.Errorf("unknown DB_DRIVER %q (must be sqlite, postgres, mysql or memory)", c.DB.Driver)
	}
	if c.DB.Driver == DriverSQLite && c.DB.Path == "" {
		return fmt.Errorf("DB_PATH is required for sqlite")
	}
	if c.Export.Output == "" {
		return fmt.Errorf("QR_OUTPUT is required")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error", "disabled":
	default:
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
