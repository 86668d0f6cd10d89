package config

import (
	"fmt"
	"os"
	"strconv"
)

// Backend names accepted for DATA_BACKEND
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// Config holds the service configuration, read from the environment
type Config struct {
	// HTTP server
	Port     string
	APIToken string

	// Persistence
	DataBackend string
	DBConnStr   string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
}

// Load reads the configuration from environment variables, applying
// defaults suitable for local development.
func Load() *Config {
	return &Config{
		Port:     getEnv("PORT", "8080"),
		APIToken: getEnv("API_TOKEN", "dev-token"),

		DataBackend: getEnv("DATA_BACKEND", BackendMemory),
		DBConnStr:   getEnv("DB_CONN_STR", ""),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", "postgres"),
		DBName:      getEnv("DB_NAME", "bankapi"),
	}
}

// Validate returns an error describing every invalid setting
func (c *Config) Validate() error {
	if port, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("invalid port %q: must be a number", c.Port)
	} else if port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", port)
	}

	if c.DataBackend != BackendMemory && c.DataBackend != BackendPostgres {
		return fmt.Errorf("invalid data backend %q: must be %q or %q", c.DataBackend, BackendMemory, BackendPostgres)
	}

	return nil
}

// DatabaseConnStr returns the explicit DB_CONN_STR when set, otherwise a
// connection string built from the individual DB_* settings.
func (c *Config) DatabaseConnStr() string {
	if c.DBConnStr != "" {
		return c.DBConnStr
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
