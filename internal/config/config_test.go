package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATA_BACKEND", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, BackendMemory, cfg.DataBackend)
	require.NoError(t, cfg.Validate())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATA_BACKEND", "postgres")
	t.Setenv("DB_NAME", "bankapi_test")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, BackendPostgres, cfg.DataBackend)
	assert.Contains(t, cfg.DatabaseConnStr(), "dbname=bankapi_test")
	require.NoError(t, cfg.Validate())
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{
			name:   "non-numeric port",
			mutate: func(c *Config) { c.Port = "http" },
			errMsg: "invalid port",
		},
		{
			name:   "out of range port",
			mutate: func(c *Config) { c.Port = "70000" },
			errMsg: "invalid port",
		},
		{
			name:   "unknown backend",
			mutate: func(c *Config) { c.DataBackend = "sqlite" },
			errMsg: "invalid data backend",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load()
			tt.mutate(cfg)

			err := cfg.Validate()
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}

func TestDatabaseConnStr_ExplicitWins(t *testing.T) {
	cfg := Load()
	cfg.DBConnStr = "host=db port=5432 user=app password=secret dbname=bank sslmode=disable"

	assert.Equal(t, cfg.DBConnStr, cfg.DatabaseConnStr())
}
