package database

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearDBEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	} {
		os.Unsetenv(key)
	}
}

func TestLoadConfigFromEnvDefaults(t *testing.T) {
	clearDBEnv(t)
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := LoadConfigFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 5432, cfg.Port)
	assert.Equal(t, "scribeflow", cfg.User)
	assert.Equal(t, "scribeflow", cfg.Database)
	assert.Equal(t, "disable", cfg.SSLMode)
	assert.Equal(t, 10, cfg.MaxOpenConns)
	assert.Equal(t, 5, cfg.MaxIdleConns)
}

func TestLoadConfigFromEnvOverrides(t *testing.T) {
	clearDBEnv(t)
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "svc")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "prod")
	t.Setenv("DB_SSLMODE", "require")

	cfg, err := LoadConfigFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Host)
	assert.Equal(t, 5433, cfg.Port)
	assert.Equal(t, "svc", cfg.User)
	assert.Equal(t, "prod", cfg.Database)
	assert.Equal(t, "require", cfg.SSLMode)
}

func TestLoadConfigFromEnvInvalidPort(t *testing.T) {
	clearDBEnv(t)
	t.Setenv("DB_PORT", "not-a-port")

	_, err := LoadConfigFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid DB_PORT")
}

func TestConfigDSN(t *testing.T) {
	cfg := Config{
		Host:     "localhost",
		Port:     5432,
		User:     "svc",
		Password: "secret",
		Database: "scribeflow",
		SSLMode:  "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=svc password=secret dbname=scribeflow sslmode=disable",
		cfg.DSN())
}

func TestHasEmbeddedMigrations(t *testing.T) {
	ok, err := hasEmbeddedMigrations()
	require.NoError(t, err)
	assert.True(t, ok, "migration files must be embedded into the binary")
}
