package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("DATABASE_URL", "file:test.db")
	t.Setenv("DATABASE_CLIENT", "")
	t.Setenv("HOST", "")
	t.Setenv("PORT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.ServerHost)
	assert.Equal(t, "1337", cfg.ServerPort)
	assert.Equal(t, ClientPostgres, cfg.DatabaseClient)
	assert.Equal(t, "0.0.0.0:1337", cfg.Addr())
}

func TestLoadMissingDatabaseURL(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestValidateDatabaseClient(t *testing.T) {
	cfg := &Config{
		ServerHost:     "127.0.0.1",
		ServerPort:     "3000",
		DatabaseURL:    "file:test.db",
		DatabaseClient: "mysql",
	}

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_CLIENT")

	cfg.DatabaseClient = ClientSQLite
	assert.NoError(t, Validate(cfg))
}

func TestValidatePort(t *testing.T) {
	cfg := &Config{
		ServerHost:     "127.0.0.1",
		ServerPort:     "http",
		DatabaseURL:    "file:test.db",
		DatabaseClient: ClientSQLite,
	}

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORT")
}
