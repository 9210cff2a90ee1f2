package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("JWT_EXPIRE", "")

	cfg := Load()

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.JWTExpiration)
	assert.Equal(t, int64(50), cfg.Notification.FeedSize)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("JWT_EXPIRE", "2h")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")

	cfg := Load()

	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, 3307, cfg.Database.Port)
	assert.Equal(t, 2*time.Hour, cfg.Auth.JWTExpiration)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
}

func TestGetDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{User: "u", Password: "p", Host: "db", Port: 3306, Name: "roadside"}}
	assert.Equal(t, "u:p@tcp(db:3306)/roadside?parseTime=true&loc=UTC", cfg.GetDSN())
}

func TestLoadEnvFile(t *testing.T) {
	require.NoError(t, LoadEnvFile(""))
	require.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ROADSIDE_TEST_KEY=from-file\n"), 0o600))
	t.Setenv("ROADSIDE_TEST_KEY", "")
	os.Unsetenv("ROADSIDE_TEST_KEY")

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "from-file", os.Getenv("ROADSIDE_TEST_KEY"))
}
