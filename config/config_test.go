package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("JWT_EXPIRATION", "")
	t.Setenv("REDIS_ADDR", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiration)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, "/media/", cfg.MediaURL)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/blog.db")
	t.Setenv("JWT_EXPIRATION", "90m")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "u")
	t.Setenv("DB_PASSWORD", "p")
	t.Setenv("DB_NAME", "blog")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, 90*time.Minute, cfg.JWTExpiration)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, "file:/tmp/blog.db?_foreign_keys=on&_busy_timeout=5000", SQLiteDSN(cfg.SQLitePath))
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=blog sslmode=disable", cfg.PostgresDSN())
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("JWT_EXPIRATION", "tomorrow")

	_, err := Load()
	assert.Error(t, err)
}

func TestInitDBRejectsUnknownDriver(t *testing.T) {
	_, err := InitDB(&Config{DBDriver: "oracle"})
	assert.Error(t, err)
}
