package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("CACHE_TTL_SECONDS", "")
	t.Setenv("CACHE_DRIVER", "")

	cfg := Load()

	assert.Equal(t, "3000", cfg.App.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "notes.db", cfg.Database.Connection)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "none", cfg.Cache.Driver)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.Equal(t, "NOTE_EVENTS", cfg.Events.Topic)
	assert.False(t, cfg.Events.NatsEnabled)
	assert.False(t, cfg.IsProduction())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("GO_ENV", "production")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_CONNECTION_STRING", "host=db user=notes dbname=notes")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("CACHE_DRIVER", "redis")
	t.Setenv("CACHE_TTL_SECONDS", "5")
	t.Setenv("NATS_ENABLED", "true")

	cfg := Load()

	assert.Equal(t, "8080", cfg.App.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "host=db user=notes dbname=notes", cfg.Database.Connection)
	assert.False(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "redis", cfg.Cache.Driver)
	assert.Equal(t, 5*time.Second, cfg.Cache.TTL)
	assert.True(t, cfg.Events.NatsEnabled)
}

func TestGetEnvAsIntFallsBackOnGarbage(t *testing.T) {
	t.Setenv("BODY_LIMIT_BYTES", "lots")
	assert.Equal(t, 42, getEnvAsInt("BODY_LIMIT_BYTES", 42))
}
