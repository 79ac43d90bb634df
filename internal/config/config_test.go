package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "5091")
	t.Setenv("STORE_DRIVER", "file")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 5091, cfg.Port)
	assert.Equal(t, "0.0.0.0:5091", cfg.ListenAddr())
	assert.Equal(t, "Europe/Podgorica", cfg.Timezone)
	assert.Equal(t, StoreFile, cfg.StoreDriver)
	assert.Equal(t, "data.json", cfg.DataFile)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "office-hours:overrides", cfg.Redis.Key)
	assert.Equal(t, 30*time.Minute, cfg.Postgres.ConnMaxLifetime)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8088")
	t.Setenv("STORE_DRIVER", " Redis ")
	t.Setenv("REDIS_ADDR", "cache:6380")
	t.Setenv("REDIS_DB", "3")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:8088", cfg.ListenAddr())
	assert.Equal(t, StoreRedis, cfg.StoreDriver)
	assert.Equal(t, "cache:6380", cfg.Redis.Addr)
	assert.Equal(t, 3, cfg.Redis.DB)
}

func TestLoadPostgresRequiresDatabaseURL(t *testing.T) {
	t.Setenv("PORT", "5091")
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "")

	_, err := Load()

	assert.EqualError(t, err, "missing required environment variable: DATABASE_URL")
}

func TestLoadUnknownDriver(t *testing.T) {
	t.Setenv("PORT", "5091")
	t.Setenv("STORE_DRIVER", "sqlite")

	_, err := Load()

	assert.EqualError(t, err, "unknown STORE_DRIVER: sqlite")
}

func TestLoadInvalidPort(t *testing.T) {
	t.Setenv("PORT", "broj")

	_, err := Load()

	assert.Error(t, err)
}
