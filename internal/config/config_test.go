package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.ServerPort)
	assert.Equal(t, ":4000", cfg.Addr())
	assert.Equal(t, StoreMongo, cfg.StoreDriver)
	assert.Equal(t, "dev-secret", cfg.JWTSecret)
	assert.Equal(t, time.Hour, cfg.JWTExpiry)
	assert.Equal(t, "reservations_db", cfg.Mongo.Database)
	assert.Equal(t, "reservations", cfg.Mongo.Collection)
	assert.Equal(t, "Admin", cfg.Demo.EmployeeUser)
	assert.Equal(t, "Customer", cfg.Demo.GuestUser)
	assert.Empty(t, cfg.LoginLimit.RedisURL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("JWT_EXP", "15m")
	t.Setenv("MONGO_DB_NAME", "other")
	t.Setenv("LOGIN_RATE_LIMIT", "3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, StoreMemory, cfg.StoreDriver)
	assert.Equal(t, 15*time.Minute, cfg.JWTExpiry)
	assert.Equal(t, "other", cfg.Mongo.Database)
	assert.Equal(t, 3, cfg.LoginLimit.Attempts)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")

	_, err := Load()
	assert.ErrorContains(t, err, "STORE_DRIVER")
}

func TestLoadRejectsNonPositiveExpiry(t *testing.T) {
	t.Setenv("JWT_EXP", "-1s")

	_, err := Load()
	assert.ErrorContains(t, err, "JWT_EXP")
}
