package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 14*24*time.Hour, cfg.Entitlement.TrialLength)
	assert.Equal(t, 5, cfg.Schedule.StartHour)
	assert.Equal(t, 18, cfg.Schedule.VisibleHours)
	assert.False(t, cfg.Redis.Enabled)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("TRIAL_LENGTH", "72h")
	t.Setenv("SCHEDULE_START_HOUR", "6")
	t.Setenv("SCHEDULE_ROW_HEIGHT", "not-a-number")

	cfg := Load()

	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "cache", cfg.Redis.Host)
	assert.Equal(t, 72*time.Hour, cfg.Entitlement.TrialLength)
	assert.Equal(t, 6, cfg.Schedule.StartHour)
	assert.Equal(t, 64, cfg.Schedule.RowHeight)
}

func TestDSN(t *testing.T) {
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "stavby")

	cfg := Load()
	assert.Contains(t, cfg.DSN(), "host=db")
	assert.Contains(t, cfg.DSN(), "dbname=stavby")

	t.Setenv("DATABASE_URL", "postgres://app@db/stavby")
	assert.Equal(t, "postgres://app@db/stavby", Load().DSN())
}
