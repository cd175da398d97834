package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"pso2news.dark-nova.me/internal/config"
)

func TestDefaults(t *testing.T) {
	cfg := config.New(logging.NewNopLogger())

	assert.Equal(t, "America/Los_Angeles", cfg.ScheduleTimezone)
	assert.Equal(t, 30*time.Minute, cfg.RefreshInterval)
	assert.Equal(t, 5*time.Second, cfg.FetchCooldown)
	assert.Equal(t, 30*time.Minute, cfg.ReminderWindow)
	assert.Equal(t, 50, cfg.FeedSize)
	assert.Equal(t, "", cfg.AMQPURL)
	assert.Equal(t, time.Hour, cfg.AccessExpiry)
	assert.Equal(t, 7*24*time.Hour, cfg.RefreshExpiry)
}

func TestDurations(t *testing.T) {
	t.Setenv("REFRESH_INTERVAL", "1d")
	t.Setenv("FETCH_COOLDOWN", "soon")

	cfg := config.New(logging.NewNopLogger())

	assert.Equal(t, 24*time.Hour, cfg.RefreshInterval)
	assert.Equal(t, 5*time.Second, cfg.FetchCooldown)
}
