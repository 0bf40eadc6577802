package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "file:progression.db", cfg.DBPath)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, 3, cfg.SubmitRetryLimit)
	assert.Equal(t, 10, cfg.LeaderboardSize)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("DB_PATH", "file:test.db")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("SUBMIT_RETRY_LIMIT", "7")
	t.Setenv("LEADERBOARD_SIZE", "25")

	cfg := config.Load()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "file:test.db", cfg.DBPath)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, 7, cfg.SubmitRetryLimit)
	assert.Equal(t, 25, cfg.LeaderboardSize)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("SUBMIT_RETRY_LIMIT", "not-a-number")

	cfg := config.Load()

	assert.Equal(t, 3, cfg.SubmitRetryLimit)
}
