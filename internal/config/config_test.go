package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/jmercado/uicguessr/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		Addr:              ":8080",
		DBPath:            "test.db",
		LogLevel:          "INFO",
		TimePerQuestion:   60,
		HintDelaySeconds:  15,
		SessionTTLMinutes: 30,
		SweepIntervalSecs: 60,
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_EmptyAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Addr = ""
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ADDR cannot be empty")
}

func TestValidate_EmptyDBPath(t *testing.T) {
	cfg := validConfig()
	cfg.DBPath = ""
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PATH cannot be empty")
}

func TestValidate_NonPositiveDurations(t *testing.T) {
	cfg := validConfig()
	cfg.TimePerQuestion = 0
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.HintDelaySeconds = -1
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.SessionTTLMinutes = 0
	assert.Error(t, cfg.Validate())
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ADDR", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("TIME_PER_QUESTION", "")

	cfg := config.Load()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 60, cfg.TimePerQuestion)
	assert.Equal(t, 15, cfg.HintDelaySeconds)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("TIME_PER_QUESTION", "30")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg := config.Load()
	assert.Equal(t, 30, cfg.TimePerQuestion)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("TIME_PER_QUESTION", "not-a-number")

	cfg := config.Load()
	assert.Equal(t, 60, cfg.TimePerQuestion)
}
