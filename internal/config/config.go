package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr              string
	DBPath            string
	LogLevel          string
	TimePerQuestion   int // seconds on the classic mode countdown
	HintDelaySeconds  int // delay before the one-shot auto hint
	SessionTTLMinutes int // idle time before an abandoned session is swept
	SweepIntervalSecs int // how often the session registry sweeps
}

// Load reads configuration from a .env file (if present) and environment
// variables, applying defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:              envOr("ADDR", ":8080"),
		DBPath:            envOr("DB_PATH", "file:uicguessr.db"),
		LogLevel:          envOr("LOG_LEVEL", "INFO"),
		TimePerQuestion:   envIntOr("TIME_PER_QUESTION", 60),
		HintDelaySeconds:  envIntOr("HINT_DELAY_SECONDS", 15),
		SessionTTLMinutes: envIntOr("SESSION_TTL_MINUTES", 30),
		SweepIntervalSecs: envIntOr("SWEEP_INTERVAL_SECONDS", 60),
	}
}

// Validate checks that the configuration is internally consistent.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("ADDR cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	if c.TimePerQuestion <= 0 {
		return fmt.Errorf("TIME_PER_QUESTION must be positive, got %d", c.TimePerQuestion)
	}
	if c.HintDelaySeconds <= 0 {
		return fmt.Errorf("HINT_DELAY_SECONDS must be positive, got %d", c.HintDelaySeconds)
	}
	if c.SessionTTLMinutes <= 0 {
		return fmt.Errorf("SESSION_TTL_MINUTES must be positive, got %d", c.SessionTTLMinutes)
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
