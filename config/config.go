package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel string
	TempDir  string
	Bucket   string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug(".env file not found, using environment variables only")
	}

	config := &Config{
		LogLevel: getEnv("LOGLEVEL", "INFO"),
		TempDir:  getEnv("TMPDIR", os.TempDir()),
		Bucket:   getEnv("GCS_BUCKET", ""),
	}

	return config, nil
}

// SlogLevel maps the LOGLEVEL value onto a slog level. Unknown values
// fall back to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
