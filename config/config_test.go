package config

import (
	"log/slog"
	"os"
	"testing"
)

func TestGetEnv(t *testing.T) {
	os.Setenv("TEST_VAR", "test_value")
	defer os.Unsetenv("TEST_VAR")

	result := getEnv("TEST_VAR", "default_value")
	if result != "test_value" {
		t.Errorf("getEnv() = %s, want %s", result, "test_value")
	}

	result = getEnv("NON_EXISTENT_VAR", "default_value")
	if result != "default_value" {
		t.Errorf("getEnv() = %s, want %s", result, "default_value")
	}

	os.Setenv("EMPTY_VAR", "")
	defer os.Unsetenv("EMPTY_VAR")

	result = getEnv("EMPTY_VAR", "default_value")
	if result != "default_value" {
		t.Errorf("getEnv() = %s, want %s", result, "default_value")
	}
}

func TestLoad(t *testing.T) {
	originalVars := map[string]string{
		"LOGLEVEL":   os.Getenv("LOGLEVEL"),
		"TMPDIR":     os.Getenv("TMPDIR"),
		"GCS_BUCKET": os.Getenv("GCS_BUCKET"),
	}

	defer func() {
		for key, value := range originalVars {
			if value == "" {
				os.Unsetenv(key)
			} else {
				os.Setenv(key, value)
			}
		}
	}()

	testVars := map[string]string{
		"LOGLEVEL":   "DEBUG",
		"TMPDIR":     "/scratch",
		"GCS_BUCKET": "test-bucket",
	}

	for key, value := range testVars {
		os.Setenv(key, value)
	}

	config, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if config.LogLevel != testVars["LOGLEVEL"] {
		t.Errorf("config.LogLevel = %s, want %s", config.LogLevel, testVars["LOGLEVEL"])
	}

	if config.TempDir != testVars["TMPDIR"] {
		t.Errorf("config.TempDir = %s, want %s", config.TempDir, testVars["TMPDIR"])
	}

	if config.Bucket != testVars["GCS_BUCKET"] {
		t.Errorf("config.Bucket = %s, want %s", config.Bucket, testVars["GCS_BUCKET"])
	}

	for key := range testVars {
		os.Unsetenv(key)
	}

	config, err = Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if config.LogLevel != "INFO" {
		t.Errorf("config.LogLevel = %s, want INFO", config.LogLevel)
	}

	if config.TempDir != os.TempDir() {
		t.Errorf("config.TempDir = %s, want %s", config.TempDir, os.TempDir())
	}

	if config.Bucket != "" {
		t.Errorf("config.Bucket = %s, want empty", config.Bucket)
	}
}

func TestSlogLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARNING", slog.LevelWarn},
		{"WARN", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, c := range cases {
		cfg := &Config{LogLevel: c.in}
		if got := cfg.SlogLevel(); got != c.want {
			t.Errorf("SlogLevel(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
