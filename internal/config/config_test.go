package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("DEFAULT_TOTAL_LANDS", "")
	t.Setenv("SHUTDOWN_TIMEOUT", "")

	c, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.HTTPAddr != ":8080" {
		t.Errorf("unexpected addr: %s", c.HTTPAddr)
	}
	if c.LogLevel != slog.LevelInfo {
		t.Errorf("unexpected log level: %v", c.LogLevel)
	}
	if c.DefaultTotalLands != 17 {
		t.Errorf("unexpected default lands: %d", c.DefaultTotalLands)
	}
	if c.ShutdownTimeout != 10*time.Second {
		t.Errorf("unexpected shutdown timeout: %v", c.ShutdownTimeout)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", "127.0.0.1:9000")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("DEFAULT_TOTAL_LANDS", "40")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	c, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.HTTPAddr != "127.0.0.1:9000" || c.LogLevel != slog.LevelDebug || c.DefaultTotalLands != 40 || c.ShutdownTimeout != 3*time.Second {
		t.Errorf("unexpected config: %+v", c)
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"LOG_LEVEL":           "loud",
		"DEFAULT_TOTAL_LANDS": "-3",
		"SHUTDOWN_TIMEOUT":    "soon",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", "")
			t.Setenv("DEFAULT_TOTAL_LANDS", "")
			t.Setenv("SHUTDOWN_TIMEOUT", "")
			t.Setenv(key, val)

			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", key, val)
			}
		})
	}
}
