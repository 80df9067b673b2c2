package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadYAMLOverDefaults(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, "config.yaml", `
logging:
  level: debug
practicum:
  poll_interval: 30s
heartbeat:
  enabled: true
  schedule: "0 9 * * *"
`)

	cfg, err := NewManager(path).Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("level = %q, want debug", cfg.Logging.Level)
	}
	// Omitted sections keep defaults.
	if !cfg.Logging.Console {
		t.Fatal("console should default to true")
	}
	if cfg.Practicum.RequestTimeout != "10s" {
		t.Fatalf("request_timeout = %q, want default 10s", cfg.Practicum.RequestTimeout)
	}
	if cfg.Practicum.PollInterval != "30s" {
		t.Fatalf("poll_interval = %q, want 30s", cfg.Practicum.PollInterval)
	}
	if cfg.Heartbeat == nil || !cfg.Heartbeat.Enabled || cfg.Heartbeat.Schedule != "0 9 * * *" {
		t.Fatalf("heartbeat = %+v", cfg.Heartbeat)
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, "config.yaml", "practicum:\n  pol_interval: 30s\n")
	if _, err := NewManager(path).Load(); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	t.Parallel()
	m := NewManager(filepath.Join(t.TempDir(), "absent.yaml"))
	cfg, err := m.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Practicum.PollInterval != "10m" {
		t.Fatalf("poll_interval = %q, want default 10m", cfg.Practicum.PollInterval)
	}
	if m.Get() != cfg {
		t.Fatal("defaults should be committed")
	}
}

func TestParseDurationField(t *testing.T) {
	t.Parallel()
	d, err := ParseDurationField("x", " 90s ")
	if err != nil || d != 90*time.Second {
		t.Fatalf("got %v, %v", d, err)
	}
	if _, err := ParseDurationField("x", "-1s"); err == nil {
		t.Fatal("expected error for negative duration")
	}
	if _, err := ParseDurationField("x", "ten minutes"); err == nil {
		t.Fatal("expected error for junk duration")
	}

	d, err = ParseDurationOrDefault("x", "", 10*time.Minute)
	if err != nil || d != 10*time.Minute {
		t.Fatalf("got %v, %v", d, err)
	}
}
