package config

import (
	"path/filepath"
	"testing"
	"time"
)

// TestLoadConfig_FullMatrixCoversAllFields ensures that every configuration field
// can be overridden via YAML and that the nested thresholds section is respected.
func TestLoadConfig_FullMatrixCoversAllFields(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("testdata", "full-config.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	assertEqual(t, "LogsDir", cfg.LogsDir, "/srv/sessions/logs")
	assertEqual(t, "LogLevel", cfg.LogLevel, "trace")
	assertEqual(t, "Format", cfg.Format, "json")
	assertEqual(t, "NoColor", cfg.NoColor, true)

	t.Run("Thresholds", func(t *testing.T) {
		assertEqual(t, "ErrorBurstRate", cfg.Thresholds.ErrorBurstRate, 1.5)
		assertEqual(t, "LongGap", cfg.Thresholds.LongGap, 2*time.Minute+30*time.Second)
		assertEqual(t, "AgentActivityMin", cfg.Thresholds.AgentActivityMin, 4)
	})

	// Overridden values must still validate
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func assertEqual[T comparable](t *testing.T, field string, got, want T) {
	t.Helper()
	if got != want {
		t.Fatalf("%s = %v, want %v", field, got, want)
	}
}
