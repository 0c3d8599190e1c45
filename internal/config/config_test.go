package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/samdwyer/guesstheflag/internal/quiz"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Seed != 0 {
		t.Errorf("Seed = %d, want 0", cfg.Seed)
	}
	if cfg.EndRule != quiz.EndAfterRounds {
		t.Errorf("EndRule = %v, want rounds", cfg.EndRule)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled should default to false")
	}
	if cfg.Telemetry.Headers() != nil {
		t.Error("Headers() should be nil without an API key")
	}
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("GUESSTHEFLAG_SEED", "42")
	t.Setenv("GUESSTHEFLAG_END_RULE", "correct")
	t.Setenv("GUESSTHEFLAG_SHOW_LABELS", "true")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("HONEYCOMB_API_KEY", "secret")

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Seed)
	}
	if cfg.EndRule != quiz.EndAfterCorrect {
		t.Errorf("EndRule = %v, want correct", cfg.EndRule)
	}
	if !cfg.ShowLabels {
		t.Error("ShowLabels = false, want true")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}

	headers := cfg.Telemetry.Headers()
	if headers["x-honeycomb-team"] != "secret" || headers["x-honeycomb-dataset"] != "guesstheflag" {
		t.Errorf("Headers() = %v", headers)
	}
}

func TestParseRejectsBadEndRule(t *testing.T) {
	t.Setenv("GUESSTHEFLAG_END_RULE", "sometimes")
	if _, err := Parse(); err == nil {
		t.Error("Parse() should reject an unknown end rule")
	}
}

func TestLoadEnvFile(t *testing.T) {
	// Unset after the test so later tests see defaults
	t.Setenv("GUESSTHEFLAG_SEED", "")
	os.Unsetenv("GUESSTHEFLAG_SEED")

	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("GUESSTHEFLAG_SEED=7\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Seed != 7 {
		t.Errorf("Seed = %d, want 7", cfg.Seed)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Errorf("Load() with a missing file should not fail, got %v", err)
	}
}
