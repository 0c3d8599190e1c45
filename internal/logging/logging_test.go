package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewEmptyPathDisablesLogging(t *testing.T) {
	logger, closer, err := New("", "debug")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer closer.Close()

	if logger.GetLevel() != zerolog.Disabled {
		t.Errorf("level = %v, want disabled", logger.GetLevel())
	}
}

func TestNewRejectsBadLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	if _, _, err := New(path, "chatty"); err == nil {
		t.Error("New() should reject an unknown level")
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	logger, closer, err := New(path, "info")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Debug().Msg("hidden")
	logger.Info().Str("country", "France").Msg("round started")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(content)
	if strings.Contains(out, "hidden") {
		t.Error("debug message written at info level")
	}
	if !strings.Contains(out, `"country":"France"`) {
		t.Errorf("log output missing field: %s", out)
	}
}

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, zerolog.DebugLevel)
	logger.Debug().Int("score", 3).Msg("tap")

	if !strings.Contains(buf.String(), `"score":3`) {
		t.Errorf("output = %s", buf.String())
	}
	if !strings.Contains(buf.String(), `"time"`) {
		t.Errorf("output missing timestamp: %s", buf.String())
	}
}
