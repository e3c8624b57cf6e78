package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew_SilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")

	var buf bytes.Buffer
	logger, err := New("", &buf)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	logger.Error("should not appear")
	if buf.Len() != 0 {
		t.Fatalf("expected silent logger, got %q", buf.String())
	}
}

func TestNew_LevelFromEnv(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "warn")

	var buf bytes.Buffer
	logger, err := New("", &buf)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("visible")
	_ = logger.Sync()

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "visible") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestNew_UnknownLevel(t *testing.T) {
	if _, err := New("verbose", nil); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
