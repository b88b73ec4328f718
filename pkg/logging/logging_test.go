package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/JaimeStill/ministry-cms/pkg/logging"
)

func TestConfig_Finalize(t *testing.T) {
	t.Setenv("TEST_LOG_LEVEL", "DEBUG")
	t.Setenv("TEST_LOG_OUTPUT", "stderr")

	cfg := &logging.Config{}
	if err := cfg.Finalize(&logging.Env{Level: "TEST_LOG_LEVEL", Output: "TEST_LOG_OUTPUT"}); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Level != logging.LevelDebug {
		t.Errorf("Level = %q, want debug", cfg.Level)
	}
	if cfg.Format != logging.FormatText {
		t.Errorf("Format = %q, want text", cfg.Format)
	}
	if cfg.Output != logging.OutputStderr {
		t.Errorf("Output = %q, want stderr", cfg.Output)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name string
		cfg  logging.Config
	}{
		{"level", logging.Config{Level: "verbose"}},
		{"format", logging.Config{Format: "xml"}},
		{"output", logging.Config{Output: "file"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Finalize(nil); err == nil || !strings.Contains(err.Error(), tt.name) {
				t.Errorf("Finalize() error = %v, want %s error", err, tt.name)
			}
		})
	}
}

func TestConfig_Merge(t *testing.T) {
	cfg := logging.Config{Level: logging.LevelInfo, Format: logging.FormatText}
	cfg.Merge(&logging.Config{Format: logging.FormatJSON})

	if cfg.Level != logging.LevelInfo || cfg.Format != logging.FormatJSON {
		t.Errorf("Merge() = %+v", cfg)
	}
}

func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer
	cfg := &logging.Config{Level: logging.LevelWarn, Format: logging.FormatJSON}
	logger := logging.NewWriter(cfg, &buf)

	logger.Info("hidden")
	logger.Warn("shown", "system", "convert")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d records, want 1: %q", len(lines), buf.String())
	}

	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("record is not JSON: %v", err)
	}
	if rec["msg"] != "shown" || rec["system"] != "convert" {
		t.Errorf("record = %v", rec)
	}
}

func TestLevel_SlogLevel(t *testing.T) {
	tests := []struct {
		level logging.Level
		want  slog.Level
	}{
		{logging.LevelDebug, slog.LevelDebug},
		{logging.LevelWarn, slog.LevelWarn},
		{logging.LevelError, slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := tt.level.SlogLevel(); got != tt.want {
			t.Errorf("Level(%q).SlogLevel() = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestNewWriter_Source(t *testing.T) {
	t.Setenv("TEST_LOG_SOURCE", "true")

	cfg := &logging.Config{Format: logging.FormatJSON}
	if err := cfg.Finalize(&logging.Env{Source: "TEST_LOG_SOURCE"}); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	var buf bytes.Buffer
	logging.NewWriter(cfg, &buf).Info("with source")

	if !strings.Contains(buf.String(), `"source"`) {
		t.Errorf("record missing source: %s", buf.String())
	}
}
