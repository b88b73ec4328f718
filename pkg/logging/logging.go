// Package logging builds the service's slog logger from configuration.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

type (
	Level  string
	Format string
	Output string
)

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"

	FormatText Format = "text"
	FormatJSON Format = "json"

	OutputStdout Output = "stdout"
	OutputStderr Output = "stderr"
)

// New writes to the stream named by cfg.Output.
func New(cfg *Config) *slog.Logger {
	var w io.Writer = os.Stdout
	if cfg.Output == OutputStderr {
		w = os.Stderr
	}
	return NewWriter(cfg, w)
}

func NewWriter(cfg *Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     cfg.Level.SlogLevel(),
		AddSource: cfg.Source,
	}

	if cfg.Format == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// SlogLevel falls back to slog.LevelInfo for anything Validate rejects.
func (l Level) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func (l Level) Validate() error {
	switch l {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
		return nil
	}
	return invalid("level", string(l), LevelDebug, LevelInfo, LevelWarn, LevelError)
}

func (f Format) Validate() error {
	switch f {
	case FormatText, FormatJSON:
		return nil
	}
	return invalid("format", string(f), FormatText, FormatJSON)
}

func (o Output) Validate() error {
	switch o {
	case OutputStdout, OutputStderr:
		return nil
	}
	return invalid("output", string(o), OutputStdout, OutputStderr)
}

func invalid[T ~string](field, got string, allowed ...T) error {
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = string(a)
	}
	return fmt.Errorf("invalid log %s %q (want %s)", field, got, strings.Join(names, " | "))
}
