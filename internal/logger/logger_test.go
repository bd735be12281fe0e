package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dice-delve/internal/errors"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARNING", slog.LevelWarn},
		{"WARN", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"invalid", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLogLevel(tt.input))
		})
	}
}

func TestNewWritesTextToConsole(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Level = "INFO"

	l, closer, err := New(cfg, &buf)
	require.NoError(t, err)
	defer closer.Close()

	l.Info("Delve started", "delve_id", "delve_1")
	l.Debug("Phase entered")

	out := buf.String()
	assert.Contains(t, out, "Delve started")
	assert.Contains(t, out, "delve_id=delve_1")
	assert.NotContains(t, out, "Phase entered")
}

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.ConsoleFormat = FormatJSON

	l, _, err := New(cfg, &buf)
	require.NoError(t, err)

	l.Warn("Failed to publish event", "event", "delve.ended", "attempt", 2)

	out := buf.String()
	assert.Contains(t, out, `"msg":"Failed to publish event"`)
	assert.Contains(t, out, `"event":"delve.ended"`)
	assert.Contains(t, out, `"attempt":2`)
}

func TestNewWritesRotatedFile(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.FileEnabled = true
	cfg.FilePath = filepath.Join(t.TempDir(), "delve.log")

	l, closer, err := New(cfg, &buf)
	require.NoError(t, err)

	l.Error("Game ended", "score", 12)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(cfg.FilePath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"score":12`)
	assert.Contains(t, buf.String(), "score=12")
}

func TestNewWithoutOutputsDiscards(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ConsoleEnabled = false

	l, closer, err := New(cfg, nil)
	require.NoError(t, err)
	assert.NoError(t, closer.Close())
	assert.NotPanics(t, func() { l.Error("nowhere") })
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ConsoleFormat = "xml"
	cfg.FileEnabled = true
	cfg.FilePath = ""

	_, _, err := New(cfg, &bytes.Buffer{})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	meta := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	assert.Contains(t, meta, "ConsoleFormat")
	assert.Contains(t, meta, "FilePath")
}

func TestMultiHandler(t *testing.T) {
	var info, errs bytes.Buffer

	h := newMultiHandler(
		slog.NewTextHandler(&info, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewTextHandler(&errs, &slog.HandlerOptions{Level: slog.LevelError}),
	)
	l := slog.New(h).With("game_id", "game_1")

	l.Info("Hero promoted")
	l.Error("Delve failed")

	assert.Contains(t, info.String(), "Hero promoted")
	assert.Contains(t, info.String(), "Delve failed")
	assert.NotContains(t, errs.String(), "Hero promoted")
	assert.Contains(t, errs.String(), "Delve failed")
	assert.Contains(t, errs.String(), "game_id=game_1")
}
