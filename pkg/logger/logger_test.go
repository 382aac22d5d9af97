package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected slog.Level
	}{
		{level: "debug", expected: slog.LevelDebug},
		{level: "DEBUG", expected: slog.LevelDebug},
		{level: " info ", expected: slog.LevelInfo},
		{level: "warn", expected: slog.LevelWarn},
		{level: "Warning", expected: slog.LevelWarn},
		{level: "error", expected: slog.LevelError},
		{level: "verbose", expected: slog.LevelInfo},
		{level: "", expected: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.level))
		})
	}
}

func TestNew(t *testing.T) {
	log := New("warn")
	require.NotNil(t, log)

	assert.True(t, log.Enabled(context.Background(), slog.LevelWarn))
	assert.False(t, log.Enabled(context.Background(), slog.LevelInfo))
}

func TestNewWithWriterWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "info")

	log.Debug("dropped")
	log.Info("Messenger message sent", SendFields("messenger", "123", "text", "mid.1"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "Messenger message sent", entry["msg"])

	send := entry["send"].(map[string]any)
	assert.Equal(t, "messenger", send["channel"])
	assert.Equal(t, "mid.1", send["message_id"])
}
