package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, b []byte) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(b), &entry))
	return entry
}

// TestNewLogger_RoleField verifies that every log entry produced by a logger
// created with NewLogger contains the expected "role" field.
func TestNewLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("test-role", WithOutput(&buf))

	l.Info().Msg("hello")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "test-role", entry["role"])
	_, hasTime := entry["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

// TestNewLogger_CallerFieldName verifies that the caller field is named "func".
func TestNewLogger_CallerFieldName(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("caller-role", WithOutput(&buf))
	assert.Equal(t, "func", zerolog.CallerFieldName)

	l.Info().Msg("caller")

	entry := decodeEntry(t, buf.Bytes())
	assert.Contains(t, entry["func"], "TestNewLogger_CallerFieldName")
}

func TestNewLogger_Level(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantDebug bool
	}{
		{name: "default is info", level: "", wantDebug: false},
		{name: "debug", level: "debug", wantDebug: true},
		{name: "unknown keeps info", level: "chatty", wantDebug: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := NewLogger("lvl", WithOutput(&buf), WithLevel(tt.level))
			l.Debug().Msg("debug line")
			assert.Equal(t, tt.wantDebug, buf.Len() > 0)
		})
	}
}

func TestNewLogger_WithFile(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "agent.log")
	l := NewLogger("file-role", WithOutput(&buf), WithFile(path))

	l.Info().Msg("to both")

	assert.NotEmpty(t, buf.String())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to both")
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
}

func TestChild_AddsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("parent", WithOutput(&buf))

	child := parent.Child("dataset", "clients", "dangling")
	child.Info().Msg("child message")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "parent", entry["role"])
	assert.Equal(t, "clients", entry["dataset"])
	_, hasDangling := entry["dangling"]
	assert.False(t, hasDangling)
}

// TestFromContext_NotNil verifies that FromContext never returns nil, even
// when no logger has been explicitly attached to the context.
func TestFromContext_NotNil(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
}

// TestFromContext_ReturnsAttachedLogger verifies that FromContext returns the
// logger previously attached with WithContext.
func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("ctx", WithOutput(&buf)).Child("ctx-key", "ctx-value")
	ctx := l.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "ctx-value", entry["ctx-key"])
}
