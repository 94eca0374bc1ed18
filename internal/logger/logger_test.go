package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

// TestNewLogger_Fields verifies that every entry carries role, timestamp and
// caller function fields.
func TestNewLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("catalog-test", "debug")
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "catalog-test", entry["role"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

func TestNewLogger_Level(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  zerolog.Level
	}{
		{name: "explicit warn", level: "warn", want: zerolog.WarnLevel},
		{name: "explicit info", level: "info", want: zerolog.InfoLevel},
		{name: "empty falls back to debug", level: "", want: zerolog.DebugLevel},
		{name: "unknown falls back to debug", level: "loud", want: zerolog.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			NewLogger("level-role", tt.level)
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}

	zerolog.SetGlobalLevel(zerolog.DebugLevel)
}

func TestNewClientLogger_NotNil(t *testing.T) {
	l := NewClientLogger("cli", "warn")
	require.NotNil(t, l)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

// TestGetChildLogger_InheritsFields verifies that the child logger is a new
// instance that keeps the parent's context fields.
func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("inherited-role", "debug")
	parent.Logger = parent.Output(&buf)

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)

	child.Info().Msg("child message")

	assert.Equal(t, "inherited-role", decodeEntry(t, &buf)["role"])
}

func TestFromContext(t *testing.T) {
	t.Run("no logger attached", func(t *testing.T) {
		require.NotNil(t, FromContext(context.Background()))
	})

	t.Run("attached logger is returned", func(t *testing.T) {
		var buf bytes.Buffer
		zl := zerolog.New(&buf).With().Str("ctx-key", "ctx-value").Logger()
		ctx := zl.WithContext(context.Background())

		FromContext(ctx).Info().Msg("from context")

		assert.Equal(t, "ctx-value", decodeEntry(t, &buf)["ctx-key"])
	})
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "abc").Logger()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	FromRequest(req).Info().Msg("from request")

	assert.Equal(t, "abc", decodeEntry(t, &buf)["trace_id"])
}
