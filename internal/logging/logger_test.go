package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestFromContext_AddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "portal", "debug")

	ctx := WithRequestID(context.Background(), "rid-123")
	l.FromContext(ctx).LogError("login", errors.New("boom"))

	entry := decode(t, &buf)
	assert.Equal(t, "rid-123", entry["request_id"])
	assert.Equal(t, "login", entry["operation"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "portal", entry["service"])
	assert.Equal(t, "error", entry["level"])
}

func TestFromContext_UnknownRequestID(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "portal", "info")

	l.FromContext(context.Background()).LogInfof("startup", "listening on %s", ":8080")

	entry := decode(t, &buf)
	assert.Equal(t, "unknown", entry["request_id"])
	assert.Equal(t, "listening on :8080", entry["message"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "portal", "warn")

	l.LogInfof("noise", "dropped")
	assert.Empty(t, buf.String())

	l.LogWarnf("signal", "kept")
	assert.NotEmpty(t, buf.String())
}

func TestInvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "portal", "loud")

	l.Debug().Msg("dropped")
	assert.Empty(t, buf.String())

	l.Info().Msg("kept")
	assert.NotEmpty(t, buf.String())
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	l.LogError("op", errors.New("x"))
}
