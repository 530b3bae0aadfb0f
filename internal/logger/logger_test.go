package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/hance08/concil/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(config.LogConfig{Level: "warn", Format: "text"}, &buf)

	l.Info("hidden")
	l.Warn("shown", "id", "TX-001")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "TX-001")
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(config.LogConfig{Level: "debug", Format: "json", Prefix: "concil"}, &buf)

	l.Debug("transaction search scheduled", "id", "TX-002")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "transaction search scheduled", entry["msg"])
	assert.Equal(t, "TX-002", entry["id"])
	assert.Contains(t, entry["prefix"], "concil")
}

func TestNew_UnknownLevelFallsBackToWarn(t *testing.T) {
	var buf bytes.Buffer
	l := New(config.LogConfig{Level: "loud"}, &buf)

	l.Info("hidden")
	assert.Empty(t, buf.String())

	l.Error("boom")
	assert.Contains(t, buf.String(), "boom")
}
