package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamLogger_RoutesByLevel(t *testing.T) {
	var stdout, stderr bytes.Buffer
	log := NewStreamLogger(&stdout, &stderr, DebugLevel, true)

	log.Info("Controller", "file loaded", map[string]interface{}{"name": "notes.txt"})
	log.Error("Store", errors.New("disk full"), nil)

	var info map[string]interface{}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &info))
	assert.Equal(t, "info", info["level"])
	assert.Equal(t, "Controller", info["component"])
	assert.Equal(t, "notes.txt", info["name"])

	var failure map[string]interface{}
	require.NoError(t, json.Unmarshal(stderr.Bytes(), &failure))
	assert.Equal(t, "error", failure["level"])
	assert.Equal(t, "disk full", failure["error"])
}

func TestStreamLogger_ConsoleText(t *testing.T) {
	var stdout, stderr bytes.Buffer
	log := NewStreamLogger(&stdout, &stderr, InfoLevel, false)

	log.Debug("View", "hidden", nil)
	log.Warning("Dock", "unknown panel", map[string]interface{}{"panel": "foo"})

	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "unknown panel")
	assert.Contains(t, stderr.String(), "panel=foo")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
		ok   bool
	}{
		{"debug", DebugLevel, true},
		{" WARN ", WarnLevel, true},
		{"warning", WarnLevel, true},
		{"error", ErrorLevel, true},
		{"verbose", InfoLevel, false},
	}
	for _, tt := range tests {
		got, ok := ParseLevel(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
}
