package logging_test

import (
	"bytes"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlinks/internal/config"
	"shortlinks/internal/logging"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"WARN", zerolog.WarnLevel},
		{" error ", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, logging.ParseLevel(tt.in))
		})
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&config.LogConfig{Level: "info", Format: "json"}, &buf)

	logger.Debug().Msg("hidden")
	logger.Info().Str("short_code", "abc123").Msg("redirect")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "redirect", entry["message"])
	assert.Equal(t, "abc123", entry["short_code"])
	assert.Contains(t, entry, "time")
}

func TestNewWithWriter_Console(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&config.LogConfig{Level: "debug", Format: "console"}, &buf)

	logger.Debug().Msg("visible")

	assert.Contains(t, buf.String(), "visible")
	assert.NotContains(t, buf.String(), `"message"`)
}
