package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := setup(&buf, "production", "debug")

	logger.Info().Str("filename", "a.jpg").Msg("photo uploaded")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "photo uploaded", line["message"])
	assert.Equal(t, "a.jpg", line["filename"])
	assert.Equal(t, "photo-upload-api", line["service"])
}

func TestSetup_LevelFallback(t *testing.T) {
	var buf bytes.Buffer
	logger := setup(&buf, "production", "chatty")
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())

	logger.Debug().Msg("hidden")
	assert.Empty(t, buf.String())
}

func TestSetup_DevelopmentUsesConsole(t *testing.T) {
	var buf bytes.Buffer
	logger := setup(&buf, "development", "info")

	logger.Warn().Msg("careful")
	assert.Contains(t, buf.String(), "careful")
	assert.False(t, json.Valid(buf.Bytes()))
}
