package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{
		"PGN_OUTPUT_DIR", "PGN_MESSAGES_DIR", "PGN_DEFAULT_EVENT", "PGN_DEFAULT_SITE",
		"PGN_DEFAULT_ROUND", "PGN_DEFAULT_WHITE", "PGN_DEFAULT_BLACK",
		"PGN_LEGAL_PREVIEW_LIMIT", "PGN_SHOW_STATUS",
	} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, "", cfg.MessagesDir)
	assert.Equal(t, "Casual Game", cfg.DefaultEvent)
	assert.Equal(t, "Local", cfg.DefaultSite)
	assert.Equal(t, "1", cfg.DefaultRound)
	assert.Equal(t, "Player 1", cfg.DefaultWhite)
	assert.Equal(t, "Player 2", cfg.DefaultBlack)
	assert.Equal(t, 0, cfg.LegalPreviewLimit)
	assert.True(t, cfg.ShowStatus)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PGN_OUTPUT_DIR", " games ")
	t.Setenv("PGN_MESSAGES_DIR", "/etc/pgn/messages")
	t.Setenv("PGN_DEFAULT_EVENT", "Club Night")
	t.Setenv("PGN_DEFAULT_WHITE", "Alice")
	t.Setenv("PGN_LEGAL_PREVIEW_LIMIT", "12")
	t.Setenv("PGN_SHOW_STATUS", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "games", cfg.OutputDir)
	assert.Equal(t, "/etc/pgn/messages", cfg.MessagesDir)
	assert.Equal(t, "Club Night", cfg.DefaultEvent)
	assert.Equal(t, "Alice", cfg.DefaultWhite)
	assert.Equal(t, 12, cfg.LegalPreviewLimit)
	assert.False(t, cfg.ShowStatus)
}

func TestLoad_BadValuesKeepDefaults(t *testing.T) {
	t.Setenv("PGN_LEGAL_PREVIEW_LIMIT", "-3")
	t.Setenv("PGN_SHOW_STATUS", "maybe")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.LegalPreviewLimit)
	assert.True(t, cfg.ShowStatus)
}

func TestValidate(t *testing.T) {
	cfg := &AppConfig{OutputDir: "  "}
	assert.Error(t, cfg.Validate())
	cfg.OutputDir = "out"
	assert.NoError(t, cfg.Validate())
}
