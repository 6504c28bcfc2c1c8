package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

type AppConfig struct {
	OutputDir   string
	MessagesDir string

	DefaultEvent string
	DefaultSite  string
	DefaultRound string
	DefaultWhite string
	DefaultBlack string

	LegalPreviewLimit int
	ShowStatus        bool
}

func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		OutputDir:    ".",
		DefaultEvent: "Casual Game",
		DefaultSite:  "Local",
		DefaultRound: "1",
		DefaultWhite: "Player 1",
		DefaultBlack: "Player 2",
		ShowStatus:   true,
	}

	if v := strings.TrimSpace(os.Getenv("PGN_OUTPUT_DIR")); v != "" {
		cfg.OutputDir = v
	}
	cfg.MessagesDir = strings.TrimSpace(os.Getenv("PGN_MESSAGES_DIR"))

	// Metadata prompt defaults
	if v := strings.TrimSpace(os.Getenv("PGN_DEFAULT_EVENT")); v != "" {
		cfg.DefaultEvent = v
	}
	if v := strings.TrimSpace(os.Getenv("PGN_DEFAULT_SITE")); v != "" {
		cfg.DefaultSite = v
	}
	if v := strings.TrimSpace(os.Getenv("PGN_DEFAULT_ROUND")); v != "" {
		cfg.DefaultRound = v
	}
	if v := strings.TrimSpace(os.Getenv("PGN_DEFAULT_WHITE")); v != "" {
		cfg.DefaultWhite = v
	}
	if v := strings.TrimSpace(os.Getenv("PGN_DEFAULT_BLACK")); v != "" {
		cfg.DefaultBlack = v
	}

	if v := strings.TrimSpace(os.Getenv("PGN_LEGAL_PREVIEW_LIMIT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.LegalPreviewLimit = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("PGN_SHOW_STATUS")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.ShowStatus = b
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that flags may have overridden after Load.
func (c *AppConfig) Validate() error {
	if strings.TrimSpace(c.OutputDir) == "" {
		return errors.New("output dir is required")
	}
	return nil
}
