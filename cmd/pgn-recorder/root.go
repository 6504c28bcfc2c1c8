package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/park285/Cheese-PGN-recorder/internal/adapter/pgnpresenter"
	"github.com/park285/Cheese-PGN-recorder/internal/config"
	"github.com/park285/Cheese-PGN-recorder/internal/msgcat"
	"github.com/park285/Cheese-PGN-recorder/internal/obslog"
)

var (
	outputDir   string
	messagesDir string
)

// RootCmd records a game when run without a subcommand.
var RootCmd = &cobra.Command{
	Use:           "pgn-recorder",
	Short:         "Record chess games move by move and export them as PGN",
	Long:          "Enter a game in algebraic notation with full legality checking, fix mistakes, and save it as a PGN file.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := obslog.InitFromEnv(); err != nil {
			return fmt.Errorf("logger init: %w", err)
		}
		obslog.L().Debug("command_start", zap.String("command", cmd.CommandPath()))
		return nil
	},
	RunE: runRecord,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&outputDir, "output-dir", "o", "", "Directory for PGN files (default: $PGN_OUTPUT_DIR or .)")
	RootCmd.PersistentFlags().StringVar(&messagesDir, "messages-dir", "", "Directory with YAML message overrides (default: $PGN_MESSAGES_DIR)")
}

// loadConfig reads the environment and applies flag overrides.
func loadConfig() (*config.AppConfig, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	if messagesDir != "" {
		cfg.MessagesDir = messagesDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func newFormatter(cfg *config.AppConfig) (*pgnpresenter.Formatter, error) {
	cat, err := msgcat.New(cfg.MessagesDir)
	if err != nil {
		return nil, fmt.Errorf("messages: %w", err)
	}
	obslog.L().Debug("msgcat_loaded",
		zap.String("override_dir", cfg.MessagesDir),
		zap.Int("keys", len(cat.Keys())),
	)
	return pgnpresenter.NewFormatter(cat, obslog.L()), nil
}
