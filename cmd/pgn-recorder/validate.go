package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/park285/Cheese-PGN-recorder/internal/movesyntax"
)

func init() {
	RootCmd.AddCommand(&cobra.Command{
		Use:   "validate <move>...",
		Short: "Check the notation of moves without a board",
		Long:  "Report for each argument whether it is well-formed algebraic notation. Legality is not checked.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runValidate,
	})
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	text, err := newFormatter(cfg)
	if err != nil {
		return err
	}

	bad := 0
	for _, arg := range args {
		verr := movesyntax.Validate(arg)
		if verr != nil {
			bad++
		}
		fmt.Fprintln(cmd.OutOrStdout(), text.Validation(arg, verr))
	}
	if bad > 0 {
		return fmt.Errorf("%d of %d moves are invalid", bad, len(args))
	}
	return nil
}
