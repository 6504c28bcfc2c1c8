package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/park285/Cheese-PGN-recorder/internal/adapter/pgnpresenter"
	"github.com/park285/Cheese-PGN-recorder/internal/chess"
	"github.com/park285/Cheese-PGN-recorder/internal/ledger"
	"github.com/park285/Cheese-PGN-recorder/internal/obslog"
)

func init() {
	cmd := &cobra.Command{
		Use:   "legal [move]...",
		Short: "List the legal moves after a sequence of moves",
		Long:  "Play the given moves from the starting position, alternating white and black, and list the legal replies.",
		RunE:  runLegal,
	}
	cmd.Flags().IntP("limit", "n", -1, "Show at most this many moves (default: $PGN_LEGAL_PREVIEW_LIMIT, 0 = all)")
	RootCmd.AddCommand(cmd)
}

func runLegal(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	text, err := newFormatter(cfg)
	if err != nil {
		return err
	}
	limit, _ := cmd.Flags().GetInt("limit")
	if limit < 0 {
		limit = cfg.LegalPreviewLimit
	}

	l := ledger.New(func() ledger.Oracle { return chess.NewRules() }, obslog.L())
	for i, san := range args {
		if err := l.SubmitHalfMove(san, l.Turn()); err != nil {
			fmt.Fprintln(cmd.OutOrStdout(), text.Error(err))
			return fmt.Errorf("move %d of %d (%s) rejected", i+1, len(args), san)
		}
	}

	out := cmd.OutOrStdout()
	view := pgnpresenter.ToLedgerView(l)
	if len(view.Lines) > 0 {
		fmt.Fprintln(out, text.Moves(view))
	}
	if opening := text.Opening(view); opening != "" {
		fmt.Fprintln(out, opening)
	}
	if status := text.Status(view); status != "" {
		fmt.Fprintln(out, status)
	}
	fmt.Fprintln(out, text.Position(view))
	fmt.Fprint(out, text.LegalMoves(l.LegalMovesNow(), limit))
	return nil
}
