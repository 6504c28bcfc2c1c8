package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/park285/Cheese-PGN-recorder/internal/obslog"
	"github.com/park285/Cheese-PGN-recorder/internal/recorder"
)

func init() {
	RootCmd.AddCommand(&cobra.Command{
		Use:   "record",
		Short: "Record a game interactively",
		Args:  cobra.NoArgs,
		RunE:  runRecord,
	})
}

func runRecord(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	text, err := newFormatter(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	// A second Ctrl+C while the save prompt is open kills the process.
	go func() {
		<-ctx.Done()
		stop()
	}()

	s := recorder.New(cfg, cmd.InOrStdin(), cmd.OutOrStdout(), text, recorder.WithLogger(obslog.L()))
	_, err = s.Run(ctx)
	return err
}
