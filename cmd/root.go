package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	return buildRootCmd(wireApp)
}

func buildRootCmd(wire func() (*app, error)) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "podium",
		Short:         "podium: speech timer, round notes and speaker points for debaters",
		Long:          "podium gives debaters three small tools in the terminal: a speech countdown timer with audio cues, structured round notes, and a speaker-points tracker with a trend readout.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wire()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newTimerCmd(app),
		newPresetsCmd(),
		newNotesCmd(app),
		newPointsCmd(app),
	)

	return rootCmd
}
