package cmd

import (
	"fmt"
	"os"

	timerrender "github.com/bnema/podium/internal/adapters/render/timer"
	"github.com/bnema/podium/internal/domain"
	"github.com/spf13/cobra"
)

func newTimerCmd(app *app) *cobra.Command {
	var seconds int
	var mute bool
	var plain bool
	var start bool

	cmd := &cobra.Command{
		Use:   "timer",
		Short: "Run the speech countdown timer",
		Long: fmt.Sprintf(
			"Run the speech countdown timer. Cues sound at 30 s and 10 s left and when time is up.\n"+
				"Durations are clamped to [%d, %d] seconds.",
			domain.MinTimerSeconds, domain.MaxTimerSeconds,
		),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			total := app.config.Timer.DefaultSeconds
			if cmd.Flags().Changed("seconds") {
				total = seconds
			}

			controller := app.newTimer(total, app.config.Timer.Sound && !mute)
			defer app.closeAudio()

			if plain {
				return timerrender.RunPlain(cmd.Context(), controller, cmd.OutOrStdout())
			}

			opts := timerrender.RunOptions{AltScreen: true, AutoStart: start}
			if in := cmd.InOrStdin(); in != os.Stdin {
				opts.Input = in
			}
			if out := cmd.OutOrStdout(); out != os.Stdout {
				opts.Output = out
			}

			return timerrender.Run(cmd.Context(), controller, opts)
		},
	}

	cmd.Flags().IntVar(&seconds, "seconds", domain.DefaultTimerSeconds, "Countdown length in seconds (default: timer.default_seconds)")
	cmd.Flags().BoolVar(&mute, "mute", false, "Start with sound cues disabled")
	cmd.Flags().BoolVar(&plain, "plain", false, "Print one status line per change instead of the interactive view")
	cmd.Flags().BoolVar(&start, "start", false, "Start counting down immediately")

	return cmd
}

type presetOutput struct {
	Key     int    `json:"key"`
	Seconds int    `json:"seconds"`
	Clock   string `json:"clock"`
}

func newPresetsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the preset speech lengths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			presets := make([]presetOutput, 0, len(domain.Presets))
			for i, seconds := range domain.Presets {
				presets = append(presets, presetOutput{Key: i + 1, Seconds: seconds, Clock: domain.FormatClock(seconds)})
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), presets)
			}

			for _, preset := range presets {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%ds\n", preset.Key, preset.Clock, preset.Seconds); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
