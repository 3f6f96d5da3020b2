package cmd

import (
	"fmt"
	"strconv"
	"strings"

	pointsrender "github.com/bnema/podium/internal/adapters/render/points"
	"github.com/bnema/podium/internal/application"
	"github.com/bnema/podium/internal/domain"
	"github.com/spf13/cobra"
)

func newPointsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "points",
		Short: "Track speaker points and their trend",
	}

	cmd.AddCommand(
		newPointsAddCmd(app),
		newPointsListCmd(app),
		newPointsRemoveCmd(app),
		newPointsClearCmd(app),
		newPointsSummaryCmd(app),
	)

	return cmd
}

func newPointsAddCmd(app *app) *cobra.Command {
	var round, tournament string

	cmd := &cobra.Command{
		Use:   "add <score>",
		Short: fmt.Sprintf("Record a speaker score between %d and %d", domain.MinScore, domain.MaxScore),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			score, err := strconv.ParseFloat(strings.TrimSpace(args[0]), 64)
			if err != nil {
				return fmt.Errorf("%w: %q is not a number", domain.ErrInvalidScore, args[0])
			}

			entry, err := app.points.Add(cmd.Context(), application.AddPointCommand{
				Score:      score,
				Round:      round,
				Tournament: tournament,
			})
			if err != nil {
				return err
			}

			summary, err := app.points.Summary(cmd.Context())
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Recorded %g as #%s (average %.2f, trend %s)\n", entry.Score, entry.ID, summary.Average, summary.Trend.Arrow())
			return err
		},
	}

	cmd.Flags().StringVar(&round, "round", "", "Round label")
	cmd.Flags().StringVar(&tournament, "tournament", "", "Tournament name")

	return cmd
}

type pointsOutput struct {
	Entries []domain.PointEntry
	Summary domain.PointsSummary
}

func newPointsListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded scores with their summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := app.points.List(cmd.Context())
			if err != nil {
				return err
			}
			summary := domain.Summarize(entries)

			if asJSON {
				if entries == nil {
					entries = []domain.PointEntry{}
				}
				return writeJSON(cmd.OutOrStdout(), pointsOutput{Entries: entries, Summary: summary})
			}

			return writePointsOutput(cmd, app, entries, summary, false)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newPointsSummaryCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show average, best, worst and trend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			summary, err := app.points.Summary(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), summary)
			}

			return writePointsOutput(cmd, app, nil, summary, true)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newPointsRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Remove a recorded score",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.points.Remove(cmd.Context(), domain.PointID(args[0])); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Removed score #%s\n", args[0])
			return err
		},
	}
}

func newPointsClearCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every recorded score",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.points.Clear(cmd.Context()); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Cleared all scores")
			return err
		},
	}
}

func writePointsOutput(cmd *cobra.Command, app *app, entries []domain.PointEntry, summary domain.PointsSummary, summaryOnly bool) error {
	rendered, err := app.pointsRenderer(entries, summary, pointsrender.RenderOptions{
		Now:         app.now(),
		SummaryOnly: summaryOnly,
	})
	if err != nil {
		return fmt.Errorf("render points: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
