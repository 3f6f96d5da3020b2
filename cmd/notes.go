package cmd

import (
	"context"
	"fmt"
	"strings"

	notesrender "github.com/bnema/podium/internal/adapters/render/notes"
	"github.com/bnema/podium/internal/application"
	"github.com/bnema/podium/internal/domain"
	"github.com/spf13/cobra"
)

func newNotesCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notes",
		Aliases: []string{"note"},
		Short:   "Keep structured notes per debate round",
	}

	cmd.AddCommand(
		newNotesAddCmd(app),
		newNotesListCmd(app),
		newNotesShowCmd(app),
		newNotesUpdateCmd(app),
		newNotesAppendCmd(app, "arg", "Append an argument to a note", app.notes.AppendArgument),
		newNotesAppendCmd(app, "rebuttal", "Append a rebuttal to a note", app.notes.AppendRebuttal),
		newNotesDeleteCmd(app),
		newNotesClearCmd(app),
	)

	return cmd
}

func newNotesAddCmd(app *app) *cobra.Command {
	var round, motion, side, feedback string
	var arguments, rebuttals []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a note for a round",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsedSide, err := domain.ParseSide(side)
			if err != nil {
				return err
			}

			note, err := app.notes.Add(cmd.Context(), application.AddNoteCommand{
				Round:     round,
				Motion:    motion,
				Side:      parsedSide,
				Arguments: arguments,
				Rebuttals: rebuttals,
				Feedback:  feedback,
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Added note %s (%s)\n", note.ID, note.Round)
			return err
		},
	}

	cmd.Flags().StringVar(&round, "round", "", "Round label, e.g. \"Round 3\"")
	cmd.Flags().StringVar(&motion, "motion", "", "Motion text")
	cmd.Flags().StringVar(&side, "side", "", "Side: gov or opp")
	cmd.Flags().StringArrayVar(&arguments, "arg", nil, "Argument (repeatable)")
	cmd.Flags().StringArrayVar(&rebuttals, "rebuttal", nil, "Rebuttal (repeatable)")
	cmd.Flags().StringVar(&feedback, "feedback", "", "Adjudicator feedback")
	_ = cmd.MarkFlagRequired("round")

	return cmd
}

func newNotesListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List round notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			notes, err := app.notes.List(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				if notes == nil {
					notes = []domain.RoundNote{}
				}
				return writeJSON(cmd.OutOrStdout(), notes)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), notesrender.RenderList(notes))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newNotesShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one note in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			note, err := app.notes.Get(cmd.Context(), domain.NoteID(args[0]))
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), note)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), notesrender.RenderNote(note))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newNotesUpdateCmd(app *app) *cobra.Command {
	var round, motion, side, feedback string
	var arguments, rebuttals []string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a note; only the flags given are applied",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			update := application.UpdateNoteCommand{ID: domain.NoteID(args[0])}
			flags := cmd.Flags()

			if flags.Changed("round") {
				update.Round = &round
			}
			if flags.Changed("motion") {
				update.Motion = &motion
			}
			if flags.Changed("side") {
				parsedSide, err := domain.ParseSide(side)
				if err != nil {
					return err
				}
				update.Side = &parsedSide
			}
			if flags.Changed("arg") {
				update.Arguments = nonNil(arguments)
			}
			if flags.Changed("rebuttal") {
				update.Rebuttals = nonNil(rebuttals)
			}
			if flags.Changed("feedback") {
				update.Feedback = &feedback
			}

			note, err := app.notes.Update(cmd.Context(), update)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Updated note %s\n", note.ID)
			return err
		},
	}

	cmd.Flags().StringVar(&round, "round", "", "Round label")
	cmd.Flags().StringVar(&motion, "motion", "", "Motion text")
	cmd.Flags().StringVar(&side, "side", "", "Side: gov, opp or empty")
	cmd.Flags().StringArrayVar(&arguments, "arg", nil, "Replace arguments (repeatable)")
	cmd.Flags().StringArrayVar(&rebuttals, "rebuttal", nil, "Replace rebuttals (repeatable)")
	cmd.Flags().StringVar(&feedback, "feedback", "", "Adjudicator feedback")

	return cmd
}

func newNotesAppendCmd(app *app, use, short string, appendFn func(ctx context.Context, id domain.NoteID, text string) (domain.RoundNote, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id> <text...>",
		Short: short,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			note, err := appendFn(cmd.Context(), domain.NoteID(args[0]), strings.Join(args[1:], " "))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Note %s: %d arguments, %d rebuttals\n", note.ID, len(note.Arguments), len(note.Rebuttals))
			return err
		},
	}
}

func newNotesDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a note",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.notes.Delete(cmd.Context(), domain.NoteID(args[0])); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Deleted note %s\n", args[0])
			return err
		},
	}
}

func newNotesClearCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every note",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.notes.Clear(cmd.Context()); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Cleared all notes")
			return err
		},
	}
}

// nonNil keeps an explicitly emptied flag distinct from an absent one.
func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
