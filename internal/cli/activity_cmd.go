package cli

import (
	"fmt"

	"github.com/openfit/fitctl/internal/api"
	"github.com/openfit/fitctl/internal/cli/formatter"
	"github.com/openfit/fitctl/internal/domain"
	"github.com/openfit/fitctl/internal/query"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newActivityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "activity",
		Aliases: []string{"act"},
		Short:   "Log and manage activities",
	}

	cmd.AddCommand(
		newActivityListCmd(app),
		newActivityAddCmd(app),
		newActivityShowCmd(app),
		newActivityUpdateCmd(app),
		newActivityDeleteCmd(app),
		newActivityBrowseCmd(app),
	)
	return cmd
}

// addDraftFlags registers the draft fields shared by add and update.
func addDraftFlags(fs *pflag.FlagSet, in *draftInput) {
	fs.StringVar(&in.Type, "type", in.Type, "activity type (e.g. running, strength training)")
	fs.StringVar(&in.Start, "start", in.Start, "start time (\"now\", \"2006-01-02 15:04\")")
	fs.StringVar(&in.Duration, "duration", in.Duration, "duration in minutes")
	fs.StringVar(&in.Calories, "calories", in.Calories, "calories burned (default: estimated from type and duration)")
	fs.StringVar(&in.Notes, "notes", in.Notes, "free-form notes")
}

func newActivityListCmd(app *App) *cobra.Command {
	var (
		search   string
		typeName string
		sortName string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List activities with filtering and sorting",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.requireSession()
			if err != nil {
				return err
			}
			if err := app.Activities.Load(cmd.Context(), sess, api.ListFilter{}); err != nil {
				return err
			}

			typeFilter := domain.TypeFilterAll
			if typeName != "" && typeName != "all" {
				typeFilter = domain.ParseActivityType(typeName)
			}

			shown := query.Sort(
				query.Filter(app.Activities.List(), search, typeFilter),
				domain.SortKey(sortName),
			)

			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.ActivityTable(shown))
			if len(shown) > 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, formatter.SummaryLine(query.Summarize(shown)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "case-insensitive match against the type name")
	cmd.Flags().StringVar(&typeName, "type", "all", "only show one activity type")
	cmd.Flags().StringVar(&sortName, "sort", "date", "sort key: date, duration or calories")
	return cmd
}

func newActivityAddCmd(app *App) *cobra.Command {
	in := defaultDraftInput()

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Track a new activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.requireSession()
			if err != nil {
				return err
			}

			if app.interactive() && !cmd.Flags().Changed("type") {
				if err := runDraftForm(&in); err != nil {
					return err
				}
			}

			draft, err := in.toDraft()
			if err != nil {
				return err
			}

			created, err := app.Activities.Create(cmd.Context(), sess, draft)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.OK(fmt.Sprintf(
				"Tracked %s (%s, %.0f cal) as %s.",
				formatter.Bold(created.Type.DisplayName()),
				formatter.FormatMinutes(created.DurationMin),
				created.CaloriesBurned,
				formatter.Dim(formatter.TruncID(created.ID)),
			)))
			return nil
		},
	}

	addDraftFlags(cmd.Flags(), &in)
	return cmd
}

func newActivityShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.requireSession()
			if err != nil {
				return err
			}
			activity, err := app.API.Get(cmd.Context(), sess, args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.ActivityDetail(*activity))
			return nil
		},
	}
}

func newActivityUpdateCmd(app *App) *cobra.Command {
	var in draftInput

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace an activity's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.requireSession()
			if err != nil {
				return err
			}

			// Updates are full replacements; start from the stored record so
			// unmentioned fields carry over.
			current, err := app.API.Get(cmd.Context(), sess, args[0])
			if err != nil {
				return err
			}
			base := draftInputFrom(*current)
			applyChangedDraftFlags(cmd.Flags(), &base, in)

			if app.interactive() && !anyDraftFlagChanged(cmd.Flags()) {
				if err := runDraftForm(&base); err != nil {
					return err
				}
			}

			draft, err := base.toDraft()
			if err != nil {
				return err
			}

			updated, err := app.Activities.Update(cmd.Context(), sess, args[0], draft)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.OK(fmt.Sprintf(
				"Updated %s.", formatter.Bold(updated.Type.DisplayName()),
			)))
			return nil
		},
	}

	addDraftFlags(cmd.Flags(), &in)
	return cmd
}

var draftFlagNames = []string{"type", "start", "duration", "calories", "notes"}

func anyDraftFlagChanged(fs *pflag.FlagSet) bool {
	for _, name := range draftFlagNames {
		if fs.Changed(name) {
			return true
		}
	}
	return false
}

func applyChangedDraftFlags(fs *pflag.FlagSet, base *draftInput, in draftInput) {
	if fs.Changed("type") {
		base.Type = in.Type
	}
	if fs.Changed("start") {
		base.Start = in.Start
	}
	if fs.Changed("duration") {
		base.Duration = in.Duration
	}
	if fs.Changed("calories") {
		base.Calories = in.Calories
	}
	if fs.Changed("notes") {
		base.Notes = in.Notes
	}
}

func newActivityDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.requireSession()
			if err != nil {
				return err
			}

			if !yes {
				if !app.interactive() {
					return fmt.Errorf("refusing to delete without --yes on a non-interactive terminal")
				}
				ok, err := confirmDelete("activity " + formatter.TruncID(args[0]))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Aborted."))
					return nil
				}
			}

			if err := app.Activities.Remove(cmd.Context(), sess, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.OK("Activity deleted."))
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")
	return cmd
}

func newStatsCmd(app *App) *cobra.Command {
	var periodDays int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate statistics for the logged-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.requireSession()
			if err != nil {
				return err
			}
			stats, err := app.API.Stats(cmd.Context(), sess, periodDays)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StatsBlock(*stats, periodDays))
			return nil
		},
	}

	cmd.Flags().IntVar(&periodDays, "period", 30, "period in days")
	return cmd
}
