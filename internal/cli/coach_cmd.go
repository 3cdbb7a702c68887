package cli

import (
	"fmt"

	"github.com/openfit/fitctl/internal/api"
	"github.com/openfit/fitctl/internal/cli/formatter"
	"github.com/openfit/fitctl/internal/coach"
	"github.com/spf13/cobra"
)

func newCoachCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coach",
		Short: "AI coaching: plans, advice and analysis",
		Long: "AI coaching surfaces. When the AI service is unreachable a " +
			"built-in default document is shown instead of an error.",
	}

	cmd.AddCommand(
		newCoachWorkoutCmd(app),
		newCoachNutritionCmd(app),
		newCoachProgressCmd(app),
		newCoachMotivationCmd(app),
		newCoachInjuryCmd(app),
		newCoachSocialCmd(app),
		newCoachRecsCmd(app),
		newCoachAnalyzeCmd(app),
	)
	return cmd
}

func newCoachWorkoutCmd(app *App) *cobra.Command {
	req := coach.WorkoutPlanRequest{
		UserProfile:  "Active individual looking to improve fitness",
		Goals:        "Build strength and improve cardiovascular health",
		FitnessLevel: "Intermediate",
	}

	cmd := &cobra.Command{
		Use:   "workout",
		Short: "Generate a workout plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.requireSession()
			if err != nil {
				return err
			}
			doc := app.Coach.WorkoutPlan(cmd.Context(), sess, req)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Header("Workout Plan"))
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderDocument(doc))
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Goals, "goals", req.Goals, "training goals")
	cmd.Flags().StringVar(&req.FitnessLevel, "level", req.FitnessLevel, "fitness level")
	cmd.Flags().StringVar(&req.UserProfile, "profile", req.UserProfile, "short user profile")
	return cmd
}

func newCoachNutritionCmd(app *App) *cobra.Command {
	req := coach.NutritionRequest{
		ActivityType:        "Mixed activities",
		CaloriesBurned:      500,
		DietaryRestrictions: "None",
	}

	cmd := &cobra.Command{
		Use:   "nutrition",
		Short: "Generate nutrition advice",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.requireSession()
			if err != nil {
				return err
			}
			doc := app.Coach.NutritionAdvice(cmd.Context(), sess, req)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Header("Nutrition Advice"))
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderDocument(doc))
			return nil
		},
	}

	cmd.Flags().StringVar(&req.ActivityType, "activity", req.ActivityType, "activity context")
	cmd.Flags().IntVar(&req.CaloriesBurned, "calories", req.CaloriesBurned, "calories burned")
	cmd.Flags().StringVar(&req.DietaryRestrictions, "restrictions", req.DietaryRestrictions, "dietary restrictions")
	return cmd
}

func newCoachProgressCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Analyze progress over your logged activities",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.requireSession()
			if err != nil {
				return err
			}
			if err := app.Activities.Load(cmd.Context(), sess, api.ListFilter{}); err != nil {
				return err
			}
			doc := app.Coach.ProgressAnalysis(cmd.Context(), sess, app.Activities.List())
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Header("Progress Analysis"))
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderDocument(doc))
			return nil
		},
	}
}

func newCoachMotivationCmd(app *App) *cobra.Command {
	req := coach.MotivationRequest{
		UserMood:       "Motivated",
		RecentActivity: "Recent workout",
		Goals:          "Stay consistent",
	}

	cmd := &cobra.Command{
		Use:   "motivation",
		Short: "Get a motivational message",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.requireSession()
			if err != nil {
				return err
			}
			doc := app.Coach.Motivation(cmd.Context(), sess, req)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Header("Motivation"))
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderDocument(doc))
			return nil
		},
	}

	cmd.Flags().StringVar(&req.UserMood, "mood", req.UserMood, "current mood")
	cmd.Flags().StringVar(&req.Goals, "goals", req.Goals, "training goals")
	return cmd
}

func newCoachInjuryCmd(app *App) *cobra.Command {
	req := coach.InjuryPreventionRequest{
		ActivityType: "Mixed activities",
		UserAge:      "25-35",
		FitnessLevel: "Intermediate",
	}

	cmd := &cobra.Command{
		Use:   "injury",
		Short: "Get injury-prevention advice",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.requireSession()
			if err != nil {
				return err
			}
			doc := app.Coach.InjuryPrevention(cmd.Context(), sess, req)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Header("Injury Prevention"))
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderDocument(doc))
			return nil
		},
	}

	cmd.Flags().StringVar(&req.ActivityType, "activity", req.ActivityType, "activity context")
	cmd.Flags().StringVar(&req.UserAge, "age", req.UserAge, "age range")
	cmd.Flags().StringVar(&req.FitnessLevel, "level", req.FitnessLevel, "fitness level")
	return cmd
}

func newCoachSocialCmd(app *App) *cobra.Command {
	req := coach.SocialRequest{
		ActivityType: "Mixed activities",
		Location:     "Local area",
		Goals:        "Stay consistent",
	}

	cmd := &cobra.Command{
		Use:   "social",
		Short: "Find social challenges, groups and events",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.requireSession()
			if err != nil {
				return err
			}
			doc := app.Coach.SocialSuggestions(cmd.Context(), sess, req)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Header("Social"))
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderDocument(doc))
			return nil
		},
	}

	cmd.Flags().StringVar(&req.ActivityType, "activity", req.ActivityType, "activity context")
	cmd.Flags().StringVar(&req.Location, "location", req.Location, "location")
	return cmd
}

func newCoachRecsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "recs",
		Short: "List stored recommendations",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.requireSession()
			if err != nil {
				return err
			}
			recs, err := app.Coach.UserRecommendations(cmd.Context(), sess)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(recs) == 0 {
				fmt.Fprintln(out, formatter.Dim("No recommendations yet. Run 'fitctl coach analyze <activity-id>'."))
				return nil
			}
			for i, rec := range recs {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprint(out, formatter.RenderRecommendation(rec))
			}
			return nil
		},
	}
}

func newCoachAnalyzeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <activity-id>",
		Short: "Generate an AI analysis for one activity",
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
			rec := app.Coach.Recommendation(cmd.Context(), sess, *activity)
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderRecommendation(*rec))
			return nil
		},
	}
}
