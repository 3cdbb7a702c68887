package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/openfit/fitctl/internal/domain"
	"github.com/openfit/fitctl/internal/estimate"
)

// parseStartTime accepts the start-time formats users actually type:
// "now", "2025-08-30", "2025-08-30 18:15", or full RFC 3339.
func parseStartTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "now") {
		return time.Now(), nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized start time %q (try \"2006-01-02 15:04\" or \"now\")", s)
}

func validateStartTime(s string) error {
	_, err := parseStartTime(s)
	return err
}

func validateDuration(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("enter a whole number of minutes")
	}
	if n < domain.MinDurationMin || n > domain.MaxDurationMin {
		return domain.ErrDurationRange
	}
	return nil
}

func validateCalories(s string) error {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if f <= 0 {
		return domain.ErrCaloriesRange
	}
	return nil
}

func typeOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(domain.AllActivityTypes))
	for _, t := range domain.AllActivityTypes {
		opts = append(opts, huh.NewOption(t.DisplayName(), string(t)))
	}
	return opts
}

// draftInput carries form state as strings until the draft is assembled.
type draftInput struct {
	Type     string
	Start    string
	Duration string
	Calories string
	Notes    string
}

func defaultDraftInput() draftInput {
	return draftInput{
		Type:     string(domain.TypeRunning),
		Start:    "now",
		Duration: "30",
	}
}

func draftInputFrom(a domain.Activity) draftInput {
	return draftInput{
		Type:     string(a.Type),
		Start:    a.StartTime.Local().Format("2006-01-02 15:04"),
		Duration: strconv.Itoa(a.DurationMin),
		Calories: strconv.FormatFloat(a.CaloriesBurned, 'f', -1, 64),
		Notes:    a.AdditionalMetrics,
	}
}

// runDraftForm collects a draft interactively in two steps: type, start and
// duration first, then calories (pre-filled from the estimator for the
// chosen type and duration) and notes. The estimate is a suggestion; the
// user may overwrite it before submitting.
func runDraftForm(in *draftInput) error {
	first := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Activity Type").
				Options(typeOptions()...).
				Value(&in.Type),
			huh.NewInput().
				Title("Start Time").
				Placeholder("now").
				Value(&in.Start).
				Validate(validateStartTime),
			huh.NewInput().
				Title("Duration (minutes)").
				Placeholder("30").
				Value(&in.Duration).
				Validate(validateDuration),
		),
	).WithShowHelp(false)
	if err := first.Run(); err != nil {
		return err
	}

	if minutes, err := strconv.Atoi(strings.TrimSpace(in.Duration)); err == nil {
		suggested := estimate.Calories(domain.ParseActivityType(in.Type), minutes)
		in.Calories = strconv.Itoa(suggested)
	}

	second := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Calories Burned (estimated, edit to override)").
				Value(&in.Calories).
				Validate(validateCalories),
			huh.NewInput().
				Title("Notes (optional)").
				Value(&in.Notes),
		),
	).WithShowHelp(false)
	return second.Run()
}

// toDraft assembles and validates the domain draft. When no calories were
// supplied (flag-only usage), the estimator fills them in.
func (in draftInput) toDraft() (domain.Draft, error) {
	var d domain.Draft

	start, err := parseStartTime(in.Start)
	if err != nil {
		return d, err
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(in.Duration))
	if err != nil {
		return d, fmt.Errorf("invalid duration %q", in.Duration)
	}

	d.Type = domain.ParseActivityType(in.Type)
	d.StartTime = start
	d.DurationMin = minutes
	d.AdditionalMetrics = strings.TrimSpace(in.Notes)

	if strings.TrimSpace(in.Calories) == "" {
		d.CaloriesBurned = float64(estimate.Calories(d.Type, minutes))
	} else {
		cal, err := strconv.ParseFloat(strings.TrimSpace(in.Calories), 64)
		if err != nil {
			return d, fmt.Errorf("invalid calories %q", in.Calories)
		}
		d.CaloriesBurned = cal
	}

	return d, d.Validate()
}

// confirmDelete prompts before a destructive action.
func confirmDelete(label string) (bool, error) {
	confirmed := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete %s?", label)).
				Value(&confirmed),
		),
	).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}
