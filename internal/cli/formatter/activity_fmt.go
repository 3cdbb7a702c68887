package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/openfit/fitctl/internal/domain"
)

// TruncID shortens a server-assigned ID for display.
func TruncID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// FormatMinutes renders a duration in minutes as "45m" or "1h 30m".
func FormatMinutes(min int) string {
	if min < 60 {
		return fmt.Sprintf("%dm", min)
	}
	if min%60 == 0 {
		return fmt.Sprintf("%dh", min/60)
	}
	return fmt.Sprintf("%dh %dm", min/60, min%60)
}

// FormatStartTime renders an activity start time in local time.
func FormatStartTime(t time.Time) string {
	return t.Local().Format("Jan 02, 2006 15:04")
}

// ActivityTable renders activities as an aligned table.
func ActivityTable(activities []domain.Activity) string {
	if len(activities) == 0 {
		return Dim("No activities found.")
	}

	rows := make([][]string, 0, len(activities))
	for _, a := range activities {
		rows = append(rows, []string{
			StyleDim.Render(TruncID(a.ID)),
			StyleBlue.Render(a.Type.DisplayName()),
			FormatStartTime(a.StartTime),
			FormatMinutes(a.DurationMin),
			fmt.Sprintf("%.0f cal", a.CaloriesBurned),
		})
	}
	return RenderTable([]string{"ID", "Type", "Started", "Duration", "Calories"}, rows)
}

// ActivityDetail renders a single activity as a labeled block.
func ActivityDetail(a domain.Activity) string {
	var b strings.Builder
	b.WriteString(Header(a.Type.DisplayName()) + "\n")
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("ID:"), a.ID))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("Started:"), FormatStartTime(a.StartTime)))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("Duration:"), FormatMinutes(a.DurationMin)))
	b.WriteString(fmt.Sprintf("%s  %.0f cal\n", Dim("Calories:"), a.CaloriesBurned))
	if a.AdditionalMetrics != "" {
		b.WriteString(fmt.Sprintf("%s  %s\n", Dim("Notes:"), a.AdditionalMetrics))
	}
	return b.String()
}

// SummaryLine renders the aggregate over the currently displayed activities.
func SummaryLine(s domain.Summary) string {
	return fmt.Sprintf("%s %s activities · %s · %s",
		Dim("Σ"),
		Bold(fmt.Sprintf("%d", s.Count)),
		Bold(FormatMinutes(s.TotalDurationMin)),
		Bold(fmt.Sprintf("%d cal", s.TotalCalories)),
	)
}

// StatsBlock renders the server-computed user statistics.
func StatsBlock(stats domain.UserStats, periodDays int) string {
	content := fmt.Sprintf(
		"%s  %d\n%s  %.0f\n%s  %s\n%s  %.0f",
		Dim("Activities:"), stats.TotalActivities,
		Dim("Calories:"), stats.TotalCaloriesBurned,
		Dim("Duration:"), FormatMinutes(stats.TotalDurationMinutes),
		Dim("Avg cal/activity:"), stats.AverageCaloriesPerActivity,
	)
	return RenderBox(fmt.Sprintf("Last %d days", periodDays), content)
}

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(1, 2)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}
