package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/openfit/fitctl/internal/api"
	"github.com/openfit/fitctl/internal/cli/formatter"
	"github.com/openfit/fitctl/internal/domain"
	"github.com/openfit/fitctl/internal/query"
	"github.com/spf13/cobra"
)

func newActivityBrowseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse activities interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("browse needs an interactive terminal")
			}
			sess, err := app.requireSession()
			if err != nil {
				return err
			}
			if err := app.Activities.Load(cmd.Context(), sess, api.ListFilter{}); err != nil {
				return err
			}

			model := newBrowseModel(app.Activities.List())
			_, err = tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}

// sortKeys is the cycle order for the "s" key.
var sortKeys = []domain.SortKey{domain.SortByDate, domain.SortByDuration, domain.SortByCalories}

// browseModel is a read-only activity browser: live text search, type filter
// cycling and sort cycling, all driven by the query package on each render.
type browseModel struct {
	activities []domain.Activity

	search  textinput.Model
	typeIdx int // 0 = ALL, otherwise AllActivityTypes[typeIdx-1]
	sortIdx int
	cursor  int
}

func newBrowseModel(activities []domain.Activity) browseModel {
	search := textinput.New()
	search.Placeholder = "press / to search"
	search.Prompt = "🔍 "
	search.CharLimit = 64

	return browseModel{
		activities: activities,
		search:     search,
	}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) typeFilter() domain.ActivityType {
	if m.typeIdx == 0 {
		return domain.TypeFilterAll
	}
	return domain.AllActivityTypes[m.typeIdx-1]
}

func (m browseModel) visible() []domain.Activity {
	return query.Sort(
		query.Filter(m.activities, m.search.Value(), m.typeFilter()),
		sortKeys[m.sortIdx],
	)
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.search.Focused() {
		switch keyMsg.String() {
		case "esc", "enter":
			m.search.Blur()
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.clampCursor()
		return m, cmd
	}

	switch keyMsg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "/":
		m.search.Focus()
		return m, textinput.Blink
	case "tab", "t":
		m.typeIdx = (m.typeIdx + 1) % (len(domain.AllActivityTypes) + 1)
		m.clampCursor()
	case "shift+tab":
		m.typeIdx = (m.typeIdx + len(domain.AllActivityTypes)) % (len(domain.AllActivityTypes) + 1)
		m.clampCursor()
	case "s":
		m.sortIdx = (m.sortIdx + 1) % len(sortKeys)
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.visible())-1 {
			m.cursor++
		}
	}
	return m, nil
}

func (m *browseModel) clampCursor() {
	if n := len(m.visible()); m.cursor >= n {
		m.cursor = max(0, n-1)
	}
}

func (m browseModel) View() string {
	var b strings.Builder

	b.WriteString(formatter.Header("Activities") + "\n")
	b.WriteString(m.search.View() + "\n")

	typeLabel := "All Types"
	if t := m.typeFilter(); t != domain.TypeFilterAll {
		typeLabel = t.DisplayName()
	}
	b.WriteString(fmt.Sprintf("%s %s   %s %s\n\n",
		formatter.Dim("Type:"), formatter.StyleBlue.Render(typeLabel),
		formatter.Dim("Sort:"), formatter.StyleBlue.Render(string(sortKeys[m.sortIdx])),
	))

	shown := m.visible()
	if len(shown) == 0 {
		b.WriteString(formatter.Dim("No activities match.") + "\n")
	}
	for i, a := range shown {
		line := fmt.Sprintf("%s  %-20s %s  %6s  %7.0f cal",
			formatter.Dim(formatter.TruncID(a.ID)),
			a.Type.DisplayName(),
			formatter.FormatStartTime(a.StartTime),
			formatter.FormatMinutes(a.DurationMin),
			a.CaloriesBurned,
		)
		if i == m.cursor {
			b.WriteString(formatter.StyleBold.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}

	b.WriteString("\n" + formatter.SummaryLine(query.Summarize(shown)) + "\n")
	b.WriteString(formatter.Dim("/ search · tab type · s sort · q quit") + "\n")
	return b.String()
}
