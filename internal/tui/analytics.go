package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/taskmaster/internal/query"
	"github.com/sadopc/taskmaster/internal/store"
)

type analyticsMode int

const (
	analyticsCompleted analyticsMode = iota
	analyticsFocus
)

type analyticsModel struct {
	store  *store.Store
	width  int
	height int

	mode     analyticsMode
	tasks    []store.Task
	sessions []store.PomodoroSession
	offset   int // 7-day blocks back from today (0 = current)

	chart barchart.Model
}

func newAnalyticsModel(s *store.Store) analyticsModel {
	return analyticsModel{
		store: s,
		chart: barchart.New(60, 12),
	}
}

func (a *analyticsModel) setSize(w, h int) {
	a.width = w
	a.height = h
}

func (a analyticsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return analyticsDataMsg{
			tasks:    a.store.GetTasks(),
			sessions: a.store.GetSessions(),
		}
	}
}

func (a analyticsModel) dateRange() (time.Time, time.Time) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := today.AddDate(0, 0, 1-7*a.offset)
	return end.AddDate(0, 0, -7), end
}

func (a analyticsModel) update(msg tea.Msg) (analyticsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case analyticsDataMsg:
		a.tasks = msg.tasks
		a.sessions = msg.sessions
		a.buildChart()
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left):
			a.offset++
			a.buildChart()
		case key.Matches(msg, keys.Right):
			if a.offset > 0 {
				a.offset--
				a.buildChart()
			}
		case key.Matches(msg, keys.Tab):
			if a.mode == analyticsCompleted {
				a.mode = analyticsFocus
			} else {
				a.mode = analyticsCompleted
			}
			a.buildChart()
		}
	}
	return a, nil
}

// completedPerDay counts tasks whose last update moved them to complete,
// keyed by local date. UpdatedAt stands in for a completion timestamp.
func (a analyticsModel) completedPerDay() map[string]float64 {
	out := make(map[string]float64)
	for _, t := range a.tasks {
		if t.Status != store.StatusComplete {
			continue
		}
		out[t.UpdatedAt.Local().Format("2006-01-02")]++
	}
	return out
}

func (a analyticsModel) focusMinutesPerDay() map[string]float64 {
	out := make(map[string]float64)
	for _, s := range a.sessions {
		if !s.Completed {
			continue
		}
		out[s.StartTime.Local().Format("2006-01-02")] += float64(s.Duration)
	}
	return out
}

func (a *analyticsModel) buildChart() {
	chartWidth := a.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 12
	if a.height > 30 {
		chartHeight = 16
	}

	a.chart = barchart.New(chartWidth, chartHeight)

	perDay := a.completedPerDay()
	barStyle := lipgloss.NewStyle().Foreground(colorPrimary)
	if a.mode == analyticsFocus {
		perDay = a.focusMinutesPerDay()
		barStyle = lipgloss.NewStyle().Foreground(colorAccent)
	}

	from, to := a.dateRange()

	var bars []barchart.BarData
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		v := perDay[d.Format("2006-01-02")]
		style := barStyle
		if v == 0 {
			style = lipgloss.NewStyle().Foreground(colorSubtle)
		}
		bars = append(bars, barchart.BarData{
			Label:  d.Format("Mon 02"),
			Values: []barchart.BarValue{{Name: "", Value: v, Style: style}},
		})
	}

	a.chart.PushAll(bars)
	a.chart.Draw()
}

func (a analyticsModel) view() string {
	w := a.width - 4

	completedTab := inactiveTabStyle.Render("Completed")
	focusTab := inactiveTabStyle.Render("Focus Time")
	if a.mode == analyticsCompleted {
		completedTab = activeTabStyle.Render("Completed")
	} else {
		focusTab = activeTabStyle.Render("Focus Time")
	}

	from, to := a.dateRange()
	dateLabel := mutedStyle.Render(fmt.Sprintf("%s — %s", from.Format("Jan 02"), to.Add(-24*time.Hour).Format("Jan 02, 2006")))

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("Analytics"), "  ", completedTab, focusTab, "  ", dateLabel,
	)

	nav := mutedStyle.Render("  ←/→: navigate  tab: switch chart")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, "", a.chart.View(), "", a.renderStats(), "", nav,
		),
	)
}

func (a analyticsModel) renderStats() string {
	stats := query.Statistics(a.tasks, time.Now())

	focusMinutes := 0
	for _, s := range a.sessions {
		if s.Completed {
			focusMinutes += s.Duration
		}
	}

	var rows []string
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-16s %-16s %-16s %-16s", "Completed", "Overdue", "Completion", "Focus time")))
	rows = append(rows, fmt.Sprintf("  %-16s %-16s %-16s %-16s",
		fmt.Sprintf("%d / %d", stats.Completed, stats.Total),
		fmt.Sprintf("%d", stats.Overdue),
		fmt.Sprintf("%d%%", stats.CompletionRate),
		query.FormatMinutes(focusMinutes),
	))
	return strings.Join(rows, "\n")
}
