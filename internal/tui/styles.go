package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/taskmaster/internal/store"
)

// Color palette. Light/dark variants resolve at render time against the
// background chosen in ApplyTheme.
var (
	colorPrimary   = lipgloss.AdaptiveColor{Light: "#2F5FD0", Dark: "#7AA2F7"}
	colorMuted     = lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#666666"}
	colorSuccess   = lipgloss.AdaptiveColor{Light: "#1E8E4E", Dark: "#2ECC71"}
	colorWarning   = lipgloss.AdaptiveColor{Light: "#B06E0A", Dark: "#F39C12"}
	colorError     = lipgloss.AdaptiveColor{Light: "#C0392B", Dark: "#E74C3C"}
	colorFg        = lipgloss.AdaptiveColor{Light: "#2A2E3F", Dark: "#C0CAF5"}
	colorSubtle    = lipgloss.AdaptiveColor{Light: "#C8CCDC", Dark: "#414868"}
	colorHighlight = lipgloss.AdaptiveColor{Light: "#7C4DBF", Dark: "#BB9AF7"}
	colorAccent    = lipgloss.AdaptiveColor{Light: "#D64545", Dark: "#FF6B6B"}
)

// Styles
var (
	// Tabs
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(colorPrimary).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Padding(0, 2)

	// Panels
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(1, 2)

	activePanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorPrimary).
				Padding(1, 2)

	// Countdown display
	timerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Align(lipgloss.Center)

	// Text
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorFg)

	accentStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	highlightStyle = lipgloss.NewStyle().
			Foreground(colorHighlight)

	// Header/footer
	headerStyle = lipgloss.NewStyle().
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	// List items
	selectedItemStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	normalItemStyle = lipgloss.NewStyle().
			Foreground(colorFg)
)

func priorityStyle(p store.TaskPriority) lipgloss.Style {
	switch p {
	case store.PriorityHigh:
		return errorStyle
	case store.PriorityMedium:
		return warningStyle
	}
	return successStyle
}

func statusIcon(s store.TaskStatus) string {
	switch s {
	case store.StatusComplete:
		return successStyle.Render("●")
	case store.StatusInProgress:
		return warningStyle.Render("◐")
	}
	return mutedStyle.Render("○")
}
