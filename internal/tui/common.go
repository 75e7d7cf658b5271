package tui

import (
	"time"

	"github.com/sadopc/taskmaster/internal/store"
)

// viewState represents the currently active view.
type viewState int

const (
	viewTasks viewState = iota
	viewProjects
	viewPomodoro
	viewAnalytics
	viewSettings
)

var viewNames = []string{"Tasks", "Projects", "Pomodoro", "Analytics", "Settings"}

// --- Messages ---

type tasksDataMsg struct {
	tasks    []store.Task
	projects []store.Project
}

type projectsDataMsg struct {
	projects   []store.Project
	categories []store.Category
	tags       []store.Tag
}

type analyticsDataMsg struct {
	tasks    []store.Task
	sessions []store.PomodoroSession
}

type settingsDataMsg struct {
	settings store.UserSettings
}

// settingsSavedMsg tells the pomodoro view to re-derive its idle countdown.
type settingsSavedMsg struct{}

type statusMsg struct {
	text    string
	isError bool
}

type tickMsg time.Time

type exportDoneMsg struct {
	path string
}

// --- Helpers ---

func formatDate(t time.Time) string {
	return t.Local().Format("Jan 02, 2006")
}

func truncate(s string, n int) string {
	if n <= 3 || len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
