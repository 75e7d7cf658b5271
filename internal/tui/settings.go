package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/taskmaster/internal/store"
)

type settingsModel struct {
	store  *store.Store
	width  int
	height int

	settings   store.UserSettings
	formActive bool
	form       *huh.Form

	theme       *string
	defaultView *string
	sortBy      *string
	sortOrder   *string

	pomodoro   *string
	shortBreak *string
	longBreak  *string
	cadence    *string

	notifications *bool
	reminders     *bool
	reminderTime  *string

	highContrast *bool
	largeText    *bool
}

func newSettingsModel(s *store.Store) settingsModel {
	theme, view, sortBy, sortOrder := "", "", "", ""
	pomo, short, long, cad, remind := "", "", "", "", ""
	var notif, rem, contrast, large bool
	return settingsModel{
		store:         s,
		settings:      store.DefaultSettings(),
		theme:         &theme,
		defaultView:   &view,
		sortBy:        &sortBy,
		sortOrder:     &sortOrder,
		pomodoro:      &pomo,
		shortBreak:    &short,
		longBreak:     &long,
		cadence:       &cad,
		notifications: &notif,
		reminders:     &rem,
		reminderTime:  &remind,
		highContrast:  &contrast,
		largeText:     &large,
	}
}

func (m *settingsModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m settingsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return settingsDataMsg{settings: m.store.GetSettings()}
	}
}

func positiveInt(s string) error {
	if n, err := strconv.Atoi(s); err != nil || n <= 0 {
		return fmt.Errorf("must be a positive number")
	}
	return nil
}

func (m settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case settingsDataMsg:
		m.settings = msg.settings
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.Edit):
			return m.showForm()
		}
	}
	return m, nil
}

func (m settingsModel) showForm() (settingsModel, tea.Cmd) {
	st := m.settings
	*m.theme = string(st.Theme)
	*m.defaultView = string(st.DefaultView)
	*m.sortBy = string(st.DefaultSortBy)
	*m.sortOrder = string(st.DefaultSortOrder)
	*m.pomodoro = strconv.Itoa(st.PomodoroDuration)
	*m.shortBreak = strconv.Itoa(st.ShortBreakDuration)
	*m.longBreak = strconv.Itoa(st.LongBreakDuration)
	*m.cadence = strconv.Itoa(st.PomodorosUntilLongBreak)
	*m.notifications = st.NotificationsEnabled
	*m.reminders = st.RemindersEnabled
	*m.reminderTime = strconv.Itoa(st.ReminderTime)
	*m.highContrast = st.HighContrastMode
	*m.largeText = st.LargeTextMode

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("Theme").
				Options(
					huh.NewOption("System", string(store.ThemeSystem)),
					huh.NewOption("Light", string(store.ThemeLight)),
					huh.NewOption("Dark", string(store.ThemeDark)),
				).Value(m.theme),
			huh.NewSelect[string]().Title("Default view").
				Options(
					huh.NewOption("Daily", string(store.ViewDaily)),
					huh.NewOption("Weekly", string(store.ViewWeekly)),
					huh.NewOption("By project", string(store.ViewProject)),
				).Value(m.defaultView),
			huh.NewSelect[string]().Title("Sort tasks by").
				Options(
					huh.NewOption("Due date", string(store.SortByDueDate)),
					huh.NewOption("Priority", string(store.SortByPriority)),
					huh.NewOption("Status", string(store.SortByStatus)),
					huh.NewOption("Created", string(store.SortByCreated)),
					huh.NewOption("Updated", string(store.SortByUpdated)),
				).Value(m.sortBy),
			huh.NewSelect[string]().Title("Sort order").
				Options(
					huh.NewOption("Ascending", string(store.SortAsc)),
					huh.NewOption("Descending", string(store.SortDesc)),
				).Value(m.sortOrder),
		).Title("Appearance"),
		huh.NewGroup(
			huh.NewInput().Title("Pomodoro length (min)").Value(m.pomodoro).Validate(positiveInt),
			huh.NewInput().Title("Short break (min)").Value(m.shortBreak).Validate(positiveInt),
			huh.NewInput().Title("Long break (min)").Value(m.longBreak).Validate(positiveInt),
			huh.NewInput().Title("Pomodoros until long break").Value(m.cadence).Validate(positiveInt),
		).Title("Pomodoro"),
		huh.NewGroup(
			huh.NewConfirm().Title("Notifications").Value(m.notifications),
			huh.NewConfirm().Title("Due reminders").Value(m.reminders),
			huh.NewInput().Title("Remind (min before due)").Value(m.reminderTime).Validate(positiveInt),
			huh.NewConfirm().Title("High contrast").Value(m.highContrast),
			huh.NewConfirm().Title("Large text").Value(m.largeText),
		).Title("Notifications & Accessibility"),
	).WithShowHelp(true).WithShowErrors(true)

	m.formActive = true
	return m, m.form.Init()
}

func (m settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			m.formActive = false
			m.form = nil
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.formActive = false
		m.form = nil
		m.save()
		return m, tea.Batch(m.refresh(), func() tea.Msg { return settingsSavedMsg{} })
	}

	return m, cmd
}

func (m settingsModel) save() {
	atoi := func(s string, fallback int) int {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
		return fallback
	}
	defaults := store.DefaultSettings()

	m.store.UpdateSettings(func(st *store.UserSettings) {
		st.Theme = store.Theme(*m.theme)
		st.DefaultView = store.ViewMode(*m.defaultView)
		st.DefaultSortBy = store.SortBy(*m.sortBy)
		st.DefaultSortOrder = store.SortOrder(*m.sortOrder)
		st.PomodoroDuration = atoi(*m.pomodoro, defaults.PomodoroDuration)
		st.ShortBreakDuration = atoi(*m.shortBreak, defaults.ShortBreakDuration)
		st.LongBreakDuration = atoi(*m.longBreak, defaults.LongBreakDuration)
		st.PomodorosUntilLongBreak = atoi(*m.cadence, defaults.PomodorosUntilLongBreak)
		st.NotificationsEnabled = *m.notifications
		st.RemindersEnabled = *m.reminders
		st.ReminderTime = atoi(*m.reminderTime, defaults.ReminderTime)
		st.HighContrastMode = *m.highContrast
		st.LargeTextMode = *m.largeText
	})
}

func (m settingsModel) view() string {
	w := m.width - 4

	if m.formActive && m.form != nil {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left,
				titleStyle.Render("Settings"), "", m.form.View(),
			),
		)
	}

	st := m.settings
	onOff := func(b bool) string {
		if b {
			return successStyle.Render("on")
		}
		return mutedStyle.Render("off")
	}
	row := func(label, value string) string {
		return fmt.Sprintf("  %s %s", lipgloss.NewStyle().Width(28).Render(label), highlightStyle.Render(value))
	}

	rows := []string{
		titleStyle.Render("Settings"),
		"",
		row("Theme", string(st.Theme)),
		row("Default view", string(st.DefaultView)),
		row("Sort", fmt.Sprintf("%s %s", st.DefaultSortBy, st.DefaultSortOrder)),
		"",
		row("Pomodoro", fmt.Sprintf("%d min", st.PomodoroDuration)),
		row("Short break", fmt.Sprintf("%d min", st.ShortBreakDuration)),
		row("Long break", fmt.Sprintf("%d min", st.LongBreakDuration)),
		row("Until long break", strconv.Itoa(st.PomodorosUntilLongBreak)),
		"",
		row("Notifications", onOff(st.NotificationsEnabled)),
		row("Due reminders", fmt.Sprintf("%s (%d min before)", onOff(st.RemindersEnabled), st.ReminderTime)),
		row("High contrast", onOff(st.HighContrastMode)),
		row("Large text", onOff(st.LargeTextMode)),
		"",
		mutedStyle.Render("Press enter to edit settings"),
	}

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
