package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/taskmaster/internal/store"
	"github.com/sadopc/taskmaster/internal/timer"
)

type pomodoroModel struct {
	store  *store.Store
	engine *timer.Engine
	width  int
	height int

	// Task picker overlay for starting a focus interval.
	picking    bool
	pickCursor int
	pickList   []store.Task

	taskTitle string
}

func newPomodoroModel(s *store.Store) pomodoroModel {
	engine := timer.New(func() timer.Config {
		st := s.GetSettings()
		return timer.Config{
			FocusMinutes:            st.PomodoroDuration,
			ShortBreakMinutes:       st.ShortBreakDuration,
			LongBreakMinutes:        st.LongBreakDuration,
			PomodorosUntilLongBreak: st.PomodorosUntilLongBreak,
		}
	}, s)

	return pomodoroModel{store: s, engine: engine}
}

func (p *pomodoroModel) setSize(w, h int) {
	p.width = w
	p.height = h
}

func (p pomodoroModel) update(msg tea.Msg) (pomodoroModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if p.engine.State() != timer.Running {
			return p, nil
		}
		before := p.engine.Type()
		p.engine.Tick()
		if p.engine.State() == timer.Idle {
			// Natural completion: the engine already advanced the type.
			return p, completionStatus(before)
		}
		return p, nil

	case settingsSavedMsg:
		p.engine.ReloadDurations()
		return p, nil

	case tea.KeyMsg:
		if p.picking {
			return p.updatePicker(msg)
		}
		return p.updateKeys(msg)
	}
	return p, nil
}

func completionStatus(completed timer.IntervalType) tea.Cmd {
	return func() tea.Msg {
		if completed == timer.Focus {
			return statusMsg{text: "Focus complete — break time! \a"}
		}
		return statusMsg{text: "Break over — back to focus \a"}
	}
}

func (p pomodoroModel) updateKeys(msg tea.KeyMsg) (pomodoroModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Start):
		return p.startTimer()

	case key.Matches(msg, keys.Pause):
		switch p.engine.State() {
		case timer.Running:
			p.engine.Pause()
		case timer.Paused:
			p.engine.Resume()
		}
		return p, nil

	case key.Matches(msg, keys.Reset):
		p.engine.Reset()
		return p, nil

	case key.Matches(msg, keys.Skip):
		p.engine.Skip()
		return p, nil

	case key.Matches(msg, keys.PickTask):
		if p.engine.State() != timer.Running {
			return p.openPicker()
		}

	case key.Matches(msg, keys.Left):
		p.cycleType(-1)
		return p, nil

	case key.Matches(msg, keys.Right):
		p.cycleType(1)
		return p, nil
	}
	return p, nil
}

func (p pomodoroModel) startTimer() (pomodoroModel, tea.Cmd) {
	err := p.engine.Start("")
	if err == timer.ErrNoTask {
		// Focus needs a task: offer the picker instead of failing.
		return p.openPicker()
	}
	return p, nil
}

func (p *pomodoroModel) cycleType(dir int) {
	if p.engine.State() == timer.Running {
		return
	}
	order := []timer.IntervalType{timer.Focus, timer.ShortBreak, timer.LongBreak}
	cur := 0
	for i, t := range order {
		if t == p.engine.Type() {
			cur = i
		}
	}
	p.engine.SetType(order[(cur+dir+len(order))%len(order)])
}

func (p pomodoroModel) openPicker() (pomodoroModel, tea.Cmd) {
	var open []store.Task
	for _, t := range p.store.GetTasks() {
		if t.Status != store.StatusComplete {
			open = append(open, t)
		}
	}
	if len(open) == 0 {
		return p, func() tea.Msg {
			return statusMsg{text: "No open tasks — create one first", isError: true}
		}
	}
	p.picking = true
	p.pickCursor = 0
	p.pickList = open
	return p, nil
}

func (p pomodoroModel) updatePicker(msg tea.KeyMsg) (pomodoroModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if p.pickCursor > 0 {
			p.pickCursor--
		}
	case key.Matches(msg, keys.Down):
		if p.pickCursor < len(p.pickList)-1 {
			p.pickCursor++
		}
	case key.Matches(msg, keys.Enter):
		task := p.pickList[p.pickCursor]
		p.picking = false
		p.taskTitle = task.Title
		p.engine.SetTask(task.ID)
		p.engine.Start(task.ID)
		return p, nil
	case key.Matches(msg, keys.Back):
		p.picking = false
	}
	return p, nil
}

func (p pomodoroModel) view() string {
	w := p.width - 4

	if p.picking {
		return p.renderPicker(w)
	}

	title := titleStyle.Render("Pomodoro")

	var timeDisplay, phaseLabel string
	display := p.engine.FormatRemaining()

	switch p.engine.Type() {
	case timer.Focus:
		timeDisplay = accentStyle.Bold(true).Width(w - 6).Align(lipgloss.Center).Render(display)
		phaseLabel = accentStyle.Bold(true).Render("FOCUS")
	case timer.ShortBreak:
		timeDisplay = successStyle.Bold(true).Width(w - 6).Align(lipgloss.Center).Render(display)
		phaseLabel = successStyle.Bold(true).Render("SHORT BREAK")
	case timer.LongBreak:
		timeDisplay = highlightStyle.Bold(true).Width(w - 6).Align(lipgloss.Center).Render(display)
		phaseLabel = highlightStyle.Bold(true).Render("LONG BREAK")
	}

	var stateLine string
	switch p.engine.State() {
	case timer.Running:
		stateLine = successStyle.Render("running")
	case timer.Paused:
		stateLine = warningStyle.Render("paused")
	default:
		timeDisplay = timerStyle.Width(w - 6).Render(display)
		stateLine = mutedStyle.Render("Press s to start")
	}

	taskLine := ""
	if p.engine.Type() == timer.Focus {
		if p.taskTitle != "" {
			taskLine = mutedStyle.Render("Task: ") + normalItemStyle.Render(p.taskTitle)
		} else {
			taskLine = mutedStyle.Render("No task selected — press t")
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		timeDisplay,
		phaseLabel,
		stateLine,
		"",
		p.renderProgress(),
		taskLine,
	)

	var controls string
	switch p.engine.State() {
	case timer.Running:
		controls = mutedStyle.Render("space: pause  r: reset  f: skip")
	case timer.Paused:
		controls = mutedStyle.Render("space: resume  r: reset  f: skip")
	default:
		controls = mutedStyle.Render("s: start  t: pick task  ←/→: interval  f: skip")
	}

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Center, content, "", controls),
	)
}

func (p pomodoroModel) renderProgress() string {
	cadence := p.store.GetSettings().PomodorosUntilLongBreak
	if cadence <= 0 {
		cadence = 4
	}
	done := p.engine.FocusCount() % cadence
	if done == 0 && p.engine.FocusCount() > 0 {
		done = cadence
	}

	var parts []string
	for i := 0; i < cadence; i++ {
		if i < done {
			parts = append(parts, successStyle.Render("●"))
		} else if i == done && p.engine.Type() == timer.Focus && p.engine.State() == timer.Running {
			parts = append(parts, accentStyle.Render("◐"))
		} else {
			parts = append(parts, mutedStyle.Render("○"))
		}
	}
	progress := strings.Join(parts, " ")
	counter := mutedStyle.Render(fmt.Sprintf("  %d completed", p.engine.FocusCount()))
	return progress + counter
}

func (p pomodoroModel) renderPicker(w int) string {
	var rows []string
	rows = append(rows, titleStyle.Render("Pick a task"))
	rows = append(rows, "")
	for i, t := range p.pickList {
		cursor := "  "
		style := normalItemStyle
		if i == p.pickCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+truncate(t.Title, w-10)))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: start focus  esc: cancel"))

	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
