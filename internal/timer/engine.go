// Package timer implements the pomodoro countdown state machine. The engine
// is a single-instance machine over two axes: the timer state (idle,
// running, paused) and the interval type (focus, short break, long break).
// It does no scheduling of its own; the owner delivers one-second ticks
// while exactly one tick source is active, so a discarded engine simply
// stops receiving ticks.
package timer

import (
	"errors"
	"fmt"
	"time"
)

type State int

const (
	Idle State = iota
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "idle"
	}
}

type IntervalType int

const (
	Focus IntervalType = iota
	ShortBreak
	LongBreak
)

func (t IntervalType) String() string {
	switch t {
	case ShortBreak:
		return "short break"
	case LongBreak:
		return "long break"
	default:
		return "focus"
	}
}

// Config is the subset of user settings the engine reads. It is fetched
// fresh on every completion and re-derive, so settings changes take effect
// without restarting the engine.
type Config struct {
	FocusMinutes            int
	ShortBreakMinutes       int
	LongBreakMinutes        int
	PomodorosUntilLongBreak int
}

// Recorder receives one record per naturally completed focus interval that
// had a task associated.
type Recorder interface {
	RecordSession(taskID string, start, end time.Time, minutes int)
}

// ErrNoTask is returned when a focus interval is started from idle without
// a task. A paused focus session may resume without re-selecting.
var ErrNoTask = errors.New("focus interval requires a selected task")

type Engine struct {
	config func() Config
	rec    Recorder
	now    func() time.Time

	state      State
	typ        IntervalType
	remaining  int // seconds
	focusCount int
	taskID     string
	startedAt  time.Time
}

func New(config func() Config, rec Recorder) *Engine {
	e := &Engine{config: config, rec: rec, now: time.Now}
	e.remaining = e.duration(Focus)
	return e
}

func (e *Engine) State() State       { return e.state }
func (e *Engine) Type() IntervalType { return e.typ }
func (e *Engine) Remaining() int     { return e.remaining }
func (e *Engine) FocusCount() int    { return e.focusCount }
func (e *Engine) TaskID() string     { return e.taskID }

// Start begins the countdown from idle, capturing the session start time.
// Starting a focus interval requires a task unless one is already selected;
// break intervals never do. Calling Start while paused resumes.
func (e *Engine) Start(taskID string) error {
	switch e.state {
	case Running:
		return nil
	case Paused:
		e.Resume()
		return nil
	}
	if taskID != "" {
		e.taskID = taskID
	}
	if e.typ == Focus && e.taskID == "" {
		return ErrNoTask
	}
	e.startedAt = e.now()
	e.state = Running
	return nil
}

// Pause suspends the countdown without resetting remaining time.
func (e *Engine) Pause() {
	if e.state == Running {
		e.state = Paused
	}
}

// Resume continues a paused countdown. The original session start time is
// preserved; a resumed session's eventual logged startTime is the time of
// the first start, not the resume.
func (e *Engine) Resume() {
	if e.state == Paused {
		e.state = Running
	}
}

// Tick decrements the remaining time by one second while running.
// Decrementing from 1 to 0 completes the interval: completion side effects
// are applied and the machine lands back in idle with the next interval
// type loaded. Ticks in any other state are ignored.
func (e *Engine) Tick() {
	if e.state != Running {
		return
	}
	e.remaining--
	if e.remaining > 0 {
		return
	}
	e.remaining = 0
	e.complete()
}

// complete applies natural-completion side effects: session logging for
// focus intervals with a task, focus-count advancement, and the cadence
// rule for picking the next interval type.
func (e *Engine) complete() {
	cfg := e.config()
	if e.typ == Focus {
		if e.taskID != "" && e.rec != nil {
			e.rec.RecordSession(e.taskID, e.startedAt, e.now(), cfg.FocusMinutes)
		}
		e.focusCount++
	}
	e.advance(cfg)
}

// Skip advances to the next interval type using the same cadence logic as
// natural completion, without recording a session and without requiring the
// countdown to reach zero.
func (e *Engine) Skip() {
	cfg := e.config()
	if e.typ == Focus {
		e.focusCount++
	}
	e.advance(cfg)
}

func (e *Engine) advance(cfg Config) {
	if e.typ == Focus {
		if cfg.PomodorosUntilLongBreak > 0 && e.focusCount%cfg.PomodorosUntilLongBreak == 0 {
			e.typ = LongBreak
		} else {
			e.typ = ShortBreak
		}
	} else {
		e.typ = Focus
	}
	e.state = Idle
	e.startedAt = time.Time{}
	e.remaining = e.duration(e.typ)
}

// Reset returns to idle, clears the captured start time, and restores the
// nominal duration for the current interval type.
func (e *Engine) Reset() {
	e.state = Idle
	e.startedAt = time.Time{}
	e.remaining = e.duration(e.typ)
}

// SetType switches the interval type, resetting remaining time to that
// type's configured duration and forcing idle. Ignored while running.
func (e *Engine) SetType(t IntervalType) {
	if e.state == Running {
		return
	}
	e.typ = t
	e.state = Idle
	e.startedAt = time.Time{}
	e.remaining = e.duration(t)
}

// SetTask selects the task for the next focus session.
func (e *Engine) SetTask(taskID string) {
	e.taskID = taskID
}

// ReloadDurations re-derives the remaining time for the active type after a
// settings change. While running or paused the already-counting-down value
// is left untouched until the next reset, type switch, or completion.
func (e *Engine) ReloadDurations() {
	if e.state == Idle {
		e.remaining = e.duration(e.typ)
	}
}

func (e *Engine) duration(t IntervalType) int {
	cfg := e.config()
	switch t {
	case ShortBreak:
		return cfg.ShortBreakMinutes * 60
	case LongBreak:
		return cfg.LongBreakMinutes * 60
	default:
		return cfg.FocusMinutes * 60
	}
}

// FormatRemaining renders the remaining seconds as zero-padded MM:SS.
func (e *Engine) FormatRemaining() string {
	return fmt.Sprintf("%02d:%02d", e.remaining/60, e.remaining%60)
}
