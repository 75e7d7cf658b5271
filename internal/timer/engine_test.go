package timer

import (
	"testing"
	"time"
)

type recordedSession struct {
	taskID  string
	start   time.Time
	end     time.Time
	minutes int
}

type fakeRecorder struct {
	sessions []recordedSession
}

func (r *fakeRecorder) RecordSession(taskID string, start, end time.Time, minutes int) {
	r.sessions = append(r.sessions, recordedSession{taskID, start, end, minutes})
}

func testConfig() Config {
	return Config{
		FocusMinutes:            25,
		ShortBreakMinutes:       5,
		LongBreakMinutes:        15,
		PomodorosUntilLongBreak: 4,
	}
}

func newTestEngine(rec Recorder) *Engine {
	return New(testConfig, rec)
}

// tickN drives the engine n seconds forward.
func tickN(e *Engine, n int) {
	for i := 0; i < n; i++ {
		e.Tick()
	}
}

// ============================================================
// Start / pause / resume
// ============================================================

func TestStartRequiresTaskForFocus(t *testing.T) {
	e := newTestEngine(nil)

	if err := e.Start(""); err != ErrNoTask {
		t.Fatalf("expected ErrNoTask, got %v", err)
	}
	if e.State() != Idle {
		t.Fatal("failed start should leave the engine idle")
	}

	if err := e.Start("task-1"); err != nil {
		t.Fatal(err)
	}
	if e.State() != Running || e.TaskID() != "task-1" {
		t.Fatalf("unexpected state after start: %v / %q", e.State(), e.TaskID())
	}
}

func TestBreaksStartWithoutTask(t *testing.T) {
	e := newTestEngine(nil)
	e.SetType(ShortBreak)

	if err := e.Start(""); err != nil {
		t.Fatalf("break should start without a task: %v", err)
	}
	if e.Remaining() != 5*60 {
		t.Fatalf("expected short break duration, got %d", e.Remaining())
	}
}

func TestPausePreservesRemaining(t *testing.T) {
	e := newTestEngine(nil)
	e.Start("t")
	tickN(e, 100)

	e.Pause()
	if e.State() != Paused {
		t.Fatal("expected paused")
	}
	remaining := e.Remaining()

	// Ticks while paused are ignored
	tickN(e, 50)
	if e.Remaining() != remaining {
		t.Fatal("paused engine consumed ticks")
	}

	e.Resume()
	if e.State() != Running {
		t.Fatal("expected running after resume")
	}
	e.Tick()
	if e.Remaining() != remaining-1 {
		t.Fatal("resume did not continue from paused remaining")
	}
}

func TestStartWhilePausedResumes(t *testing.T) {
	e := newTestEngine(nil)
	e.Start("t")
	tickN(e, 10)
	e.Pause()

	if err := e.Start(""); err != nil {
		t.Fatal(err)
	}
	if e.State() != Running {
		t.Fatal("start while paused should resume")
	}
}

func TestTickIgnoredWhenIdle(t *testing.T) {
	e := newTestEngine(nil)
	before := e.Remaining()
	tickN(e, 10)
	if e.Remaining() != before {
		t.Fatal("idle engine consumed ticks")
	}
}

// ============================================================
// Completion and cadence
// ============================================================

func TestFocusCompletionRecordsSession(t *testing.T) {
	rec := &fakeRecorder{}
	e := newTestEngine(rec)

	start := time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC)
	clock := start
	e.now = func() time.Time { return clock }

	e.Start("task-1")
	clock = start.Add(25 * time.Minute)
	tickN(e, 25*60)

	if len(rec.sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(rec.sessions))
	}
	s := rec.sessions[0]
	if s.taskID != "task-1" || s.minutes != 25 {
		t.Fatalf("unexpected session: %+v", s)
	}
	if !s.start.Equal(start) || !s.end.Equal(clock) {
		t.Fatalf("session window %v..%v", s.start, s.end)
	}

	if e.State() != Idle || e.Type() != ShortBreak {
		t.Fatalf("expected idle short break after first focus, got %v %v", e.State(), e.Type())
	}
	if e.FocusCount() != 1 {
		t.Fatalf("focus count %d", e.FocusCount())
	}
	if e.Remaining() != 5*60 {
		t.Fatalf("expected short break loaded, remaining %d", e.Remaining())
	}
}

func TestLongBreakCadence(t *testing.T) {
	e := newTestEngine(&fakeRecorder{})

	// Completing focus intervals 1..3 yields short breaks, the 4th a long one.
	for i := 1; i <= 4; i++ {
		e.Start("t")
		tickN(e, e.Remaining())

		want := ShortBreak
		if i == 4 {
			want = LongBreak
		}
		if e.Type() != want {
			t.Fatalf("after focus %d: expected %v, got %v", i, want, e.Type())
		}

		// Complete the break to come back to focus
		e.Start("")
		tickN(e, e.Remaining())
		if e.Type() != Focus {
			t.Fatalf("after break %d: expected focus, got %v", i, e.Type())
		}
	}
}

func TestBreakCompletionRecordsNothing(t *testing.T) {
	rec := &fakeRecorder{}
	e := newTestEngine(rec)

	e.SetType(ShortBreak)
	e.Start("")
	tickN(e, e.Remaining())

	if len(rec.sessions) != 0 {
		t.Fatal("break completion must not log a session")
	}
	if e.FocusCount() != 0 {
		t.Fatal("break completion must not advance the focus count")
	}
}

func TestFocusWithoutRecorder(t *testing.T) {
	e := newTestEngine(nil)
	e.Start("t")
	tickN(e, e.Remaining())
	// No panic; cadence still advances.
	if e.Type() != ShortBreak || e.FocusCount() != 1 {
		t.Fatalf("unexpected state: %v count=%d", e.Type(), e.FocusCount())
	}
}

// ============================================================
// Skip / reset / type switching
// ============================================================

func TestSkipAdvancesWithoutSession(t *testing.T) {
	rec := &fakeRecorder{}
	e := newTestEngine(rec)

	e.Start("t")
	tickN(e, 30)
	e.Skip()

	if len(rec.sessions) != 0 {
		t.Fatal("skip must not record a session")
	}
	if e.FocusCount() != 1 {
		t.Fatal("skipping focus still counts toward the cadence")
	}
	if e.Type() != ShortBreak || e.State() != Idle {
		t.Fatalf("unexpected state after skip: %v %v", e.State(), e.Type())
	}
}

func TestSkipBreakDoesNotCount(t *testing.T) {
	e := newTestEngine(nil)
	e.SetType(LongBreak)
	e.Skip()
	if e.FocusCount() != 0 {
		t.Fatal("skipping a break must not advance the focus count")
	}
	if e.Type() != Focus {
		t.Fatalf("expected focus after skipped break, got %v", e.Type())
	}
}

func TestReset(t *testing.T) {
	e := newTestEngine(nil)
	e.Start("t")
	tickN(e, 500)

	e.Reset()
	if e.State() != Idle {
		t.Fatal("expected idle after reset")
	}
	if e.Remaining() != 25*60 {
		t.Fatalf("expected nominal duration restored, got %d", e.Remaining())
	}
	if e.Type() != Focus {
		t.Fatal("reset must not change the interval type")
	}
}

func TestSetTypeIgnoredWhileRunning(t *testing.T) {
	e := newTestEngine(nil)
	e.Start("t")
	tickN(e, 10)

	e.SetType(LongBreak)
	if e.Type() != Focus {
		t.Fatal("type switch must be ignored while running")
	}
	if e.Remaining() != 25*60-10 {
		t.Fatal("ignored switch must not touch remaining")
	}

	e.Pause()
	e.SetType(LongBreak)
	if e.Type() != LongBreak || e.State() != Idle || e.Remaining() != 15*60 {
		t.Fatalf("paused switch failed: %v %v %d", e.State(), e.Type(), e.Remaining())
	}
}

// ============================================================
// Settings reload
// ============================================================

func TestReloadDurations(t *testing.T) {
	cfg := testConfig()
	e := New(func() Config { return cfg }, nil)

	cfg.FocusMinutes = 50
	e.ReloadDurations()
	if e.Remaining() != 50*60 {
		t.Fatalf("idle reload should apply new duration, got %d", e.Remaining())
	}

	e.Start("t")
	tickN(e, 10)
	cfg.FocusMinutes = 10
	e.ReloadDurations()
	if e.Remaining() != 50*60-10 {
		t.Fatal("running countdown must not change on reload")
	}

	// New duration applies on the next fresh interval of that type
	e.Reset()
	if e.Remaining() != 10*60 {
		t.Fatalf("expected new duration after reset, got %d", e.Remaining())
	}
}

func TestCompletionUsesFreshConfig(t *testing.T) {
	cfg := testConfig()
	e := New(func() Config { return cfg }, nil)

	e.Start("t")
	cfg.ShortBreakMinutes = 7
	tickN(e, e.Remaining())

	if e.Type() != ShortBreak || e.Remaining() != 7*60 {
		t.Fatalf("completion should load updated break duration, got %v %d", e.Type(), e.Remaining())
	}
}

// ============================================================
// Formatting
// ============================================================

func TestFormatRemaining(t *testing.T) {
	e := newTestEngine(nil)
	if got := e.FormatRemaining(); got != "25:00" {
		t.Fatalf("got %q", got)
	}
	e.Start("t")
	tickN(e, 61)
	if got := e.FormatRemaining(); got != "23:59" {
		t.Fatalf("got %q", got)
	}
}
