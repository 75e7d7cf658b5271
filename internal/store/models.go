package store

import (
	"encoding/json"
	"fmt"
	"time"
)

type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in-progress"
	StatusComplete   TaskStatus = "complete"
)

func (s *TaskStatus) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch TaskStatus(v) {
	case StatusPending, StatusInProgress, StatusComplete:
		*s = TaskStatus(v)
		return nil
	}
	return fmt.Errorf("invalid task status %q", v)
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

func (p *TaskPriority) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch TaskPriority(v) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		*p = TaskPriority(v)
		return nil
	}
	return fmt.Errorf("invalid task priority %q", v)
}

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

func (t *Theme) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch Theme(v) {
	case ThemeLight, ThemeDark, ThemeSystem:
		*t = Theme(v)
		return nil
	}
	return fmt.Errorf("invalid theme %q", v)
}

type ViewMode string

const (
	ViewDaily   ViewMode = "daily"
	ViewWeekly  ViewMode = "weekly"
	ViewProject ViewMode = "project"
)

func (m *ViewMode) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch ViewMode(v) {
	case ViewDaily, ViewWeekly, ViewProject:
		*m = ViewMode(v)
		return nil
	}
	return fmt.Errorf("invalid view mode %q", v)
}

type SortBy string

const (
	SortByDueDate  SortBy = "dueDate"
	SortByPriority SortBy = "priority"
	SortByStatus   SortBy = "status"
	SortByCreated  SortBy = "created"
	SortByUpdated  SortBy = "updated"
)

func (s *SortBy) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch SortBy(v) {
	case SortByDueDate, SortByPriority, SortByStatus, SortByCreated, SortByUpdated:
		*s = SortBy(v)
		return nil
	}
	return fmt.Errorf("invalid sort key %q", v)
}

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

func (s *SortOrder) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch SortOrder(v) {
	case SortAsc, SortDesc:
		*s = SortOrder(v)
		return nil
	}
	return fmt.Errorf("invalid sort order %q", v)
}

type Subtask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Task is the unit of work. Status is the source of truth for completion;
// Completed is kept in sync on every create/update path so exported
// snapshots stay readable by callers that only look at the boolean.
type Task struct {
	ID               string       `json:"id"`
	Title            string       `json:"title"`
	Description      string       `json:"description"`
	Status           TaskStatus   `json:"status"`
	Priority         TaskPriority `json:"priority"`
	DueDate          string       `json:"dueDate,omitempty"` // ISO date, empty = none
	Tags             []string     `json:"tags"`
	Category         string       `json:"category,omitempty"`
	ProjectID        string       `json:"projectId,omitempty"`
	Completed        bool         `json:"completed"`
	Subtasks         []Subtask    `json:"subtasks,omitempty"`
	IsRecurring      bool         `json:"isRecurring,omitempty"`
	RecurringPattern string       `json:"recurringPattern,omitempty"`
	EstimatedTime    int          `json:"estimatedTime,omitempty"` // minutes
	ActualTime       int          `json:"actualTime,omitempty"`    // minutes
	Notes            string       `json:"notes,omitempty"`
	CreatedAt        time.Time    `json:"createdAt"`
	UpdatedAt        time.Time    `json:"updatedAt"`
}

type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

type Tag struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

type DateRange struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

type PresetFilters struct {
	Status   []TaskStatus   `json:"status,omitempty"`
	Priority []TaskPriority `json:"priority,omitempty"`
	Tags     []string       `json:"tags,omitempty"`
	Category string         `json:"category,omitempty"`
	Project  string         `json:"project,omitempty"`
	DueDate  *DateRange     `json:"dueDate,omitempty"`
}

type FilterPreset struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Filters PresetFilters `json:"filters"`
}

// UserSettings has exactly one logical instance per installation.
type UserSettings struct {
	Theme                   Theme          `json:"theme"`
	DefaultView             ViewMode       `json:"defaultView"`
	DefaultSortBy           SortBy         `json:"defaultSortBy"`
	DefaultSortOrder        SortOrder      `json:"defaultSortOrder"`
	DefaultFilterPresets    []FilterPreset `json:"defaultFilterPresets"`
	PomodoroDuration        int            `json:"pomodoroDuration"` // minutes
	ShortBreakDuration      int            `json:"shortBreakDuration"`
	LongBreakDuration       int            `json:"longBreakDuration"`
	PomodorosUntilLongBreak int            `json:"pomodorosUntilLongBreak"`
	NotificationsEnabled    bool           `json:"notificationsEnabled"`
	RemindersEnabled        bool           `json:"remindersEnabled"`
	ReminderTime            int            `json:"reminderTime"` // minutes before due
	HighContrastMode        bool           `json:"highContrastMode"`
	LargeTextMode           bool           `json:"largeTextMode"`
}

// PomodoroSession records one completed focus interval tied to a task.
type PomodoroSession struct {
	ID        string     `json:"id"`
	TaskID    string     `json:"taskId"`
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime,omitempty"`
	Duration  int        `json:"duration"` // minutes
	Completed bool       `json:"completed"`
}
