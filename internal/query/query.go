// Package query provides pure helpers for sorting, filtering, grouping and
// summarizing tasks. All functions take the reference time explicitly so
// date-sensitive behavior stays testable.
package query

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sadopc/taskmaster/internal/store"
)

var priorityRank = map[store.TaskPriority]int{
	store.PriorityLow:    1,
	store.PriorityMedium: 2,
	store.PriorityHigh:   3,
}

var statusRank = map[store.TaskStatus]int{
	store.StatusPending:    1,
	store.StatusInProgress: 2,
	store.StatusComplete:   3,
}

// Sort returns a sorted copy; the input is left untouched.
func Sort(tasks []store.Task, by store.SortBy, order store.SortOrder) []store.Task {
	out := make([]store.Task, len(tasks))
	copy(out, tasks)

	mult := 1
	if order == store.SortDesc {
		mult = -1
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch by {
		case store.SortByDueDate:
			da, aok := parseDue(a.DueDate)
			db, bok := parseDue(b.DueDate)
			if !aok && !bok {
				return false
			}
			// Tasks without a due date sort last regardless of order.
			if !aok {
				return false
			}
			if !bok {
				return true
			}
			return mult*compareTimes(da, db) < 0
		case store.SortByPriority:
			return mult*(priorityRank[a.Priority]-priorityRank[b.Priority]) < 0
		case store.SortByStatus:
			return mult*(statusRank[a.Status]-statusRank[b.Status]) < 0
		case store.SortByCreated:
			return mult*compareTimes(a.CreatedAt, b.CreatedAt) < 0
		case store.SortByUpdated:
			return mult*compareTimes(a.UpdatedAt, b.UpdatedAt) < 0
		}
		return false
	})
	return out
}

func compareTimes(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	}
	return 0
}

// Filter describes the criteria a task must satisfy. Zero-value fields
// match everything.
type Filter struct {
	Status   []store.TaskStatus
	Priority []store.TaskPriority
	Tags     []string
	Category string
	Project  string
	Search   string
	DueFrom  string
	DueTo    string
}

// Apply returns the tasks matching every set criterion.
func (f Filter) Apply(tasks []store.Task) []store.Task {
	var out []store.Task
	for _, t := range tasks {
		if f.matches(t) {
			out = append(out, t)
		}
	}
	return out
}

func (f Filter) matches(t store.Task) bool {
	if len(f.Status) > 0 && !containsStatus(f.Status, t.Status) {
		return false
	}
	if len(f.Priority) > 0 && !containsPriority(f.Priority, t.Priority) {
		return false
	}
	if len(f.Tags) > 0 && !hasAnyTag(t.Tags, f.Tags) {
		return false
	}
	if f.Category != "" && t.Category != f.Category {
		return false
	}
	if f.Project != "" && t.ProjectID != f.Project {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(t.Title), needle) &&
			!strings.Contains(strings.ToLower(t.Description), needle) {
			return false
		}
	}
	if f.DueFrom != "" || f.DueTo != "" {
		due, ok := parseDue(t.DueDate)
		if ok {
			if from, fok := parseDue(f.DueFrom); fok && due.Before(from) {
				return false
			}
			if to, tok := parseDue(f.DueTo); tok && due.After(to) {
				return false
			}
		}
	}
	return true
}

func containsStatus(set []store.TaskStatus, s store.TaskStatus) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

func containsPriority(set []store.TaskPriority, p store.TaskPriority) bool {
	for _, v := range set {
		if v == p {
			return true
		}
	}
	return false
}

func hasAnyTag(taskTags, wanted []string) bool {
	for _, w := range wanted {
		for _, tt := range taskTags {
			if tt == w {
				return true
			}
		}
	}
	return false
}

// IsOverdue reports whether a task's due date has passed without the task
// being complete.
func IsOverdue(t store.Task, now time.Time) bool {
	if t.Status == store.StatusComplete {
		return false
	}
	due, ok := parseDue(t.DueDate)
	if !ok {
		return false
	}
	return now.After(due)
}

func IsDueToday(t store.Task, now time.Time) bool {
	due, ok := parseDue(t.DueDate)
	if !ok {
		return false
	}
	return due.Year() == now.Year() && due.YearDay() == now.YearDay()
}

const noDueDate = "No Due Date"

// GroupByDate buckets tasks by due date (YYYY-MM-DD); tasks without a due
// date land under "No Due Date".
func GroupByDate(tasks []store.Task) map[string][]store.Task {
	grouped := make(map[string][]store.Task)
	for _, t := range tasks {
		key := noDueDate
		if due, ok := parseDue(t.DueDate); ok {
			key = due.Format("2006-01-02")
		}
		grouped[key] = append(grouped[key], t)
	}
	return grouped
}

func GroupByProject(tasks []store.Task) map[string][]store.Task {
	grouped := make(map[string][]store.Task)
	for _, t := range tasks {
		key := t.ProjectID
		if key == "" {
			key = "No Project"
		}
		grouped[key] = append(grouped[key], t)
	}
	return grouped
}

func GroupByCategory(tasks []store.Task) map[string][]store.Task {
	grouped := make(map[string][]store.Task)
	for _, t := range tasks {
		key := t.Category
		if key == "" {
			key = "Uncategorized"
		}
		grouped[key] = append(grouped[key], t)
	}
	return grouped
}

// Stats summarizes a task list.
type Stats struct {
	Completed      int
	Total          int
	Overdue        int
	TimeSpent      int // minutes, sum of actual time
	CompletionRate int // percentage, rounded
}

func Statistics(tasks []store.Task, now time.Time) Stats {
	var st Stats
	st.Total = len(tasks)
	for _, t := range tasks {
		if t.Status == store.StatusComplete {
			st.Completed++
		}
		if IsOverdue(t, now) {
			st.Overdue++
		}
		st.TimeSpent += t.ActualTime
	}
	if st.Total > 0 {
		st.CompletionRate = int(float64(st.Completed)/float64(st.Total)*100 + 0.5)
	}
	return st
}

// FormatMinutes renders minutes as "Nh Mm", dropping zero components.
func FormatMinutes(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}

// parseDue accepts ISO dates and full timestamps.
func parseDue(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
