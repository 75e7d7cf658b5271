package query

import (
	"testing"
	"time"

	"github.com/sadopc/taskmaster/internal/store"
)

func task(id string, mutate func(*store.Task)) store.Task {
	t := store.Task{
		ID:       id,
		Title:    "Task " + id,
		Status:   store.StatusPending,
		Priority: store.PriorityMedium,
	}
	if mutate != nil {
		mutate(&t)
	}
	return t
}

// ============================================================
// Sorting
// ============================================================

func TestSortByDueDate(t *testing.T) {
	tasks := []store.Task{
		task("c", func(t *store.Task) { t.DueDate = "2026-03-01" }),
		task("none", nil),
		task("a", func(t *store.Task) { t.DueDate = "2026-01-01" }),
		task("b", func(t *store.Task) { t.DueDate = "2026-02-01" }),
	}

	got := Sort(tasks, store.SortByDueDate, store.SortAsc)
	wantOrder := []string{"a", "b", "c", "none"}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Fatalf("asc position %d: want %s, got %s", i, id, got[i].ID)
		}
	}

	// Descending still sorts dateless tasks last
	got = Sort(tasks, store.SortByDueDate, store.SortDesc)
	wantOrder = []string{"c", "b", "a", "none"}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Fatalf("desc position %d: want %s, got %s", i, id, got[i].ID)
		}
	}
}

func TestSortByPriority(t *testing.T) {
	tasks := []store.Task{
		task("m", func(t *store.Task) { t.Priority = store.PriorityMedium }),
		task("h", func(t *store.Task) { t.Priority = store.PriorityHigh }),
		task("l", func(t *store.Task) { t.Priority = store.PriorityLow }),
	}

	got := Sort(tasks, store.SortByPriority, store.SortDesc)
	if got[0].ID != "h" || got[1].ID != "m" || got[2].ID != "l" {
		t.Fatalf("unexpected order: %s %s %s", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	tasks := []store.Task{
		task("b", func(t *store.Task) { t.Priority = store.PriorityHigh }),
		task("a", func(t *store.Task) { t.Priority = store.PriorityLow }),
	}
	Sort(tasks, store.SortByPriority, store.SortAsc)
	if tasks[0].ID != "b" {
		t.Fatal("input slice was reordered")
	}
}

func TestSortStable(t *testing.T) {
	tasks := []store.Task{
		task("first", nil),
		task("second", nil),
		task("third", nil),
	}
	got := Sort(tasks, store.SortByPriority, store.SortAsc)
	if got[0].ID != "first" || got[1].ID != "second" || got[2].ID != "third" {
		t.Fatal("equal-key tasks were reordered")
	}
}

// ============================================================
// Filtering
// ============================================================

func TestFilterZeroValueMatchesAll(t *testing.T) {
	tasks := []store.Task{task("a", nil), task("b", nil)}
	if got := (Filter{}).Apply(tasks); len(got) != 2 {
		t.Fatalf("expected all tasks, got %d", len(got))
	}
}

func TestFilterCriteriaAreANDed(t *testing.T) {
	tasks := []store.Task{
		task("match", func(t *store.Task) {
			t.Status = store.StatusPending
			t.Priority = store.PriorityHigh
			t.Category = "work"
		}),
		task("wrong-priority", func(t *store.Task) {
			t.Status = store.StatusPending
			t.Priority = store.PriorityLow
			t.Category = "work"
		}),
		task("wrong-category", func(t *store.Task) {
			t.Status = store.StatusPending
			t.Priority = store.PriorityHigh
			t.Category = "home"
		}),
	}

	f := Filter{
		Status:   []store.TaskStatus{store.StatusPending},
		Priority: []store.TaskPriority{store.PriorityHigh},
		Category: "work",
	}
	got := f.Apply(tasks)
	if len(got) != 1 || got[0].ID != "match" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestFilterTagsMatchAny(t *testing.T) {
	tasks := []store.Task{
		task("a", func(t *store.Task) { t.Tags = []string{"x", "y"} }),
		task("b", func(t *store.Task) { t.Tags = []string{"z"} }),
		task("c", nil),
	}

	got := Filter{Tags: []string{"y", "z"}}.Apply(tasks)
	if len(got) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(got))
	}
}

func TestFilterSearchCaseInsensitive(t *testing.T) {
	tasks := []store.Task{
		task("a", func(t *store.Task) { t.Title = "Buy GROCERIES" }),
		task("b", func(t *store.Task) { t.Description = "pick up groceries after work" }),
		task("c", func(t *store.Task) { t.Title = "Unrelated" }),
	}

	got := Filter{Search: "groceries"}.Apply(tasks)
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
}

func TestFilterDueRange(t *testing.T) {
	tasks := []store.Task{
		task("early", func(t *store.Task) { t.DueDate = "2026-01-05" }),
		task("in", func(t *store.Task) { t.DueDate = "2026-02-10" }),
		task("late", func(t *store.Task) { t.DueDate = "2026-03-20" }),
		task("none", nil),
	}

	got := Filter{DueFrom: "2026-02-01", DueTo: "2026-02-28"}.Apply(tasks)
	// Dateless tasks pass a due-range filter.
	if len(got) != 2 || got[0].ID != "in" || got[1].ID != "none" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

// ============================================================
// Due date helpers
// ============================================================

func TestIsOverdue(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	overdue := task("a", func(t *store.Task) { t.DueDate = "2026-06-01" })
	if !IsOverdue(overdue, now) {
		t.Fatal("past due task should be overdue")
	}

	completed := task("b", func(t *store.Task) {
		t.DueDate = "2026-06-01"
		t.Status = store.StatusComplete
	})
	if IsOverdue(completed, now) {
		t.Fatal("completed task is never overdue")
	}

	future := task("c", func(t *store.Task) { t.DueDate = "2026-07-01" })
	if IsOverdue(future, now) {
		t.Fatal("future task is not overdue")
	}

	if IsOverdue(task("d", nil), now) {
		t.Fatal("dateless task is not overdue")
	}
}

func TestIsDueToday(t *testing.T) {
	now := time.Date(2026, 6, 15, 23, 0, 0, 0, time.UTC)
	if !IsDueToday(task("a", func(t *store.Task) { t.DueDate = "2026-06-15" }), now) {
		t.Fatal("same-day task should be due today")
	}
	if IsDueToday(task("b", func(t *store.Task) { t.DueDate = "2026-06-16" }), now) {
		t.Fatal("tomorrow's task is not due today")
	}
}

// ============================================================
// Grouping
// ============================================================

func TestGroupByDate(t *testing.T) {
	tasks := []store.Task{
		task("a", func(t *store.Task) { t.DueDate = "2026-06-15" }),
		task("b", func(t *store.Task) { t.DueDate = "2026-06-15" }),
		task("c", nil),
	}

	grouped := GroupByDate(tasks)
	if len(grouped["2026-06-15"]) != 2 {
		t.Fatalf("unexpected groups: %v", grouped)
	}
	if len(grouped["No Due Date"]) != 1 {
		t.Fatal("dateless task missing from its bucket")
	}
}

func TestGroupByProjectAndCategory(t *testing.T) {
	tasks := []store.Task{
		task("a", func(t *store.Task) { t.ProjectID = "p1"; t.Category = "work" }),
		task("b", nil),
	}

	byProject := GroupByProject(tasks)
	if len(byProject["p1"]) != 1 || len(byProject["No Project"]) != 1 {
		t.Fatalf("unexpected project groups: %v", byProject)
	}

	byCategory := GroupByCategory(tasks)
	if len(byCategory["work"]) != 1 || len(byCategory["Uncategorized"]) != 1 {
		t.Fatalf("unexpected category groups: %v", byCategory)
	}
}

// ============================================================
// Statistics
// ============================================================

func TestStatistics(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	tasks := []store.Task{
		task("done", func(t *store.Task) {
			t.Status = store.StatusComplete
			t.ActualTime = 90
		}),
		task("overdue", func(t *store.Task) {
			t.DueDate = "2026-06-01"
			t.ActualTime = 30
		}),
		task("open", nil),
	}

	st := Statistics(tasks, now)
	if st.Total != 3 || st.Completed != 1 || st.Overdue != 1 {
		t.Fatalf("unexpected stats: %+v", st)
	}
	if st.TimeSpent != 120 {
		t.Fatalf("time spent %d", st.TimeSpent)
	}
	if st.CompletionRate != 33 {
		t.Fatalf("completion rate %d", st.CompletionRate)
	}
}

func TestStatisticsEmpty(t *testing.T) {
	st := Statistics(nil, time.Now())
	if st.Total != 0 || st.CompletionRate != 0 {
		t.Fatalf("unexpected stats for empty input: %+v", st)
	}
}

func TestFormatMinutes(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, "0m"},
		{45, "45m"},
		{60, "1h"},
		{90, "1h 30m"},
		{125, "2h 5m"},
	}
	for _, c := range cases {
		if got := FormatMinutes(c.minutes); got != c.want {
			t.Fatalf("FormatMinutes(%d) = %q, want %q", c.minutes, got, c.want)
		}
	}
}
