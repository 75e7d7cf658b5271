package tui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/taskmaster/internal/query"
	"github.com/sadopc/taskmaster/internal/store"
)

// statusFilters is the cycle order for the list filter: nil means all.
var statusFilters = [][]store.TaskStatus{
	nil,
	{store.StatusPending},
	{store.StatusInProgress},
	{store.StatusComplete},
}

var statusFilterNames = []string{"all", "pending", "in progress", "complete"}

// taskGrouping partitions the list into labelled sections.
type taskGrouping int

const (
	groupNone taskGrouping = iota
	groupDate
	groupProject
	groupCategory
)

var groupingNames = []string{"flat", "by date", "by project", "by category"}

// taskSection is one labelled slice of the visible list. Concatenating the
// sections in order yields the cursor order.
type taskSection struct {
	label string
	tasks []store.Task
}

type tasksModel struct {
	store  *store.Store
	width  int
	height int

	tasks    []store.Task
	projects []store.Project
	cursor   int

	sortBy    store.SortBy
	sortOrder store.SortOrder
	filterIdx int
	grouping  taskGrouping

	formActive bool
	form       *huh.Form
	editingID  string // empty = creating

	// Form field pointers (survive value copies)
	formTitle       *string
	formDescription *string
	formPriority    *string
	formStatus      *string
	formDueDate     *string
	formProject     *string
	formCategory    *string
	formTags        *[]string
	formEstimate    *string
}

func newTasksModel(s *store.Store) tasksModel {
	settings := s.GetSettings()

	grouping := groupNone
	switch settings.DefaultView {
	case store.ViewDaily, store.ViewWeekly:
		grouping = groupDate
	case store.ViewProject:
		grouping = groupProject
	}

	title, desc, pri, status := "", "", "", ""
	due, proj, cat, est := "", "", "", ""
	var tags []string
	return tasksModel{
		store:           s,
		sortBy:          settings.DefaultSortBy,
		sortOrder:       settings.DefaultSortOrder,
		grouping:        grouping,
		formTitle:       &title,
		formDescription: &desc,
		formPriority:    &pri,
		formStatus:      &status,
		formDueDate:     &due,
		formProject:     &proj,
		formCategory:    &cat,
		formTags:        &tags,
		formEstimate:    &est,
	}
}

func (m *tasksModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m tasksModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return tasksDataMsg{
			tasks:    m.store.GetTasks(),
			projects: m.store.GetProjects(),
		}
	}
}

// sections applies the filter, sort, and grouping. Group keys render in
// lexical order with the catch-all bucket last.
func (m tasksModel) sections() []taskSection {
	filtered := query.Filter{Status: statusFilters[m.filterIdx]}.Apply(m.tasks)
	sorted := query.Sort(filtered, m.sortBy, m.sortOrder)

	var grouped map[string][]store.Task
	var catchAll string
	switch m.grouping {
	case groupDate:
		grouped = query.GroupByDate(sorted)
		catchAll = "No Due Date"
	case groupProject:
		grouped = query.GroupByProject(sorted)
		catchAll = "No Project"
	case groupCategory:
		grouped = query.GroupByCategory(sorted)
		catchAll = "Uncategorized"
	default:
		return []taskSection{{tasks: sorted}}
	}

	order := make([]string, 0, len(grouped))
	for k := range grouped {
		if k != catchAll {
			order = append(order, k)
		}
	}
	sort.Strings(order)
	if _, ok := grouped[catchAll]; ok {
		order = append(order, catchAll)
	}

	sections := make([]taskSection, 0, len(order))
	for _, k := range order {
		sections = append(sections, taskSection{label: m.sectionLabel(k), tasks: grouped[k]})
	}
	return sections
}

// sectionLabel resolves a project or category ID to its display name.
func (m tasksModel) sectionLabel(key string) string {
	switch m.grouping {
	case groupProject:
		for _, p := range m.projects {
			if p.ID == key {
				return p.Name
			}
		}
	case groupCategory:
		if c := m.store.GetCategory(key); c != nil {
			return c.Name
		}
	}
	return key
}

func (m tasksModel) visible() []store.Task {
	var out []store.Task
	for _, sec := range m.sections() {
		out = append(out, sec.tasks...)
	}
	return out
}

func (m tasksModel) update(msg tea.Msg) (tasksModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tasksDataMsg:
		m.tasks = msg.tasks
		m.projects = msg.projects
		if n := len(m.visible()); m.cursor >= n {
			m.cursor = max(0, n-1)
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m tasksModel) updateKeys(msg tea.KeyMsg) (tasksModel, tea.Cmd) {
	visible := m.visible()

	switch {
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.Down):
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.New):
		return m.showForm(nil)
	case key.Matches(msg, keys.Edit):
		if len(visible) > 0 {
			task := visible[m.cursor]
			return m.showForm(&task)
		}
	case key.Matches(msg, keys.Delete):
		if len(visible) > 0 {
			m.store.DeleteTask(visible[m.cursor].ID)
			return m, m.refresh()
		}
	case key.Matches(msg, keys.Toggle):
		if len(visible) > 0 {
			m.store.ToggleTaskCompletion(visible[m.cursor].ID)
			return m, m.refresh()
		}
	case key.Matches(msg, keys.Priority):
		if len(visible) > 0 {
			m.store.ChangeTaskPriority(visible[m.cursor].ID, nextPriority(visible[m.cursor].Priority))
			return m, m.refresh()
		}
	case key.Matches(msg, keys.Sort):
		m.sortBy = nextSortBy(m.sortBy)
	case key.Matches(msg, keys.Group):
		m.grouping = (m.grouping + 1) % 4
		m.cursor = 0
	case key.Matches(msg, keys.Skip): // "f" doubles as filter cycle here
		m.filterIdx = (m.filterIdx + 1) % len(statusFilters)
		m.cursor = 0
	}
	return m, nil
}

func nextPriority(p store.TaskPriority) store.TaskPriority {
	switch p {
	case store.PriorityLow:
		return store.PriorityMedium
	case store.PriorityMedium:
		return store.PriorityHigh
	}
	return store.PriorityLow
}

func nextSortBy(s store.SortBy) store.SortBy {
	order := []store.SortBy{store.SortByDueDate, store.SortByPriority, store.SortByStatus, store.SortByCreated, store.SortByUpdated}
	for i, v := range order {
		if v == s {
			return order[(i+1)%len(order)]
		}
	}
	return order[0]
}

// dueLabel renders a task's due date: red when overdue, amber when due today.
func dueLabel(t store.Task, now time.Time) string {
	label := t.DueDate
	if due, err := time.ParseInLocation("2006-01-02", t.DueDate, time.Local); err == nil {
		label = formatDate(due)
	}
	switch {
	case query.IsOverdue(t, now):
		return errorStyle.Render(label)
	case query.IsDueToday(t, now):
		return warningStyle.Render(label + " · today")
	}
	return mutedStyle.Render(label)
}

// showForm opens the create/edit form. Title is required here: the store
// itself imposes no title check, the form layer is that boundary.
func (m tasksModel) showForm(task *store.Task) (tasksModel, tea.Cmd) {
	if task != nil {
		m.editingID = task.ID
		*m.formTitle = task.Title
		*m.formDescription = task.Description
		*m.formPriority = string(task.Priority)
		*m.formStatus = string(task.Status)
		*m.formDueDate = task.DueDate
		*m.formProject = task.ProjectID
		*m.formCategory = task.Category
		*m.formTags = append([]string(nil), task.Tags...)
		*m.formEstimate = ""
		if task.EstimatedTime > 0 {
			*m.formEstimate = strconv.Itoa(task.EstimatedTime)
		}
	} else {
		m.editingID = ""
		*m.formTitle = ""
		*m.formDescription = ""
		*m.formPriority = string(store.PriorityMedium)
		*m.formStatus = string(store.StatusPending)
		*m.formDueDate = ""
		*m.formProject = ""
		*m.formCategory = ""
		*m.formTags = nil
		*m.formEstimate = ""
	}

	projectOptions := []huh.Option[string]{huh.NewOption("(none)", "")}
	for _, p := range m.projects {
		projectOptions = append(projectOptions, huh.NewOption(p.Name, p.ID))
	}

	categoryOptions := []huh.Option[string]{huh.NewOption("(none)", "")}
	for _, c := range m.store.GetCategories() {
		categoryOptions = append(categoryOptions, huh.NewOption(c.Name, c.ID))
	}

	var tagOptions []huh.Option[string]
	for _, t := range m.store.GetTags() {
		tagOptions = append(tagOptions, huh.NewOption(t.Name, t.ID))
	}

	groups := []*huh.Group{
		huh.NewGroup(
			huh.NewInput().Title("Title").Value(m.formTitle).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}),
			huh.NewInput().Title("Description").Value(m.formDescription),
			huh.NewSelect[string]().Title("Priority").
				Options(
					huh.NewOption("Low", string(store.PriorityLow)),
					huh.NewOption("Medium", string(store.PriorityMedium)),
					huh.NewOption("High", string(store.PriorityHigh)),
				).Value(m.formPriority),
			huh.NewSelect[string]().Title("Status").
				Options(
					huh.NewOption("Pending", string(store.StatusPending)),
					huh.NewOption("In progress", string(store.StatusInProgress)),
					huh.NewOption("Complete", string(store.StatusComplete)),
				).Value(m.formStatus),
			huh.NewInput().Title("Due date (YYYY-MM-DD)").Value(m.formDueDate).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					if _, err := time.Parse("2006-01-02", s); err != nil {
						return fmt.Errorf("use YYYY-MM-DD")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewSelect[string]().Title("Project").Options(projectOptions...).Value(m.formProject),
			huh.NewSelect[string]().Title("Category").Options(categoryOptions...).Value(m.formCategory),
			huh.NewInput().Title("Estimated time (min)").Value(m.formEstimate).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					if n, err := strconv.Atoi(s); err != nil || n <= 0 {
						return fmt.Errorf("must be a positive number")
					}
					return nil
				}),
		),
	}
	if len(tagOptions) > 0 {
		groups = append(groups, huh.NewGroup(
			huh.NewMultiSelect[string]().Title("Tags").Options(tagOptions...).Value(m.formTags),
		))
	}

	m.form = huh.NewForm(groups...).WithShowHelp(true).WithShowErrors(true)
	m.formActive = true
	return m, m.form.Init()
}

func (m tasksModel) updateForm(msg tea.Msg) (tasksModel, tea.Cmd) {
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
		m.saveForm()
		return m, m.refresh()
	}

	return m, cmd
}

func (m tasksModel) saveForm() {
	estimate := 0
	if n, err := strconv.Atoi(*m.formEstimate); err == nil {
		estimate = n
	}
	tags := append([]string(nil), *m.formTags...)
	if tags == nil {
		tags = []string{}
	}

	if m.editingID == "" {
		m.store.CreateTask(store.Task{
			Title:         *m.formTitle,
			Description:   *m.formDescription,
			Status:        store.TaskStatus(*m.formStatus),
			Priority:      store.TaskPriority(*m.formPriority),
			DueDate:       *m.formDueDate,
			Tags:          tags,
			Category:      *m.formCategory,
			ProjectID:     *m.formProject,
			EstimatedTime: estimate,
		})
		return
	}

	m.store.UpdateTask(m.editingID, func(t *store.Task) {
		t.Title = *m.formTitle
		t.Description = *m.formDescription
		t.Status = store.TaskStatus(*m.formStatus)
		t.Priority = store.TaskPriority(*m.formPriority)
		t.DueDate = *m.formDueDate
		t.Tags = tags
		t.Category = *m.formCategory
		t.ProjectID = *m.formProject
		t.EstimatedTime = estimate
	})
}

func (m tasksModel) view() string {
	w := m.width - 4

	if m.formActive && m.form != nil {
		title := titleStyle.Render("New Task")
		if m.editingID != "" {
			title = titleStyle.Render("Edit Task")
		}
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", m.form.View()),
		)
	}

	sections := m.sections()
	total := 0
	for _, sec := range sections {
		total += len(sec.tasks)
	}

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("Tasks"),
		mutedStyle.Render(fmt.Sprintf("  %s · sort: %s · %s", statusFilterNames[m.filterIdx], m.sortBy, groupingNames[m.grouping])),
	)

	if total == 0 {
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
			header,
			"",
			mutedStyle.Render("No tasks. Press n to create one."),
		))
	}

	projectNames := make(map[string]string)
	for _, p := range m.projects {
		projectNames[p.ID] = p.Name
	}

	now := time.Now()
	var rows []string
	rows = append(rows, header)

	i := 0
	for _, sec := range sections {
		rows = append(rows, "")
		if sec.label != "" {
			rows = append(rows, highlightStyle.Render(sec.label))
		}
		for _, t := range sec.tasks {
			cursor := "  "
			style := normalItemStyle
			if i == m.cursor {
				cursor = "> "
				style = selectedItemStyle
			}
			i++

			pri := priorityStyle(t.Priority).Render("▌")
			title := truncate(t.Title, 40)
			if t.Status == store.StatusComplete {
				title = mutedStyle.Strikethrough(true).Render(title)
			} else {
				title = style.Render(title)
			}

			meta := ""
			if t.DueDate != "" {
				meta += " " + dueLabel(t, now)
			}
			if name, ok := projectNames[t.ProjectID]; ok && t.ProjectID != "" {
				meta += highlightStyle.Render(" @" + name)
			}

			rows = append(rows, fmt.Sprintf("%s%s %s %s%s", cursor, statusIcon(t.Status), pri, title, meta))
		}
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  n: new  e: edit  d: delete  space: toggle  p: priority  o: sort  f: filter  v: group"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
