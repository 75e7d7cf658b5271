package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/taskmaster/internal/store"
)

type projectsPane int

const (
	paneProjects projectsPane = iota
	paneCategories
	paneTags
)

var paneNames = []string{"Projects", "Categories", "Tags"}

type projectsModel struct {
	store  *store.Store
	width  int
	height int

	projects   []store.Project
	categories []store.Category
	tags       []store.Tag

	pane    projectsPane
	cursors [3]int

	formActive bool
	form       *huh.Form
	editingID  string

	formName  *string
	formDesc  *string
	formColor *string
}

func newProjectsModel(s *store.Store) projectsModel {
	name, desc, color := "", "", ""
	return projectsModel{
		store:     s,
		formName:  &name,
		formDesc:  &desc,
		formColor: &color,
	}
}

func (m *projectsModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m projectsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return projectsDataMsg{
			projects:   m.store.GetProjects(),
			categories: m.store.GetCategories(),
			tags:       m.store.GetTags(),
		}
	}
}

func (m projectsModel) paneLen() int {
	switch m.pane {
	case paneProjects:
		return len(m.projects)
	case paneCategories:
		return len(m.categories)
	}
	return len(m.tags)
}

func (m projectsModel) update(msg tea.Msg) (projectsModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case projectsDataMsg:
		m.projects = msg.projects
		m.categories = msg.categories
		m.tags = msg.tags
		for i := range m.cursors {
			save := m.pane
			m.pane = projectsPane(i)
			if n := m.paneLen(); m.cursors[i] >= n {
				m.cursors[i] = max(0, n-1)
			}
			m.pane = save
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m projectsModel) updateKeys(msg tea.KeyMsg) (projectsModel, tea.Cmd) {
	cursor := &m.cursors[m.pane]

	switch {
	case key.Matches(msg, keys.Left):
		if m.pane > paneProjects {
			m.pane--
		}
	case key.Matches(msg, keys.Right):
		if m.pane < paneTags {
			m.pane++
		}
	case key.Matches(msg, keys.Up):
		if *cursor > 0 {
			*cursor--
		}
	case key.Matches(msg, keys.Down):
		if *cursor < m.paneLen()-1 {
			*cursor++
		}
	case key.Matches(msg, keys.New):
		return m.showForm("")
	case key.Matches(msg, keys.Edit):
		if id := m.selectedID(); id != "" {
			return m.showForm(id)
		}
	case key.Matches(msg, keys.Delete):
		switch id := m.selectedID(); {
		case id == "":
		case m.pane == paneProjects:
			m.store.DeleteProject(id)
			return m, m.refresh()
		case m.pane == paneCategories:
			m.store.DeleteCategory(id)
			return m, m.refresh()
		default:
			m.store.DeleteTag(id)
			return m, m.refresh()
		}
	}
	return m, nil
}

func (m projectsModel) selectedID() string {
	i := m.cursors[m.pane]
	switch m.pane {
	case paneProjects:
		if i < len(m.projects) {
			return m.projects[i].ID
		}
	case paneCategories:
		if i < len(m.categories) {
			return m.categories[i].ID
		}
	default:
		if i < len(m.tags) {
			return m.tags[i].ID
		}
	}
	return ""
}

func (m projectsModel) showForm(id string) (projectsModel, tea.Cmd) {
	m.editingID = id
	*m.formName = ""
	*m.formDesc = ""
	*m.formColor = ""

	if id != "" {
		switch m.pane {
		case paneProjects:
			if p := m.store.GetProject(id); p != nil {
				*m.formName = p.Name
				*m.formDesc = p.Description
				*m.formColor = p.Color
			}
		case paneCategories:
			if c := m.store.GetCategory(id); c != nil {
				*m.formName = c.Name
				*m.formColor = c.Color
			}
		default:
			if t := m.store.GetTag(id); t != nil {
				*m.formName = t.Name
				*m.formColor = t.Color
			}
		}
	}

	fields := []huh.Field{
		huh.NewInput().Title("Name").Value(m.formName).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("name is required")
				}
				return nil
			}),
	}
	if m.pane == paneProjects {
		fields = append(fields, huh.NewInput().Title("Description").Value(m.formDesc))
	}
	fields = append(fields, huh.NewInput().Title("Color (hex, optional)").Value(m.formColor))

	m.form = huh.NewForm(huh.NewGroup(fields...)).WithShowHelp(true).WithShowErrors(true)
	m.formActive = true
	return m, m.form.Init()
}

func (m projectsModel) updateForm(msg tea.Msg) (projectsModel, tea.Cmd) {
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

func (m projectsModel) saveForm() {
	switch m.pane {
	case paneProjects:
		if m.editingID == "" {
			m.store.CreateProject(store.Project{Name: *m.formName, Description: *m.formDesc, Color: *m.formColor})
		} else {
			m.store.UpdateProject(m.editingID, func(p *store.Project) {
				p.Name = *m.formName
				p.Description = *m.formDesc
				p.Color = *m.formColor
			})
		}
	case paneCategories:
		if m.editingID == "" {
			m.store.CreateCategory(store.Category{Name: *m.formName, Color: *m.formColor})
		} else {
			m.store.UpdateCategory(m.editingID, func(c *store.Category) {
				c.Name = *m.formName
				c.Color = *m.formColor
			})
		}
	default:
		if m.editingID == "" {
			m.store.CreateTag(store.Tag{Name: *m.formName, Color: *m.formColor})
		} else {
			m.store.UpdateTag(m.editingID, func(t *store.Tag) {
				t.Name = *m.formName
				t.Color = *m.formColor
			})
		}
	}
}

func (m projectsModel) view() string {
	w := m.width - 4

	if m.formActive && m.form != nil {
		verb := "New"
		if m.editingID != "" {
			verb = "Edit"
		}
		singular := strings.TrimSuffix(paneNames[m.pane], "s")
		if m.pane == paneCategories {
			singular = "Category"
		}
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render(verb+" "+singular), "", m.form.View(),
		))
	}

	var tabs []string
	for i, name := range paneNames {
		if projectsPane(i) == m.pane {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}
	header := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	var rows []string
	rows = append(rows, header, "")

	renderItem := func(i int, name, extra, color string) {
		cursor := "  "
		style := normalItemStyle
		if i == m.cursors[m.pane] {
			cursor = "> "
			style = selectedItemStyle
		}
		swatch := " "
		if color != "" {
			swatch = lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("●")
		}
		line := cursor + swatch + " " + style.Render(truncate(name, 30))
		if extra != "" {
			line += mutedStyle.Render("  " + truncate(extra, 40))
		}
		rows = append(rows, line)
	}

	switch m.pane {
	case paneProjects:
		if len(m.projects) == 0 {
			rows = append(rows, mutedStyle.Render("No projects. Press n to create one."))
		}
		for i, p := range m.projects {
			renderItem(i, p.Name, p.Description, p.Color)
		}
	case paneCategories:
		if len(m.categories) == 0 {
			rows = append(rows, mutedStyle.Render("No categories. Press n to create one."))
		}
		for i, c := range m.categories {
			renderItem(i, c.Name, "", c.Color)
		}
	default:
		if len(m.tags) == 0 {
			rows = append(rows, mutedStyle.Render("No tags. Press n to create one."))
		}
		for i, t := range m.tags {
			renderItem(i, t.Name, "", t.Color)
		}
	}

	rows = append(rows, "", mutedStyle.Render("  h/l: switch pane  n: new  e: edit  d: delete"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
