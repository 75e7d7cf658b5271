package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/taskmaster/internal/store"
)

// ResolveTheme maps the stored theme preference to light or dark. "system"
// is resolved against the terminal's background at the moment of the call
// and is never persisted in resolved form.
func ResolveTheme(t store.Theme) store.Theme {
	if t != store.ThemeSystem {
		return t
	}
	if lipgloss.HasDarkBackground() {
		return store.ThemeDark
	}
	return store.ThemeLight
}

// ApplyTheme pins the background assumption the adaptive palette renders
// against. With "system" the terminal's detected background is kept as is.
func ApplyTheme(t store.Theme) {
	switch ResolveTheme(t) {
	case store.ThemeDark:
		lipgloss.SetHasDarkBackground(true)
	case store.ThemeLight:
		lipgloss.SetHasDarkBackground(false)
	}
}
