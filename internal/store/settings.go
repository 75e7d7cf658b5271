package store

// DefaultSettings is the value returned when no settings key exists.
func DefaultSettings() UserSettings {
	return UserSettings{
		Theme:                   ThemeSystem,
		DefaultView:             ViewDaily,
		DefaultSortBy:           SortByDueDate,
		DefaultSortOrder:        SortAsc,
		DefaultFilterPresets:    []FilterPreset{},
		PomodoroDuration:        25,
		ShortBreakDuration:      5,
		LongBreakDuration:       15,
		PomodorosUntilLongBreak: 4,
		NotificationsEnabled:    true,
		RemindersEnabled:        true,
		ReminderTime:            30,
		HighContrastMode:        false,
		LargeTextMode:           false,
	}
}

// GetSettings returns the stored settings, or the defaults when no settings
// key exists or the stored value is unparseable.
func (s *Store) GetSettings() UserSettings {
	settings := DefaultSettings()
	if !readJSON(s, settingsKey, &settings) {
		return DefaultSettings()
	}
	return settings
}

func (s *Store) SetSettings(settings UserSettings) {
	writeJSON(s, settingsKey, settings)
}

// UpdateSettings merges a partial change over the current settings.
func (s *Store) UpdateSettings(mutate func(*UserSettings)) UserSettings {
	settings := s.GetSettings()
	mutate(&settings)
	s.SetSettings(settings)
	return settings
}
