package store

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// snapshot is the export format: one JSON object holding all five
// collections under fixed keys.
type snapshot struct {
	Tasks      []Task       `json:"tasks"`
	Projects   []Project    `json:"projects"`
	Categories []Category   `json:"categories"`
	Tags       []Tag        `json:"tags"`
	Settings   UserSettings `json:"settings"`
}

// ExportData serializes all five collections into a single snapshot string.
func (s *Store) ExportData() string {
	snap := snapshot{
		Tasks:      s.GetTasks(),
		Projects:   s.GetProjects(),
		Categories: s.GetCategories(),
		Tags:       s.GetTags(),
		Settings:   s.GetSettings(),
	}
	data, err := json.Marshal(snap)
	if err != nil {
		s.warn.Printf("export: %v", err)
		return ""
	}
	return string(data)
}

// ImportData replaces collections from a snapshot. Any top-level key present
// overwrites the corresponding collection; absent keys leave existing data
// untouched. Malformed JSON returns false without mutating anything.
// Collections are written one at a time; a write failing after earlier ones
// succeeded leaves a partial import in place.
func (s *Store) ImportData(jsonData string) bool {
	var data struct {
		Tasks      *[]Task       `json:"tasks"`
		Projects   *[]Project    `json:"projects"`
		Categories *[]Category   `json:"categories"`
		Tags       *[]Tag        `json:"tags"`
		Settings   *UserSettings `json:"settings"`
	}
	if err := json.Unmarshal([]byte(jsonData), &data); err != nil {
		s.warn.Printf("import: %v", err)
		return false
	}
	if data.Tasks != nil {
		s.SetTasks(*data.Tasks)
	}
	if data.Projects != nil {
		s.SetProjects(*data.Projects)
	}
	if data.Categories != nil {
		s.SetCategories(*data.Categories)
	}
	if data.Tags != nil {
		s.SetTags(*data.Tags)
	}
	if data.Settings != nil {
		s.SetSettings(*data.Settings)
	}
	return true
}

// CreateBackup stores the current snapshot under a timestamp-suffixed key
// and records the backup time. Returns the timestamp in epoch millis.
func (s *Store) CreateBackup() int64 {
	millis := time.Now().UnixMilli()
	s.setValue(fmt.Sprintf("%s_%d", backupTimestampKey, millis), s.ExportData())
	s.setValue(backupTimestampKey, strconv.FormatInt(millis, 10))
	return millis
}

// LastBackupTime returns the epoch millis of the last backup, or 0.
func (s *Store) LastBackupTime() int64 {
	raw, ok := s.getValue(backupTimestampKey)
	if !ok {
		return 0
	}
	millis, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		s.warn.Printf("corrupt value for %s: %v", backupTimestampKey, err)
		return 0
	}
	return millis
}

// RestoreFromBackup re-imports the snapshot taken at the given timestamp.
func (s *Store) RestoreFromBackup(millis int64) bool {
	raw, ok := s.getValue(fmt.Sprintf("%s_%d", backupTimestampKey, millis))
	if !ok || raw == "" {
		return false
	}
	return s.ImportData(raw)
}

// ClearAllData removes every collection key, the session history, and all
// backup bookkeeping, unconditionally.
func (s *Store) ClearAllData() {
	for _, key := range []string{tasksKey, projectsKey, categoriesKey, tagsKey, settingsKey, sessionsKey} {
		s.deleteValue(key)
	}
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key LIKE ?`, backupTimestampKey+"%"); err != nil {
		s.warn.Printf("clear backups: %v", err)
	}
}
