package store

import (
	"database/sql"
	"encoding/json"
)

// getValue returns the raw value for key, or ("", false) when the key is
// absent. Read failures are logged and reported as absence.
func (s *Store) getValue(key string) (string, bool) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false
	}
	if err != nil {
		s.warn.Printf("read %s: %v", key, err)
		return "", false
	}
	return value, true
}

// setValue writes key=value. Write failures are logged and dropped; the
// caller's in-memory state is unaffected and the write is simply lost.
func (s *Store) setValue(key, value string) {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		s.warn.Printf("write %s: %v", key, err)
	}
}

func (s *Store) deleteValue(key string) {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		s.warn.Printf("delete %s: %v", key, err)
	}
}

// readJSON decodes the value stored under key into out. Missing keys and
// unparseable content both return false; corruption is logged, never
// propagated. On failure out may hold a partial decode and must be discarded.
func readJSON[T any](s *Store, key string, out *T) bool {
	raw, ok := s.getValue(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		s.warn.Printf("corrupt value for %s: %v", key, err)
		return false
	}
	return true
}

func writeJSON[T any](s *Store, key string, v T) {
	data, err := json.Marshal(v)
	if err != nil {
		s.warn.Printf("encode %s: %v", key, err)
		return
	}
	s.setValue(key, string(data))
}

// readCollection returns the stored sequence for key, or an empty sequence
// when nothing is stored or the content is corrupt.
func readCollection[T any](s *Store, key string) []T {
	var items []T
	if !readJSON(s, key, &items) {
		return nil
	}
	return items
}
