package store

import (
	"database/sql"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const currentVersion = 1

// Collection keys. Each collection is stored as one JSON-encoded value.
const (
	tasksKey           = "taskmaster:tasks"
	projectsKey        = "taskmaster:projects"
	categoriesKey      = "taskmaster:categories"
	tagsKey            = "taskmaster:tags"
	settingsKey        = "taskmaster:settings"
	sessionsKey        = "taskmaster:sessions"
	backupTimestampKey = "taskmaster:last_backup"
)

// Store is a synchronous key-value layer over SQLite. Collection reads
// degrade to empty on corruption and writes are best-effort: failures are
// logged and otherwise swallowed, so no CRUD method propagates an error.
type Store struct {
	db   *sql.DB
	warn *log.Logger
}

// New opens (or creates) the SQLite database at dbPath and runs migrations.
func New(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(1)

	// Configure pragmas.
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db, warn: log.New(os.Stderr, "taskmaster: ", log.LstdFlags)}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// NewMemory creates an in-memory store for testing.
func NewMemory() (*Store, error) {
	return New(":memory:")
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SetLogOutput redirects degradation warnings. The TUI points this away
// from stderr so warnings cannot corrupt the alternate screen.
func (s *Store) SetLogOutput(w io.Writer) {
	s.warn.SetOutput(w)
}

func (s *Store) migrate() error {
	var version int
	err := s.db.QueryRow("PRAGMA user_version").Scan(&version)
	if err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}

	if version >= currentVersion {
		return nil
	}

	if version < 1 {
		if err := s.migrateV1(); err != nil {
			return err
		}
	}

	_, err = s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentVersion))
	return err
}

func (s *Store) migrateV1() error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(ddl)
	return err
}

// DefaultDBPath returns ~/.config/taskmaster/taskmaster.db
func DefaultDBPath() (string, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, "taskmaster", "taskmaster.db"), nil
}
