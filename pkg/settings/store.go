// Package settings persists user configuration in SQLite and broadcasts
// changes to subscribers, mirroring the options-surface semantics: save
// once, notify every open surface.
package settings

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/pagechat/pagechat/models"
)

const DefaultDBName = "pagechat.db"

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;

CREATE TABLE IF NOT EXISTS settings (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// Setting keys as stored.
const (
	keyAPIKey   = "api_key"
	keyAutoShow = "auto_show"
	keyTheme    = "theme"
	keyFontSize = "font_size"
	keyModel    = "model"
)

type Store struct {
	db *sql.DB

	mu          sync.Mutex
	subscribers []func(models.Settings)
}

// Open opens or creates the settings database at path. Defaults are
// written exactly once, when the table is empty (first install).
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	s := &Store{db: db}
	if err := s.seedDefaults(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// OpenDefault opens the database next to the binary.
func OpenDefault() (*Store, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %w", err)
	}
	return Open(filepath.Join(filepath.Dir(execPath), DefaultDBName))
}

func (s *Store) Close() error {
	return s.db.Close()
}

// seedDefaults writes first-install defaults when no settings exist yet.
func (s *Store) seedDefaults() error {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM settings`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count settings: %w", err)
	}
	if count > 0 {
		return nil
	}
	return s.write(models.DefaultSettings())
}

// Load returns the current committed settings.
func (s *Store) Load() (models.Settings, error) {
	rows, err := s.db.Query(`SELECT key, value FROM settings`)
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to query settings: %w", err)
	}
	defer rows.Close()

	settings := models.DefaultSettings()
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, fmt.Errorf("failed to scan setting: %w", err)
		}
		switch key {
		case keyAPIKey:
			settings.APIKey = value
		case keyAutoShow:
			settings.AutoShow = value == "true"
		case keyTheme:
			settings.Theme = value
		case keyFontSize:
			settings.FontSize = value
		case keyModel:
			settings.Model = value
		}
	}
	if err := rows.Err(); err != nil {
		return models.Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}
	return settings, nil
}

// Save persists the settings and synchronously notifies every
// subscriber with the saved value. Notification is idempotent from the
// subscriber's point of view: re-applying the same settings is safe.
func (s *Store) Save(settings models.Settings) error {
	if err := s.write(settings); err != nil {
		return err
	}

	s.mu.Lock()
	subscribers := make([]func(models.Settings), len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.Unlock()

	for _, fn := range subscribers {
		fn(settings)
	}
	return nil
}

// Subscribe registers a callback invoked on every Save.
func (s *Store) Subscribe(fn func(models.Settings)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *Store) write(settings models.Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	pairs := map[string]string{
		keyAPIKey:   settings.APIKey,
		keyAutoShow: strconv.FormatBool(settings.AutoShow),
		keyTheme:    settings.Theme,
		keyFontSize: settings.FontSize,
		keyModel:    settings.Model,
	}
	for key, value := range pairs {
		_, err := tx.Exec(`
			INSERT INTO settings (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
		`, key, value)
		if err != nil {
			return fmt.Errorf("failed to write setting %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit settings: %w", err)
	}
	return nil
}
