package prefs

import (
	"database/sql"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

// SQLite implements a Store backed by a SQLite database.
type SQLite struct {
	db *sql.DB
}

var _ Store = (*SQLite)(nil)

// New store.
func New(dbPath string) (*SQLite, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}

	// Create preferences table if it doesn't exist
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS preferences (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`)
	if err != nil {
		return nil, errors.Wrap(err, "creating preferences table")
	}

	return &SQLite{db: db}, nil
}

// Get a preference. A missing key yields "".
func (s *SQLite) Get(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "querying preference")
	}
	return value, nil
}

// Set a preference.
func (s *SQLite) Set(key, value string) error {
	// Use REPLACE INTO to handle both insert and update cases
	_, err := s.db.Exec(`
		REPLACE INTO preferences (key, value)
		VALUES (?, ?)
	`, key, value)
	if err != nil {
		return errors.Wrap(err, "writing preference to database")
	}
	return nil
}

// Remove a preference. Removing an absent key is not an error.
func (s *SQLite) Remove(key string) error {
	if _, err := s.db.Exec(`DELETE FROM preferences WHERE key = ?`, key); err != nil {
		return errors.Wrap(err, "deleting preference")
	}
	return nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}
