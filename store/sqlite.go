// Package store provides persistence bridges for the cross-session
// economy state. The simulation core only sees the engine.SaveStore port.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/hopwire/pour-panic/engine"
)

// SQLiteStore keeps the persisted payload in a single-row versioned
// table. The payload itself is an opaque JSON blob; schema migration is
// handled by the version column, not by table shape.
type SQLiteStore struct {
	db *sql.DB
}

const saveSchema = `
CREATE TABLE IF NOT EXISTS save_state (
	id      INTEGER PRIMARY KEY CHECK (id = 1),
	version INTEGER NOT NULL,
	payload TEXT NOT NULL
);`

// OpenSQLite opens (creating if needed) the save database at path
func OpenSQLite(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create save directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open save database: %w", err)
	}
	if _, err := db.Exec(saveSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init save schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Load reads the persisted payload, returning defaults when no save
// exists yet
func (s *SQLiteStore) Load() (engine.PersistedState, error) {
	var version int
	var payload string
	row := s.db.QueryRow(`SELECT version, payload FROM save_state WHERE id = 1`)
	if err := row.Scan(&version, &payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return engine.DefaultPersisted(), nil
		}
		return engine.DefaultPersisted(), fmt.Errorf("read save row: %w", err)
	}

	if version > engine.SchemaVersion {
		// Save written by a newer build; refuse to guess at its shape
		return engine.DefaultPersisted(), fmt.Errorf("save schema v%d is newer than supported v%d", version, engine.SchemaVersion)
	}

	var state engine.PersistedState
	if err := json.Unmarshal([]byte(payload), &state); err != nil {
		return engine.DefaultPersisted(), fmt.Errorf("decode save payload: %w", err)
	}
	state.SchemaVersion = engine.SchemaVersion
	return state, nil
}

// Save upserts the persisted payload
func (s *SQLiteStore) Save(state engine.PersistedState) error {
	state.SchemaVersion = engine.SchemaVersion
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode save payload: %w", err)
	}

	_, err = s.db.Exec(`
INSERT INTO save_state (id, version, payload) VALUES (1, ?, ?)
ON CONFLICT (id) DO UPDATE SET version = excluded.version, payload = excluded.payload`,
		engine.SchemaVersion, string(payload))
	if err != nil {
		return fmt.Errorf("write save row: %w", err)
	}
	return nil
}

// Close releases the database handle
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
