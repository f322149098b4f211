// Package storage persists recorded runs in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-flappy/internal/replay"
)

// ErrRunNotFound is returned when no run has the requested ID.
var ErrRunNotFound = errors.New("storage: run not found")

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunEntry describes a stored run. Recording is only filled by Run.
type RunEntry struct {
	ID        int64
	Seed      int64
	Frames    int
	Duration  time.Duration
	CreatedAt time.Time
	Recording replay.Recording
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			frames INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			recording TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun stores a recording and returns the ID of the inserted record.
func (s *Store) SaveRun(rec replay.Recording) (int64, error) {
	data, err := replay.Marshal(rec)
	if err != nil {
		return 0, fmt.Errorf("storage: %w", err)
	}

	result, err := s.db.Exec(
		"INSERT INTO runs (seed, frames, duration_ms, recording) VALUES (?, ?, ?, ?)",
		rec.Seed, len(rec.Frames), rec.Duration().Milliseconds(), string(data),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Run loads a single run including its recording.
func (s *Store) Run(id int64) (RunEntry, error) {
	var (
		e         RunEntry
		durMS     int64
		data      string
		createdAt any
	)
	err := s.db.QueryRow(
		`SELECT id, seed, frames, duration_ms, recording, created_at
		 FROM runs WHERE id = ?`, id,
	).Scan(&e.ID, &e.Seed, &e.Frames, &durMS, &data, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return e, fmt.Errorf("%w: %d", ErrRunNotFound, id)
	}
	if err != nil {
		return e, fmt.Errorf("storage: cannot query run: %w", err)
	}

	e.Duration = time.Duration(durMS) * time.Millisecond
	e.CreatedAt = parseTime(createdAt)
	e.Recording, err = replay.Unmarshal([]byte(data))
	if err != nil {
		return e, fmt.Errorf("storage: run %d: %w", id, err)
	}
	return e, nil
}

// Runs lists the most recent runs first, without their recordings.
func (s *Store) Runs(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, seed, frames, duration_ms, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var durMS int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Seed, &e.Frames, &durMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Duration = time.Duration(durMS) * time.Millisecond
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// DeleteRun removes a run.
func (s *Store) DeleteRun(id int64) error {
	result, err := s.db.Exec("DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete run: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot delete run: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %d", ErrRunNotFound, id)
	}
	return nil
}

// parseTime handles the driver returning either time.Time or string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
