// Package history records completed sampling runs in an embedded SQLite
// database. The CSV datasets remain the canonical sample store; history
// only indexes run metadata for the history command.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Run is one completed sampling run.
type Run struct {
	ID        int64
	Bench     string
	Commit    string
	Samples   int
	Min       int
	Max       int
	Elapsed   time.Duration
	CreatedAt time.Time
}

// Store persists run summaries.
type Store interface {
	Close() error
	SaveRun(run Run) error
	ListRuns(bench string, limit int) ([]Run, error)
}

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the database at path and
// applies migrations.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create history directory %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping history database: %w", err)
	}
	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate history database: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		bench TEXT NOT NULL,
		commit_sha TEXT NOT NULL,
		samples INTEGER NOT NULL,
		min_value INTEGER NOT NULL,
		max_value INTEGER NOT NULL,
		elapsed_ms INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err := s.db.Exec(query)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveRun appends one run summary.
func (s *SQLiteStore) SaveRun(run Run) error {
	query := `INSERT INTO runs (bench, commit_sha, samples, min_value, max_value, elapsed_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	createdAt := run.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err := s.db.Exec(query, run.Bench, run.Commit, run.Samples, run.Min, run.Max,
		run.Elapsed.Milliseconds(), createdAt)
	return err
}

// ListRuns returns the most recent runs, newest first. An empty bench
// matches all benches.
func (s *SQLiteStore) ListRuns(bench string, limit int) ([]Run, error) {
	query := `SELECT id, bench, commit_sha, samples, min_value, max_value, elapsed_ms, created_at
		FROM runs WHERE (? = '' OR bench = ?) ORDER BY created_at DESC, id DESC LIMIT ?`
	rows, err := s.db.Query(query, bench, bench, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var elapsedMS int64
		if err := rows.Scan(&r.ID, &r.Bench, &r.Commit, &r.Samples, &r.Min, &r.Max, &elapsedMS, &r.CreatedAt); err != nil {
			return nil, err
		}
		r.Elapsed = time.Duration(elapsedMS) * time.Millisecond
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
