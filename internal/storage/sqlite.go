// Package storage keeps a history of finished matches in SQLite.
// It uses the pure-Go modernc.org/sqlite driver, so no CGO is needed.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNoResults is returned when a stage has no recorded runs.
var ErrNoResults = errors.New("storage: no results")

type Store struct {
	db *sql.DB
}

// RunResult is one finished match.
type RunResult struct {
	ID        int64
	StageID   string
	Outcome   string // "victory" or "defeat"
	Frames    int
	BaseHP    int
	Funds     int
	Kills     int
	Leaks     int
	CreatedAt time.Time
}

// Open creates or opens the database at path, creating parent directories
// and the schema when they are missing. A leading ~ expands to the home dir.
func Open(path string) (*Store, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			stage_id TEXT NOT NULL,
			outcome TEXT NOT NULL,
			frames INTEGER NOT NULL,
			base_hp INTEGER NOT NULL,
			funds INTEGER NOT NULL,
			kills INTEGER NOT NULL DEFAULT 0,
			leaks INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_stage ON runs(stage_id);
	`)
	return err
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records r and returns its row ID.
func (s *Store) SaveResult(r RunResult) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO runs (stage_id, outcome, frames, base_hp, funds, kills, leaks)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.StageID, r.Outcome, r.Frames, r.BaseHP, r.Funds, r.Kills, r.Leaks,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentResults returns the latest runs, newest first. An empty stageID
// matches every stage.
func (s *Store) RecentResults(stageID string, limit int) ([]RunResult, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT id, stage_id, outcome, frames, base_hp, funds, kills, leaks, created_at
		 FROM runs
		 WHERE ? = '' OR stage_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		stageID, stageID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var out []RunResult
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// BestResult returns the victory that kept the most base HP, ties going to
// the faster run. ErrNoResults means the stage was never won.
func (s *Store) BestResult(stageID string) (RunResult, error) {
	row := s.db.QueryRow(
		`SELECT id, stage_id, outcome, frames, base_hp, funds, kills, leaks, created_at
		 FROM runs
		 WHERE stage_id = ? AND outcome = 'victory'
		 ORDER BY base_hp DESC, frames ASC
		 LIMIT 1`,
		stageID,
	)
	r, err := scanResult(row)
	if errors.Is(err, sql.ErrNoRows) {
		return RunResult{}, ErrNoResults
	}
	return r, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanResult(sc scanner) (RunResult, error) {
	var r RunResult
	var createdAt any
	err := sc.Scan(&r.ID, &r.StageID, &r.Outcome, &r.Frames, &r.BaseHP, &r.Funds, &r.Kills, &r.Leaks, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return r, err
	}
	if err != nil {
		return r, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	switch v := createdAt.(type) {
	case time.Time:
		r.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			r.CreatedAt = parsed
		}
	}
	return r, nil
}
