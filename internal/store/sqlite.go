package store

import (
	"database/sql"
	"fmt"
	"time"

	"mulbench/internal/benchmark"

	_ "modernc.org/sqlite" // pure Go SQLite driver
)

// SQLiteStore implements Store on a local SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the database at path and
// applies migrations.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		label TEXT NOT NULL DEFAULT '',
		commit_hash TEXT NOT NULL DEFAULT '',
		go_version TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL
	);
	CREATE TABLE IF NOT EXISTS points (
		run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		series_idx INTEGER NOT NULL,
		algorithm TEXT NOT NULL,
		digits INTEGER NOT NULL,
		micros REAL NOT NULL,
		min_micros REAL NOT NULL DEFAULT 0,
		max_micros REAL NOT NULL DEFAULT 0,
		samples INTEGER NOT NULL DEFAULT 0,
		iterations INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (run_id, algorithm, digits)
	);
	`
	_, err := s.db.Exec(query)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveRun stores a validated run and returns its assigned id.
func (s *SQLiteStore) SaveRun(run *benchmark.Run) (int64, error) {
	if err := run.Validate(); err != nil {
		return 0, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO runs (label, commit_hash, go_version, created_at) VALUES (?, ?, ?, ?)`,
		run.Label, run.Commit, run.GoVersion, run.Timestamp.UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for si, series := range run.Series {
		for _, p := range series.Points {
			if _, err := tx.Exec(
				`INSERT INTO points (run_id, series_idx, algorithm, digits, micros, min_micros, max_micros, samples, iterations)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				id, si, series.Algorithm, p.Digits, p.Micros, p.MinMicros, p.MaxMicros, p.Samples, p.Iterations,
			); err != nil {
				return 0, fmt.Errorf("failed to insert point: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// LoadRun retrieves one run with all its points.
func (s *SQLiteStore) LoadRun(id int64) (*benchmark.Run, error) {
	row := s.db.QueryRow(`SELECT id, label, commit_hash, go_version, created_at FROM runs WHERE id = ?`, id)

	run := &benchmark.Run{}
	var created time.Time
	if err := row.Scan(&run.ID, &run.Label, &run.Commit, &run.GoVersion, &created); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("store: run %d not found", id)
		}
		return nil, err
	}
	run.Timestamp = created

	rows, err := s.db.Query(
		`SELECT series_idx, algorithm, digits, micros, min_micros, max_micros, samples, iterations
		 FROM points WHERE run_id = ? ORDER BY series_idx, digits`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	run.Series, err = scanSeries(rows)
	if err != nil {
		return nil, err
	}
	return run, nil
}

// LoadLatest retrieves the most recent run, or nil if none are stored.
func (s *SQLiteStore) LoadLatest() (*benchmark.Run, error) {
	var id int64
	err := s.db.QueryRow(`SELECT id FROM runs ORDER BY created_at DESC, id DESC LIMIT 1`).Scan(&id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s.LoadRun(id)
}

// ListRuns returns summaries of the most recent runs, newest first.
func (s *SQLiteStore) ListRuns(limit int) ([]RunSummary, error) {
	rows, err := s.db.Query(
		`SELECT r.id, r.label, r.commit_hash, r.go_version, r.created_at,
		        COUNT(DISTINCT p.series_idx), COUNT(p.digits)
		 FROM runs r LEFT JOIN points p ON p.run_id = r.id
		 GROUP BY r.id ORDER BY r.created_at DESC, r.id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSummaries(rows)
}

// DeleteRun removes a run and its points.
func (s *SQLiteStore) DeleteRun(id int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM points WHERE run_id = ?`, id); err != nil {
		return err
	}
	res, err := tx.Exec(`DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("store: run %d not found", id)
	}
	return tx.Commit()
}

// scanSeries groups ordered point rows into series, preserving the
// stored series order.
func scanSeries(rows *sql.Rows) ([]benchmark.Series, error) {
	var series []benchmark.Series
	lastIdx := -1
	for rows.Next() {
		var (
			idx  int
			algo string
			p    benchmark.Point
		)
		if err := rows.Scan(&idx, &algo, &p.Digits, &p.Micros, &p.MinMicros, &p.MaxMicros, &p.Samples, &p.Iterations); err != nil {
			return nil, err
		}
		if idx != lastIdx {
			series = append(series, benchmark.Series{Algorithm: algo})
			lastIdx = idx
		}
		s := &series[len(series)-1]
		s.Points = append(s.Points, p)
	}
	return series, rows.Err()
}

func scanSummaries(rows *sql.Rows) ([]RunSummary, error) {
	var summaries []RunSummary
	for rows.Next() {
		var sum RunSummary
		if err := rows.Scan(&sum.ID, &sum.Label, &sum.Commit, &sum.GoVersion, &sum.Timestamp, &sum.Series, &sum.Points); err != nil {
			return nil, err
		}
		summaries = append(summaries, sum)
	}
	return summaries, rows.Err()
}
