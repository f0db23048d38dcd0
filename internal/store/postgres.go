package store

import (
	"database/sql"
	"fmt"
	"time"

	"mulbench/internal/benchmark"

	_ "github.com/lib/pq"
)

// PostgresStore implements Store on PostgreSQL, for sharing run history
// across machines.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore connects with the given DSN and applies migrations.
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &PostgresStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return s, nil
}

func (s *PostgresStore) migrate() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id BIGSERIAL PRIMARY KEY,
			label TEXT NOT NULL DEFAULT '',
			commit_hash TEXT NOT NULL DEFAULT '',
			go_version TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS points (
			run_id BIGINT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			series_idx INTEGER NOT NULL,
			algorithm TEXT NOT NULL,
			digits INTEGER NOT NULL,
			micros DOUBLE PRECISION NOT NULL,
			min_micros DOUBLE PRECISION NOT NULL DEFAULT 0,
			max_micros DOUBLE PRECISION NOT NULL DEFAULT 0,
			samples INTEGER NOT NULL DEFAULT 0,
			iterations BIGINT NOT NULL DEFAULT 0,
			PRIMARY KEY (run_id, algorithm, digits)
		);`,
	}
	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the database connection.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// SaveRun stores a validated run and returns its assigned id.
func (s *PostgresStore) SaveRun(run *benchmark.Run) (int64, error) {
	if err := run.Validate(); err != nil {
		return 0, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRow(
		`INSERT INTO runs (label, commit_hash, go_version, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		run.Label, run.Commit, run.GoVersion, run.Timestamp.UTC(),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	for si, series := range run.Series {
		for _, p := range series.Points {
			if _, err := tx.Exec(
				`INSERT INTO points (run_id, series_idx, algorithm, digits, micros, min_micros, max_micros, samples, iterations)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
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
func (s *PostgresStore) LoadRun(id int64) (*benchmark.Run, error) {
	row := s.db.QueryRow(`SELECT id, label, commit_hash, go_version, created_at FROM runs WHERE id = $1`, id)

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
		 FROM points WHERE run_id = $1 ORDER BY series_idx, digits`, id)
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
func (s *PostgresStore) LoadLatest() (*benchmark.Run, error) {
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
func (s *PostgresStore) ListRuns(limit int) ([]RunSummary, error) {
	rows, err := s.db.Query(
		`SELECT r.id, r.label, r.commit_hash, r.go_version, r.created_at,
		        COUNT(DISTINCT p.series_idx), COUNT(p.digits)
		 FROM runs r LEFT JOIN points p ON p.run_id = r.id
		 GROUP BY r.id ORDER BY r.created_at DESC, r.id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSummaries(rows)
}

// DeleteRun removes a run; points cascade.
func (s *PostgresStore) DeleteRun(id int64) error {
	res, err := s.db.Exec(`DELETE FROM runs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("store: run %d not found", id)
	}
	return nil
}
