package store

import (
	"fmt"
	"strings"
	"time"

	"mulbench/internal/benchmark"
)

// RunSummary is the listing view of a stored run.
type RunSummary struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Label     string    `json:"label,omitempty"`
	Commit    string    `json:"commit,omitempty"`
	GoVersion string    `json:"go_version,omitempty"`
	Series    int       `json:"series"`
	Points    int       `json:"points"`
}

// Store persists benchmark run history.
type Store interface {
	SaveRun(run *benchmark.Run) (int64, error)
	LoadRun(id int64) (*benchmark.Run, error)
	LoadLatest() (*benchmark.Run, error)
	ListRuns(limit int) ([]RunSummary, error)
	DeleteRun(id int64) error
	Close() error
}

// Config selects and configures the storage backend.
type Config struct {
	Type             string // "sqlite" or "postgres"
	ConnectionString string // file path for SQLite, DSN for Postgres
}

// DefaultSQLitePath is used when no connection string is configured.
const DefaultSQLitePath = ".mulbench.db"

// New creates a Store for the configured backend, defaulting to SQLite.
func New(config Config) (Store, error) {
	switch strings.ToLower(config.Type) {
	case "postgres", "postgresql":
		if config.ConnectionString == "" {
			return nil, fmt.Errorf("store: postgres connection string is required")
		}
		return NewPostgresStore(config.ConnectionString)
	case "sqlite", "sqlite3", "":
		path := config.ConnectionString
		if path == "" {
			path = DefaultSQLitePath
		}
		return NewSQLiteStore(path)
	default:
		return nil, fmt.Errorf("store: unsupported backend %q", config.Type)
	}
}
