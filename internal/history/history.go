// Package history records every test run in a SQL database so runs can be
// compared over time. SQLite, MySQL and PostgreSQL are supported.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"unitlite/internal/config"
)

// Store is a run history backed by database/sql
type Store struct {
	db     *sql.DB
	driver string
}

// driverNames maps configured drivers to registered database/sql names
var driverNames = map[string]string{
	"sqlite":   "sqlite",
	"mysql":    "mysql",
	"postgres": "postgres",
}

// Open connects to the history database and creates its tables if needed
func Open(ctx context.Context, cfg config.HistoryConfig) (*Store, error) {
	name, ok := driverNames[cfg.Driver]
	if !ok {
		return nil, fmt.Errorf("unsupported history driver: %s", cfg.Driver)
	}
	if cfg.DSN == "" {
		return nil, fmt.Errorf("history dsn is empty")
	}

	if cfg.Driver == "sqlite" && !strings.HasPrefix(cfg.DSN, ":memory:") && !strings.HasPrefix(cfg.DSN, "file:") {
		if err := os.MkdirAll(filepath.Dir(cfg.DSN), 0755); err != nil {
			return nil, fmt.Errorf("failed to create history dir: %w", err)
		}
	}

	db, err := sql.Open(name, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	if cfg.Driver == "sqlite" {
		// a single connection keeps :memory: databases alive between queries
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping history database: %w", err)
	}

	s := &Store{db: db, driver: cfg.Driver}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id VARCHAR(36) PRIMARY KEY,
		total INTEGER NOT NULL,
		passed INTEGER NOT NULL,
		failed INTEGER NOT NULL,
		duration_seconds DOUBLE PRECISION NOT NULL,
		finished_at VARCHAR(40) NOT NULL,
		finished_ns BIGINT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS results (
		run_id VARCHAR(36) NOT NULL,
		seq INTEGER NOT NULL,
		name VARCHAR(255) NOT NULL,
		outcome VARCHAR(32) NOT NULL,
		error_kind VARCHAR(255) NOT NULL,
		message TEXT NOT NULL,
		duration_seconds DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (run_id, seq)
	)`,
}

func (s *Store) migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create history tables: %w", err)
		}
	}
	return nil
}

// rebind rewrites ? placeholders to $n for postgres
func (s *Store) rebind(query string) string {
	if s.driver != "postgres" {
		return query
	}

	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
