package history

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"unitlite/internal/domain"
	"unitlite/runner"
)

// Record stores a run and its results. A run without an id gets a new UUID,
// which is written back into output.
func (s *Store) Record(ctx context.Context, output *domain.RunOutput) error {
	if output.Meta.RunID == "" {
		output.Meta.RunID = uuid.NewString()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	meta := output.Meta
	finished, err := time.Parse(time.RFC3339Nano, meta.Timestamp)
	if err != nil {
		return fmt.Errorf("invalid run timestamp %q: %w", meta.Timestamp, err)
	}

	_, err = tx.ExecContext(ctx,
		s.rebind("INSERT INTO runs (id, total, passed, failed, duration_seconds, finished_at, finished_ns) VALUES (?, ?, ?, ?, ?, ?, ?)"),
		meta.RunID, meta.Total, meta.Passed, meta.Failed, meta.DurationSeconds, meta.Timestamp, finished.UnixNano())
	if err != nil {
		return fmt.Errorf("failed to insert run %s: %w", meta.RunID, err)
	}

	insert := s.rebind("INSERT INTO results (run_id, seq, name, outcome, error_kind, message, duration_seconds) VALUES (?, ?, ?, ?, ?, ?, ?)")
	for i, c := range output.Details {
		if _, err := tx.ExecContext(ctx, insert, meta.RunID, i, c.Name, c.Outcome, c.ErrorKind, c.Message, c.DurationSeconds); err != nil {
			return fmt.Errorf("failed to insert result %s: %w", c.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit run %s: %w", meta.RunID, err)
	}
	return nil
}

// Recent returns up to limit runs, newest first
func (s *Store) Recent(ctx context.Context, limit int) ([]domain.RunMeta, error) {
	rows, err := s.db.QueryContext(ctx,
		s.rebind("SELECT id, total, passed, failed, duration_seconds, finished_at FROM runs ORDER BY finished_ns DESC LIMIT ?"),
		limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.RunMeta
	for rows.Next() {
		var m domain.RunMeta
		if err := rows.Scan(&m.RunID, &m.Total, &m.Passed, &m.Failed, &m.DurationSeconds, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		m.Summary = runner.Summary{Total: m.Total, Passed: m.Passed, Failed: m.Failed}.String()
		m.Duration = time.Duration(m.DurationSeconds * float64(time.Second)).String()
		runs = append(runs, m)
	}
	return runs, rows.Err()
}

// Results returns the stored results of one run in execution order
func (s *Store) Results(ctx context.Context, runID string) ([]domain.CaseRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		s.rebind("SELECT name, outcome, error_kind, message, duration_seconds FROM results WHERE run_id = ? ORDER BY seq"),
		runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	var records []domain.CaseRecord
	for rows.Next() {
		var c domain.CaseRecord
		if err := rows.Scan(&c.Name, &c.Outcome, &c.ErrorKind, &c.Message, &c.DurationSeconds); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		records = append(records, c)
	}
	return records, rows.Err()
}
