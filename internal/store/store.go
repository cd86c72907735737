// Package store handles the SQLite run journal.
package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/verte-zerg/gitart/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for runs and their commits.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL DEFAULT '',
			branch TEXT NOT NULL,
			source TEXT NOT NULL,
			cols INTEGER NOT NULL,
			commits_total INTEGER NOT NULL,
			commits_done INTEGER NOT NULL DEFAULT 0,
			status TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS run_commits (
			run_id TEXT NOT NULL,
			seq INTEGER NOT NULL,
			col INTEGER NOT NULL,
			row INTEGER NOT NULL,
			idx INTEGER NOT NULL,
			total INTEGER NOT NULL,
			commit_date TEXT NOT NULL,
			message TEXT NOT NULL,
			PRIMARY KEY (run_id, seq)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// StartRun inserts a run in the running state.
func (s *Store) StartRun(ctx context.Context, run model.RunRecord) error {
	status := run.Status
	if status == "" {
		status = model.RunRunning
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, branch, source, cols, commits_total, commits_done, status)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.StartedAt.Format(time.RFC3339Nano),
		run.Branch,
		run.Source,
		run.Cols,
		run.CommitsTotal,
		run.CommitsDone,
		status,
	)
	return err
}

// RecordCommit stores one commit and bumps the run's progress counter.
func (s *Store) RecordCommit(ctx context.Context, rec model.CommitRecord) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	e := rec.Entry
	if _, err = tx.ExecContext(ctx,
		`INSERT INTO run_commits (run_id, seq, col, row, idx, total, commit_date, message)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.RunID, rec.Seq, e.Col, e.Row, e.Index, e.Total, e.Date.UTC().Format(time.RFC3339), rec.Message,
	); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx,
		`UPDATE runs SET commits_done = ? WHERE id = ?`, rec.Seq, rec.RunID,
	); err != nil {
		return err
	}
	return tx.Commit()
}

// FinishRun sets the final status and end time.
func (s *Store) FinishRun(ctx context.Context, id, status string, endedAt time.Time) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE runs SET status = ?, ended_at = ? WHERE id = ?`,
		status, endedAt.Format(time.RFC3339Nano), id)
	return err
}

// ListRuns returns runs newest first. limit <= 0 means no limit.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]model.RunRecord, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, ended_at, branch, source, cols, commits_total, commits_done, status
		 FROM runs
		 ORDER BY started_at DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var runs []model.RunRecord
	for rows.Next() {
		var run model.RunRecord
		var startedAt, endedAt string
		if err := rows.Scan(&run.ID, &startedAt, &endedAt, &run.Branch, &run.Source, &run.Cols, &run.CommitsTotal, &run.CommitsDone, &run.Status); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, startedAt)
		if err != nil {
			return nil, err
		}
		run.StartedAt = parsed
		if endedAt != "" {
			parsed, err := time.Parse(time.RFC3339Nano, endedAt)
			if err != nil {
				return nil, err
			}
			run.EndedAt = parsed
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return runs, nil
}

// ListCommits returns a run's journaled commits in order.
func (s *Store) ListCommits(ctx context.Context, runID string) ([]model.CommitRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT seq, col, row, idx, total, commit_date, message
		 FROM run_commits
		 WHERE run_id = ?
		 ORDER BY seq ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.CommitRecord
	for rows.Next() {
		rec := model.CommitRecord{RunID: runID}
		var date string
		if err := rows.Scan(&rec.Seq, &rec.Entry.Col, &rec.Entry.Row, &rec.Entry.Index, &rec.Entry.Total, &date, &rec.Message); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339, date)
		if err != nil {
			return nil, err
		}
		rec.Entry.Date = parsed
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
