// SPDX-License-Identifier: MIT

// Package store keeps a SQLite log of simulation runs: which rule ran with
// which parameters and seed, what it did, and how the network looked before
// and after.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/katalvlaran/socialinherit/analysis"
	"github.com/katalvlaran/socialinherit/turnover"
)

// ErrRunNotFound is returned by GetRun for an unknown ID.
var ErrRunNotFound = errors.New("store: run not found")

// Run is one logged simulation.
type Run struct {
	ID         int64              `json:"id"`
	CreatedAt  time.Time          `json:"created_at"`
	Rule       string             `json:"rule"`
	Params     map[string]float64 `json:"params"`
	EffortMode string             `json:"effort_mode"`
	Seed       int64              `json:"seed"`
	Iterations int                `json:"iterations"`
	Label      string             `json:"label,omitempty"`

	Report turnover.Report   `json:"report"`
	Before *analysis.Summary `json:"before,omitempty"`
	After  *analysis.Summary `json:"after,omitempty"`
}

// Store is a SQLite-backed run log. Safe for concurrent use.
type Store struct {
	mu  sync.Mutex
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if needed) the database at dsn. Use ":memory:" for a
// throwaway log.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection: SQLite has a single writer and ":memory:" is per connection.
	db.SetMaxOpenConns(1)

	if err := InitSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SchemaVersion reports the applied schema version.
func (s *Store) SchemaVersion(ctx context.Context) (int, error) {
	return schemaVersion(ctx, s.db)
}

// SaveRun inserts r and returns its ID. r.ID and r.CreatedAt are ignored.
func (s *Store) SaveRun(ctx context.Context, r Run) (int64, error) {
	if r.Rule == "" {
		return 0, fmt.Errorf("store: run rule is required")
	}
	params, err := json.Marshal(r.Params)
	if err != nil {
		return 0, fmt.Errorf("failed to encode params: %w", err)
	}
	report, err := json.Marshal(r.Report)
	if err != nil {
		return 0, fmt.Errorf("failed to encode report: %w", err)
	}
	before, err := marshalSummary(r.Before)
	if err != nil {
		return 0, err
	}
	after, err := marshalSummary(r.After)
	if err != nil {
		return 0, err
	}
	mode := r.EffortMode
	if mode == "" {
		mode = turnover.EffortFaithful.String()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (created_at, rule, params, effort_mode, seed, iterations, rounds, label,
		                  report, before_summary, after_summary)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.now().UTC().Format(time.RFC3339Nano), r.Rule, string(params), mode, r.Seed, r.Iterations,
		r.Report.Rounds, nullString(r.Label), string(report), before, after)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	return res.LastInsertId()
}

// ListRuns returns up to limit runs, newest first. limit ≤ 0 means all.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	q := runSelect + ` ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}

	return out, rows.Err()
}

// GetRun returns the run with the given ID.
func (s *Store) GetRun(ctx context.Context, id int64) (Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := scanRun(s.db.QueryRowContext(ctx, runSelect+` WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("store: run %d: %w", id, ErrRunNotFound)
	}

	return r, err
}

const runSelect = `
	SELECT id, created_at, rule, params, effort_mode, seed, iterations, label,
	       report, before_summary, after_summary
	FROM runs`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var (
		r                    Run
		created, params, rep string
		label, before, after sql.NullString
	)
	if err := sc.Scan(&r.ID, &created, &r.Rule, &params, &r.EffortMode, &r.Seed, &r.Iterations,
		&label, &rep, &before, &after); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, err
		}
		return Run{}, fmt.Errorf("failed to scan run: %w", err)
	}

	var err error
	if r.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
		return Run{}, fmt.Errorf("run %d: bad created_at: %w", r.ID, err)
	}
	if err = json.Unmarshal([]byte(params), &r.Params); err != nil {
		return Run{}, fmt.Errorf("run %d: bad params: %w", r.ID, err)
	}
	if err = json.Unmarshal([]byte(rep), &r.Report); err != nil {
		return Run{}, fmt.Errorf("run %d: bad report: %w", r.ID, err)
	}
	r.Label = label.String
	if r.Before, err = unmarshalSummary(before); err != nil {
		return Run{}, fmt.Errorf("run %d: bad before_summary: %w", r.ID, err)
	}
	if r.After, err = unmarshalSummary(after); err != nil {
		return Run{}, fmt.Errorf("run %d: bad after_summary: %w", r.ID, err)
	}

	return r, nil
}

func marshalSummary(s *analysis.Summary) (sql.NullString, error) {
	if s == nil {
		return sql.NullString{}, nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("failed to encode summary: %w", err)
	}

	return sql.NullString{String: string(b), Valid: true}, nil
}

func unmarshalSummary(ns sql.NullString) (*analysis.Summary, error) {
	if !ns.Valid {
		return nil, nil
	}
	var s analysis.Summary
	if err := json.Unmarshal([]byte(ns.String), &s); err != nil {
		return nil, err
	}

	return &s, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
