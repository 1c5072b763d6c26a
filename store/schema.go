// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"database/sql"
	"fmt"
)

// SchemaVersion is the current schema version.
const SchemaVersion = 1

// schemaV1 is the initial schema for the run log.
const schemaV1 = `
CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER PRIMARY KEY,
    applied_at TEXT NOT NULL
);

-- One row per simulation run.
CREATE TABLE IF NOT EXISTS runs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TEXT NOT NULL,
    rule TEXT NOT NULL,          -- 'induction', 'weighted_induction', 'style_copying'
    params TEXT NOT NULL,        -- JSON object of rule parameters
    effort_mode TEXT NOT NULL DEFAULT 'faithful',
    seed INTEGER NOT NULL,
    iterations INTEGER NOT NULL,
    rounds INTEGER NOT NULL,
    label TEXT,

    report TEXT NOT NULL,        -- JSON turnover.Report
    before_summary TEXT,         -- JSON analysis.Summary of the initial graph
    after_summary TEXT           -- JSON analysis.Summary of the final graph
);
CREATE INDEX IF NOT EXISTS idx_runs_rule ON runs(rule);
`

// InitSchema creates the schema if needed. It is idempotent.
func InitSchema(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin schema transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err = tx.ExecContext(ctx, schemaV1); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	if _, err = tx.ExecContext(ctx,
		`INSERT OR IGNORE INTO schema_version (version, applied_at) VALUES (?, datetime('now'))`,
		SchemaVersion); err != nil {
		return fmt.Errorf("failed to record schema version: %w", err)
	}

	return tx.Commit()
}

// schemaVersion returns the highest applied schema version.
func schemaVersion(ctx context.Context, db *sql.DB) (int, error) {
	var v int
	if err := db.QueryRowContext(ctx, `SELECT MAX(version) FROM schema_version`).Scan(&v); err != nil {
		return 0, err
	}

	return v, nil
}
