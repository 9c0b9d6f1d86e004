// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package analytics

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// LedgerWorkerName is the registry name of the SQLite worker.
const LedgerWorkerName = "ledger"

// ErrNoLedgerPath is returned when the ledger worker has no file configured.
var ErrNoLedgerPath = errors.New("analytics: ledger path not configured")

const ledgerSchema = `
CREATE TABLE IF NOT EXISTS events (
	id       TEXT PRIMARY KEY,
	name     TEXT NOT NULL,
	network  TEXT NOT NULL,
	tracked  INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_events_name ON events(name);
`

// LedgerWorker appends events to a local SQLite database.
type LedgerWorker struct {
	db   *sql.DB
	path string
}

// OpenLedger opens or creates the ledger at path. ":memory:" is accepted.
func OpenLedger(path string) (*LedgerWorker, error) {
	if path == "" {
		return nil, ErrNoLedgerPath
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create ledger directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger: %w", err)
	}
	// SQLite only supports one writer at a time
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA synchronous=NORMAL"} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}
	if _, err := db.Exec(ledgerSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize ledger schema: %w", err)
	}
	return &LedgerWorker{db: db, path: path}, nil
}

// Name implements Worker.
func (w *LedgerWorker) Name() string { return LedgerWorkerName }

// Send implements Worker.
func (w *LedgerWorker) Send(ctx context.Context, ev Event) error {
	_, err := w.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO events (id, name, network, tracked) VALUES (?, ?, ?, ?)",
		ev.ID, ev.Name, ev.Network, ev.Time.UnixMilli())
	if err != nil {
		return fmt.Errorf("ledger: insert: %w", err)
	}
	return nil
}

// Count returns how many events named name were recorded. An empty name
// counts all events.
func (w *LedgerWorker) Count(ctx context.Context, name string) (int, error) {
	var n int
	var err error
	if name == "" {
		err = w.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM events").Scan(&n)
	} else {
		err = w.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM events WHERE name = ?", name).Scan(&n)
	}
	return n, err
}

// Recent returns up to limit events, newest first.
func (w *LedgerWorker) Recent(ctx context.Context, limit int) ([]Event, error) {
	rows, err := w.db.QueryContext(ctx,
		"SELECT id, name, network, tracked FROM events ORDER BY tracked DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var ev Event
		var ms int64
		if err := rows.Scan(&ev.ID, &ev.Name, &ev.Network, &ms); err != nil {
			return nil, err
		}
		ev.Time = time.UnixMilli(ms).UTC()
		out = append(out, ev)
	}
	return out, rows.Err()
}

// Close implements Worker.
func (w *LedgerWorker) Close() error {
	return w.db.Close()
}
