// Package findingstore persists validator findings into SQLite so the
// `analyze` CLI command can query aggregate counts across runs (SPEC_FULL
// §4.7). This is a diagnostic collaborator concern about traces the CLI
// has inspected — never core protocol state, and never imported by
// internal/domain, internal/codec, internal/protocol, or
// internal/validator.
package findingstore

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/IsraelAraujo70/acpcore/internal/validator"
)

// Store wraps a SQLite database of persisted findings.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS findings (
	run_id        TEXT    NOT NULL,
	connection_id TEXT    NOT NULL,
	lane          TEXT    NOT NULL,
	severity      TEXT    NOT NULL,
	code          TEXT    NOT NULL,
	subject       TEXT    NOT NULL,
	trace_index   INTEGER NOT NULL,
	message       TEXT,
	PRIMARY KEY (run_id, lane, severity, code, subject, trace_index)
);
`

// Open opens (creating if necessary) the SQLite database at path and
// ensures the findings table exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("findingstore: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("findingstore: create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// PersistRun inserts findings under runID/connectionID. Re-persisting the
// same run (same runID) with the same findings is a no-op: the primary key
// is exactly the §3.7 dedup tuple plus runID, so INSERT OR IGNORE drops
// rows already present.
func (s *Store) PersistRun(runID, connectionID string, findings []validator.ValidationFinding) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("findingstore: begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT OR IGNORE INTO findings
		(run_id, connection_id, lane, severity, code, subject, trace_index, message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("findingstore: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, f := range findings {
		if _, err := stmt.Exec(runID, connectionID, f.Lane.String(), f.Severity.String(), f.Code, f.Subject.String(), f.TraceIndex, f.Message); err != nil {
			return fmt.Errorf("findingstore: insert finding: %w", err)
		}
	}

	return tx.Commit()
}

// LaneCount is one row of an aggregate-by-lane query.
type LaneCount struct {
	Lane  string
	Count int
}

// CountByLane returns the number of distinct persisted findings per lane,
// across every run in the store.
func (s *Store) CountByLane() ([]LaneCount, error) {
	rows, err := s.db.Query(`SELECT lane, COUNT(*) FROM findings GROUP BY lane ORDER BY lane`)
	if err != nil {
		return nil, fmt.Errorf("findingstore: count by lane: %w", err)
	}
	defer rows.Close()

	var out []LaneCount
	for rows.Next() {
		var lc LaneCount
		if err := rows.Scan(&lc.Lane, &lc.Count); err != nil {
			return nil, fmt.Errorf("findingstore: scan lane count: %w", err)
		}
		out = append(out, lc)
	}
	return out, rows.Err()
}

// CodeCount is one row of an aggregate-by-code query.
type CodeCount struct {
	Code  string
	Count int
}

// CountByCode returns the number of distinct persisted findings per stable
// code, across every run in the store (e.g. "how many CANCEL_MISMATCH
// findings this week").
func (s *Store) CountByCode() ([]CodeCount, error) {
	rows, err := s.db.Query(`SELECT code, COUNT(*) FROM findings GROUP BY code ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("findingstore: count by code: %w", err)
	}
	defer rows.Close()

	var out []CodeCount
	for rows.Next() {
		var cc CodeCount
		if err := rows.Scan(&cc.Code, &cc.Count); err != nil {
			return nil, fmt.Errorf("findingstore: scan code count: %w", err)
		}
		out = append(out, cc)
	}
	return out, rows.Err()
}
