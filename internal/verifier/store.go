package verifier

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// ReportStore persists VerificationReport history to a local SQLite
// file, so a CI harness can diff pass/fail counts across runs without
// re-running every prior verify call. Disabled by default - verify()
// itself stays a pure function of (domain, test data, mode); a
// ReportStore is an opt-in side effect a caller wires in explicitly,
// grounded on termfx-morfx's database/sql + modernc.org/sqlite-backed
// local state (internal/db/db.go) rather than the teacher's own
// otherwise-unexercised modernc.org/sqlite dependency.
type ReportStore struct {
	db *sql.DB
}

// OpenReportStore opens (creating if absent) a SQLite-backed store at
// path and ensures its schema exists.
func OpenReportStore(path string) (*ReportStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("verifier: open report store: %w", err)
	}
	store := &ReportStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (s *ReportStore) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS verification_reports (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			total INTEGER NOT NULL,
			passed INTEGER NOT NULL,
			failed INTEGER NOT NULL,
			skipped INTEGER NOT NULL,
			errors INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			recorded_at TEXT NOT NULL,
			report_json TEXT NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("verifier: migrate report store: %w", err)
	}
	return nil
}

// Save records one Report row.
func (s *ReportStore) Save(r Report) error {
	payload, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("verifier: marshal report: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO verification_reports
			(mode, total, passed, failed, skipped, errors, duration_ms, recorded_at, report_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Mode, r.Summary.Total, r.Summary.Passed, r.Summary.Failed, r.Summary.Skipped, r.Summary.Errors,
		r.DurationMS, r.Timestamp.Format(time.RFC3339Nano), string(payload),
	)
	if err != nil {
		return fmt.Errorf("verifier: save report: %w", err)
	}
	return nil
}

// History returns the most recent n report summaries (newest first),
// without re-parsing the full report_json payload - a regression
// dashboard only needs the aggregate counts most of the time.
func (s *ReportStore) History(n int) ([]Summary, error) {
	rows, err := s.db.Query(
		`SELECT total, passed, failed, skipped, errors FROM verification_reports
		 ORDER BY id DESC LIMIT ?`, n,
	)
	if err != nil {
		return nil, fmt.Errorf("verifier: query report history: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var sum Summary
		if err := rows.Scan(&sum.Total, &sum.Passed, &sum.Failed, &sum.Skipped, &sum.Errors); err != nil {
			return nil, fmt.Errorf("verifier: scan report history: %w", err)
		}
		out = append(out, sum)
	}
	return out, rows.Err()
}

// Close releases the underlying database handle.
func (s *ReportStore) Close() error {
	return s.db.Close()
}
