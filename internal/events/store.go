// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package events

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/revision-engine/pkg/types"
)

// Store is a SQLite-backed Sink for durable attempt and cycle events.
// Inserts are best-effort: a failed insert is reported on stderr but never
// interrupts a revision cycle.
type Store struct {
	db *sql.DB
}

// OpenStore opens or creates the events database at path, creating the
// schema if it does not exist.
func OpenStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating events directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening events database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating events schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS attempts (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			provider TEXT NOT NULL,
			capability TEXT NOT NULL,
			outcome TEXT NOT NULL,
			attempt INTEGER NOT NULL,
			latency_ms INTEGER NOT NULL,
			ts TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_attempts_provider ON attempts(provider)`,
		`CREATE TABLE IF NOT EXISTS cycles (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			section TEXT NOT NULL,
			reason TEXT NOT NULL,
			iterations INTEGER NOT NULL,
			final_score REAL NOT NULL,
			ts TEXT NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Attempt records one provider attempt.
func (s *Store) Attempt(e AttemptEvent) {
	_, err := s.db.Exec(
		`INSERT INTO attempts (provider, capability, outcome, attempt, latency_ms, ts)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		string(e.Provider), e.Capability, string(e.Outcome), e.Attempt, e.LatencyMS,
		e.Timestamp.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: recording attempt event: %v\n", err)
	}
}

// Cycle records one cycle summary.
func (s *Store) Cycle(e CycleEvent) {
	_, err := s.db.Exec(
		`INSERT INTO cycles (section, reason, iterations, final_score, ts)
		 VALUES (?, ?, ?, ?, ?)`,
		string(e.Section), string(e.Reason), e.Iterations, e.FinalScore,
		e.Timestamp.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: recording cycle event: %v\n", err)
	}
}

// AttemptCount aggregates attempt outcomes for one provider.
type AttemptCount struct {
	Provider types.ProviderID
	Outcome  Outcome
	Count    int
}

// AttemptCounts returns attempt totals grouped by provider and outcome.
func (s *Store) AttemptCounts(ctx context.Context) ([]AttemptCount, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT provider, outcome, COUNT(*) FROM attempts
		 GROUP BY provider, outcome ORDER BY provider, outcome`)
	if err != nil {
		return nil, fmt.Errorf("querying attempt counts: %w", err)
	}
	defer rows.Close()

	var counts []AttemptCount
	for rows.Next() {
		var c AttemptCount
		var provider, outcome string
		if err := rows.Scan(&provider, &outcome, &c.Count); err != nil {
			return nil, fmt.Errorf("scanning attempt count: %w", err)
		}
		c.Provider = types.ProviderID(provider)
		c.Outcome = Outcome(outcome)
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// CycleSummary is one stored cycle event.
type CycleSummary struct {
	Section    types.SectionType
	Reason     types.TerminationReason
	Iterations int
	FinalScore float64
	Timestamp  time.Time
}

// RecentCycles returns the most recent n cycle summaries, newest first.
func (s *Store) RecentCycles(ctx context.Context, n int) ([]CycleSummary, error) {
	if n <= 0 {
		n = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT section, reason, iterations, final_score, ts FROM cycles
		 ORDER BY rowid DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("querying cycles: %w", err)
	}
	defer rows.Close()

	var summaries []CycleSummary
	for rows.Next() {
		var c CycleSummary
		var section, reason, ts string
		if err := rows.Scan(&section, &reason, &c.Iterations, &c.FinalScore, &ts); err != nil {
			return nil, fmt.Errorf("scanning cycle: %w", err)
		}
		c.Section = types.SectionType(section)
		c.Reason = types.TerminationReason(reason)
		if parsed, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			c.Timestamp = parsed
		}
		summaries = append(summaries, c)
	}
	return summaries, rows.Err()
}
