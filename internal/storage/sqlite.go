// Package storage keeps the log of rounds played in this session.
// Uses the pure-Go modernc.org/sqlite driver on a private in-memory database,
// so the log lives exactly as long as the process.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// memoryDSN opens a database that exists only for this connection.
const memoryDSN = ":memory:"

// Session manages the in-memory round log.
type Session struct {
	db *sql.DB
}

// Round is one finished round.
type Round struct {
	ID       int64 // round number within the session, starting at 1
	Score    int
	Distance int           // collision-free ticks
	Duration time.Duration // wall time from start to collision
	EndedAt  time.Time
}

// Stats contains aggregated statistics for the session.
type Stats struct {
	Rounds        int
	Best          int
	AvgScore      float64
	TotalDistance int64
	Longest       time.Duration
}

// OpenSession creates an empty round log.
func OpenSession() (*Session, error) {
	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every new connection to :memory: is a separate, empty database.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	s := &Session{db: db}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return s, nil
}

// migrate creates the schema.
func (s *Session) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			distance INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			ended_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_top ON rounds(score DESC, distance DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection and discards the log.
func (s *Session) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRound records a finished round and returns its round number.
// A zero EndedAt is recorded as the current time.
func (s *Session) SaveRound(r Round) (int64, error) {
	if r.EndedAt.IsZero() {
		r.EndedAt = time.Now()
	}

	result, err := s.db.Exec(
		"INSERT INTO rounds (score, distance, duration_ms, ended_at) VALUES (?, ?, ?, ?)",
		r.Score, r.Distance, r.Duration.Milliseconds(), r.EndedAt.UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRounds retrieves the N best rounds, highest score first. Ties go to the
// longer round, then the earlier one.
func (s *Session) TopRounds(limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.query(
		`SELECT id, score, distance, duration_ms, ended_at
		 FROM rounds
		 ORDER BY score DESC, distance DESC, id ASC
		 LIMIT ?`,
		limit,
	)
}

// RecentRounds retrieves the N most recent rounds, newest first.
func (s *Session) RecentRounds(limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.query(
		`SELECT id, score, distance, duration_ms, ended_at
		 FROM rounds
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

func (s *Session) query(q string, args ...any) ([]Round, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var rounds []Round
	for rows.Next() {
		var r Round
		var durationMS, endedAt int64
		if err := rows.Scan(&r.ID, &r.Score, &r.Distance, &durationMS, &endedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.EndedAt = time.UnixMilli(endedAt)
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rounds, nil
}

// Best returns the highest score of the session.
// Returns 0 if no rounds were played.
func (s *Session) Best() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM rounds").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Stats retrieves aggregated statistics for the session.
func (s *Session) Stats() (*Stats, error) {
	stats := &Stats{}
	var longestMS int64

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(distance), 0), COALESCE(MAX(duration_ms), 0)
		 FROM rounds`,
	).Scan(&stats.Rounds, &stats.Best, &stats.AvgScore, &stats.TotalDistance, &longestMS)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get session stats: %w", err)
	}
	stats.Longest = time.Duration(longestMS) * time.Millisecond

	return stats, nil
}
