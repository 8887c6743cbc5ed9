// Package storage keeps a journal of finished matches in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// The journal is history only; it is never used to restore a game.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// End reasons recorded in the journal.
const (
	EndCompleted = "completed" // A side reached the winning score
	EndQuit      = "quit"      // The player left early
)

// Store manages the SQLite database connection for the match journal.
type Store struct {
	db *sql.DB
}

// Match is a single journal entry.
type Match struct {
	ID           int64
	StartedAt    time.Time
	Duration     time.Duration
	Frontend     string // "terminal", "window" or "ssh"
	Player       string
	LeftScore    int
	RightScore   int
	Winner       string // "left", "right" or empty when unfinished
	EndReason    string
	PaddleHits   int
	WallHits     int
	LongestRally int
	CreatedAt    time.Time
}

// MatchFromGame builds a journal entry from the final state of g.
func MatchFromGame(g *pong.Game, frontend, player string, started, ended time.Time) Match {
	score := g.Score()
	stats := g.Stats()

	m := Match{
		StartedAt:    started,
		Duration:     ended.Sub(started),
		Frontend:     frontend,
		Player:       player,
		LeftScore:    score[pong.SideLeft],
		RightScore:   score[pong.SideRight],
		EndReason:    EndQuit,
		PaddleHits:   stats.PaddleHits,
		WallHits:     stats.WallHits,
		LongestRally: stats.LongestRally,
	}
	if winner, ok := g.Winner(); ok {
		m.Winner = winner.String()
		m.EndReason = EndCompleted
	}
	return m
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at_ms INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			frontend TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			left_score INTEGER NOT NULL DEFAULT 0,
			right_score INTEGER NOT NULL DEFAULT 0,
			winner TEXT NOT NULL DEFAULT '',
			end_reason TEXT NOT NULL,
			paddle_hits INTEGER NOT NULL DEFAULT 0,
			wall_hits INTEGER NOT NULL DEFAULT 0,
			longest_rally INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_started ON matches(started_at_ms DESC);
		CREATE INDEX IF NOT EXISTS idx_matches_player ON matches(player);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveMatch appends a match to the journal.
// Returns the ID of the inserted record.
func (s *Store) SaveMatch(m Match) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO matches
		 (started_at_ms, duration_ms, frontend, player, left_score, right_score,
		  winner, end_reason, paddle_hits, wall_hits, longest_rally)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.StartedAt.UnixMilli(),
		m.Duration.Milliseconds(),
		m.Frontend,
		m.Player,
		m.LeftScore,
		m.RightScore,
		m.Winner,
		m.EndReason,
		m.PaddleHits,
		m.WallHits,
		m.LongestRally,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const selectMatches = `
	SELECT id, started_at_ms, duration_ms, frontend, player, left_score, right_score,
	       winner, end_reason, paddle_hits, wall_hits, longest_rally, created_at
	FROM matches`

// RecentMatches retrieves the most recent matches, newest first.
func (s *Store) RecentMatches(limit int) ([]Match, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryMatches(selectMatches+` ORDER BY started_at_ms DESC, id DESC LIMIT ?`, limit)
}

// AllMatches retrieves the whole journal in chronological order.
func (s *Store) AllMatches() ([]Match, error) {
	return s.queryMatches(selectMatches + ` ORDER BY started_at_ms, id`)
}

// PlayerMatches retrieves the most recent matches of one player.
func (s *Store) PlayerMatches(player string, limit int) ([]Match, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryMatches(selectMatches+` WHERE player = ? ORDER BY started_at_ms DESC, id DESC LIMIT ?`, player, limit)
}

func (s *Store) queryMatches(query string, args ...any) ([]Match, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var m Match
		var startedMS, durationMS int64
		var createdAt any
		if err := rows.Scan(
			&m.ID,
			&startedMS,
			&durationMS,
			&m.Frontend,
			&m.Player,
			&m.LeftScore,
			&m.RightScore,
			&m.Winner,
			&m.EndReason,
			&m.PaddleHits,
			&m.WallHits,
			&m.LongestRally,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		m.StartedAt = time.UnixMilli(startedMS)
		m.Duration = time.Duration(durationMS) * time.Millisecond
		m.CreatedAt = parseTimestamp(createdAt)
		matches = append(matches, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return matches, nil
}

// ClearMatches deletes the whole journal.
func (s *Store) ClearMatches() error {
	if _, err := s.db.Exec("DELETE FROM matches"); err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}

// Summary contains aggregated journal statistics.
type Summary struct {
	Matches       int
	Wins          int // Matches won by the player (left side)
	Losses        int
	Unfinished    int
	PointsFor     int
	PointsAgainst int
	LongestRally  int
	LastPlayed    time.Time
}

// Summary aggregates the whole journal.
func (s *Store) Summary() (*Summary, error) {
	sum := &Summary{}

	var lastMS sql.NullInt64
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN winner = 'left' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN winner = 'right' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN winner = '' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(left_score), 0),
		        COALESCE(SUM(right_score), 0),
		        COALESCE(MAX(longest_rally), 0),
		        MAX(started_at_ms)
		 FROM matches`,
	).Scan(
		&sum.Matches,
		&sum.Wins,
		&sum.Losses,
		&sum.Unfinished,
		&sum.PointsFor,
		&sum.PointsAgainst,
		&sum.LongestRally,
		&lastMS,
	)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get summary: %w", err)
	}

	if lastMS.Valid {
		sum.LastPlayed = time.UnixMilli(lastMS.Int64)
	}
	return sum, nil
}

// parseTimestamp handles DATETIME values returned either as time.Time or
// as text, depending on the driver path.
func parseTimestamp(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
