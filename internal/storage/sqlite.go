// Package storage provides SQLite-based persistence for finished bingo rounds
// and their scores. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies. Rounds in progress are never stored.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
}

// RoundRecord is the outcome of one finished round.
type RoundRecord struct {
	ID          int64
	RoundID     string // uuid
	GameID      string
	Result      string // "win" or "lose"
	Reason      string // bingo, lives_exhausted, time_up, pool_exhausted
	Score       int
	Marked      int
	Called      int
	LivesLeft   int
	SecondsLeft int
	Duration    time.Duration
	CreatedAt   time.Time
}

// RoundStats aggregates the rounds of one game.
type RoundStats struct {
	GameID     string
	Played     int
	Won        int
	Lost       int
	BestScore  int
	AvgMarked  float64
	LastPlayed time.Time
}

// WinRate returns the fraction of rounds won, or 0 with no rounds.
func (s RoundStats) WinRate() float64 {
	if s.Played == 0 {
		return 0
	}
	return float64(s.Won) / float64(s.Played)
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
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			round_id TEXT NOT NULL UNIQUE,
			game_id TEXT NOT NULL,
			result TEXT NOT NULL,
			reason TEXT NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			marked INTEGER NOT NULL DEFAULT 0,
			called INTEGER NOT NULL DEFAULT 0,
			lives_left INTEGER NOT NULL DEFAULT 0,
			seconds_left INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_game_id ON rounds(game_id);
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

// SaveScore records a new score for the given game.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (game_id, score) VALUES (?, ?)",
		gameID, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// SaveRound records a finished round and its score in one transaction.
// Saving the same round ID twice is a no-op that reports saved=false.
func (s *Store) SaveRound(r RoundRecord) (saved bool, err error) {
	tx, err := s.db.Begin()
	if err != nil {
		return false, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.Exec(
		`INSERT OR IGNORE INTO rounds
		 (round_id, game_id, result, reason, score, marked, called, lives_left, seconds_left, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RoundID,
		r.GameID,
		r.Result,
		r.Reason,
		r.Score,
		r.Marked,
		r.Called,
		r.LivesLeft,
		r.SecondsLeft,
		r.Duration.Milliseconds(),
	)
	if err != nil {
		return false, fmt.Errorf("storage: cannot save round: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot check saved round: %w", err)
	}

	if n > 0 {
		if _, err = tx.Exec("INSERT INTO scores (game_id, score) VALUES (?, ?)", r.GameID, r.Score); err != nil {
			return false, fmt.Errorf("storage: cannot save score: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("storage: cannot commit round: %w", err)
	}
	return n > 0, nil
}

// TopScores retrieves the top N scores for the given game.
// Results are ordered by score descending.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for the given game.
// Returns 0 if no scores exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all scores and rounds for the given game.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM rounds WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

const roundColumns = `id, round_id, game_id, result, reason, score, marked, called,
	lives_left, seconds_left, duration_ms, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanRound(row scanner) (RoundRecord, error) {
	var r RoundRecord
	var durationMS int64
	var createdAt any
	err := row.Scan(
		&r.ID,
		&r.RoundID,
		&r.GameID,
		&r.Result,
		&r.Reason,
		&r.Score,
		&r.Marked,
		&r.Called,
		&r.LivesLeft,
		&r.SecondsLeft,
		&durationMS,
		&createdAt,
	)
	if err != nil {
		return RoundRecord{}, err
	}
	r.Duration = time.Duration(durationMS) * time.Millisecond
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// RoundByID retrieves a round by its uuid. Returns nil if it does not exist.
func (s *Store) RoundByID(roundID string) (*RoundRecord, error) {
	row := s.db.QueryRow("SELECT "+roundColumns+" FROM rounds WHERE round_id = ?", roundID)
	r, err := scanRound(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query round: %w", err)
	}
	return &r, nil
}

// RecentRounds retrieves the most recent rounds of a game, newest first.
func (s *Store) RecentRounds(gameID string, limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+roundColumns+`
		 FROM rounds
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var results []RoundRecord
	for rows.Next() {
		r, err := scanRound(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// RoundStats retrieves aggregated win/loss statistics for a game.
func (s *Store) RoundStats(gameID string) (*RoundStats, error) {
	stats := &RoundStats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN result = 'win' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN result = 'lose' THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(score), 0),
		        COALESCE(AVG(marked), 0),
		        MAX(created_at)
		 FROM rounds WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Played, &stats.Won, &stats.Lost, &stats.BestScore, &stats.AvgMarked, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get round stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// parseTime handles both time.Time and string datetime values from SQLite.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
