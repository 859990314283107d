// Package storage keeps the Frogger run ledger in SQLite.
// It uses the pure-Go modernc.org/sqlite driver, so builds need no CGO.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// sqliteTime is the layout SQLite uses for CURRENT_TIMESTAMP.
const sqliteTime = "2006-01-02 15:04:05"

const defaultLimit = 10

// ErrNoGameID is returned when saving a run without a game.
var ErrNoGameID = errors.New("storage: run has no game id")

// migrations are applied in order; PRAGMA user_version records how many ran.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id TEXT NOT NULL,
		player TEXT NOT NULL DEFAULT '',
		preset TEXT NOT NULL DEFAULT '',
		score INTEGER NOT NULL,
		crossings INTEGER NOT NULL DEFAULT 0,
		deaths INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(game_id, score DESC, deaths ASC)`,
	`CREATE INDEX IF NOT EXISTS idx_runs_recent ON runs(game_id, id DESC)`,
}

const runColumns = `id, game_id, player, preset, score, crossings, deaths, created_at`

// Store is the run ledger.
type Store struct {
	db *sql.DB
}

// Run is one finished game: how many goal slots were filled and how many
// lives it cost.
type Run struct {
	ID        int64
	GameID    string
	Player    string // local user or SSH user name
	Preset    string // empty for config speeds
	Score     int
	Crossings int
	Deaths    int
	CreatedAt time.Time
}

// Stats aggregates every run of one game.
type Stats struct {
	GameID         string
	Runs           int
	HighScore      int
	AvgScore       float64
	TotalCrossings int64
	TotalDeaths    int64
	LastPlayed     time.Time
}

// Open opens (or creates) the ledger at path, creating parent directories
// and bringing the schema up to date. A leading ~ means the home directory.
func Open(path string) (*Store, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: creating directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: opening %s: %w", path, err)
	}
	// SQLite allows one writer; SSH sessions share this handle.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migrating %s: %w", path, err)
	}
	return s, nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: expanding ~: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

func (s *Store) migrate() error {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return err
	}
	for i := version; i < len(migrations); i++ {
		if _, err := s.db.Exec(migrations[i]); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		// PRAGMA takes no bind parameters.
		if _, err := s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", i+1)); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveRun records a finished run and returns its ID.
func (s *Store) SaveRun(r Run) (int64, error) {
	if r.GameID == "" {
		return 0, ErrNoGameID
	}

	res, err := s.db.Exec(
		`INSERT INTO runs (game_id, player, preset, score, crossings, deaths)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Player, r.Preset, r.Score, r.Crossings, r.Deaths,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: saving run: %w", err)
	}
	return res.LastInsertId()
}

// TopRuns returns the best runs of a game. Ties on score go to the run
// with fewer deaths, then the earlier one. A limit <= 0 means 10.
func (s *Store) TopRuns(gameID string, limit int) ([]Run, error) {
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs WHERE game_id = ?
		 ORDER BY score DESC, deaths ASC, id ASC LIMIT ?`,
		gameID, limit,
	)
}

// RecentRuns returns the latest runs of a game, newest first.
func (s *Store) RecentRuns(gameID string, limit int) ([]Run, error) {
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs WHERE game_id = ?
		 ORDER BY id DESC LIMIT ?`,
		gameID, limit,
	)
}

func (s *Store) queryRuns(query, gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	rows, err := s.db.Query(query, gameID, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r         Run
			createdAt any
		)
		if err := rows.Scan(&r.ID, &r.GameID, &r.Player, &r.Preset, &r.Score, &r.Crossings, &r.Deaths, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: scanning run: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: reading runs: %w", err)
	}
	return runs, nil
}

// HighScore returns the best score of a game, or 0 without runs.
func (s *Store) HighScore(gameID string) (int, error) {
	var score int
	err := s.db.QueryRow(
		"SELECT COALESCE(MAX(score), 0) FROM runs WHERE game_id = ?", gameID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: querying high score: %w", err)
	}
	return score, nil
}

// ClearRuns deletes every run of a game.
func (s *Store) ClearRuns(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM runs WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: clearing runs: %w", err)
	}
	return nil
}

// GameStats aggregates every run of a game.
func (s *Store) GameStats(gameID string) (*Stats, error) {
	stats := &Stats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(crossings), 0), COALESCE(SUM(deaths), 0), MAX(created_at)
		 FROM runs WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Runs, &stats.HighScore, &stats.AvgScore, &stats.TotalCrossings, &stats.TotalDeaths, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: querying stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// parseTime accepts the driver's time.Time or SQLite's text timestamp.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
