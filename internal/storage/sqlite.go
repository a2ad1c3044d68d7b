// Package storage provides SQLite-based persistence for the solve history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Only finished rounds are stored; board state never is.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for solve persistence.
type Store struct {
	db *sql.DB
}

// Solve represents a single solved round.
type Solve struct {
	ID        int64
	SolveID   string // Round UUID; generated when empty
	Session   string // "local" or the SSH user
	PictureID string
	Moves     int
	Duration  time.Duration
	CreatedAt time.Time
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

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS solves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			solve_id TEXT NOT NULL UNIQUE,
			session TEXT NOT NULL DEFAULT 'local',
			picture_id TEXT NOT NULL,
			moves INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solves_picture_id ON solves(picture_id);
		CREATE INDEX IF NOT EXISTS idx_solves_best ON solves(picture_id, moves ASC, duration_ms ASC);
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

// SaveSolve records a solved round.
// Returns the ID of the inserted record.
func (s *Store) SaveSolve(solve Solve) (int64, error) {
	if solve.SolveID == "" {
		solve.SolveID = uuid.NewString()
	}
	if solve.Session == "" {
		solve.Session = "local"
	}

	result, err := s.db.Exec(
		"INSERT INTO solves (solve_id, session, picture_id, moves, duration_ms) VALUES (?, ?, ?, ?, ?)",
		solve.SolveID, solve.Session, solve.PictureID, solve.Moves, solve.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save solve: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestSolves retrieves the best N solves for the given picture.
// Fewer moves rank first, then shorter durations.
func (s *Store) BestSolves(pictureID string, limit int) ([]Solve, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, solve_id, session, picture_id, moves, duration_ms, created_at
		 FROM solves
		 WHERE picture_id = ?
		 ORDER BY moves ASC, duration_ms ASC, id ASC
		 LIMIT ?`,
		pictureID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	return scanSolves(rows)
}

// RecentSolves retrieves the most recent solves across all pictures.
func (s *Store) RecentSolves(limit int) ([]Solve, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, solve_id, session, picture_id, moves, duration_ms, created_at
		 FROM solves
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recent solves: %w", err)
	}
	return scanSolves(rows)
}

// SolveByID retrieves a solve by its round UUID. Returns nil if not found.
func (s *Store) SolveByID(solveID string) (*Solve, error) {
	rows, err := s.db.Query(
		`SELECT id, solve_id, session, picture_id, moves, duration_ms, created_at
		 FROM solves
		 WHERE solve_id = ?`,
		solveID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solve: %w", err)
	}
	solves, err := scanSolves(rows)
	if err != nil || len(solves) == 0 {
		return nil, err
	}
	return &solves[0], nil
}

func scanSolves(rows *sql.Rows) ([]Solve, error) {
	defer rows.Close()

	var entries []Solve
	for rows.Next() {
		var e Solve
		var durationMs int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.SolveID, &e.Session, &e.PictureID, &e.Moves, &durationMs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Duration = time.Duration(durationMs) * time.Millisecond
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
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

// ClearSolves deletes all solves for the given picture.
func (s *Store) ClearSolves(pictureID string) error {
	_, err := s.db.Exec("DELETE FROM solves WHERE picture_id = ?", pictureID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear solves: %w", err)
	}
	return nil
}

// PictureStats contains aggregated statistics for a picture.
type PictureStats struct {
	PictureID    string
	Solves       int
	BestMoves    int
	AvgMoves     float64
	BestDuration time.Duration
	LastSolved   time.Time
}

// GetPictureStats retrieves aggregated statistics for a specific picture.
func (s *Store) GetPictureStats(pictureID string) (*PictureStats, error) {
	stats := &PictureStats{PictureID: pictureID}
	var bestMs int64

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MIN(moves), 0), COALESCE(AVG(moves), 0), COALESCE(MIN(duration_ms), 0)
		 FROM solves WHERE picture_id = ?`,
		pictureID,
	).Scan(&stats.Solves, &stats.BestMoves, &stats.AvgMoves, &bestMs)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get picture stats: %w", err)
	}
	stats.BestDuration = time.Duration(bestMs) * time.Millisecond

	// Get last solved
	var lastSolved any
	err = s.db.QueryRow(
		`SELECT created_at FROM solves WHERE picture_id = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		pictureID,
	).Scan(&lastSolved)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last solved: %w", err)
	}
	if err == nil {
		stats.LastSolved = parseTime(lastSolved)
	}

	return stats, nil
}

// GetAllPictureStats retrieves statistics for all pictures that have been solved.
func (s *Store) GetAllPictureStats() (map[string]*PictureStats, error) {
	rows, err := s.db.Query(
		`SELECT picture_id, COUNT(*), MIN(moves), AVG(moves), MIN(duration_ms), MAX(created_at)
		 FROM solves
		 GROUP BY picture_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all picture stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*PictureStats)
	for rows.Next() {
		var ps PictureStats
		var bestMs int64
		var lastSolved any
		if err := rows.Scan(&ps.PictureID, &ps.Solves, &ps.BestMoves, &ps.AvgMoves, &bestMs, &lastSolved); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ps.BestDuration = time.Duration(bestMs) * time.Millisecond
		ps.LastSolved = parseTime(lastSolved)
		stats[ps.PictureID] = &ps
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
