package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"svw.info/minesweeper/internal/domain"
)

// SQLite keeps the journal in a single table.
type SQLite struct {
	db *sql.DB
}

// BusyTimeout is how long a write waits for the database lock.
const BusyTimeout = 5 * time.Second

// OpenSQLite opens (or creates) the database at path and migrates it.
// Writes from concurrent games go through one connection and wait on a busy
// lock instead of failing.
func OpenSQLite(path string) (*SQLite, error) {
	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(%d)", path, BusyTimeout.Milliseconds())
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	s := &SQLite{db: db}
	if err := s.Migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLite) Close() error { return s.db.Close() }

func (s *SQLite) Migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS games (
			id TEXT PRIMARY KEY,
			board_rows INTEGER NOT NULL,
			board_cols INTEGER NOT NULL,
			mines INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			revealed INTEGER NOT NULL DEFAULT 0,
			flags INTEGER NOT NULL DEFAULT 0,
			moves INTEGER NOT NULL DEFAULT 0,
			started_at INTEGER NOT NULL,
			finished_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_games_finished_at ON games(finished_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_games_outcome ON games(outcome)`,
	}
	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

func (s *SQLite) Record(ctx context.Context, rec *domain.GameRecord) error {
	if rec == nil {
		return fmt.Errorf("record: nil game record")
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx, `INSERT OR REPLACE INTO games
		(id, board_rows, board_cols, mines, seed, outcome, revealed, flags, moves, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Rows, rec.Cols, rec.Mines, rec.Seed, rec.Outcome.String(),
		rec.Revealed, rec.Flags, rec.Moves,
		rec.StartedAt.UnixNano(), rec.FinishedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to save game %s: %w", rec.ID, err)
	}
	return nil
}

func (s *SQLite) List(ctx context.Context) ([]domain.GameRecord, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, board_rows, board_cols, mines, seed, outcome,
		revealed, flags, moves, started_at, finished_at
		FROM games ORDER BY finished_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	defer rows.Close()

	var out []domain.GameRecord
	for rows.Next() {
		var (
			rec               domain.GameRecord
			outcome           string
			started, finished int64
		)
		if err := rows.Scan(&rec.ID, &rec.Rows, &rec.Cols, &rec.Mines, &rec.Seed, &outcome,
			&rec.Revealed, &rec.Flags, &rec.Moves, &started, &finished); err != nil {
			return nil, fmt.Errorf("failed to scan game: %w", err)
		}
		rec.Outcome = domain.ParseStatus(outcome)
		rec.StartedAt = time.Unix(0, started).UTC()
		rec.FinishedAt = time.Unix(0, finished).UTC()
		out = append(out, rec)
	}
	return out, rows.Err()
}
