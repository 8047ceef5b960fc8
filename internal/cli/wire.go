package cli

import (
	"log/slog"
	"os"
	"path/filepath"

	"svw.info/minesweeper/internal/config"
	"svw.info/minesweeper/internal/generator"
	"svw.info/minesweeper/internal/infrastructure/sessions"
	"svw.info/minesweeper/internal/infrastructure/storage"
	"svw.info/minesweeper/internal/ports"
	"svw.info/minesweeper/internal/usecase"
	"svw.info/minesweeper/internal/validator"
)

// SQLiteFile is the journal database name under the data dir.
const SQLiteFile = "games.db"

// openJournal returns nil for "none". The cleanup func is never nil.
func openJournal(cfg config.Config) (ports.Journal, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Journal {
	case config.JournalFS:
		return storage.NewFS(filepath.Join(cfg.DataDir, "games")), noop, nil
	case config.JournalSQLite:
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return nil, noop, err
		}
		db, err := storage.OpenSQLite(filepath.Join(cfg.DataDir, SQLiteFile))
		if err != nil {
			return nil, noop, err
		}
		return db, db.Close, nil
	default:
		return nil, noop, nil
	}
}

// buildService wires providers into the use-case service.
func buildService(cfg config.Config, logger *slog.Logger) (*usecase.Service, func() error, error) {
	j, cleanup, err := openJournal(cfg)
	if err != nil {
		return nil, cleanup, err
	}
	g := generator.New(generator.RandomPlacer{})
	v := validator.New()
	st := sessions.NewMemory(cfg.MaxSessions)
	uc := usecase.NewService(g, v, st, j, logger)
	if cfg.Seed != 0 {
		seed := cfg.Seed
		uc.NewSeed = func() int64 { return seed }
	}
	return uc, cleanup, nil
}
