package ports

import (
	"context"
	"math/rand"
	"time"

	"svw.info/minesweeper/internal/domain"
	"svw.info/minesweeper/internal/engine"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Samples  int // random draws, collisions included
	Duration time.Duration
}

// MinePlacer marks exactly count distinct cells of b as mines.
type MinePlacer interface {
	Place(ctx context.Context, rng *rand.Rand, b *domain.Board, count int) (samples int, err error)
}

// GenerateParams describes a board to build.
type GenerateParams struct {
	Rows  int
	Cols  int
	Mines int
	Seed  int64
}

// Generator builds a ready-to-play board: allocated, mined and counted.
type Generator interface {
	Generate(ctx context.Context, p GenerateParams) (*domain.Board, Stats, error)
}

// Validator checks board invariants.
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, conflicts []domain.Coord, err error)
}

// Journal keeps records of finished games.
type Journal interface {
	Record(ctx context.Context, rec *domain.GameRecord) error
	List(ctx context.Context) ([]domain.GameRecord, error)
}

// SessionStore holds live games. Update runs fn while holding the game's lock.
type SessionStore interface {
	Put(ctx context.Context, s *engine.Session) error
	Get(ctx context.Context, id string) (*engine.Session, error)
	Update(ctx context.Context, id string, fn func(s *engine.Session) error) error
	Delete(ctx context.Context, id string) error
}
