package generator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"svw.info/minesweeper/internal/domain"
	"svw.info/minesweeper/internal/ports"
)

// BoardGenerator builds playable boards using the given MinePlacer.
type BoardGenerator struct {
	Placer ports.MinePlacer
}

// New wires a generator; a nil placer means RandomPlacer.
func New(p ports.MinePlacer) *BoardGenerator {
	if p == nil {
		p = RandomPlacer{}
	}
	return &BoardGenerator{Placer: p}
}

// Generate allocates the grid, places p.Mines mines from p.Seed and computes
// the adjacent counts.
func (g *BoardGenerator) Generate(ctx context.Context, p ports.GenerateParams) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	b, err := domain.NewBoard(p.Rows, p.Cols)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	if p.Mines < 0 || p.Mines >= b.Size() {
		return nil, ports.Stats{}, fmt.Errorf("%w: %d mines on %d cells", domain.ErrInvalidBoard, p.Mines, b.Size())
	}
	rng := rand.New(rand.NewSource(p.Seed))
	samples, err := g.Placer.Place(ctx, rng, b, p.Mines)
	if err != nil {
		return nil, ports.Stats{Samples: samples, Duration: time.Since(start)}, err
	}
	b.Mines = p.Mines
	b.ComputeAdjacentCounts()
	return b, ports.Stats{Samples: samples, Duration: time.Since(start)}, nil
}
