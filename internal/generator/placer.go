package generator

import (
	"context"
	"fmt"
	"math/rand"

	"svw.info/minesweeper/internal/domain"
)

// RandomPlacer draws uniform (row, col) pairs and keeps the ones that are not
// mines yet, until count distinct mines exist.
type RandomPlacer struct{}

func (RandomPlacer) Place(ctx context.Context, rng *rand.Rand, b *domain.Board, count int) (int, error) {
	if count >= b.Size() {
		return 0, fmt.Errorf("%w: %d mines on %d cells", domain.ErrInvalidBoard, count, b.Size())
	}
	placed, samples := 0, 0
	for placed < count {
		if samples%256 == 0 && ctx.Err() != nil {
			return samples, ctx.Err()
		}
		samples++
		r := rng.Intn(b.Rows)
		c := rng.Intn(b.Cols)
		if cell := b.At(r, c); !cell.IsMine {
			cell.IsMine = true
			placed++
		}
	}
	return samples, nil
}

// FixedPlacer puts mines at a known set of coordinates. Count must match.
type FixedPlacer struct {
	Mines []domain.Coord
}

func (p FixedPlacer) Place(ctx context.Context, _ *rand.Rand, b *domain.Board, count int) (int, error) {
	if len(p.Mines) != count {
		return 0, fmt.Errorf("%w: layout has %d mines, want %d", domain.ErrInvalidBoard, len(p.Mines), count)
	}
	for _, m := range p.Mines {
		if !b.InBounds(m.Row, m.Col) {
			return 0, fmt.Errorf("%w: mine at %d,%d out of bounds", domain.ErrInvalidBoard, m.Row, m.Col)
		}
		cell := b.At(m.Row, m.Col)
		if cell.IsMine {
			return 0, fmt.Errorf("%w: duplicate mine at %d,%d", domain.ErrInvalidBoard, m.Row, m.Col)
		}
		cell.IsMine = true
	}
	return len(p.Mines), nil
}
