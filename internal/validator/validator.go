package validator

import (
	"context"

	"svw.info/minesweeper/internal/domain"
)

// BoardValidator checks the invariants a generated or played board must keep.
type BoardValidator struct{}

func New() *BoardValidator { return &BoardValidator{} }

// Validate reports cells that break an invariant: a wrong adjacent count, or a
// cell both revealed and flagged. A mine total other than b.Mines, or one that
// fills the board, fails without a cell list.
func (v *BoardValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.Coord, error) {
	if b == nil || b.Rows <= 0 || b.Cols <= 0 || len(b.Cells) != b.Rows {
		return false, nil, domain.ErrInvalidBoard
	}
	conf := make([]domain.Coord, 0, 4)
	mines := 0
	for r := 0; r < b.Rows; r++ {
		if len(b.Cells[r]) != b.Cols {
			return false, nil, domain.ErrInvalidBoard
		}
		for c := 0; c < b.Cols; c++ {
			cell := b.Cells[r][c]
			if cell.IsMine {
				mines++
			}
			if cell.IsRevealed && cell.IsFlagged {
				conf = append(conf, domain.Coord{Row: r, Col: c})
				continue
			}
			if cell.IsMine {
				continue
			}
			want := 0
			for _, nb := range b.Neighbors(r, c) {
				if b.Cells[nb.Row][nb.Col].IsMine {
					want++
				}
			}
			if cell.AdjacentMineCount != want {
				conf = append(conf, domain.Coord{Row: r, Col: c})
			}
		}
		if ctx.Err() != nil {
			return false, nil, ctx.Err()
		}
	}
	ok := len(conf) == 0 && mines == b.Mines && mines < b.Size()
	return ok, conf, nil
}
