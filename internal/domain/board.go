package domain

import "fmt"

// Board is a fixed rows×cols grid of cells owned by a single game session.
// Mines is the number of mines the board was generated with.
type Board struct {
	Rows  int      `json:"rows"`
	Cols  int      `json:"cols"`
	Mines int      `json:"mines"`
	Cells [][]Cell `json:"cells"`
}

// NewBoard allocates an empty rows×cols grid.
func NewBoard(rows, cols int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidBoard, rows, cols)
	}
	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
	}
	return &Board{Rows: rows, Cols: cols, Cells: cells}, nil
}

// Size is the total number of cells.
func (b *Board) Size() int { return b.Rows * b.Cols }

func (b *Board) InBounds(r, c int) bool {
	return r >= 0 && r < b.Rows && c >= 0 && c < b.Cols
}

// At returns the cell at (r, c). The caller checks bounds.
func (b *Board) At(r, c int) *Cell { return &b.Cells[r][c] }

// Neighbors returns the in-bounds 8-connected neighbors of (r, c).
func (b *Board) Neighbors(r, c int) []Coord {
	out := make([]Coord, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr, nc := r+dr, c+dc
			if b.InBounds(nr, nc) {
				out = append(out, Coord{Row: nr, Col: nc})
			}
		}
	}
	return out
}

// ComputeAdjacentCounts stores, for every non-mine cell, the number of mines
// among its neighbors. Run it once after mine placement.
func (b *Board) ComputeAdjacentCounts() {
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			cell := &b.Cells[r][c]
			if cell.IsMine {
				continue
			}
			n := 0
			for _, nb := range b.Neighbors(r, c) {
				if b.Cells[nb.Row][nb.Col].IsMine {
					n++
				}
			}
			cell.AdjacentMineCount = n
		}
	}
}

// Tally summarizes the board for win checks and views.
type Tally struct {
	Mines         int // cells with IsMine
	Flags         int // flagged cells
	FlaggedMines  int // mine && flagged
	RevealedSafe  int // !mine && revealed
	RevealedMines int // mine && revealed
}

func (b *Board) Tally() Tally {
	var t Tally
	for r := range b.Cells {
		for _, cell := range b.Cells[r] {
			if cell.IsMine {
				t.Mines++
			}
			if cell.IsFlagged {
				t.Flags++
			}
			switch {
			case cell.IsMine && cell.IsFlagged:
				t.FlaggedMines++
			case !cell.IsMine && cell.IsRevealed:
				t.RevealedSafe++
			}
			if cell.IsMine && cell.IsRevealed {
				t.RevealedMines++
			}
		}
	}
	return t
}

// Clone returns a deep copy.
func (b *Board) Clone() *Board {
	out := &Board{Rows: b.Rows, Cols: b.Cols, Mines: b.Mines, Cells: make([][]Cell, len(b.Cells))}
	for r := range b.Cells {
		out.Cells[r] = append([]Cell(nil), b.Cells[r]...)
	}
	return out
}
