// Package view maps game state to what a screen shows. Both the browser and
// the terminal adapters render from it.
package view

import (
	"strconv"

	"golang.org/x/text/message"

	"svw.info/minesweeper/internal/domain"
	"svw.info/minesweeper/internal/engine"
	"svw.info/minesweeper/internal/i18n"
)

const (
	GlyphFlag = "🚩"
	GlyphMine = "💣"
)

// Cell states as seen by a renderer.
const (
	StateHidden   = "hidden"
	StateFlagged  = "flagged"
	StateRevealed = "revealed"
)

type Cell struct {
	State string `json:"state"`
	Glyph string `json:"glyph"`
	// Class carries styling hints: "mine", or "x1".."x8" by count.
	Class string `json:"class,omitempty"`
	Count int    `json:"count,omitempty"`
}

type Game struct {
	ID             string   `json:"id"`
	Seed           int64    `json:"seed"`
	Rows           int      `json:"rows"`
	Cols           int      `json:"cols"`
	Mines          int      `json:"mines"`
	Status         string   `json:"status"`
	StatusText     string   `json:"statusText,omitempty"`
	MinesRemaining int      `json:"minesRemaining"`
	MinesText      string   `json:"minesText"`
	Moves          int      `json:"moves"`
	Cells          [][]Cell `json:"cells"`
}

// CellOf renders a single cell.
func CellOf(c domain.Cell) Cell {
	switch {
	case c.IsRevealed && c.IsMine:
		return Cell{State: StateRevealed, Glyph: GlyphMine, Class: "mine"}
	case c.IsRevealed && c.AdjacentMineCount > 0:
		n := c.AdjacentMineCount
		return Cell{State: StateRevealed, Glyph: strconv.Itoa(n), Class: "x" + strconv.Itoa(n), Count: n}
	case c.IsRevealed:
		return Cell{State: StateRevealed}
	case c.IsFlagged:
		return Cell{State: StateFlagged, Glyph: GlyphFlag}
	default:
		return Cell{State: StateHidden}
	}
}

// Build renders the whole game. A nil printer means the default language.
func Build(s *engine.Session, p *message.Printer) Game {
	if p == nil {
		p = i18n.Printer(i18n.Default())
	}
	b := s.Board
	grid := make([][]Cell, b.Rows)
	for r := 0; r < b.Rows; r++ {
		grid[r] = make([]Cell, b.Cols)
		for c := 0; c < b.Cols; c++ {
			grid[r][c] = CellOf(b.Cells[r][c])
		}
	}
	remaining := s.RemainingMines()
	return Game{
		ID:             s.ID,
		Seed:           s.Seed,
		Rows:           b.Rows,
		Cols:           b.Cols,
		Mines:          b.Mines,
		Status:         s.Status.String(),
		StatusText:     i18n.StatusText(p, s.Status),
		MinesRemaining: remaining,
		MinesText:      i18n.MinesLeftText(p, remaining),
		Moves:          s.Moves,
		Cells:          grid,
	}
}
