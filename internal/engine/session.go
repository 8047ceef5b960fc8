// Package engine holds the reveal engine: a game session over a board and the
// rules that move it from Playing to Lost or Won.
package engine

import (
	"time"

	"svw.info/minesweeper/internal/domain"
)

// Session is one game. It is not safe for concurrent use; callers serialize
// access (see the session store).
type Session struct {
	ID         string        `json:"id"`
	Seed       int64         `json:"seed"`
	Board      *domain.Board `json:"board"`
	Status     domain.Status `json:"status"`
	Moves      int           `json:"moves"`
	StartedAt  time.Time     `json:"startedAt"`
	FinishedAt time.Time     `json:"finishedAt,omitempty"`

	now func() time.Time
}

// NewSession starts a game on a board that already has mines and counts.
func NewSession(id string, seed int64, b *domain.Board) *Session {
	s := &Session{ID: id, Seed: seed, Board: b, Status: domain.Playing, now: time.Now}
	s.StartedAt = s.now()
	return s
}

// Apply dispatches a user action and reports whether anything changed.
func (s *Session) Apply(a domain.Action) bool {
	var changed bool
	switch a.Kind {
	case domain.Secondary:
		changed = s.ToggleFlag(a.Coord.Row, a.Coord.Col)
	default:
		changed = s.Reveal(a.Coord.Row, a.Coord.Col, a.Mode)
	}
	if changed {
		s.Moves++
	}
	return changed
}

// Reveal opens (r, c). In flag mode it flags the cell instead.
// Out-of-bounds, revealed or flagged targets and finished games are ignored.
func (s *Session) Reveal(r, c int, mode domain.InputMode) bool {
	if s.Status.Terminal() || !s.Board.InBounds(r, c) {
		return false
	}
	cell := s.Board.At(r, c)
	if cell.IsRevealed || cell.IsFlagged {
		return false
	}
	if mode == domain.ModeFlag {
		cell.IsFlagged = !cell.IsFlagged
		s.CheckWin()
		return true
	}
	s.open(domain.Coord{Row: r, Col: c})
	return true
}

// open reveals start and floods through zero-count cells. Flagged cells stop
// the flood; the revealed guard keeps every cell visited at most once.
func (s *Session) open(start domain.Coord) {
	stack := []domain.Coord{start}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		cell := s.Board.At(p.Row, p.Col)
		if cell.IsRevealed || cell.IsFlagged {
			continue
		}
		cell.IsRevealed = true
		if cell.IsMine {
			s.lose()
			return
		}
		if cell.AdjacentMineCount > 0 {
			continue
		}
		for _, nb := range s.Board.Neighbors(p.Row, p.Col) {
			if !s.Board.At(nb.Row, nb.Col).IsRevealed {
				stack = append(stack, nb)
			}
		}
	}
	s.CheckWin()
}

// lose discloses every mine. A flag on a mine is dropped when it is revealed.
func (s *Session) lose() {
	for r := range s.Board.Cells {
		for c := range s.Board.Cells[r] {
			cell := &s.Board.Cells[r][c]
			if cell.IsMine {
				cell.IsRevealed = true
				cell.IsFlagged = false
			}
		}
	}
	s.finish(domain.Lost)
}

// ToggleFlag flips the flag on an unrevealed cell.
func (s *Session) ToggleFlag(r, c int) bool {
	if s.Status.Terminal() || !s.Board.InBounds(r, c) {
		return false
	}
	cell := s.Board.At(r, c)
	if cell.IsRevealed {
		return false
	}
	cell.IsFlagged = !cell.IsFlagged
	s.CheckWin()
	return true
}

// CheckWin moves the game to Won when every mine is flagged and every safe
// cell is revealed. Both must hold at once.
func (s *Session) CheckWin() bool {
	if s.Status == domain.Won {
		return true
	}
	if s.Status != domain.Playing {
		return false
	}
	t := s.Board.Tally()
	if t.FlaggedMines == s.Board.Mines && t.RevealedSafe == s.Board.Size()-s.Board.Mines {
		s.finish(domain.Won)
		return true
	}
	return false
}

func (s *Session) finish(st domain.Status) {
	s.Status = st
	now := time.Now
	if s.now != nil {
		now = s.now
	}
	s.FinishedAt = now()
}

// RemainingMines is the mine count minus placed flags. It can go negative.
func (s *Session) RemainingMines() int {
	return s.Board.Mines - s.Board.Tally().Flags
}

// Clone returns a deep copy safe to hand to another goroutine.
func (s *Session) Clone() *Session {
	out := *s
	out.Board = s.Board.Clone()
	return &out
}

// Record summarizes a finished game for the journal.
func (s *Session) Record() *domain.GameRecord {
	t := s.Board.Tally()
	return &domain.GameRecord{
		ID:         s.ID,
		Rows:       s.Board.Rows,
		Cols:       s.Board.Cols,
		Mines:      s.Board.Mines,
		Seed:       s.Seed,
		Outcome:    s.Status,
		Revealed:   t.RevealedSafe,
		Flags:      t.Flags,
		Moves:      s.Moves,
		StartedAt:  s.StartedAt,
		FinishedAt: s.FinishedAt,
	}
}
