package domain

import "time"

// Cell is one grid position.
type Cell struct {
	IsMine            bool `json:"mine"`
	IsRevealed        bool `json:"revealed"`
	IsFlagged         bool `json:"flagged"`
	AdjacentMineCount int  `json:"adjacent"`
}

// Coord identifies a cell on the board.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Action is one user input on a cell. Mode only matters for primary actions.
type Action struct {
	Kind  ActionKind
	Coord Coord
	Mode  InputMode
}

// GameRecord is a finished game written to the journal. It does not carry
// the board and cannot be used to resume play.
type GameRecord struct {
	ID         string    `json:"id"`
	Rows       int       `json:"rows"`
	Cols       int       `json:"cols"`
	Mines      int       `json:"mines"`
	Seed       int64     `json:"seed"`
	Outcome    Status    `json:"outcome"`
	Revealed   int       `json:"revealed"`
	Flags      int       `json:"flags"`
	Moves      int       `json:"moves"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
}
