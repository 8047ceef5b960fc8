package domain

import (
	"errors"
	"testing"
)

func TestNewBoardRejectsBadDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 8}, {8, 0}, {-1, 3}} {
		if _, err := NewBoard(dims[0], dims[1]); !errors.Is(err, ErrInvalidBoard) {
			t.Errorf("NewBoard(%d,%d) err = %v, want ErrInvalidBoard", dims[0], dims[1], err)
		}
	}
}

func TestNewBoardIsEmpty(t *testing.T) {
	b, err := NewBoard(3, 5)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	if b.Size() != 15 || len(b.Cells) != 3 || len(b.Cells[0]) != 5 {
		t.Fatalf("unexpected shape %dx%d", len(b.Cells), len(b.Cells[0]))
	}
	if (b.Tally() != Tally{}) {
		t.Fatalf("fresh board should be all zero, got %+v", b.Tally())
	}
}

func TestNeighborsClipAtEdges(t *testing.T) {
	b, _ := NewBoard(8, 8)
	cases := []struct {
		r, c, want int
	}{
		{0, 0, 3},
		{0, 7, 3},
		{7, 7, 3},
		{0, 3, 5},
		{4, 0, 5},
		{4, 4, 8},
	}
	for _, tc := range cases {
		if got := len(b.Neighbors(tc.r, tc.c)); got != tc.want {
			t.Errorf("Neighbors(%d,%d) = %d, want %d", tc.r, tc.c, got, tc.want)
		}
	}
}

func TestComputeAdjacentCounts(t *testing.T) {
	// * . .
	// . . *
	// . . .
	b, _ := NewBoard(3, 3)
	b.At(0, 0).IsMine = true
	b.At(1, 2).IsMine = true
	b.Mines = 2
	b.ComputeAdjacentCounts()

	want := [3][3]int{
		{0, 2, 1},
		{1, 2, 0},
		{0, 1, 1},
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if b.At(r, c).IsMine {
				continue
			}
			if got := b.At(r, c).AdjacentMineCount; got != want[r][c] {
				t.Errorf("count at %d,%d = %d, want %d", r, c, got, want[r][c])
			}
		}
	}
	if got := b.At(0, 0).AdjacentMineCount; got != 0 {
		t.Errorf("mine cells keep a zero count, got %d", got)
	}
}

func TestTally(t *testing.T) {
	b, _ := NewBoard(2, 2)
	b.At(0, 0).IsMine = true
	b.At(0, 0).IsFlagged = true
	b.At(0, 1).IsFlagged = true
	b.At(1, 0).IsRevealed = true
	b.At(1, 1).IsMine = true
	b.At(1, 1).IsRevealed = true

	got := b.Tally()
	want := Tally{Mines: 2, Flags: 2, FlaggedMines: 1, RevealedSafe: 1, RevealedMines: 1}
	if got != want {
		t.Fatalf("Tally = %+v, want %+v", got, want)
	}
}

func TestParseEnums(t *testing.T) {
	if ParseInputMode(" FLAG ") != ModeFlag || ParseInputMode("reveal") != ModeReveal || ParseInputMode("x") != ModeReveal {
		t.Error("ParseInputMode mismatch")
	}
	for _, s := range []Status{Playing, Lost, Won} {
		if ParseStatus(s.String()) != s {
			t.Errorf("status %v does not round-trip", s)
		}
	}
	if !Lost.Terminal() || !Won.Terminal() || Playing.Terminal() {
		t.Error("Terminal mismatch")
	}
}
