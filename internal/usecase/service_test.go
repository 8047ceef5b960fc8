package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"svw.info/minesweeper/internal/domain"
	"svw.info/minesweeper/internal/generator"
	"svw.info/minesweeper/internal/infrastructure/sessions"
	"svw.info/minesweeper/internal/usecase"
	"svw.info/minesweeper/internal/validator"
)

var layout = []domain.Coord{
	{Row: 0, Col: 0}, {Row: 0, Col: 7}, {Row: 1, Col: 1}, {Row: 2, Col: 5}, {Row: 3, Col: 3},
	{Row: 4, Col: 0}, {Row: 5, Col: 6}, {Row: 6, Col: 2}, {Row: 7, Col: 7}, {Row: 7, Col: 0},
}

type memJournal struct {
	mu   sync.Mutex
	recs []domain.GameRecord
	err  error
}

func (j *memJournal) Record(_ context.Context, rec *domain.GameRecord) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.err != nil {
		return j.err
	}
	j.recs = append(j.recs, *rec)
	return nil
}

func (j *memJournal) List(context.Context) ([]domain.GameRecord, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]domain.GameRecord(nil), j.recs...), j.err
}

func newService(t *testing.T, j *memJournal, logs *bytes.Buffer) *usecase.Service {
	t.Helper()
	var l *slog.Logger
	if logs != nil {
		l = slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	svc := usecase.NewService(
		generator.New(generator.FixedPlacer{Mines: layout}),
		validator.New(),
		sessions.NewMemory(0),
		nil,
		l,
	)
	if j != nil {
		svc.Journal = j
	}
	n := 0
	svc.NewID = func() string {
		n++
		return "game-" + string(rune('0'+n))
	}
	return svc
}

func primary(r, c int, mode domain.InputMode) domain.Action {
	return domain.Action{Kind: domain.Primary, Coord: domain.Coord{Row: r, Col: c}, Mode: mode}
}

func secondary(r, c int) domain.Action {
	return domain.Action{Kind: domain.Secondary, Coord: domain.Coord{Row: r, Col: c}}
}

func TestNewGame(t *testing.T) {
	var logs bytes.Buffer
	svc := newService(t, nil, &logs)
	ctx := context.Background()

	s, err := svc.NewGame(ctx, 99)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	if s.ID != "game-1" || s.Seed != 99 || s.Status != domain.Playing {
		t.Fatalf("session = %s %d %v", s.ID, s.Seed, s.Status)
	}
	if tl := s.Board.Tally(); tl.Mines != 10 || tl.Flags != 0 || tl.RevealedSafe != 0 {
		t.Fatalf("tally = %+v", tl)
	}
	if got := s.Board.At(0, 1).AdjacentMineCount; got != 2 {
		t.Fatalf("count at 0,1 = %d", got)
	}
	if !strings.Contains(logs.String(), "game.created") {
		t.Fatalf("missing game.created log: %s", logs.String())
	}

	svc.NewSeed = func() int64 { return 7 }
	s2, _ := svc.NewGame(ctx, 0)
	if s2.Seed != 7 {
		t.Fatalf("zero seed should draw a fresh one, got %d", s2.Seed)
	}
}

func TestNewGameRejectsBadBoard(t *testing.T) {
	svc := newService(t, nil, nil)
	svc.Mines = 64
	_, err := svc.NewGame(context.Background(), 1)
	if !domain.IsKind(err, domain.KindInvalidBoard) {
		t.Fatalf("err = %v", err)
	}
}

func TestGameUnknownID(t *testing.T) {
	svc := newService(t, nil, nil)
	ctx := context.Background()
	if _, err := svc.Game(ctx, "missing"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("Game err = %v", err)
	}
	if _, err := svc.Act(ctx, "missing", primary(0, 0, domain.ModeReveal)); !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("Act err = %v", err)
	}
}

func TestActLossIsJournaledOnce(t *testing.T) {
	j := &memJournal{}
	var logs bytes.Buffer
	svc := newService(t, j, &logs)
	ctx := context.Background()
	s, _ := svc.NewGame(ctx, 5)

	snap, err := svc.Act(ctx, s.ID, primary(0, 4, domain.ModeReveal))
	if err != nil {
		t.Fatal(err)
	}
	if snap.Status != domain.Playing || snap.Moves != 1 {
		t.Fatalf("after cascade: %v moves=%d", snap.Status, snap.Moves)
	}

	snap, _ = svc.Act(ctx, s.ID, primary(3, 3, domain.ModeReveal))
	if snap.Status != domain.Lost {
		t.Fatalf("status = %v, want lost", snap.Status)
	}
	if tl := snap.Board.Tally(); tl.RevealedMines != 10 {
		t.Fatalf("revealed mines = %d", tl.RevealedMines)
	}
	// Terminal: further actions change nothing and are not journaled again.
	snap, _ = svc.Act(ctx, s.ID, secondary(7, 4))
	if snap.Moves != 2 || snap.Board.At(7, 4).IsFlagged {
		t.Fatalf("action after loss applied: moves=%d", snap.Moves)
	}

	recs, _ := svc.History(ctx)
	if len(recs) != 1 || recs[0].ID != s.ID || recs[0].Outcome != domain.Lost || recs[0].Seed != 5 || recs[0].Moves != 2 {
		t.Fatalf("history = %+v", recs)
	}
	if !strings.Contains(logs.String(), "game.finished") {
		t.Fatal("missing game.finished log")
	}
}

func TestActWin(t *testing.T) {
	j := &memJournal{}
	svc := newService(t, j, nil)
	ctx := context.Background()
	s, _ := svc.NewGame(ctx, 1)

	mine := make(map[domain.Coord]bool, len(layout))
	for _, m := range layout {
		mine[m] = true
		if _, err := svc.Act(ctx, s.ID, primary(m.Row, m.Col, domain.ModeFlag)); err != nil {
			t.Fatal(err)
		}
	}
	var snap = s
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			if mine[domain.Coord{Row: r, Col: c}] {
				continue
			}
			snap, _ = svc.Act(ctx, s.ID, primary(r, c, domain.ModeReveal))
		}
	}
	if snap.Status != domain.Won {
		t.Fatalf("status = %v, want won", snap.Status)
	}
	if len(j.recs) != 1 || j.recs[0].Outcome != domain.Won || j.recs[0].Revealed != 54 || j.recs[0].Flags != 10 {
		t.Fatalf("journal = %+v", j.recs)
	}
}

func TestJournalFailureDoesNotFailAction(t *testing.T) {
	j := &memJournal{err: errors.New("disk full")}
	var logs bytes.Buffer
	svc := newService(t, j, &logs)
	ctx := context.Background()
	s, _ := svc.NewGame(ctx, 1)

	snap, err := svc.Act(ctx, s.ID, primary(0, 0, domain.ModeReveal))
	if err != nil || snap.Status != domain.Lost {
		t.Fatalf("Act = %v, %v", snap, err)
	}
	if !strings.Contains(logs.String(), "journal.record") {
		t.Fatal("journal failure not logged")
	}
}

func TestHistoryWithoutJournal(t *testing.T) {
	recs, err := newService(t, nil, nil).History(context.Background())
	if err != nil || recs == nil || len(recs) != 0 {
		t.Fatalf("History = %v, %v", recs, err)
	}
}

func TestAbandon(t *testing.T) {
	svc := newService(t, nil, nil)
	ctx := context.Background()
	s, _ := svc.NewGame(ctx, 1)
	if err := svc.Abandon(ctx, s.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Game(ctx, s.ID); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("err = %v", err)
	}
}

func TestUnconfiguredService(t *testing.T) {
	var svc usecase.Service
	if _, err := svc.NewGame(context.Background(), 1); err == nil {
		t.Fatal("expected error")
	}
}
