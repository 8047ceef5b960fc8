package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"svw.info/minesweeper/internal/domain"
	"svw.info/minesweeper/internal/engine"
	"svw.info/minesweeper/internal/infrastructure/logger"
	"svw.info/minesweeper/internal/ports"
)

type Service struct {
	Generator ports.Generator
	Validator ports.Validator
	Store     ports.SessionStore
	Journal   ports.Journal // optional
	Logger    *slog.Logger

	// Rows, Cols and Mines default to the fixed board constants.
	Rows, Cols, Mines int

	NewID   func() string
	NewSeed func() int64
}

func NewService(g ports.Generator, v ports.Validator, st ports.SessionStore, j ports.Journal, l *slog.Logger) *Service {
	if l == nil {
		l = logger.Discard()
	}
	return &Service{
		Generator: g,
		Validator: v,
		Store:     st,
		Journal:   j,
		Logger:    l,
		Rows:      domain.DefaultRows,
		Cols:      domain.DefaultCols,
		Mines:     domain.DefaultMines,
		NewID:     uuid.NewString,
		NewSeed:   func() int64 { return time.Now().UnixNano() },
	}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// NewGame generates a board and registers a session for it. A zero seed picks
// a fresh one.
func (u *Service) NewGame(ctx context.Context, seed int64) (*engine.Session, error) {
	if u.Generator == nil || u.Store == nil {
		return nil, errNotConfigured
	}
	if seed == 0 {
		seed = u.NewSeed()
	}
	b, st, err := u.Generator.Generate(ctx, ports.GenerateParams{Rows: u.Rows, Cols: u.Cols, Mines: u.Mines, Seed: seed})
	if err != nil {
		return nil, &domain.OpError{Op: "usecase.new_game", Kind: domain.KindInvalidBoard, Err: err}
	}
	if u.Validator != nil {
		ok, conflicts, err := u.Validator.Validate(ctx, b)
		if err != nil || !ok {
			if err == nil {
				err = domain.ErrInvalidBoard
			}
			u.Logger.Error("game.invalid_board", "seed", seed, "conflicts", len(conflicts), "err", err)
			return nil, &domain.OpError{Op: "usecase.new_game", Kind: domain.KindInvalidBoard, Err: err}
		}
	}
	s := engine.NewSession(u.NewID(), seed, b)
	if err := u.Store.Put(ctx, s); err != nil {
		return nil, err
	}
	u.Logger.Info("game.created", "id", s.ID, "seed", seed,
		"rows", b.Rows, "cols", b.Cols, "mines", b.Mines,
		"samples", st.Samples, "dur", st.Duration)
	return s.Clone(), nil
}

// Game returns a snapshot of a live game.
func (u *Service) Game(ctx context.Context, id string) (*engine.Session, error) {
	if u.Store == nil {
		return nil, errNotConfigured
	}
	return u.Store.Get(ctx, id)
}

// Act applies one user action and returns the resulting snapshot. Rejected
// actions are not errors; the snapshot is simply unchanged.
func (u *Service) Act(ctx context.Context, id string, a domain.Action) (*engine.Session, error) {
	if u.Store == nil {
		return nil, errNotConfigured
	}
	var (
		snap     *engine.Session
		finished *domain.GameRecord
	)
	err := u.Store.Update(ctx, id, func(s *engine.Session) error {
		before := s.Status
		changed := s.Apply(a)
		u.Logger.Debug("game.action", "id", id, "kind", a.Kind.String(), "mode", a.Mode.String(),
			"row", a.Coord.Row, "col", a.Coord.Col, "changed", changed)
		if changed && !before.Terminal() && s.Status.Terminal() {
			finished = s.Record()
		}
		snap = s.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	if finished != nil {
		u.Logger.Info("game.finished", "id", id, "outcome", finished.Outcome.String(),
			"seed", finished.Seed, "moves", finished.Moves)
		if u.Journal != nil {
			if err := u.Journal.Record(ctx, finished); err != nil {
				u.Logger.Error("journal.record", "id", id, "err", err)
			}
		}
	}
	return snap, nil
}

// Abandon drops a live game without recording it.
func (u *Service) Abandon(ctx context.Context, id string) error {
	if u.Store == nil {
		return errNotConfigured
	}
	return u.Store.Delete(ctx, id)
}

// History lists finished games; without a journal it is empty.
func (u *Service) History(ctx context.Context) ([]domain.GameRecord, error) {
	if u.Journal == nil {
		return []domain.GameRecord{}, nil
	}
	recs, err := u.Journal.List(ctx)
	if err != nil {
		return nil, err
	}
	if recs == nil {
		recs = []domain.GameRecord{}
	}
	return recs, nil
}
