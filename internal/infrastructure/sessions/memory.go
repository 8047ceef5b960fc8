package sessions

import (
	"context"
	"errors"
	"sync"
	"time"

	"svw.info/minesweeper/internal/domain"
	"svw.info/minesweeper/internal/engine"
)

type entry struct {
	mu      sync.Mutex
	s       *engine.Session
	touched time.Time
}

// Memory keeps live games in process. When full, the least recently used game
// is evicted to make room.
type Memory struct {
	mu    sync.Mutex
	games map[string]*entry
	max   int
	now   func() time.Time
}

// NewMemory returns a store holding at most max games (0 means unbounded).
func NewMemory(max int) *Memory {
	return &Memory{games: make(map[string]*entry), max: max, now: time.Now}
}

func (m *Memory) Put(ctx context.Context, s *engine.Session) error {
	if s == nil || s.ID == "" {
		return errors.New("invalid session: missing ID")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.games[s.ID]; !exists && m.max > 0 && len(m.games) >= m.max {
		m.evictLocked()
	}
	m.games[s.ID] = &entry{s: s, touched: m.now()}
	return nil
}

func (m *Memory) evictLocked() {
	var oldestID string
	var oldest time.Time
	for id, e := range m.games {
		if oldestID == "" || e.touched.Before(oldest) {
			oldestID, oldest = id, e.touched
		}
	}
	delete(m.games, oldestID)
}

func (m *Memory) lookup(id string) (*entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.games[id]
	if !ok {
		return nil, &domain.OpError{Op: "sessions.lookup", Kind: domain.KindNotFound, Err: domain.ErrSessionNotFound}
	}
	e.touched = m.now()
	return e, nil
}

// Get returns a copy of the game.
func (m *Memory) Get(ctx context.Context, id string) (*engine.Session, error) {
	e, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.s.Clone(), nil
}

// Update runs fn on the live game while holding its lock.
func (m *Memory) Update(ctx context.Context, id string, fn func(s *engine.Session) error) error {
	e, err := m.lookup(id)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.s)
}

func (m *Memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, id)
	return nil
}

// Len reports how many games are held.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.games)
}
