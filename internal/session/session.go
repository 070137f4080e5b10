// Package session provides mutex-guarded boards for callers that share a
// game between goroutines, and a registry of such games by ID.
package session

import (
	"sort"
	"sync"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/config"
	"github.com/lgbarn/chessrules/internal/engine"
	"github.com/lgbarn/chessrules/internal/errors"
)

// Session wraps one board. Each move holds the lock for its full duration,
// so concurrent movers are serialized and never observe a half-applied move.
type Session struct {
	mu    sync.Mutex
	board *engine.Board
	plies int
}

// New creates a session on a board in the starting position.
func New(cfg *config.Config) *Session {
	return &Session{board: engine.NewBoard(cfg)}
}

// Move applies one move under the session lock.
func (s *Session) Move(from, to chess.Position) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.board.MoveTroop(from, to); err != nil {
		return err
	}
	s.plies++
	return nil
}

// MoveText parses a coordinate move such as "e2e4" and applies it.
func (s *Session) MoveText(text string) error {
	m, err := chess.ParseMove(text)
	if err != nil {
		return err
	}
	return s.Move(m.From, m.To)
}

// Reset returns the board to the starting position.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.board.Reset()
	s.plies = 0
}

// State returns the current board state.
func (s *Session) State() chess.BoardState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.State()
}

// Snapshot returns an independent copy of the board.
func (s *Session) Snapshot() *engine.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Copy()
}

// Plies returns the number of accepted moves since creation or Reset.
func (s *Session) Plies() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plies
}

// Registry maps game IDs to sessions.
type Registry struct {
	cfg      *config.Config
	sessions map[string]*Session
	mu       sync.RWMutex
}

// NewRegistry creates an empty registry whose sessions share cfg.
func NewRegistry(cfg *config.Config) *Registry {
	return &Registry{
		cfg:      cfg,
		sessions: make(map[string]*Session),
	}
}

// Open returns the session for id, creating it if needed.
func (r *Registry) Open(id string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		s = New(r.cfg)
		r.sessions[id] = s
		r.cfg.Logf(config.Transitions, "game %s: opened\n", id)
	}
	return s
}

// Get returns the session for id, or ErrUnknownGame.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, errors.Wrapf(errors.ErrUnknownGame, "game %q", id)
	}
	return s, nil
}

// Delete removes the session for id, or returns ErrUnknownGame.
func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return errors.Wrapf(errors.ErrUnknownGame, "game %q", id)
	}
	delete(r.sessions, id)
	r.cfg.Logf(config.Transitions, "game %s: closed\n", id)
	return nil
}

// IDs returns the registered game IDs in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.sessions))
	for id := range r.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of registered games.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
