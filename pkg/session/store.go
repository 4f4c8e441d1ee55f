package session

import (
	"errors"
	"maps"
	"sync"

	"github.com/google/uuid"
	"github.com/studymate/studymate/pkg/timetable"
)

var ErrSessionNotFound = errors.New("session not found")

// Store keeps session states in memory. Nothing survives a restart.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]State
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]State)}
}

// Create starts a session with the initial state and returns its id.
func (s *Store) Create() string {
	id := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = NewState()
	return id
}

func (s *Store) Get(id string) (State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.sessions[id]
	if !ok {
		return State{}, ErrSessionNotFound
	}
	return state.clone(), nil
}

// Update passes a copy of the session's state to fn and keeps the result if fn
// succeeds. Updates of one store are serialized.
func (s *Store) Update(id string, fn func(state *State) error) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.sessions[id]
	if !ok {
		return State{}, ErrSessionNotFound
	}
	updated := state.clone()
	if err := fn(&updated); err != nil {
		return State{}, err
	}
	s.sessions[id] = updated
	return updated.clone(), nil
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Len is the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func copyPlan(plan timetable.Plan) timetable.Plan {
	plan.Completed = maps.Clone(plan.Completed)
	return plan
}
