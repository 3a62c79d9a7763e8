package describe

import (
	"context"
	"errors"
	"sync"
)

// State is the lifecycle of a generation request.
type State string

// Session states. Generate is permitted from every state except
// Pending, so at most one request is ever outstanding.
const (
	StateIdle     State = "idle"
	StatePending  State = "pending"
	StateResolved State = "resolved"
	StateFailed   State = "failed"
)

// ErrPending is returned when a generation request is already running.
var ErrPending = errors.New("a description is already being generated")

// Session serializes generation requests. A pending request always runs
// to completion; there is no cancellation and no timeout beyond the
// client's own.
type Session struct {
	gen *Generator

	mu    sync.Mutex
	state State
}

// NewSession wraps a generator in an idle session.
func NewSession(gen *Generator) *Session {
	return &Session{gen: gen, state: StateIdle}
}

// State returns the current request state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Generate runs one generation request. It returns ErrPending if a
// request is already outstanding; otherwise it returns text (possibly
// the Fallback string) and transitions to Resolved or Failed.
func (s *Session) Generate(ctx context.Context, name, category, location string) (string, error) {
	s.mu.Lock()
	if s.state == StatePending {
		s.mu.Unlock()
		return "", ErrPending
	}
	s.state = StatePending
	s.mu.Unlock()

	text := s.gen.Generate(ctx, name, category, location)

	s.mu.Lock()
	if text == Fallback {
		s.state = StateFailed
	} else {
		s.state = StateResolved
	}
	s.mu.Unlock()
	return text, nil
}
