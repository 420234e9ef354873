package state

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition is returned for a move outside the state graph
	ErrInvalidTransition = errors.New("invalid state transition")
	// ErrStaleSession is returned when a delayed transition outlived its session
	ErrStaleSession = errors.New("stale session")
)

var transitions = map[GameState][]GameState{
	StateStart:    {StatePlaying},
	StatePlaying:  {StateVictory, StateGameOver},
	StateVictory:  {StatePlaying},
	StateGameOver: {StatePlaying},
}

// Machine tracks the scene state. Every entry into StatePlaying
// starts a new session with a fresh token.
type Machine struct {
	current GameState
	session uint64

	// OnChange is called after every successful transition
	OnChange func(from, to GameState)
}

// NewMachine creates a machine in StateStart
func NewMachine() *Machine {
	return &Machine{current: StateStart}
}

// Current returns the current state
func (m *Machine) Current() GameState {
	return m.current
}

// Session returns the token of the latest PLAYING session
func (m *Machine) Session() uint64 {
	return m.session
}

// CanTransition reports whether to is reachable from the current state
func (m *Machine) CanTransition(to GameState) bool {
	for _, s := range transitions[m.current] {
		if s == to {
			return true
		}
	}
	return false
}

// Transition moves to the given state
func (m *Machine) Transition(to GameState) error {
	if !m.CanTransition(to) {
		return fmt.Errorf("%s -> %s: %w", m.current, to, ErrInvalidTransition)
	}

	from := m.current
	m.current = to
	if to == StatePlaying {
		m.session++
	}
	if m.OnChange != nil {
		m.OnChange(from, to)
	}
	return nil
}

// Conclude ends the given session with a terminal state.
// It fails with ErrStaleSession if a newer session has started.
func (m *Machine) Conclude(session uint64, to GameState) error {
	if session != m.session {
		return fmt.Errorf("conclude session %d (current %d): %w", session, m.session, ErrStaleSession)
	}
	if !to.Terminal() {
		return fmt.Errorf("conclude with %s: %w", to, ErrInvalidTransition)
	}
	return m.Transition(to)
}
