package statemachine

import (
	"context"
	"fmt"
	"sync"
)

// Guard evaluates whether a transition should be allowed based on runtime conditions.
type Guard[S, E comparable] func(ctx context.Context, from S, event E) bool

// Action executes side effects during a transition. Returning an error prevents the transition.
type Action[S, E comparable] func(ctx context.Context, from, to S, event E) error

// Observer is notified after a transition has been applied.
type Observer[S, E comparable] func(from, to S, event E)

type transition[S, E comparable] struct {
	to      S
	guards  []Guard[S, E]
	actions []Action[S, E]
}

// Machine is a thread-safe in-memory finite state machine over comparable
// state and event types. Transitions are looked up as [from][event] and the
// first one whose guards all pass wins.
type Machine[S, E comparable] struct {
	mu          sync.RWMutex
	initial     S
	current     S
	transitions map[S]map[E][]transition[S, E]
	observers   []Observer[S, E]
}

func newMachine[S, E comparable](initial S) *Machine[S, E] {
	return &Machine[S, E]{
		initial:     initial,
		current:     initial,
		transitions: make(map[S]map[E][]transition[S, E]),
	}
}

// Current returns the current state.
func (m *Machine[S, E]) Current() S {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Is reports whether the machine is in state s.
func (m *Machine[S, E]) Is(s S) bool {
	return m.Current() == s
}

func (m *Machine[S, E]) addTransition(from, to S, event E, guards []Guard[S, E], actions []Action[S, E]) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.transitions[from]; !ok {
		m.transitions[from] = make(map[E][]transition[S, E])
	}
	// Several transitions per from/event are allowed for guard-based branching.
	m.transitions[from][event] = append(m.transitions[from][event], transition[S, E]{
		to:      to,
		guards:  guards,
		actions: actions,
	})
}

// Fire applies the first transition for event whose guards pass. Actions run
// before the state changes; observers run after it, outside the lock.
func (m *Machine[S, E]) Fire(ctx context.Context, event E) error {
	m.mu.Lock()

	from := m.current
	candidates := m.transitions[from][event]
	if len(candidates) == 0 {
		m.mu.Unlock()
		return &NoTransitionError{State: fmt.Sprint(from), Event: fmt.Sprint(event)}
	}

	chosen := -1
	for i, t := range candidates {
		if guardsPass(ctx, t.guards, from, event) {
			chosen = i
			break
		}
	}
	if chosen < 0 {
		m.mu.Unlock()
		return &RejectedError{State: fmt.Sprint(from), Event: fmt.Sprint(event)}
	}

	t := candidates[chosen]
	for _, action := range t.actions {
		if err := action(ctx, from, t.to, event); err != nil {
			m.mu.Unlock()
			return fmt.Errorf("action failed: %w", err)
		}
	}

	m.current = t.to
	observers := m.observers
	m.mu.Unlock()

	for _, obs := range observers {
		obs(from, t.to, event)
	}
	return nil
}

// CanFire reports whether Fire would find a transition for event right now.
func (m *Machine[S, E]) CanFire(ctx context.Context, event E) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, t := range m.transitions[m.current][event] {
		if guardsPass(ctx, t.guards, m.current, event) {
			return true
		}
	}
	return false
}

// Reset returns the machine to its initial state without running actions or observers.
func (m *Machine[S, E]) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.initial
}

func guardsPass[S, E comparable](ctx context.Context, guards []Guard[S, E], from S, event E) bool {
	for _, guard := range guards {
		if !guard(ctx, from, event) {
			return false
		}
	}
	return true
}
