package statemachine

// Option configures a machine during construction.
type Option[S, E comparable] func(*Machine[S, E])

// TransitionOption configures a single transition with guards and actions.
type TransitionOption[S, E comparable] func(*transition[S, E])

// New creates a machine in the given initial state.
func New[S, E comparable](initial S, opts ...Option[S, E]) *Machine[S, E] {
	m := newMachine[S, E](initial)
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// WithTransition adds a transition from -> to triggered by event.
func WithTransition[S, E comparable](from, to S, event E, opts ...TransitionOption[S, E]) Option[S, E] {
	return func(m *Machine[S, E]) {
		cfg := &transition[S, E]{to: to}
		for _, opt := range opts {
			opt(cfg)
		}
		m.addTransition(from, to, event, cfg.guards, cfg.actions)
	}
}

// WithTransitionFrom adds the same event-driven transition from several states.
func WithTransitionFrom[S, E comparable](froms []S, to S, event E, opts ...TransitionOption[S, E]) Option[S, E] {
	return func(m *Machine[S, E]) {
		for _, from := range froms {
			WithTransition(from, to, event, opts...)(m)
		}
	}
}

// WithObserver registers a callback invoked after every applied transition.
func WithObserver[S, E comparable](obs Observer[S, E]) Option[S, E] {
	return func(m *Machine[S, E]) {
		if obs != nil {
			m.observers = append(m.observers, obs)
		}
	}
}

// WithGuard adds a guard to a transition.
func WithGuard[S, E comparable](guard Guard[S, E]) TransitionOption[S, E] {
	return func(t *transition[S, E]) {
		if guard != nil {
			t.guards = append(t.guards, guard)
		}
	}
}

// WithAction adds an action to a transition.
func WithAction[S, E comparable](action Action[S, E]) TransitionOption[S, E] {
	return func(t *transition[S, E]) {
		if action != nil {
			t.actions = append(t.actions, action)
		}
	}
}
