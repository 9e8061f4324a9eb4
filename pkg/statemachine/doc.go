// Package statemachine implements a small generic finite state machine.
//
// States and events are any comparable types, typically string-based
// constants. Transitions may carry guards (all must pass) and actions (run in
// order before the state changes; an error aborts the transition). Observers
// are notified after each applied transition, outside the machine lock.
//
//	type Status string
//	type Event string
//
//	m := statemachine.New[Status, Event]("idle",
//	    statemachine.WithTransition[Status, Event]("idle", "busy", "start"),
//	    statemachine.WithTransition[Status, Event]("busy", "idle", "done"),
//	)
//	if err := m.Fire(ctx, "start"); err != nil {
//	    // statemachine.IsNoTransition(err) / statemachine.IsRejected(err)
//	}
package statemachine
