package form

import (
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/statemachine"
)

// Status is the submission status of a form.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSettled    Status = "settled"
)

// Outcome records how the most recent submit attempt ended.
type Outcome string

const (
	OutcomeNone      Outcome = ""
	OutcomeInvalid   Outcome = "invalid"
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeRejected  Outcome = "rejected"
	OutcomeFailed    Outcome = "failed"
)

type statusEvent string

const (
	eventSubmit statusEvent = "submit"
	eventSettle statusEvent = "settle"
	eventResume statusEvent = "resume"
)

func newStatusMachine(obs statemachine.Observer[Status, statusEvent]) *statemachine.Machine[Status, statusEvent] {
	return statemachine.New(StatusIdle,
		statemachine.WithTransition[Status, statusEvent](StatusIdle, StatusSubmitting, eventSubmit),
		statemachine.WithTransition[Status, statusEvent](StatusSubmitting, StatusSettled, eventSettle),
		statemachine.WithTransition[Status, statusEvent](StatusSettled, StatusIdle, eventResume),
		statemachine.WithObserver(obs),
	)
}
