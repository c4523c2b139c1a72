package order

import (
	"fmt"

	"foodtruck/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with a closed transition table so that orders
// follow the canonical kitchen workflow.
//
// State transitions:
//
//	pending ──> preparing ──> ready ──> completed
//	   │            │
//	   └────────────┴──> cancelled
//
// Cancellation is only reachable from pending or preparing; once an order is
// ready the food is already made. completed and cancelled are terminal.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status are waiting for the kitchen to pick them up.
	Pending

	// Preparing indicates the kitchen is working on the order.
	Preparing

	// Ready indicates the food is made and waiting for pickup.
	// Orders leave the kitchen display at this point.
	Ready

	// Completed indicates the order was picked up by the customer.
	// Completion requires the order to be paid. This is a terminal state.
	Completed

	// Cancelled indicates the order was abandoned before the food was made.
	// This is a terminal state.
	Cancelled
)

// getStatusStrings returns a map of Status values to their wire representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Preparing: "preparing",
		Ready:     "ready",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

// allowedTransitions encodes the transition table as data: each status maps to
// the set of statuses it may move to. Statuses absent from the map are terminal.
func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:   {Preparing, Cancelled},
		Preparing: {Ready, Cancelled},
		Ready:     {Completed},
	}
}

// bumpSuccessor is the single forward step along the canonical path used by
// the kitchen bump operation.
func bumpSuccessor() map[Status]Status {
	return map[Status]Status{
		Pending:   Preparing,
		Preparing: Ready,
	}
}

// StatusFromString parses a wire-format status string ("pending", "preparing",
// "ready", "completed", "cancelled") into a Status.
// Returns a validation error for anything else.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
// Valid statuses are pending, preparing, ready, completed, and cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if s < Pending || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire-format name of the status.
// This method implements the fmt.Stringer interface and is safe to call on
// any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// CanTransitionTo reports whether moving from s to target is an edge of the
// transition table.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range allowedTransitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo moves the status to target along an allowed edge.
//
// Returns:
//   - (target, nil) if the edge is in the transition table
//   - (0, InvalidTransitionError) otherwise, identifying both states
//
// The caller must not apply a rejected transition locally; its cached view of
// the order is stale and it must re-fetch authoritative state.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(target) {
		return 0, errs.NewInvalidTransitionError(s.String(), target.String())
	}
	return target, nil
}

// Bump advances one step forward along the canonical path:
// pending -> preparing, or preparing -> ready.
//
// Bumping a ready order is a no-op that returns Ready rather than an error,
// to tolerate a double-tap on the kitchen touchscreen. Bumping a terminal
// order fails with InvalidTransitionError.
func (s Status) Bump() (Status, error) {
	if s == Ready {
		return Ready, nil
	}
	next, ok := bumpSuccessor()[s]
	if !ok {
		return 0, errs.NewInvalidTransitionError(s.String(), "next")
	}
	return next, nil
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// IsActive reports whether the order still occupies the kitchen queue
// (pending or preparing, not yet ready).
func (s Status) IsActive() bool {
	return s == Pending || s == Preparing
}
