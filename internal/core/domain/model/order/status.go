package order

import (
	"errors"
	"fmt"
	"strings"

	"foodorder/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct fulfillment workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Preparing ──> Ready ──> Completed
//	   │            │             │           │
//	   └────────────┴─────────────┴───────────┴──> Cancelled
//
// Completed and Cancelled are terminal; no transition leaves them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first placed.
	Pending

	// Confirmed indicates the restaurant has accepted the order.
	Confirmed

	// Preparing indicates the kitchen is working on the order.
	Preparing

	// Ready indicates the order is ready for pickup.
	Ready

	// Completed indicates the order has been picked up. Terminal.
	Completed

	// Cancelled indicates the order was cancelled. Terminal.
	Cancelled
)

// ErrInvalidTransition is the sentinel for status transitions not present in
// the transition table. Use errors.Is against it; the concrete
// InvalidTransitionError carries the attempted from/to pair.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError reports an attempted status change that is not in
// the transition table. The order is left unchanged when it is returned.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition: %s -> %s", e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// AllowedTransitions returns the transition table as plain data: each valid
// status mapped to the statuses it may move to. Terminal statuses map to an
// empty set. The table carries no behavior and can be consumed independently
// of the aggregate; callers receive a fresh copy.
func AllowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:   {Confirmed, Cancelled},
		Confirmed: {Preparing, Cancelled},
		Preparing: {Ready, Cancelled},
		Ready:     {Completed, Cancelled},
		Completed: {},
		Cancelled: {},
	}
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Preparing: "Preparing",
		Ready:     "Ready",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and values outside the transition table are invalid.
func (s Status) Validate() error {
	if _, ok := AllowedTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Returns "Unknown" for invalid status values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status name, case-insensitively.
// Used when statuses arrive from transport or persistence as text.
func StatusFromString(name string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && strings.EqualFold(str, name) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status name", name),
	)
}

// CanTransitionTo reports whether the transition table allows moving from
// this status to the given one.
func (s Status) CanTransitionTo(to Status) bool {
	for _, allowed := range AllowedTransitions()[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsFinal reports whether the status is terminal, i.e. its allowed-set in
// the transition table is empty.
func (s Status) IsFinal() bool {
	return len(AllowedTransitions()[s]) == 0 && s.Validate() == nil
}

// CanBeCancelled reports whether Cancelled is reachable from this status.
// True for Pending, Confirmed, Preparing, and Ready. Note that the
// customer-facing Order.Cancel applies a narrower gate on top of this; see
// the Order documentation.
func (s Status) CanBeCancelled() bool {
	return s.CanTransitionTo(Cancelled)
}
