package order

import (
	"errors"
	"fmt"

	"payroll/internal/pkg/errs"
)

// ErrInvalidTransition is the sentinel error wrapped by every TransitionError.
// Use errors.Is(err, ErrInvalidTransition) to detect a rejected transition.
var ErrInvalidTransition = errors.New("invalid order status transition")

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions:
//
//	InProgress ──Complete──▶ Completed  (terminal)
//	     │
//	     └───────Cancel────▶ Cancelled  (terminal)
//
// Both terminal states reject further transitions, so a status can never
// move back to InProgress once it leaves it.
//
// The string form of a Status is its wire and storage name (IN_PROGRESS,
// COMPLETED, CANCELLED).
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// InProgress is the initial status of every freshly created order.
	// Only orders in this status may be completed or cancelled.
	InProgress

	// Completed indicates the order finished successfully.
	// This is a terminal state with no further transitions allowed.
	Completed

	// Cancelled indicates the order was called off.
	// This is a terminal state with no further transitions allowed.
	Cancelled
)

// Transition actions carried by TransitionError.
const (
	ActionComplete = "complete"
	ActionCancel   = "cancel"
)

func getStatusNames() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		InProgress: "IN_PROGRESS",
		Completed:  "COMPLETED",
		Cancelled:  "CANCELLED",
	}
}

func getValidStatusNames() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		InProgress: "IN_PROGRESS",
		Completed:  "COMPLETED",
		Cancelled:  "CANCELLED",
	}
}

// StatusFromName parses the wire/storage name of a status (for example
// "IN_PROGRESS"). Used when rehydrating orders from persistence.
func StatusFromName(name string) (Status, error) {
	for status, statusName := range getValidStatusNames() {
		if statusName == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status name", name),
	)
}

// Validate checks if the Status value is valid.
// Valid statuses are InProgress, Completed and Cancelled.
func (s Status) Validate() error {
	if _, ok := getValidStatusNames()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire name of the status (IN_PROGRESS, COMPLETED,
// CANCELLED) or UNKNOWN for invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if name, ok := getStatusNames()[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - InProgress -> Completed
//
// Every other starting status yields a TransitionError.
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return Unknown, &TransitionError{Action: ActionComplete, Current: s}
	}
	return Completed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - InProgress -> Cancelled
//
// Every other starting status yields a TransitionError.
func (s Status) Cancel() (Status, error) {
	if s != InProgress {
		return Unknown, &TransitionError{Action: ActionCancel, Current: s}
	}
	return Cancelled, nil
}

// TransitionError reports a rejected state transition. It carries the
// attempted action and the status the order was actually in, so callers
// can tell a client exactly why the transition was refused.
type TransitionError struct {
	Action  string
	Current Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s an order in the %s status", e.Action, e.Current)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}
