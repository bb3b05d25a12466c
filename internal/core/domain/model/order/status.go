package order

import (
	"fmt"
	"slices"

	"ordertracker/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It is stored and
// serialized as its lowercase name.
//
// State transitions:
//
//	Pending ──> Processing ──> Shipped ──> Delivered
//	   │            │
//	   └────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal. Moving to the current status is not a
// transition and is rejected.
type Status string

const (
	// Unknown is the zero value and never valid.
	Unknown Status = ""

	// Pending is the initial status of every new order.
	Pending Status = "pending"

	// Processing means the order is being prepared.
	Processing Status = "processing"

	// Shipped means the order left the warehouse. It can no longer be cancelled.
	Shipped Status = "shipped"

	// Delivered is terminal.
	Delivered Status = "delivered"

	// Cancelled is terminal.
	Cancelled Status = "cancelled"
)

// transitions lists, for each valid status, the statuses it may move to.
// Slices keep AllowedTransitions deterministic.
var transitions = map[Status][]Status{
	Pending:    {Processing, Cancelled},
	Processing: {Shipped, Cancelled},
	Shipped:    {Delivered},
	Delivered:  {},
	Cancelled:  {},
}

// AllStatuses returns every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Processing, Shipped, Delivered, Cancelled}
}

// ParseStatus converts a wire value into a Status.
// Values are matched exactly; "Pending" is not "pending".
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return Unknown, err
	}
	return status, nil
}

// Validate checks that the status is one of the known values.
func (s Status) Validate() error {
	if _, ok := transitions[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String returns the wire name of the status, or "unknown" for invalid values.
func (s Status) String() string {
	if _, ok := transitions[s]; !ok {
		return "unknown"
	}
	return string(s)
}

// IsTerminal reports whether no further transitions are possible.
// Invalid statuses are not terminal; they have no place in the lifecycle at all.
func (s Status) IsTerminal() bool {
	next, ok := transitions[s]
	return ok && len(next) == 0
}

// AllowedTransitions returns a copy of the statuses reachable in one step.
func (s Status) AllowedTransitions() []Status {
	return slices.Clone(transitions[s])
}

// CanTransitionTo reports whether the transition table allows s -> next.
func (s Status) CanTransitionTo(next Status) bool {
	return slices.Contains(transitions[s], next)
}

// ValidateTransition checks s -> next without performing it.
//
// Returns:
//   - nil if next is valid and reachable from s
//   - ValueIsInvalidError if next is unknown, s is unknown, or the move is not in the table
func (s Status) ValidateTransition(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}
	if !s.CanTransitionTo(next) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("cannot change status from %s to %s", s, next),
		)
	}
	return nil
}

// TransitionTo returns next if the move is allowed.
//
// Example:
//
//	newStatus, err := order.Pending.TransitionTo(order.Processing)
//	if err != nil {
//	    // illegal transition
//	}
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := s.ValidateTransition(next); err != nil {
		return Unknown, err
	}
	return next, nil
}
