package order

import (
	"fmt"

	"printshop/internal/pkg/errs"
)

// Status represents the fulfillment state of an order.
// It implements a state machine whose permitted moves are decided together
// with a TransitionPolicy, so the transition graph is configuration, not a
// hard-coded assumption.
//
// Happy path:
//
//	Pending ──> Processing ──> Printing ──> Shipped ──> Delivered
//
// Cancelled is reachable from any state on the happy path that has not been
// delivered. Refunded is reachable only from Delivered or Cancelled. Forward
// moves along the happy path may skip states when the policy allows it (a
// manually fulfilled order can jump Pending -> Delivered); backward moves
// are always rejected.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Pending is the initial status when an order is first created.
	Pending

	// Processing indicates the order has been accepted and is being prepared.
	Processing

	// Printing indicates at least one print job for the order is running.
	Printing

	// Shipped indicates the order has left the shop. Entering this status
	// for the first time stamps the order's shipped-at timestamp.
	Shipped

	// Delivered indicates the customer has received the order. Entering this
	// status for the first time stamps the order's delivered-at timestamp.
	Delivered

	// Cancelled is a terminal status for orders abandoned before delivery.
	Cancelled

	// Refunded is a terminal status for orders paid back to the customer.
	Refunded
)

// happyPathRank orders the forward states. Terminals are not ranked.
var happyPathRank = map[Status]int{
	Pending:    1,
	Processing: 2,
	Printing:   3,
	Shipped:    4,
	Delivered:  5,
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		Pending:       "pending",
		Processing:    "processing",
		Printing:      "printing",
		Shipped:       "shipped",
		Delivered:     "delivered",
		Cancelled:     "cancelled",
		Refunded:      "refunded",
	}
}

// ParseStatus converts a string from an external boundary into a Status.
// Unrecognized values are rejected with a validation error, never coerced.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("order status",
		fmt.Errorf("%q is not a recognized order status", s))
}

// Validate checks if the Status value is one of the known states.
func (s Status) Validate() error {
	if s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("order status",
			fmt.Errorf("%d is not a valid order status", int(s)))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("order status",
			fmt.Errorf("%d is not a valid order status", int(s)))
	}
	return nil
}

// String returns the lowercase name of the status, as persisted and shown
// to the operator. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions leave this status.
// Delivered is not terminal: a delivered order can still be refunded.
func (s Status) IsTerminal() bool {
	return s == Cancelled || s == Refunded
}

// TransitionPolicy captures the configurable parts of the fulfillment state
// machine. The permitted transition graph is deliberately policy, not code:
// shops differ on whether manual fulfillment may skip states and whether an
// order must be paid before it ships.
type TransitionPolicy struct {
	// AllowSkips permits forward jumps over intermediate happy-path states,
	// e.g. Pending -> Delivered for a hand-delivered order.
	AllowSkips bool

	// RequirePaidBeforeShipped rejects transitions into Shipped (or further)
	// while the order's payment status is not Paid.
	RequirePaidBeforeShipped bool
}

// DefaultTransitionPolicy returns the policy the shop runs with: skips are
// allowed and payment is not a shipping prerequisite. The original ledger
// never blocked shipping on payment, so the default keeps that behavior;
// the flag exists to make the rule explicit and flippable.
func DefaultTransitionPolicy() TransitionPolicy {
	return TransitionPolicy{
		AllowSkips:               true,
		RequirePaidBeforeShipped: false,
	}
}

// Transition checks whether moving from s to target is permitted under the
// policy. It has no side effects; Order.ChangeStatus applies the timestamp
// stamping and delivered-order guards on top of this check.
//
// Rules:
//   - re-entering the current status is permitted (idempotent correction)
//   - Cancelled is reachable from any non-terminal status except Delivered
//   - Refunded is reachable only from Delivered or Cancelled
//   - forward happy-path moves are permitted; skipping intermediate states
//     requires policy.AllowSkips
//   - backward happy-path moves are rejected
func (s Status) Transition(target Status, policy TransitionPolicy) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	if s == target {
		if s.IsTerminal() {
			return errs.NewTransitionError("order", s.String(), target.String())
		}
		return nil
	}

	switch target {
	case Cancelled:
		if s.IsTerminal() || s == Delivered {
			return errs.NewTransitionError("order", s.String(), target.String())
		}
		return nil
	case Refunded:
		if s == Delivered || s == Cancelled {
			return nil
		}
		return errs.NewTransitionError("order", s.String(), target.String())
	}

	fromRank, fromRanked := happyPathRank[s]
	toRank, toRanked := happyPathRank[target]
	if !fromRanked || !toRanked {
		return errs.NewTransitionError("order", s.String(), target.String())
	}

	if toRank < fromRank {
		return errs.NewTransitionErrorWithReason("order", s.String(), target.String(),
			"backward transitions are not permitted")
	}

	if toRank > fromRank+1 && !policy.AllowSkips {
		return errs.NewTransitionErrorWithReason("order", s.String(), target.String(),
			"skipping fulfillment states is not permitted by policy")
	}

	return nil
}
