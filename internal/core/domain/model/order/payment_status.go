package order

import (
	"fmt"

	"printshop/internal/pkg/errs"
)

// PaymentStatus tracks payment on an axis independent from fulfillment.
//
//	Unpaid ──> Paid
//	   │         │
//	   ├──> PaymentFailed (terminal)
//	   └──> PaymentRefunded (terminal, also reachable from Paid)
//
// An order can ship unpaid or sit paid without shipping; the two state
// machines only meet through TransitionPolicy.RequirePaidBeforeShipped.
type PaymentStatus int

const (
	// PaymentStatusUnknown represents an invalid or undefined payment status.
	PaymentStatusUnknown PaymentStatus = iota

	// Unpaid is the initial payment status of every order.
	Unpaid

	// Paid indicates payment has been received in full.
	Paid

	// PaymentFailed is a terminal status for payments that could not be
	// collected or were charged back.
	PaymentFailed

	// PaymentRefunded is a terminal status for payments returned to the
	// customer.
	PaymentRefunded
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentStatusUnknown: "unknown",
		Unpaid:               "unpaid",
		Paid:                 "paid",
		PaymentFailed:        "failed",
		PaymentRefunded:      "refunded",
	}
}

// ParsePaymentStatus converts a string from an external boundary into a
// PaymentStatus. Unrecognized values are rejected, never coerced.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	for status, str := range getPaymentStatusStrings() {
		if str == s && status != PaymentStatusUnknown {
			return status, nil
		}
	}
	return PaymentStatusUnknown, errs.NewValueIsInvalidErrorWithCause("payment status",
		fmt.Errorf("%q is not a recognized payment status", s))
}

// Validate checks if the PaymentStatus value is one of the known states.
func (s PaymentStatus) Validate() error {
	if s == PaymentStatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("payment status",
			fmt.Errorf("%d is not a valid payment status", int(s)))
	}
	if _, ok := getPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment status",
			fmt.Errorf("%d is not a valid payment status", int(s)))
	}
	return nil
}

// String returns the lowercase name of the payment status.
// Implements fmt.Stringer.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further payment transitions are permitted.
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentFailed || s == PaymentRefunded
}

// Transition checks whether moving from s to target is permitted.
// Failed and refunded are reachable from both unpaid and paid; nothing
// leaves a terminal status. Re-entering the current non-terminal status is
// permitted.
func (s PaymentStatus) Transition(target PaymentStatus) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	if s == target {
		if s.IsTerminal() {
			return errs.NewTransitionError("payment", s.String(), target.String())
		}
		return nil
	}

	if s.IsTerminal() {
		return errs.NewTransitionError("payment", s.String(), target.String())
	}

	switch target {
	case Paid:
		if s == Unpaid {
			return nil
		}
	case PaymentFailed, PaymentRefunded:
		return nil
	}

	return errs.NewTransitionError("payment", s.String(), target.String())
}
