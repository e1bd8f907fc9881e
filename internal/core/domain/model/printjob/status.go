package printjob

import (
	"fmt"

	"printshop/internal/pkg/errs"
)

// Status represents the lifecycle state of a print job. Jobs start queued,
// run through printing (optionally pausing), and end in exactly one of the
// terminal states.
type Status int

const (
	// StatusUnknown is the invalid zero value.
	StatusUnknown Status = iota
	// Queued means the job is waiting for the printer.
	Queued
	// Printing means the job is running on the printer.
	Printing
	// Paused means the job is suspended mid-print.
	Paused
	// Completed means the job finished successfully. Terminal.
	Completed
	// Failed means the print failed. Terminal.
	Failed
	// Cancelled means an operator abandoned the job. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Queued:    "queued",
		Printing:  "printing",
		Paused:    "paused",
		Completed: "completed",
		Failed:    "failed",
		Cancelled: "cancelled",
	}
}

// allowedTransitions is the closed transition table of the job lifecycle.
// Terminal states admit nothing.
func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Queued:   {Printing, Cancelled},
		Printing: {Paused, Completed, Failed, Cancelled},
		Paused:   {Printing, Failed, Cancelled},
	}
}

// ParseStatus converts a string into a Status, rejecting anything outside
// the known set.
func ParseStatus(value string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == value {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("print job status",
		fmt.Errorf("%q is not a known print job status", value))
}

// Validate checks that the status is a member of the known set.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("print job status")
	}
	return nil
}

// String returns the lowercase name of the status, or "unknown".
func (s Status) String() string {
	if name, ok := getStatusStrings()[s]; ok {
		return name
	}
	return "unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Failed || s == Cancelled
}

// IsActive reports whether the job occupies the printer: queued, printing,
// or paused. Active jobs block printer deletion.
func (s Status) IsActive() bool {
	return s == Queued || s == Printing || s == Paused
}

// Transition checks whether the job may move from the current status to
// target. Re-entering the current non-terminal status is a no-op.
func (s Status) Transition(target Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	if s == target {
		if s.IsTerminal() {
			return errs.NewTransitionErrorWithReason("print job", s.String(), target.String(),
				"job has reached a terminal state")
		}
		return nil
	}

	for _, allowed := range allowedTransitions()[s] {
		if allowed == target {
			return nil
		}
	}

	return errs.NewTransitionError("print job", s.String(), target.String())
}
