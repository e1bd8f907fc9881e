package printer

import (
	"fmt"

	"printshop/internal/pkg/errs"
)

// Status represents the operational state of a printer. The set is closed:
// unrecognized values are rejected at the boundary, never coerced.
type Status int

const (
	// StatusUnknown is the invalid zero value.
	StatusUnknown Status = iota
	// Idle means the printer is powered on and ready for a job.
	Idle
	// Printing means the printer is actively running a job.
	Printing
	// Paused means the current job is suspended.
	Paused
	// Maintenance means the printer is down for service.
	Maintenance
	// Offline means the printer is unreachable or powered off.
	Offline
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Idle:        "idle",
		Printing:    "printing",
		Paused:      "paused",
		Maintenance: "maintenance",
		Offline:     "offline",
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
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("printer status",
		fmt.Errorf("%q is not a known printer status", value))
}

// Validate checks that the status is a member of the known set.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("printer status")
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
