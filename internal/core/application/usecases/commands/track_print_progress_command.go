package commands

import (
	"errors"
	"fmt"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

var ErrTrackPrintProgressCommandIsNotConstructed = errors.New(
	"TrackPrintProgressCommand must be created via NewTrackPrintProgressCommand constructor",
)

// ProgressEvent names a lifecycle event reported for a running print job,
// either by an operator or by a firmware callback.
type ProgressEvent string

const (
	// EventStart starts or resumes the job.
	EventStart ProgressEvent = "start"
	// EventProgress updates the completion percentage.
	EventProgress ProgressEvent = "progress"
	// EventPause suspends the job.
	EventPause ProgressEvent = "pause"
	// EventComplete finishes the job, recording the measured duration.
	EventComplete ProgressEvent = "complete"
	// EventFail marks the job as failed.
	EventFail ProgressEvent = "fail"
	// EventCancel abandons the job.
	EventCancel ProgressEvent = "cancel"
)

func knownProgressEvents() map[ProgressEvent]struct{} {
	return map[ProgressEvent]struct{}{
		EventStart:    {},
		EventProgress: {},
		EventPause:    {},
		EventComplete: {},
		EventFail:     {},
		EventCancel:   {},
	}
}

// TrackPrintProgressCommand represents one lifecycle event for a print
// job. The progress value accompanies EventProgress and the actual minutes
// accompany EventComplete; both are ignored for other events.
type TrackPrintProgressCommand struct { //nolint:recvcheck //using for validation
	jobID         kernel.UUID
	event         ProgressEvent
	progress      float64
	actualMinutes int

	guard guard.ConstructorGuard
}

// NewTrackPrintProgressCommand creates a command to apply one lifecycle
// event to a print job.
func NewTrackPrintProgressCommand(jobID kernel.UUID, event ProgressEvent, progress float64, actualMinutes int) (TrackPrintProgressCommand, error) {
	command := TrackPrintProgressCommand{
		progress: progress,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setJobID(jobID),
		command.setEvent(event),
		command.setActualMinutes(actualMinutes),
	); err != nil {
		return TrackPrintProgressCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c TrackPrintProgressCommand) Validate() error {
	return c.guard.Validate(ErrTrackPrintProgressCommandIsNotConstructed)
}

// JobID returns the print job to update.
func (c TrackPrintProgressCommand) JobID() kernel.UUID {
	return c.jobID
}

// Event returns the lifecycle event to apply.
func (c TrackPrintProgressCommand) Event() ProgressEvent {
	return c.event
}

// Progress returns the reported completion percentage. The aggregate
// clamps it to [0, 100].
func (c TrackPrintProgressCommand) Progress() float64 {
	return c.progress
}

// ActualMinutes returns the measured duration reported with EventComplete.
func (c TrackPrintProgressCommand) ActualMinutes() int {
	return c.actualMinutes
}

func (c *TrackPrintProgressCommand) setJobID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.jobID = id
	return nil
}

func (c *TrackPrintProgressCommand) setEvent(event ProgressEvent) error {
	if _, ok := knownProgressEvents()[event]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("event",
			fmt.Errorf("%q is not a known progress event", event))
	}

	c.event = event
	return nil
}

func (c *TrackPrintProgressCommand) setActualMinutes(minutes int) error {
	if minutes < 0 {
		return fmt.Errorf("actual minutes %d is negative", minutes)
	}

	c.actualMinutes = minutes
	return nil
}
