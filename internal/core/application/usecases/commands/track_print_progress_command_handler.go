package commands

import (
	"context"
	"fmt"
	"time"
)

// TrackPrintProgressCommandHandler applies one lifecycle event to a print
// job. The transition rules live in the PrintJob aggregate; illegal events
// surface as TransitionErrors with the job unchanged.
type TrackPrintProgressCommandHandler struct {
	uowFactory JobProgressUoWFactory
}

// NewTrackPrintProgressCommandHandler creates a handler for job lifecycle
// events.
func NewTrackPrintProgressCommandHandler(uowFactory JobProgressUoWFactory) TrackPrintProgressCommandHandler {
	return TrackPrintProgressCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the progress tracking command.
func (h *TrackPrintProgressCommandHandler) Handle(ctx context.Context, cmd TrackPrintProgressCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.PrintJobRepository()
	job, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	switch cmd.Event() {
	case EventStart:
		err = job.Start(now)
	case EventProgress:
		err = job.SetProgress(cmd.Progress(), now)
	case EventPause:
		err = job.Pause(now)
	case EventComplete:
		err = job.Complete(now, cmd.ActualMinutes())
	case EventFail:
		err = job.Fail(now)
	case EventCancel:
		err = job.Cancel(now)
	default:
		err = fmt.Errorf("unhandled progress event %q", cmd.Event())
	}
	if err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, job); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
