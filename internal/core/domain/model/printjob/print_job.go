package printjob

import (
	"errors"
	"fmt"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

// Domain errors for print job operations.
var (
	// ErrJobNameIsRequired is returned when attempting to create a job
	// without a name.
	ErrJobNameIsRequired = errs.NewValueIsRequiredError("job name")
	// ErrPrintJobIsNotConstructed is returned when using an improperly
	// initialized PrintJob.
	ErrPrintJobIsNotConstructed = errors.New("PrintJob must be created via NewPrintJob or RestorePrintJob constructor")
)

// PrintJob is the aggregate root for one run of a printer. A job always
// belongs to a printer and optionally fulfils an order. It carries the
// print parameters (file, material, layer height, infill), the lifecycle
// status, a progress percentage, and the estimated/actual duration used by
// the operating-hours report.
//
// Business rules:
//   - Job name and printer reference are required
//   - Progress is clamped to [0, 100] and only moves while printing
//   - StartedAt/CompletedAt are stamped by the lifecycle methods
//   - Completing a job records the actual minutes and forces progress to 100
type PrintJob struct {
	id        kernel.UUID
	jobName   string
	printerID kernel.UUID
	orderID   *kernel.UUID

	filePath    string
	material    string
	color       string
	layerHeight float64
	infill      int

	status   Status
	progress float64

	estimatedMinutes int
	actualMinutes    int

	startedAt   *time.Time
	completedAt *time.Time
	createdAt   time.Time
	updatedAt   time.Time

	guard guard.ConstructorGuard
}

// NewPrintJob creates a new PrintJob in Queued status with zero progress.
// Print parameters are attached through setters before the job is queued.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - jobName: display name of the job (must be non-empty)
//   - printerID: the printer the job runs on (must be a valid UUID;
//     existence is checked by the create-print-job use case)
//   - estimatedMinutes: the slicer's duration estimate, 0 when unknown
//   - now: creation instant used for the created/updated timestamps
func NewPrintJob(id kernel.UUID, jobName string, printerID kernel.UUID, estimatedMinutes int, now time.Time) (*PrintJob, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if jobName == "" {
		return nil, ErrJobNameIsRequired
	}
	if err := printerID.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("printer", err)
	}
	if estimatedMinutes < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("estimated minutes",
			fmt.Errorf("%d is negative", estimatedMinutes))
	}

	return &PrintJob{
		id:               id,
		jobName:          jobName,
		printerID:        printerID,
		status:           Queued,
		estimatedMinutes: estimatedMinutes,
		createdAt:        now,
		updatedAt:        now,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// RestorePrintJobParams carries the persisted state of a print job back
// into the domain. Used only by the persistence layer.
type RestorePrintJobParams struct {
	ID        kernel.UUID
	JobName   string
	PrinterID kernel.UUID
	OrderID   *kernel.UUID

	FilePath    string
	Material    string
	Color       string
	LayerHeight float64
	Infill      int

	Status   Status
	Progress float64

	EstimatedMinutes int
	ActualMinutes    int

	StartedAt   *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RestorePrintJob reconstructs a PrintJob from persistence. It rejects
// unknown status values and re-clamps the progress so corrupt rows cannot
// become live aggregates.
func RestorePrintJob(p RestorePrintJobParams) (*PrintJob, error) {
	if err := p.ID.Validate(); err != nil {
		return nil, err
	}
	if p.JobName == "" {
		return nil, ErrJobNameIsRequired
	}
	if err := p.PrinterID.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("printer", err)
	}
	if err := p.Status.Validate(); err != nil {
		return nil, err
	}

	return &PrintJob{
		id:               p.ID,
		jobName:          p.JobName,
		printerID:        p.PrinterID,
		orderID:          p.OrderID,
		filePath:         p.FilePath,
		material:         p.Material,
		color:            p.Color,
		layerHeight:      p.LayerHeight,
		infill:           p.Infill,
		status:           p.Status,
		progress:         clampProgress(p.Progress),
		estimatedMinutes: p.EstimatedMinutes,
		actualMinutes:    p.ActualMinutes,
		startedAt:        p.StartedAt,
		completedAt:      p.CompletedAt,
		createdAt:        p.CreatedAt,
		updatedAt:        p.UpdatedAt,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the PrintJob instance was properly constructed.
func (j *PrintJob) Validate() error {
	if j == nil {
		return ErrPrintJobIsNotConstructed
	}
	return j.guard.Validate(ErrPrintJobIsNotConstructed)
}

// IsEqual compares two print jobs by their unique identifiers.
func (j *PrintJob) IsEqual(other *PrintJob) bool {
	return other != nil && j.id.IsEqual(other.id)
}

// ID returns the job's unique identifier.
func (j *PrintJob) ID() kernel.UUID {
	return j.id
}

// JobName returns the display name of the job.
func (j *PrintJob) JobName() string {
	return j.jobName
}

// PrinterID returns the printer the job runs on.
func (j *PrintJob) PrinterID() kernel.UUID {
	return j.printerID
}

// OrderID returns the fulfilled order, or nil for shop-internal prints.
func (j *PrintJob) OrderID() *kernel.UUID {
	return j.orderID
}

// FilePath returns the sliced model file, empty when not recorded.
func (j *PrintJob) FilePath() string {
	return j.filePath
}

// Material returns the filament or resin type.
func (j *PrintJob) Material() string {
	return j.material
}

// Color returns the material color.
func (j *PrintJob) Color() string {
	return j.color
}

// LayerHeight returns the layer height in millimetres, 0 when unknown.
func (j *PrintJob) LayerHeight() float64 {
	return j.layerHeight
}

// Infill returns the infill percentage, 0 when unknown.
func (j *PrintJob) Infill() int {
	return j.infill
}

// Status returns the current lifecycle status.
func (j *PrintJob) Status() Status {
	return j.status
}

// Progress returns the completion percentage in [0, 100].
func (j *PrintJob) Progress() float64 {
	return j.progress
}

// EstimatedMinutes returns the slicer's duration estimate.
func (j *PrintJob) EstimatedMinutes() int {
	return j.estimatedMinutes
}

// ActualMinutes returns the measured duration, 0 until completed.
func (j *PrintJob) ActualMinutes() int {
	return j.actualMinutes
}

// StartedAt returns when the job first started printing, or nil.
func (j *PrintJob) StartedAt() *time.Time {
	return j.startedAt
}

// CompletedAt returns when the job reached a terminal state, or nil.
func (j *PrintJob) CompletedAt() *time.Time {
	return j.completedAt
}

// CreatedAt returns the creation instant.
func (j *PrintJob) CreatedAt() time.Time {
	return j.createdAt
}

// UpdatedAt returns the last mutation instant.
func (j *PrintJob) UpdatedAt() time.Time {
	return j.updatedAt
}

// EstimatedCompletion returns started-at plus the estimated duration, or
// nil when the job has not started or carries no estimate.
func (j *PrintJob) EstimatedCompletion() *time.Time {
	if j.startedAt == nil || j.estimatedMinutes <= 0 {
		return nil
	}
	eta := j.startedAt.Add(time.Duration(j.estimatedMinutes) * time.Minute)
	return &eta
}

// LinkOrder attaches the order the job fulfils.
func (j *PrintJob) LinkOrder(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("order", err)
	}
	j.orderID = &orderID
	return nil
}

// SetPrintParameters records the slicer output details.
func (j *PrintJob) SetPrintParameters(filePath, material, color string, layerHeight float64, infill int) {
	j.filePath = filePath
	j.material = material
	j.color = color
	j.layerHeight = layerHeight
	j.infill = infill
}

// Start moves the job from Queued (or Paused, as a resume) to Printing,
// stamping the start time on the first call only.
func (j *PrintJob) Start(now time.Time) error {
	if err := j.status.Transition(Printing); err != nil {
		return err
	}

	if j.startedAt == nil {
		stamp := now
		j.startedAt = &stamp
	}
	j.status = Printing
	j.updatedAt = now
	return nil
}

// Pause suspends a printing job.
func (j *PrintJob) Pause(now time.Time) error {
	if err := j.status.Transition(Paused); err != nil {
		return err
	}

	j.status = Paused
	j.updatedAt = now
	return nil
}

// Resume continues a paused job. Resuming never re-stamps the start time.
func (j *PrintJob) Resume(now time.Time) error {
	if j.status != Paused {
		return errs.NewTransitionErrorWithReason("print job", j.status.String(), Printing.String(),
			"only a paused job can be resumed")
	}
	return j.Start(now)
}

// Complete finishes the job successfully, recording the measured duration
// and forcing progress to 100.
func (j *PrintJob) Complete(now time.Time, actualMinutes int) error {
	if actualMinutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause("actual minutes",
			fmt.Errorf("%d is negative", actualMinutes))
	}
	if err := j.status.Transition(Completed); err != nil {
		return err
	}

	stamp := now
	j.status = Completed
	j.progress = 100
	j.actualMinutes = actualMinutes
	j.completedAt = &stamp
	j.updatedAt = now
	return nil
}

// Fail marks the job as failed, keeping whatever progress it reached.
func (j *PrintJob) Fail(now time.Time) error {
	if err := j.status.Transition(Failed); err != nil {
		return err
	}

	stamp := now
	j.status = Failed
	j.completedAt = &stamp
	j.updatedAt = now
	return nil
}

// Cancel abandons the job from any active state.
func (j *PrintJob) Cancel(now time.Time) error {
	if err := j.status.Transition(Cancelled); err != nil {
		return err
	}

	stamp := now
	j.status = Cancelled
	j.completedAt = &stamp
	j.updatedAt = now
	return nil
}

// SetProgress updates the completion percentage of a printing job.
// Values outside [0, 100] are clamped, not rejected: firmware callbacks
// occasionally overshoot.
func (j *PrintJob) SetProgress(progress float64, now time.Time) error {
	if j.status != Printing {
		return errs.NewRefusalError("set progress",
			fmt.Sprintf("job is %s, progress only moves while printing", j.status))
	}

	j.progress = clampProgress(progress)
	j.updatedAt = now
	return nil
}

func clampProgress(progress float64) float64 {
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}
