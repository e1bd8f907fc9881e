package commands

import (
	"errors"
	"fmt"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var (
	ErrCreatePrintJobCommandIsNotConstructed = errors.New(
		"CreatePrintJobCommand must be created via NewCreatePrintJobCommand constructor",
	)
	ErrJobNameIsRequired = errors.New("job name is required")
)

// CreatePrintJobParams is the raw input for queueing a print job.
type CreatePrintJobParams struct {
	JobName   string
	PrinterID kernel.UUID
	OrderID   *kernel.UUID

	FilePath    string
	Material    string
	Color       string
	LayerHeight float64
	Infill      int

	EstimatedMinutes int
}

// CreatePrintJobCommand represents a request to queue a new print job on a
// printer, optionally linked to the order it fulfils.
type CreatePrintJobCommand struct { //nolint:recvcheck //using for validation
	jobID     kernel.UUID
	jobName   string
	printerID kernel.UUID
	orderID   *kernel.UUID

	filePath    string
	material    string
	color       string
	layerHeight float64
	infill      int

	estimatedMinutes int

	guard guard.ConstructorGuard
}

// NewCreatePrintJobCommand creates a command to queue a print job.
// Automatically generates a unique ID. The job name and printer reference
// are required; print parameters are free-form slicer output.
func NewCreatePrintJobCommand(p CreatePrintJobParams) (CreatePrintJobCommand, error) {
	command := CreatePrintJobCommand{
		orderID:     p.OrderID,
		filePath:    p.FilePath,
		material:    p.Material,
		color:       p.Color,
		layerHeight: p.LayerHeight,
		infill:      p.Infill,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setJobID(kernel.NewUUID()),
		command.setJobName(p.JobName),
		command.setPrinterID(p.PrinterID),
		command.setEstimatedMinutes(p.EstimatedMinutes),
	); err != nil {
		return CreatePrintJobCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePrintJobCommand) Validate() error {
	return c.guard.Validate(ErrCreatePrintJobCommandIsNotConstructed)
}

// JobID returns the generated print job ID.
func (c CreatePrintJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// JobName returns the display name of the job.
func (c CreatePrintJobCommand) JobName() string {
	return c.jobName
}

// PrinterID returns the printer the job runs on.
func (c CreatePrintJobCommand) PrinterID() kernel.UUID {
	return c.printerID
}

// OrderID returns the fulfilled order, nil for shop-internal prints.
func (c CreatePrintJobCommand) OrderID() *kernel.UUID {
	return c.orderID
}

// FilePath returns the sliced model file path, possibly empty.
func (c CreatePrintJobCommand) FilePath() string {
	return c.filePath
}

// Material returns the filament or resin type, possibly empty.
func (c CreatePrintJobCommand) Material() string {
	return c.material
}

// Color returns the material color, possibly empty.
func (c CreatePrintJobCommand) Color() string {
	return c.color
}

// LayerHeight returns the layer height in millimetres, 0 when unknown.
func (c CreatePrintJobCommand) LayerHeight() float64 {
	return c.layerHeight
}

// Infill returns the infill percentage, 0 when unknown.
func (c CreatePrintJobCommand) Infill() int {
	return c.infill
}

// EstimatedMinutes returns the slicer's duration estimate.
func (c CreatePrintJobCommand) EstimatedMinutes() int {
	return c.estimatedMinutes
}

func (c *CreatePrintJobCommand) setJobID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.jobID = id
	return nil
}

func (c *CreatePrintJobCommand) setJobName(name string) error {
	if name == "" {
		return ErrJobNameIsRequired
	}

	c.jobName = name
	return nil
}

func (c *CreatePrintJobCommand) setPrinterID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.printerID = id
	return nil
}

func (c *CreatePrintJobCommand) setEstimatedMinutes(minutes int) error {
	if minutes < 0 {
		return fmt.Errorf("estimated minutes %d is negative", minutes)
	}

	c.estimatedMinutes = minutes
	return nil
}
