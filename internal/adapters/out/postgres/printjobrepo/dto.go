// Package printjobrepo provides data transfer objects and mapping functions
// for print job persistence.
package printjobrepo

import (
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/printjob"

	"github.com/google/uuid"
)

// PrintJobDTO represents the database structure for persisting print job
// aggregates. The printer reference is indexed for the active-job and
// operating-hours lookups; the order reference is optional.
type PrintJobDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	JobName   string     `gorm:"type:varchar(255);not null"`
	PrinterID uuid.UUID  `gorm:"type:uuid;not null;index"`
	OrderID   *uuid.UUID `gorm:"type:uuid;index"`

	FilePath    string  `gorm:"type:varchar(512)"`
	Material    string  `gorm:"type:varchar(128)"`
	Color       string  `gorm:"type:varchar(64)"`
	LayerHeight float64 `gorm:"type:numeric(6,3)"`
	Infill      int     `gorm:"type:int"`

	Status   int     `gorm:"not null;index"`
	Progress float64 `gorm:"type:numeric(5,1);not null"`

	EstimatedMinutes int `gorm:"type:int;not null"`
	ActualMinutes    int `gorm:"type:int;not null"`

	StartedAt   *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the database table name for print job entities.
// Overrides GORM's default naming convention to use "print_jobs".
func (PrintJobDTO) TableName() string {
	return "print_jobs"
}

// fromDomain converts a print job domain aggregate to its database
// representation.
func fromDomain(job *printjob.PrintJob) PrintJobDTO {
	var orderID *uuid.UUID
	if id := job.OrderID(); id != nil {
		raw := id.Bytes()
		orderID = &raw
	}

	return PrintJobDTO{
		ID:               job.ID().Bytes(),
		JobName:          job.JobName(),
		PrinterID:        job.PrinterID().Bytes(),
		OrderID:          orderID,
		FilePath:         job.FilePath(),
		Material:         job.Material(),
		Color:            job.Color(),
		LayerHeight:      job.LayerHeight(),
		Infill:           job.Infill(),
		Status:           int(job.Status()),
		Progress:         job.Progress(),
		EstimatedMinutes: job.EstimatedMinutes(),
		ActualMinutes:    job.ActualMinutes(),
		StartedAt:        job.StartedAt(),
		CompletedAt:      job.CompletedAt(),
		CreatedAt:        job.CreatedAt(),
		UpdatedAt:        job.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a print job domain aggregate using
// RestorePrintJob.
func toDomain(dto PrintJobDTO) (*printjob.PrintJob, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	printerID, err := kernel.UUIDFromBytes(dto.PrinterID[:])
	if err != nil {
		return nil, err
	}

	var orderID *kernel.UUID
	if dto.OrderID != nil {
		oID, orderErr := kernel.UUIDFromBytes((*dto.OrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}
		orderID = &oID
	}

	return printjob.RestorePrintJob(printjob.RestorePrintJobParams{
		ID:               id,
		JobName:          dto.JobName,
		PrinterID:        printerID,
		OrderID:          orderID,
		FilePath:         dto.FilePath,
		Material:         dto.Material,
		Color:            dto.Color,
		LayerHeight:      dto.LayerHeight,
		Infill:           dto.Infill,
		Status:           printjob.Status(dto.Status),
		Progress:         dto.Progress,
		EstimatedMinutes: dto.EstimatedMinutes,
		ActualMinutes:    dto.ActualMinutes,
		StartedAt:        dto.StartedAt,
		CompletedAt:      dto.CompletedAt,
		CreatedAt:        dto.CreatedAt,
		UpdatedAt:        dto.UpdatedAt,
	})
}
