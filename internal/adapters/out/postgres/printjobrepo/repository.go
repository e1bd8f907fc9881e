package printjobrepo

import (
	"context"
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/printjob"
	"printshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPrintJobRepository implements PrintJobRepository using GORM.
type GormPrintJobRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPrintJobRepository creates a new GORM print job repository.
func NewGormPrintJobRepository(db *gorm.DB, tracker aggregateTracker) *GormPrintJobRepository {
	return &GormPrintJobRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new print job to the database.
func (r *GormPrintJobRepository) Add(ctx context.Context, aggregate *printjob.PrintJob) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing print job to the database.
func (r *GormPrintJobRepository) Update(ctx context.Context, aggregate *printjob.PrintJob) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	// Select("*") so zero-valued columns persist too; progress legally drops
	// back to 0 and GORM's struct update would otherwise skip it.
	result := r.db.WithContext(ctx).Model(&PrintJobDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a print job by ID.
func (r *GormPrintJobRepository) Get(ctx context.Context, id kernel.UUID) (*printjob.PrintJob, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PrintJobDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("print job", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsActiveByPrinter reports whether the printer has any job in queued,
// printing, or paused status. Used inside the delete-printer transaction.
func (r *GormPrintJobRepository) ExistsActiveByPrinter(ctx context.Context, printerID kernel.UUID) (bool, error) {
	if err := printerID.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&PrintJobDTO{}).
		Where("printer_id = ? AND status IN (?, ?, ?)",
			printerID.Bytes(), printjob.Queued, printjob.Printing, printjob.Paused).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}
