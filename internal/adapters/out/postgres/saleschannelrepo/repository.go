package saleschannelrepo

import (
	"context"
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/saleschannel"
	"printshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSalesChannelRepository implements SalesChannelRepository using GORM.
type GormSalesChannelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSalesChannelRepository creates a new GORM sales channel repository.
func NewGormSalesChannelRepository(db *gorm.DB, tracker aggregateTracker) *GormSalesChannelRepository {
	return &GormSalesChannelRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new sales channel to the database.
func (r *GormSalesChannelRepository) Add(ctx context.Context, aggregate *saleschannel.SalesChannel) error {
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

// Update saves an existing sales channel to the database.
func (r *GormSalesChannelRepository) Update(ctx context.Context, aggregate *saleschannel.SalesChannel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&SalesChannelDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a sales channel by ID.
func (r *GormSalesChannelRepository) Get(ctx context.Context, id kernel.UUID) (*saleschannel.SalesChannel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SalesChannelDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("sales channel", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
