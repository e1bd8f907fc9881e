// Package saleschannelrepo provides data transfer objects and mapping
// functions for sales channel persistence.
package saleschannelrepo

import (
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/saleschannel"

	"github.com/google/uuid"
)

// SalesChannelDTO represents the database structure for persisting sales
// channel aggregates.
type SalesChannelDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"type:varchar(255);not null"`
	WebsiteURL     string    `gorm:"type:varchar(512)"`
	CommissionRate float64   `gorm:"type:numeric(5,2);not null"`
	Notes          string    `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for sales channel entities.
// Overrides GORM's default naming convention to use "sales_channels".
func (SalesChannelDTO) TableName() string {
	return "sales_channels"
}

// fromDomain converts a sales channel domain aggregate to its database
// representation.
func fromDomain(channel *saleschannel.SalesChannel) SalesChannelDTO {
	return SalesChannelDTO{
		ID:             channel.ID().Bytes(),
		Name:           channel.Name(),
		WebsiteURL:     channel.WebsiteURL(),
		CommissionRate: channel.CommissionRate(),
		Notes:          channel.Notes(),
		CreatedAt:      channel.CreatedAt(),
		UpdatedAt:      channel.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a sales channel domain aggregate using
// RestoreSalesChannel.
func toDomain(dto SalesChannelDTO) (*saleschannel.SalesChannel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return saleschannel.RestoreSalesChannel(saleschannel.RestoreSalesChannelParams{
		ID:             id,
		Name:           dto.Name,
		WebsiteURL:     dto.WebsiteURL,
		CommissionRate: dto.CommissionRate,
		Notes:          dto.Notes,
		CreatedAt:      dto.CreatedAt,
		UpdatedAt:      dto.UpdatedAt,
	})
}
