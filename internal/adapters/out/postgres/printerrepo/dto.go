// Package printerrepo provides data transfer objects and mapping functions
// for printer persistence.
package printerrepo

import (
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/printer"

	"github.com/google/uuid"
)

// PrinterDTO represents the database structure for persisting printer
// aggregates. The build volume is flattened into per-axis columns; the
// operational status is stored as an integer.
type PrinterDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Model        string    `gorm:"type:varchar(255);not null"`
	Manufacturer string    `gorm:"type:varchar(255);not null"`

	BuildVolumeX int `gorm:"type:int;not null"`
	BuildVolumeY int `gorm:"type:int;not null"`
	BuildVolumeZ int `gorm:"type:int;not null"`

	Status    int    `gorm:"not null"`
	IPAddress string `gorm:"type:varchar(64)"`
	APIKey    string `gorm:"type:varchar(255)"`
	Notes     string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for printer entities.
// Overrides GORM's default naming convention to use "printers".
func (PrinterDTO) TableName() string {
	return "printers"
}

// fromDomain converts a printer domain aggregate to its database
// representation.
func fromDomain(p *printer.Printer) PrinterDTO {
	return PrinterDTO{
		ID:           p.ID().Bytes(),
		Name:         p.Name(),
		Model:        p.Model(),
		Manufacturer: p.Manufacturer(),
		BuildVolumeX: p.BuildVolumeX(),
		BuildVolumeY: p.BuildVolumeY(),
		BuildVolumeZ: p.BuildVolumeZ(),
		Status:       int(p.Status()),
		IPAddress:    p.IPAddress(),
		APIKey:       p.APIKey(),
		Notes:        p.Notes(),
		CreatedAt:    p.CreatedAt(),
		UpdatedAt:    p.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a printer domain aggregate using
// RestorePrinter.
func toDomain(dto PrinterDTO) (*printer.Printer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return printer.RestorePrinter(printer.RestorePrinterParams{
		ID:           id,
		Name:         dto.Name,
		Model:        dto.Model,
		Manufacturer: dto.Manufacturer,
		BuildVolumeX: dto.BuildVolumeX,
		BuildVolumeY: dto.BuildVolumeY,
		BuildVolumeZ: dto.BuildVolumeZ,
		Status:       printer.Status(dto.Status),
		IPAddress:    dto.IPAddress,
		APIKey:       dto.APIKey,
		Notes:        dto.Notes,
		CreatedAt:    dto.CreatedAt,
		UpdatedAt:    dto.UpdatedAt,
	})
}
