// Package customerrepo provides data transfer objects and mapping functions
// for customer persistence. This package implements the repository pattern
// for the customer domain aggregate, handling the conversion between domain
// entities and database representations.
package customerrepo

import (
	"time"

	"printshop/internal/core/domain/model/customer"
	"printshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customer
// aggregates. The email is stored as a nullable column with a unique index:
// NULL rows never collide, so walk-in customers without an email can coexist
// while real addresses stay unique.
type CustomerDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName string    `gorm:"type:varchar(255);not null"`
	LastName  string    `gorm:"type:varchar(255);not null"`
	Email     *string   `gorm:"type:varchar(255);uniqueIndex"`
	Phone     string    `gorm:"type:varchar(64)"`

	AddressLine1  string `gorm:"type:varchar(255)"`
	AddressLine2  string `gorm:"type:varchar(255)"`
	City          string `gorm:"type:varchar(128)"`
	StateProvince string `gorm:"type:varchar(128)"`
	PostalCode    string `gorm:"type:varchar(32)"`
	Country       string `gorm:"type:varchar(128)"`

	Notes string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for customer entities.
// Overrides GORM's default naming convention to use "customers".
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer domain aggregate to its database
// representation.
func fromDomain(customer *customer.Customer) CustomerDTO {
	var email *string
	if customer.Email() != "" {
		value := customer.Email()
		email = &value
	}

	return CustomerDTO{
		ID:            customer.ID().Bytes(),
		FirstName:     customer.FirstName(),
		LastName:      customer.LastName(),
		Email:         email,
		Phone:         customer.Phone(),
		AddressLine1:  customer.AddressLine1(),
		AddressLine2:  customer.AddressLine2(),
		City:          customer.City(),
		StateProvince: customer.StateProvince(),
		PostalCode:    customer.PostalCode(),
		Country:       customer.Country(),
		Notes:         customer.Notes(),
		CreatedAt:     customer.CreatedAt(),
		UpdatedAt:     customer.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a customer domain aggregate using
// RestoreCustomer.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	email := ""
	if dto.Email != nil {
		email = *dto.Email
	}

	return customer.RestoreCustomer(customer.RestoreCustomerParams{
		ID:            id,
		FirstName:     dto.FirstName,
		LastName:      dto.LastName,
		Email:         email,
		Phone:         dto.Phone,
		AddressLine1:  dto.AddressLine1,
		AddressLine2:  dto.AddressLine2,
		City:          dto.City,
		StateProvince: dto.StateProvince,
		PostalCode:    dto.PostalCode,
		Country:       dto.Country,
		Notes:         dto.Notes,
		CreatedAt:     dto.CreatedAt,
		UpdatedAt:     dto.UpdatedAt,
	})
}
