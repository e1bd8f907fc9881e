// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order domain aggregate, handling the conversion between domain entities
// and database representations. Orders and their line items always travel
// together.
package orderrepo

import (
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates. The business order number carries a unique index; the two
// status axes are stored as integers.
type OrderDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderNumber    string     `gorm:"type:varchar(64);not null;uniqueIndex"`
	CustomerID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	SalesChannelID *uuid.UUID `gorm:"type:uuid;index"`

	OrderDate     time.Time `gorm:"not null"`
	Status        int       `gorm:"not null;index"`
	PaymentStatus int       `gorm:"not null"`

	TotalAmount    float64 `gorm:"type:numeric(12,2);not null"`
	TaxAmount      float64 `gorm:"type:numeric(12,2);not null"`
	ShippingCost   float64 `gorm:"type:numeric(12,2);not null"`
	DiscountAmount float64 `gorm:"type:numeric(12,2);not null"`

	ShippingAddress AddressDTO `gorm:"embedded;embeddedPrefix:shipping_"`
	TrackingNumber  string     `gorm:"type:varchar(128)"`
	ShippingCarrier string     `gorm:"type:varchar(128)"`

	InvoiceGenerated       bool `gorm:"not null"`
	ShippingLabelGenerated bool `gorm:"not null"`

	Notes string    `gorm:"type:text"`
	Items []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`

	ShippedAt   *time.Time
	DeliveredAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the embedded shipping destination within the order
// table. Every field is optional: pickup orders carry an empty address.
type AddressDTO struct {
	Line1         string `gorm:"type:varchar(255)"`
	Line2         string `gorm:"type:varchar(255)"`
	City          string `gorm:"type:varchar(128)"`
	StateProvince string `gorm:"type:varchar(128)"`
	PostalCode    string `gorm:"type:varchar(32)"`
	Country       string `gorm:"type:varchar(128)"`
}

// ItemDTO represents the database structure for persisting order line items.
// Items have no identity in the domain, so the row key is synthetic and the
// position column preserves entry order.
type ItemDTO struct {
	ID       uint      `gorm:"primaryKey;autoIncrement"`
	OrderID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Position int       `gorm:"not null"`

	ProductName string  `gorm:"type:varchar(255);not null"`
	ProductSKU  string  `gorm:"type:varchar(128)"`
	Quantity    int     `gorm:"not null"`
	UnitPrice   float64 `gorm:"type:numeric(12,2);not null"`
	Notes       string  `gorm:"type:text"`
}

// TableName specifies the database table name for order line items.
// Overrides GORM's default naming convention to use "order_items".
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database
// representation, including the line items.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	var salesChannelID *uuid.UUID
	if id := aggregate.SalesChannelID(); id != nil {
		raw := id.Bytes()
		salesChannelID = &raw
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			OrderID:     orderID,
			Position:    i,
			ProductName: item.ProductName(),
			ProductSKU:  item.ProductSKU(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().Amount(),
			Notes:       item.Notes(),
		})
	}

	amounts := aggregate.Amounts()
	address := aggregate.ShippingAddress()

	return OrderDTO{
		ID:             orderID,
		OrderNumber:    aggregate.Number(),
		CustomerID:     aggregate.CustomerID().Bytes(),
		SalesChannelID: salesChannelID,
		OrderDate:      aggregate.OrderDate(),
		Status:         int(aggregate.Status()),
		PaymentStatus:  int(aggregate.PaymentStatus()),
		TotalAmount:    amounts.Total.Amount(),
		TaxAmount:      amounts.Tax.Amount(),
		ShippingCost:   amounts.Shipping.Amount(),
		DiscountAmount: amounts.Discount.Amount(),
		ShippingAddress: AddressDTO{
			Line1:         address.Line1,
			Line2:         address.Line2,
			City:          address.City,
			StateProvince: address.StateProvince,
			PostalCode:    address.PostalCode,
			Country:       address.Country,
		},
		TrackingNumber:         aggregate.TrackingNumber(),
		ShippingCarrier:        aggregate.ShippingCarrier(),
		InvoiceGenerated:       aggregate.InvoiceGenerated(),
		ShippingLabelGenerated: aggregate.ShippingLabelGenerated(),
		Notes:                  aggregate.Notes(),
		Items:                  items,
		ShippedAt:              aggregate.ShippedAt(),
		DeliveredAt:            aggregate.DeliveredAt(),
		CreatedAt:              aggregate.CreatedAt(),
		UpdatedAt:              aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including line items using
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var salesChannelID *kernel.UUID
	if dto.SalesChannelID != nil {
		scID, scErr := kernel.UUIDFromBytes((*dto.SalesChannelID)[:])
		if scErr != nil {
			return nil, scErr
		}
		salesChannelID = &scID
	}

	amounts, err := order.NewAmounts(dto.TotalAmount, dto.TaxAmount, dto.ShippingCost, dto.DiscountAmount)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := itemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:             id,
		Number:         dto.OrderNumber,
		CustomerID:     customerID,
		SalesChannelID: salesChannelID,
		OrderDate:      dto.OrderDate,
		Status:         order.Status(dto.Status),
		PaymentStatus:  order.PaymentStatus(dto.PaymentStatus),
		Amounts:        amounts,
		ShippingAddress: order.Address{
			Line1:         dto.ShippingAddress.Line1,
			Line2:         dto.ShippingAddress.Line2,
			City:          dto.ShippingAddress.City,
			StateProvince: dto.ShippingAddress.StateProvince,
			PostalCode:    dto.ShippingAddress.PostalCode,
			Country:       dto.ShippingAddress.Country,
		},
		TrackingNumber:         dto.TrackingNumber,
		ShippingCarrier:        dto.ShippingCarrier,
		InvoiceGenerated:       dto.InvoiceGenerated,
		ShippingLabelGenerated: dto.ShippingLabelGenerated,
		Notes:                  dto.Notes,
		Items:                  items,
		ShippedAt:              dto.ShippedAt,
		DeliveredAt:            dto.DeliveredAt,
		CreatedAt:              dto.CreatedAt,
		UpdatedAt:              dto.UpdatedAt,
	})
}

// itemToDomain converts a line item DTO to its domain value.
func itemToDomain(dto ItemDTO) (order.Item, error) {
	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.Item{}, err
	}

	return order.NewItem(dto.ProductName, dto.ProductSKU, dto.Quantity, unitPrice, dto.Notes)
}
