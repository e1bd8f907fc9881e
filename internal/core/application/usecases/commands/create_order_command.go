package commands

import (
	"errors"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderNumberIsRequired = errors.New("order number is required")
)

// OrderItemParams is the raw input for one order line.
type OrderItemParams struct {
	ProductName string
	ProductSKU  string
	Quantity    int
	UnitPrice   float64
	Notes       string
}

// CreateOrderParams is the raw input for order creation. The command
// constructor converts it into validated domain values; handlers never see
// raw input.
type CreateOrderParams struct {
	OrderNumber    string
	CustomerID     kernel.UUID
	SalesChannelID *kernel.UUID
	OrderDate      time.Time

	Items []OrderItemParams

	TotalAmount    float64
	TaxAmount      float64
	ShippingAmount float64
	DiscountAmount float64

	ShippingAddress order.Address
	Notes           string
}

// CreateOrderCommand represents a request to record a new order in the
// ledger. All monetary and line item input has been validated by the
// constructor; referential checks (customer, sales channel, number
// uniqueness) belong to the handler.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	orderNumber    string
	customerID     kernel.UUID
	salesChannelID *kernel.UUID
	orderDate      time.Time

	items   []order.Item
	amounts order.Amounts

	shippingAddress order.Address
	notes           string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to record a new order.
// Automatically generates a unique ID. Validates the order number, the
// customer reference, every line item, and the monetary block; failures
// from independent fields are aggregated.
func NewCreateOrderCommand(p CreateOrderParams) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		salesChannelID:  p.SalesChannelID,
		orderDate:       p.OrderDate,
		shippingAddress: p.ShippingAddress,
		notes:           p.Notes,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(kernel.NewUUID()),
		command.setOrderNumber(p.OrderNumber),
		command.setCustomerID(p.CustomerID),
		command.setItems(p.Items),
		command.setAmounts(p.TotalAmount, p.TaxAmount, p.ShippingAmount, p.DiscountAmount),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the generated order ID.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderNumber returns the business order number.
func (c CreateOrderCommand) OrderNumber() string {
	return c.orderNumber
}

// CustomerID returns the owning customer's ID.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// SalesChannelID returns the originating channel, nil for direct orders.
func (c CreateOrderCommand) SalesChannelID() *kernel.UUID {
	return c.salesChannelID
}

// OrderDate returns the date the order was placed.
func (c CreateOrderCommand) OrderDate() time.Time {
	return c.orderDate
}

// Items returns the validated line items.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

// Amounts returns the validated monetary block.
func (c CreateOrderCommand) Amounts() order.Amounts {
	return c.amounts
}

// ShippingAddress returns the shipping destination.
func (c CreateOrderCommand) ShippingAddress() order.Address {
	return c.shippingAddress
}

// Notes returns the free-text note, possibly empty.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

func (c *CreateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setOrderNumber(number string) error {
	if number == "" {
		return ErrOrderNumberIsRequired
	}

	c.orderNumber = number
	return nil
}

func (c *CreateOrderCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setItems(params []OrderItemParams) error {
	items := make([]order.Item, 0, len(params))
	for _, p := range params {
		unitPrice, err := kernel.NewMoney(p.UnitPrice)
		if err != nil {
			return err
		}

		item, err := order.NewItem(p.ProductName, p.ProductSKU, p.Quantity, unitPrice, p.Notes)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setAmounts(total, tax, shipping, discount float64) error {
	amounts, err := order.NewAmounts(total, tax, shipping, discount)
	if err != nil {
		return err
	}

	c.amounts = amounts
	return nil
}
