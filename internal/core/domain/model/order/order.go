package order

import (
	"errors"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderNumberIsRequired is returned when attempting to create an
	// order without a business order number.
	ErrOrderNumberIsRequired = errs.NewValueIsRequiredError("order number")
)

// Order is the aggregate root of the fulfillment ledger. It tracks a
// customer's purchase from creation through delivery: the immutable order
// number, the two status axes (fulfillment and payment), the monetary block,
// the shipping destination, and the line items.
//
// Invariants maintained by the aggregate:
//   - The order number is non-empty and never changes once assigned.
//   - ShippedAt and DeliveredAt are stamped exactly once, on the first
//     transition into Shipped and Delivered, and never reset.
//   - A delivered order cannot be cancelled.
//   - Monetary amounts are non-negative and stored exactly as given.
//   - Status values outside the known sets are rejected at the boundary.
//
// All mutation goes through validated methods; a failed mutation leaves the
// aggregate untouched.
type Order struct {
	id             kernel.UUID
	number         string
	customerID     kernel.UUID
	salesChannelID *kernel.UUID

	orderDate     time.Time
	status        Status
	paymentStatus PaymentStatus
	amounts       Amounts

	shippingAddress Address
	trackingNumber  string
	shippingCarrier string

	invoiceGenerated       bool
	shippingLabelGenerated bool

	notes string
	items []Item

	shippedAt   *time.Time
	deliveredAt *time.Time
	createdAt   time.Time
	updatedAt   time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in Pending status with an Unpaid payment
// status and zero amounts. The order number and customer reference are the
// only required fields; everything else is attached through setters before
// the order is persisted.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - number: business-assigned order number (must be non-empty; uniqueness
//     is enforced by the persistence layer)
//   - customerID: reference to an existing customer (must be a valid UUID;
//     existence is checked by the create-order use case)
//   - orderDate: the date the order was placed
//   - now: creation instant used for the created/updated timestamps
func NewOrder(id kernel.UUID, number string, customerID kernel.UUID, orderDate, now time.Time) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if number == "" {
		return nil, ErrOrderNumberIsRequired
	}
	if err := customerID.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("customer", err)
	}

	return &Order{
		id:            id,
		number:        number,
		customerID:    customerID,
		orderDate:     orderDate,
		status:        Pending,
		paymentStatus: Unpaid,
		amounts:       ZeroAmounts(),
		createdAt:     now,
		updatedAt:     now,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrderParams carries the full persisted state of an order back into
// the domain. Used only by the persistence layer.
type RestoreOrderParams struct {
	ID             kernel.UUID
	Number         string
	CustomerID     kernel.UUID
	SalesChannelID *kernel.UUID

	OrderDate     time.Time
	Status        Status
	PaymentStatus PaymentStatus
	Amounts       Amounts

	ShippingAddress Address
	TrackingNumber  string
	ShippingCarrier string

	InvoiceGenerated       bool
	ShippingLabelGenerated bool

	Notes string
	Items []Item

	ShippedAt   *time.Time
	DeliveredAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RestoreOrder reconstructs an Order from persistence. Unlike NewOrder it
// accepts any valid status pair, but it still rejects unknown status values
// and a missing order number so corrupt rows cannot become live aggregates.
func RestoreOrder(p RestoreOrderParams) (*Order, error) {
	if err := p.ID.Validate(); err != nil {
		return nil, err
	}
	if p.Number == "" {
		return nil, ErrOrderNumberIsRequired
	}
	if err := p.CustomerID.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("customer", err)
	}
	if err := p.Status.Validate(); err != nil {
		return nil, err
	}
	if err := p.PaymentStatus.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:                     p.ID,
		number:                 p.Number,
		customerID:             p.CustomerID,
		salesChannelID:         p.SalesChannelID,
		orderDate:              p.OrderDate,
		status:                 p.Status,
		paymentStatus:          p.PaymentStatus,
		amounts:                p.Amounts,
		shippingAddress:        p.ShippingAddress,
		trackingNumber:         p.TrackingNumber,
		shippingCarrier:        p.ShippingCarrier,
		invoiceGenerated:       p.InvoiceGenerated,
		shippingLabelGenerated: p.ShippingLabelGenerated,
		notes:                  p.Notes,
		items:                  p.Items,
		shippedAt:              p.ShippedAt,
		deliveredAt:            p.DeliveredAt,
		createdAt:              p.CreatedAt,
		updatedAt:              p.UpdatedAt,
		guard:                  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the immutable business order number.
func (o *Order) Number() string {
	return o.number
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// SalesChannelID returns the originating sales channel, or nil for direct
// orders.
func (o *Order) SalesChannelID() *kernel.UUID {
	return o.salesChannelID
}

// OrderDate returns the date the order was placed.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// Status returns the current fulfillment status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the current payment status.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// Amounts returns the stored monetary block.
func (o *Order) Amounts() Amounts {
	return o.amounts
}

// ShippingAddress returns the shipping destination.
func (o *Order) ShippingAddress() Address {
	return o.shippingAddress
}

// TrackingNumber returns the carrier tracking number, empty until shipped.
func (o *Order) TrackingNumber() string {
	return o.trackingNumber
}

// ShippingCarrier returns the carrier name, empty until shipped.
func (o *Order) ShippingCarrier() string {
	return o.shippingCarrier
}

// InvoiceGenerated reports whether an invoice has been produced.
func (o *Order) InvoiceGenerated() bool {
	return o.invoiceGenerated
}

// ShippingLabelGenerated reports whether a shipping label has been produced.
func (o *Order) ShippingLabelGenerated() bool {
	return o.shippingLabelGenerated
}

// Notes returns the free-text note on the order.
func (o *Order) Notes() string {
	return o.notes
}

// Items returns the order's line items in entry order.
func (o *Order) Items() []Item {
	return o.items
}

// ShippedAt returns when the order first entered Shipped, or nil.
func (o *Order) ShippedAt() *time.Time {
	return o.shippedAt
}

// DeliveredAt returns when the order first entered Delivered, or nil.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// CreatedAt returns the creation instant.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last mutation instant.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// SetSalesChannel attaches the originating sales channel.
func (o *Order) SetSalesChannel(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("sales channel", err)
	}
	o.salesChannelID = &id
	return nil
}

// SetAmounts replaces the monetary block. Amounts are stored as given;
// disagreement with the line items is detected by the totals reconciler
// service and logged, never corrected.
func (o *Order) SetAmounts(amounts Amounts) {
	o.amounts = amounts
}

// SetShippingAddress replaces the shipping destination.
func (o *Order) SetShippingAddress(address Address) {
	o.shippingAddress = address
}

// SetNotes replaces the free-text note.
func (o *Order) SetNotes(notes string) {
	o.notes = notes
}

// AddItem appends a line item to the order.
func (o *Order) AddItem(item Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	o.items = append(o.items, item)
	return nil
}

// ChangeStatus moves the order to a new fulfillment status under the given
// policy, stamping the shipped/delivered timestamps on first entry.
//
// Guards applied on top of Status.Transition:
//   - an order with DeliveredAt set can never be cancelled
//   - with policy.RequirePaidBeforeShipped, unpaid orders cannot reach
//     Shipped or Delivered
//
// The shipped-at and delivered-at stamps are written only when currently
// nil: re-entering Shipped or Delivered as a correction never overwrites
// the original instant. On any error the order is left fully unchanged.
func (o *Order) ChangeStatus(target Status, now time.Time, policy TransitionPolicy) error {
	if target == Cancelled && o.deliveredAt != nil {
		return errs.NewTransitionErrorWithReason("order", o.status.String(), target.String(),
			"order already delivered")
	}

	if policy.RequirePaidBeforeShipped && o.paymentStatus != Paid {
		if rank, ranked := happyPathRank[target]; ranked && rank >= happyPathRank[Shipped] {
			return errs.NewTransitionErrorWithReason("order", o.status.String(), target.String(),
				"payment is required before shipping")
		}
	}

	if err := o.status.Transition(target, policy); err != nil {
		return err
	}

	if target == Shipped && o.shippedAt == nil {
		stamp := now
		o.shippedAt = &stamp
	}
	if target == Delivered && o.deliveredAt == nil {
		stamp := now
		o.deliveredAt = &stamp
	}

	o.status = target
	o.updatedAt = now
	return nil
}

// ChangePaymentStatus moves the order to a new payment status.
// On error the order is left unchanged.
func (o *Order) ChangePaymentStatus(target PaymentStatus, now time.Time) error {
	if err := o.paymentStatus.Transition(target); err != nil {
		return err
	}

	o.paymentStatus = target
	o.updatedAt = now
	return nil
}

// SetTracking records the carrier and tracking number. Tracking data only
// exists once a shipment does, so the order must have shipped.
func (o *Order) SetTracking(carrier, number string, now time.Time) error {
	if o.shippedAt == nil {
		return errs.NewRefusalError("set tracking", "order has not shipped yet")
	}
	if number == "" {
		return errs.NewValueIsRequiredError("tracking number")
	}

	o.shippingCarrier = carrier
	o.trackingNumber = number
	o.updatedAt = now
	return nil
}

// MarkInvoiceGenerated records that an invoice has been produced.
// Idempotent.
func (o *Order) MarkInvoiceGenerated(now time.Time) {
	o.invoiceGenerated = true
	o.updatedAt = now
}

// MarkShippingLabelGenerated records that a shipping label has been
// produced. Idempotent.
func (o *Order) MarkShippingLabelGenerated(now time.Time) {
	o.shippingLabelGenerated = true
	o.updatedAt = now
}

// ItemsTotal returns the sum of the line totals.
func (o *Order) ItemsTotal() kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range o.items {
		total = total.Add(item.LineTotal())
	}
	return total
}
