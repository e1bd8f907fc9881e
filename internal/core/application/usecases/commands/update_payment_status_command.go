package commands

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/guard"
)

var ErrUpdatePaymentStatusCommandIsNotConstructed = errors.New(
	"UpdatePaymentStatusCommand must be created via NewUpdatePaymentStatusCommand constructor",
)

// UpdatePaymentStatusCommand represents a request to move an order to a
// new payment status.
type UpdatePaymentStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.PaymentStatus

	guard guard.ConstructorGuard
}

// NewUpdatePaymentStatusCommand creates a command to update an order's
// payment status.
func NewUpdatePaymentStatusCommand(orderID kernel.UUID, target order.PaymentStatus) (UpdatePaymentStatusCommand, error) {
	command := UpdatePaymentStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setTarget(target),
	); err != nil {
		return UpdatePaymentStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePaymentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePaymentStatusCommandIsNotConstructed)
}

// OrderID returns the order to update.
func (c UpdatePaymentStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested payment status.
func (c UpdatePaymentStatusCommand) Target() order.PaymentStatus {
	return c.target
}

func (c *UpdatePaymentStatusCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *UpdatePaymentStatusCommand) setTarget(target order.PaymentStatus) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
