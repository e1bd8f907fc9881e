package commands

import (
	"context"
	"time"
)

// UpdatePaymentStatusCommandHandler handles payment status updates.
type UpdatePaymentStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdatePaymentStatusCommandHandler creates a handler for payment
// status updates.
func NewUpdatePaymentStatusCommandHandler(uowFactory OrderUoWFactory) UpdatePaymentStatusCommandHandler {
	return UpdatePaymentStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment status update command.
func (h *UpdatePaymentStatusCommandHandler) Handle(ctx context.Context, cmd UpdatePaymentStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	orderEntity, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = orderEntity.ChangePaymentStatus(cmd.Target(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, orderEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
