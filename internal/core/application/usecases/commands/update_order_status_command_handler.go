package commands

import (
	"context"
	"time"

	"printshop/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler handles fulfillment status updates.
// The transition rules live in the Order aggregate; the handler loads,
// mutates, and saves under one transaction, surfacing TransitionErrors
// unchanged.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     order.TransitionPolicy
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates
// operating under the given transition policy.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory, policy order.TransitionPolicy) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the status update command.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	if err = orderEntity.ChangeStatus(cmd.Target(), time.Now().UTC(), h.policy); err != nil {
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
