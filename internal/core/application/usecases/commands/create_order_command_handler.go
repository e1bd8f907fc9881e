package commands

import (
	"context"
	"log/slog"
	"time"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/services"
	"printshop/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for recording an
// order: referential checks, number uniqueness, totals reconciliation, and
// atomic persistence of the order with its items.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, logger)
//	cmd, _ := NewCreateOrderCommand(params)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
	reconciler services.TotalsReconciler
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// A nil logger falls back to the default slog logger.
func NewCreateOrderCommandHandler(uowFactory CreateOrderUoWFactory, logger *slog.Logger) CreateOrderCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		reconciler: services.NewTotalsReconciler(),
		logger:     logger,
	}
}

// Handle processes the order creation command.
//
// Within one transaction it verifies the customer exists, the sales channel
// exists when given, and the order number is free, then persists the order
// with its items. A duplicate number surfaces as a ConflictError either
// from the pre-check here or from the unique constraint in the repository.
// A disagreement between the stored total and the line items is logged as a
// warning and never blocks the write.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	if _, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID()); err != nil {
		return err
	}
	if channelID := cmd.SalesChannelID(); channelID != nil {
		if _, err := uow.SalesChannelRepository().Get(ctx, *channelID); err != nil {
			return err
		}
	}

	orderRepo := uow.OrderRepository()
	taken, err := orderRepo.ExistsByNumber(ctx, cmd.OrderNumber())
	if err != nil {
		return err
	}
	if taken {
		return errs.NewConflictError("order number", cmd.OrderNumber())
	}

	now := time.Now().UTC()
	orderEntity, err := order.NewOrder(cmd.OrderID(), cmd.OrderNumber(), cmd.CustomerID(), cmd.OrderDate(), now)
	if err != nil {
		return err
	}
	if channelID := cmd.SalesChannelID(); channelID != nil {
		if err = orderEntity.SetSalesChannel(*channelID); err != nil {
			return err
		}
	}
	orderEntity.SetAmounts(cmd.Amounts())
	orderEntity.SetShippingAddress(cmd.ShippingAddress())
	orderEntity.SetNotes(cmd.Notes())
	for _, item := range cmd.Items() {
		if err = orderEntity.AddItem(item); err != nil {
			return err
		}
	}

	if discrepancy, mismatch := h.reconciler.Reconcile(orderEntity); mismatch {
		h.logger.WarnContext(ctx, "order totals disagree with line items",
			"detail", discrepancy.String())
	}

	if err = orderRepo.Add(ctx, orderEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
