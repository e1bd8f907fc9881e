package commands

import (
	"context"
	"time"

	"printshop/internal/core/domain/model/customer"
	"printshop/internal/pkg/errs"
)

// CreateCustomerCommandHandler handles the business logic for customer
// registration: email uniqueness and transactional persistence.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewCreateCustomerCommandHandler creates a handler for customer registration.
func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the customer creation command. A taken email is reported
// as a ConflictError before any write happens; the unique index remains the
// backstop for concurrent registrations.
func (h *CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) error {
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

	customerRepo := uow.CustomerRepository()

	if cmd.Email() != "" {
		taken, err := customerRepo.ExistsByEmail(ctx, cmd.Email())
		if err != nil {
			return err
		}
		if taken {
			return errs.NewConflictError("customer email", cmd.Email())
		}
	}

	now := time.Now().UTC()
	customerEntity, err := customer.NewCustomer(cmd.CustomerID(), cmd.FirstName(), cmd.LastName(), cmd.Email(), now)
	if err != nil {
		return err
	}
	if cmd.Phone() != "" {
		customerEntity.SetPhone(cmd.Phone(), now)
	}

	if err = customerRepo.Add(ctx, customerEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
