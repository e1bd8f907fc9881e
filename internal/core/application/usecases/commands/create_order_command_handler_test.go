package commands_test

import (
	"errors"
	"testing"
	"time"

	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/domain/model/customer"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func existingCustomer(t *testing.T, id kernel.UUID) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(id, "Ada", "Lovelace", "", time.Now().UTC())
	require.NoError(t, err)
	return c
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	params := validCreateOrderParams()
	cmd, err := commands.NewCreateOrderCommand(params)
	require.NoError(t, err)

	mockCustomerRepo := new(MockCustomerRepository)
	mockOrderRepo := new(MockOrderRepository)
	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockCreateOrderUoWFactory)

	var capturedOrder *order.Order
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("CustomerRepository").Return(mockCustomerRepo).Once(),
		mockCustomerRepo.On("Get", ctx, params.CustomerID).
			Return(existingCustomer(t, params.CustomerID), nil).Once(),
		mockUoW.On("OrderRepository").Return(mockOrderRepo).Once(),
		mockOrderRepo.On("ExistsByNumber", ctx, params.OrderNumber).Return(false, nil).Once(),
		mockOrderRepo.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
			capturedOrder = o
			return true
		})).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateOrderCommandHandler(mockFactory, nil)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, capturedOrder)
	assert.Equal(t, cmd.OrderID(), capturedOrder.ID())
	assert.Equal(t, params.OrderNumber, capturedOrder.Number())
	assert.Equal(t, order.Pending, capturedOrder.Status())
	assert.Equal(t, order.Unpaid, capturedOrder.PaymentStatus())
	assert.Len(t, capturedOrder.Items(), 2)
	assert.InDelta(t, 70.50, capturedOrder.Amounts().Total.Amount(), 0.0001)

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockCustomerRepo.AssertExpectations(t)
	mockOrderRepo.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_InvalidCommand(t *testing.T) {
	ctx := t.Context()
	var invalidCmd commands.CreateOrderCommand

	mockFactory := new(MockCreateOrderUoWFactory)
	handler := commands.NewCreateOrderCommandHandler(mockFactory, nil)

	err := handler.Handle(ctx, invalidCmd)

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	mockFactory.AssertExpectations(t) // no factory calls
}

func TestCreateOrderCommandHandler_Handle_CustomerNotFound(t *testing.T) {
	// Arrange
	ctx := t.Context()
	params := validCreateOrderParams()
	cmd, err := commands.NewCreateOrderCommand(params)
	require.NoError(t, err)

	notFound := errs.NewObjectNotFoundError("customer", params.CustomerID)
	mockCustomerRepo := new(MockCustomerRepository)
	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockCreateOrderUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("CustomerRepository").Return(mockCustomerRepo).Once(),
		mockCustomerRepo.On("Get", ctx, params.CustomerID).Return(nil, notFound).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateOrderCommandHandler(mockFactory, nil)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	mockUoW.AssertExpectations(t)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateOrderCommandHandler_Handle_SalesChannelNotFound(t *testing.T) {
	// Arrange
	ctx := t.Context()
	channelID := kernel.NewUUID()
	params := validCreateOrderParams()
	params.SalesChannelID = &channelID
	cmd, err := commands.NewCreateOrderCommand(params)
	require.NoError(t, err)

	notFound := errs.NewObjectNotFoundError("sales channel", channelID)
	mockCustomerRepo := new(MockCustomerRepository)
	mockChannelRepo := new(MockSalesChannelRepository)
	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockCreateOrderUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("CustomerRepository").Return(mockCustomerRepo).Once(),
		mockCustomerRepo.On("Get", ctx, params.CustomerID).
			Return(existingCustomer(t, params.CustomerID), nil).Once(),
		mockUoW.On("SalesChannelRepository").Return(mockChannelRepo).Once(),
		mockChannelRepo.On("Get", ctx, channelID).Return(nil, notFound).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateOrderCommandHandler(mockFactory, nil)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateOrderCommandHandler_Handle_DuplicateOrderNumber(t *testing.T) {
	// Arrange
	ctx := t.Context()
	params := validCreateOrderParams()
	cmd, err := commands.NewCreateOrderCommand(params)
	require.NoError(t, err)

	mockCustomerRepo := new(MockCustomerRepository)
	mockOrderRepo := new(MockOrderRepository)
	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockCreateOrderUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("CustomerRepository").Return(mockCustomerRepo).Once(),
		mockCustomerRepo.On("Get", ctx, params.CustomerID).
			Return(existingCustomer(t, params.CustomerID), nil).Once(),
		mockUoW.On("OrderRepository").Return(mockOrderRepo).Once(),
		mockOrderRepo.On("ExistsByNumber", ctx, params.OrderNumber).Return(true, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateOrderCommandHandler(mockFactory, nil)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrConflict)
	mockOrderRepo.AssertNotCalled(t, "Add", ctx, mock.Anything)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateOrderCommandHandler_Handle_RepositoryAddError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	params := validCreateOrderParams()
	cmd, err := commands.NewCreateOrderCommand(params)
	require.NoError(t, err)

	expectedError := errors.New("repository add failed")
	mockCustomerRepo := new(MockCustomerRepository)
	mockOrderRepo := new(MockOrderRepository)
	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockCreateOrderUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("CustomerRepository").Return(mockCustomerRepo).Once(),
		mockCustomerRepo.On("Get", ctx, params.CustomerID).
			Return(existingCustomer(t, params.CustomerID), nil).Once(),
		mockUoW.On("OrderRepository").Return(mockOrderRepo).Once(),
		mockOrderRepo.On("ExistsByNumber", ctx, params.OrderNumber).Return(false, nil).Once(),
		mockOrderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(expectedError).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateOrderCommandHandler(mockFactory, nil)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	assert.Equal(t, expectedError, err)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
}
