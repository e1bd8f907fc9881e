package commands_test

import (
	"testing"
	"time"

	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/printer"
	"printshop/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedPrinter(t *testing.T, id kernel.UUID) *printer.Printer {
	t.Helper()
	p, err := printer.NewPrinter(id, "Floor-1", "X1 Carbon", "Bambu Lab", 256, 256, 256, time.Now().UTC())
	require.NoError(t, err)
	return p
}

func TestDeletePrinterCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	printerID := kernel.NewUUID()
	cmd, err := commands.NewDeletePrinterCommand(printerID)
	require.NoError(t, err)

	mockPrinterRepo := new(MockPrinterRepository)
	mockJobRepo := new(MockPrintJobRepository)
	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockPrinterFleetUoWFactory)

	// Only completed/failed/cancelled jobs remain, so deletion proceeds.
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("PrinterRepository").Return(mockPrinterRepo).Once(),
		mockPrinterRepo.On("Get", ctx, printerID).Return(storedPrinter(t, printerID), nil).Once(),
		mockUoW.On("PrintJobRepository").Return(mockJobRepo).Once(),
		mockJobRepo.On("ExistsActiveByPrinter", ctx, printerID).Return(false, nil).Once(),
		mockPrinterRepo.On("Delete", ctx, printerID).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewDeletePrinterCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockPrinterRepo.AssertExpectations(t)
	mockJobRepo.AssertExpectations(t)
}

func TestDeletePrinterCommandHandler_Handle_RefusedWithActiveJobs(t *testing.T) {
	// Arrange
	ctx := t.Context()
	printerID := kernel.NewUUID()
	cmd, err := commands.NewDeletePrinterCommand(printerID)
	require.NoError(t, err)

	mockPrinterRepo := new(MockPrinterRepository)
	mockJobRepo := new(MockPrintJobRepository)
	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockPrinterFleetUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("PrinterRepository").Return(mockPrinterRepo).Once(),
		mockPrinterRepo.On("Get", ctx, printerID).Return(storedPrinter(t, printerID), nil).Once(),
		mockUoW.On("PrintJobRepository").Return(mockJobRepo).Once(),
		mockJobRepo.On("ExistsActiveByPrinter", ctx, printerID).Return(true, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewDeletePrinterCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrOperationRefused)
	mockPrinterRepo.AssertNotCalled(t, "Delete", ctx, printerID)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
}

func TestDeletePrinterCommandHandler_Handle_PrinterNotFound(t *testing.T) {
	// Arrange
	ctx := t.Context()
	printerID := kernel.NewUUID()
	cmd, err := commands.NewDeletePrinterCommand(printerID)
	require.NoError(t, err)

	notFound := errs.NewObjectNotFoundError("printer", printerID)
	mockPrinterRepo := new(MockPrinterRepository)
	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockPrinterFleetUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("PrinterRepository").Return(mockPrinterRepo).Once(),
		mockPrinterRepo.On("Get", ctx, printerID).Return(nil, notFound).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewDeletePrinterCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
}
