package commands_test

import (
	"context"

	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/domain/model/customer"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/model/printer"
	"printshop/internal/core/domain/model/printjob"
	"printshop/internal/core/domain/model/saleschannel"
	"printshop/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Mock implementations shared across the handler tests.

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, aggregate *customer.Customer) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type MockSalesChannelRepository struct{ mock.Mock }

func (m *MockSalesChannelRepository) Add(ctx context.Context, aggregate *saleschannel.SalesChannel) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockSalesChannelRepository) Update(ctx context.Context, aggregate *saleschannel.SalesChannel) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockSalesChannelRepository) Get(ctx context.Context, id kernel.UUID) (*saleschannel.SalesChannel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*saleschannel.SalesChannel), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByNumber(ctx context.Context, number string) (*order.Order, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

type MockPrinterRepository struct{ mock.Mock }

func (m *MockPrinterRepository) Add(ctx context.Context, aggregate *printer.Printer) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPrinterRepository) Update(ctx context.Context, aggregate *printer.Printer) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPrinterRepository) Get(ctx context.Context, id kernel.UUID) (*printer.Printer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*printer.Printer), args.Error(1)
}

func (m *MockPrinterRepository) GetAll(ctx context.Context) ([]*printer.Printer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*printer.Printer), args.Error(1)
}

func (m *MockPrinterRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPrintJobRepository struct{ mock.Mock }

func (m *MockPrintJobRepository) Add(ctx context.Context, aggregate *printjob.PrintJob) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPrintJobRepository) Update(ctx context.Context, aggregate *printjob.PrintJob) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPrintJobRepository) Get(ctx context.Context, id kernel.UUID) (*printjob.PrintJob, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*printjob.PrintJob), args.Error(1)
}

func (m *MockPrintJobRepository) ExistsActiveByPrinter(ctx context.Context, printerID kernel.UUID) (bool, error) {
	args := m.Called(ctx, printerID)
	return args.Bool(0), args.Error(1)
}

// MockUnitOfWork implements every UoW interface the handlers depend on.
type MockUnitOfWork struct{ mock.Mock }

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

func (m *MockUnitOfWork) SalesChannelRepository() ports.SalesChannelRepository {
	args := m.Called()
	return args.Get(0).(ports.SalesChannelRepository)
}

func (m *MockUnitOfWork) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUnitOfWork) PrinterRepository() ports.PrinterRepository {
	args := m.Called()
	return args.Get(0).(ports.PrinterRepository)
}

func (m *MockUnitOfWork) PrintJobRepository() ports.PrintJobRepository {
	args := m.Called()
	return args.Get(0).(ports.PrintJobRepository)
}

type MockCustomerUoWFactory struct{ mock.Mock }

func (m *MockCustomerUoWFactory) Create() commands.CustomerUoW {
	args := m.Called()
	return args.Get(0).(commands.CustomerUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCreateOrderUoWFactory struct{ mock.Mock }

func (m *MockCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateOrderUoW)
}

type MockPrinterUoWFactory struct{ mock.Mock }

func (m *MockPrinterUoWFactory) Create() commands.PrinterUoW {
	args := m.Called()
	return args.Get(0).(commands.PrinterUoW)
}

type MockPrintJobUoWFactory struct{ mock.Mock }

func (m *MockPrintJobUoWFactory) Create() commands.PrintJobUoW {
	args := m.Called()
	return args.Get(0).(commands.PrintJobUoW)
}

type MockJobProgressUoWFactory struct{ mock.Mock }

func (m *MockJobProgressUoWFactory) Create() commands.JobProgressUoW {
	args := m.Called()
	return args.Get(0).(commands.JobProgressUoW)
}

type MockPrinterFleetUoWFactory struct{ mock.Mock }

func (m *MockPrinterFleetUoWFactory) Create() commands.PrinterFleetUoW {
	args := m.Called()
	return args.Get(0).(commands.PrinterFleetUoW)
}

type MockPrinterProbe struct{ mock.Mock }

func (m *MockPrinterProbe) Probe(ctx context.Context, p *printer.Printer) (ports.ProbeResult, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(ports.ProbeResult), args.Error(1)
}
