package cmd

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"printshop/internal/adapters/out/postgres"
	"printshop/internal/adapters/out/printerapi"
	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/application/usecases/queries"
	"printshop/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	probe      *printerapi.Client
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		probe:      printerapi.NewClient(),
		logger:     slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateCustomerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreatePrinterUoWFactory() commands.PrinterUoWFactory {
	return FuncPrinterUoWFactory(func() commands.PrinterUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	return commands.NewCreateCustomerCommandHandler(c.CreateCustomerUoWFactory())
}

func (c *CompositionRoot) CreateCreatePrinterCommandHandler() commands.CreatePrinterCommandHandler {
	return commands.NewCreatePrinterCommandHandler(c.CreatePrinterUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, order.DefaultTransitionPolicy())
}

func (c *CompositionRoot) CreateUpdatePaymentStatusCommandHandler() commands.UpdatePaymentStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdatePaymentStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCreatePrintJobCommandHandler() commands.CreatePrintJobCommandHandler {
	var f commands.PrintJobUoWFactory = FuncPrintJobUoWFactory(func() commands.PrintJobUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePrintJobCommandHandler(f)
}

func (c *CompositionRoot) CreateTrackPrintProgressCommandHandler() commands.TrackPrintProgressCommandHandler {
	var f commands.JobProgressUoWFactory = FuncJobProgressUoWFactory(func() commands.JobProgressUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTrackPrintProgressCommandHandler(f)
}

func (c *CompositionRoot) CreateDeletePrinterCommandHandler() commands.DeletePrinterCommandHandler {
	var f commands.PrinterFleetUoWFactory = FuncPrinterFleetUoWFactory(func() commands.PrinterFleetUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeletePrinterCommandHandler(f)
}

func (c *CompositionRoot) CreateRefreshPrinterStatusCommandHandler() commands.RefreshPrinterStatusCommandHandler {
	timeoutSecs, _ := strconv.Atoi(c.configs.PrinterProbeTimeoutSecs)
	return commands.NewRefreshPrinterStatusCommandHandler(
		c.CreatePrinterUoWFactory(),
		c.probe,
		time.Duration(timeoutSecs)*time.Second,
	)
}

func (c *CompositionRoot) CreateGetOpenOrdersQueryHandler() queries.GetOpenOrdersQueryHandler {
	return queries.NewGetOpenOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActivePrintJobsQueryHandler() queries.GetActivePrintJobsQueryHandler {
	return queries.NewGetActivePrintJobsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPrinterOperatingHoursQueryHandler() queries.GetPrinterOperatingHoursQueryHandler {
	return queries.NewGetPrinterOperatingHoursQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllPrintersQueryHandler() queries.GetAllPrintersQueryHandler {
	return queries.NewGetAllPrintersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllCustomersQueryHandler() queries.GetAllCustomersQueryHandler {
	return queries.NewGetAllCustomersQueryHandler(c.gormDB)
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncPrinterUoWFactory func() commands.PrinterUoW

func (f FuncPrinterUoWFactory) Create() commands.PrinterUoW {
	return f()
}

type FuncPrintJobUoWFactory func() commands.PrintJobUoW

func (f FuncPrintJobUoWFactory) Create() commands.PrintJobUoW {
	return f()
}

type FuncJobProgressUoWFactory func() commands.JobProgressUoW

func (f FuncJobProgressUoWFactory) Create() commands.JobProgressUoW {
	return f()
}

type FuncPrinterFleetUoWFactory func() commands.PrinterFleetUoW

func (f FuncPrinterFleetUoWFactory) Create() commands.PrinterFleetUoW {
	return f()
}
