// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"printshop/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest interface that covers the aggregates
// it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// SalesChannelRepoFactory provides access to the sales channel repository within a transaction.
	SalesChannelRepoFactory interface {
		SalesChannelRepository() ports.SalesChannelRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PrinterRepoFactory provides access to the printer repository within a transaction.
	PrinterRepoFactory interface {
		PrinterRepository() ports.PrinterRepository
	}

	// PrintJobRepoFactory provides access to the print job repository within a transaction.
	PrintJobRepoFactory interface {
		PrintJobRepository() ports.PrintJobRepository
	}

	// CustomerUoW manages transactions for customer-only operations.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates new customer unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by the status and payment update commands.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CreateOrderUoW manages transactions for order creation, which checks
	// the referenced customer and sales channel before persisting.
	CreateOrderUoW interface {
		TxManager
		CustomerRepoFactory
		SalesChannelRepoFactory
		OrderRepoFactory
	}

	// CreateOrderUoWFactory creates new order-creation unit of work instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// PrinterUoW manages transactions for printer-only operations.
	PrinterUoW interface {
		TxManager
		PrinterRepoFactory
	}

	// PrinterUoWFactory creates new printer unit of work instances.
	PrinterUoWFactory interface {
		Create() PrinterUoW
	}

	// PrintJobUoW manages transactions for print job creation, which checks
	// the referenced printer and optional order.
	PrintJobUoW interface {
		TxManager
		PrintJobRepoFactory
		PrinterRepoFactory
		OrderRepoFactory
	}

	// PrintJobUoWFactory creates new print job unit of work instances.
	PrintJobUoWFactory interface {
		Create() PrintJobUoW
	}

	// JobProgressUoW manages transactions for print job lifecycle updates.
	JobProgressUoW interface {
		TxManager
		PrintJobRepoFactory
	}

	// JobProgressUoWFactory creates new job progress unit of work instances.
	JobProgressUoWFactory interface {
		Create() JobProgressUoW
	}

	// PrinterFleetUoW manages transactions spanning printers and their jobs.
	// Used by printer deletion, which must check for active jobs in the same
	// transaction that removes the printer.
	PrinterFleetUoW interface {
		TxManager
		PrinterRepoFactory
		PrintJobRepoFactory
	}

	// PrinterFleetUoWFactory creates new printer fleet unit of work instances.
	PrinterFleetUoWFactory interface {
		Create() PrinterFleetUoW
	}
)
