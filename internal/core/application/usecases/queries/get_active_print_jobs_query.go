package queries

import (
	"errors"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/printjob"
	"printshop/internal/pkg/guard"
)

var (
	ErrGetActivePrintJobsQueryIsNotConstructed = errors.New(
		"GetActivePrintJobsQuery must be created via NewGetActivePrintJobsQuery constructor",
	)
)

// GetActivePrintJobsQuery retrieves jobs that currently occupy a printer:
// queued, printing, or paused. The result can be narrowed to a single printer
// or to the jobs of a single order; both filters are optional.
//
// Example:
//
//	// everything active in the shop
//	query, _ := NewGetActivePrintJobsQuery(nil, nil)
//
//	// what is on one printer right now
//	query, _ := NewGetActivePrintJobsQuery(&printerID, nil)
//
//	jobs, err := handler.Handle(ctx, query)
type GetActivePrintJobsQuery struct {
	printerID *kernel.UUID
	orderID   *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetActivePrintJobsQuery creates a query for active print jobs.
// Pass nil for a filter to leave it open.
func NewGetActivePrintJobsQuery(printerID, orderID *kernel.UUID) (GetActivePrintJobsQuery, error) {
	if printerID != nil {
		if err := printerID.Validate(); err != nil {
			return GetActivePrintJobsQuery{}, err
		}
	}
	if orderID != nil {
		if err := orderID.Validate(); err != nil {
			return GetActivePrintJobsQuery{}, err
		}
	}
	return GetActivePrintJobsQuery{
		printerID: printerID,
		orderID:   orderID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// PrinterID returns the printer filter, or nil when unfiltered.
func (q GetActivePrintJobsQuery) PrinterID() *kernel.UUID {
	return q.printerID
}

// OrderID returns the order filter, or nil when unfiltered.
func (q GetActivePrintJobsQuery) OrderID() *kernel.UUID {
	return q.orderID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActivePrintJobsQueryIsNotConstructed if validation fails.
func (q GetActivePrintJobsQuery) Validate() error {
	return q.guard.Validate(ErrGetActivePrintJobsQueryIsNotConstructed)
}

// GetActivePrintJobsQueryResponse is one active job as the floor sees it.
type GetActivePrintJobsQueryResponse struct {
	ID        kernel.UUID
	JobName   string
	PrinterID kernel.UUID

	// OrderID is nil for jobs not linked to a customer order
	// (calibration prints, shop samples).
	OrderID *kernel.UUID

	Status           printjob.Status
	Progress         float64
	EstimatedMinutes int

	// StartedAt is nil while the job is still queued.
	StartedAt *time.Time
}
