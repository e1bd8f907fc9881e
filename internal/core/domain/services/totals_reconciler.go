package services

import (
	"fmt"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
)

// TotalsReconciler is a domain service that checks an order's stored total
// against the figure derived from its line items. Operators price orders by
// hand, so the stored amounts are authoritative: a disagreement is reported
// as a warning for the caller to log, never as an error.
//
// Key responsibilities:
//   - Deriving the expected total: items + tax + shipping − discount
//   - Comparing against the stored total at cent precision
//   - Producing a human-readable discrepancy report
//
// Example usage:
//
//	reconciler := NewTotalsReconciler()
//	if discrepancy, ok := reconciler.Reconcile(order); ok {
//	    logger.Warn("order totals disagree", "detail", discrepancy.String())
//	}
type TotalsReconciler struct{}

// NewTotalsReconciler creates a new TotalsReconciler instance.
func NewTotalsReconciler() TotalsReconciler {
	return TotalsReconciler{}
}

// Discrepancy describes a disagreement between the stored and derived
// totals of an order.
type Discrepancy struct {
	OrderNumber string
	Stored      kernel.Money
	Expected    kernel.Money
}

// String formats the discrepancy for log output.
func (d Discrepancy) String() string {
	return fmt.Sprintf("order %s: stored total %s, items+tax+shipping-discount %s",
		d.OrderNumber, d.Stored, d.Expected)
}

// Reconcile compares the stored total with the derived one. It returns the
// discrepancy and true when the two disagree by more than a cent; orders
// without line items always reconcile.
func (r TotalsReconciler) Reconcile(o *order.Order) (Discrepancy, bool) {
	if err := o.Validate(); err != nil {
		return Discrepancy{}, false
	}
	if len(o.Items()) == 0 {
		return Discrepancy{}, false
	}

	amounts := o.Amounts()
	expected := o.ItemsTotal().
		Add(amounts.Tax).
		Add(amounts.Shipping).
		Sub(amounts.Discount)

	if expected.IsEqual(amounts.Total) {
		return Discrepancy{}, false
	}

	return Discrepancy{
		OrderNumber: o.Number(),
		Stored:      amounts.Total,
		Expected:    expected,
	}, true
}
