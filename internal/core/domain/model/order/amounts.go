package order

import (
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
)

// Amounts groups the monetary fields of an order. The amounts are stored
// exactly as entered by the operator; the ledger validates non-negativity
// and reconciles against the line items, but never recomputes them.
type Amounts struct {
	Total    kernel.Money
	Tax      kernel.Money
	Shipping kernel.Money
	Discount kernel.Money
}

// NewAmounts builds the monetary block from raw values, collecting a
// field-level error for every negative amount. Unset fields default to zero.
func NewAmounts(total, tax, shipping, discount float64) (Amounts, error) {
	ve := errs.NewValidationErrors()

	totalM, err := kernel.NewMoney(total)
	ve.AddError("totalAmount", err)
	taxM, err := kernel.NewMoney(tax)
	ve.AddError("taxAmount", err)
	shippingM, err := kernel.NewMoney(shipping)
	ve.AddError("shippingAmount", err)
	discountM, err := kernel.NewMoney(discount)
	ve.AddError("discountAmount", err)

	if ve.HasErrors() {
		return Amounts{}, ve
	}

	return Amounts{
		Total:    totalM,
		Tax:      taxM,
		Shipping: shippingM,
		Discount: discountM,
	}, nil
}

// ZeroAmounts returns the default monetary block with every field at zero.
func ZeroAmounts() Amounts {
	return Amounts{
		Total:    kernel.ZeroMoney(),
		Tax:      kernel.ZeroMoney(),
		Shipping: kernel.ZeroMoney(),
		Discount: kernel.ZeroMoney(),
	}
}

// Address is the shipping destination of an order. Every field is optional:
// pickup orders carry an empty address.
type Address struct {
	Line1         string
	Line2         string
	City          string
	StateProvince string
	PostalCode    string
	Country       string
}
