package order

import (
	"errors"
	"fmt"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// the NewItem constructor.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one line of an order: a product, a positive quantity, and a unit
// price. The line total is derived, never stored.
type Item struct {
	productName string
	productSKU  string
	quantity    int
	unitPrice   kernel.Money
	notes       string

	guard guard.ConstructorGuard
}

// NewItem creates an order line. The product name must be non-empty and the
// quantity must be a positive integer; the SKU and notes are optional.
func NewItem(productName, productSKU string, quantity int, unitPrice kernel.Money, notes string) (Item, error) {
	if productName == "" {
		return Item{}, errs.NewValueIsRequiredError("product name")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not a positive integer", quantity))
	}

	return Item{
		productName: productName,
		productSKU:  productSKU,
		quantity:    quantity,
		unitPrice:   unitPrice,
		notes:       notes,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductName returns the name of the ordered product.
func (i Item) ProductName() string {
	return i.productName
}

// ProductSKU returns the optional stock-keeping unit of the product.
func (i Item) ProductSKU() string {
	return i.productSKU
}

// Quantity returns the number of units ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price of a single unit.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Notes returns the optional free-text note on the line.
func (i Item) Notes() string {
	return i.notes
}

// LineTotal returns quantity × unit price.
func (i Item) LineTotal() kernel.Money {
	total, _ := kernel.NewMoney(float64(i.quantity) * i.unitPrice.Amount())
	return total
}
