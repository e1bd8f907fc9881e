// Package guard provides the constructor-guard pattern used by domain objects,
// commands, and queries to detect zero-value instances that bypassed their
// constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied and the object was not constructed properly.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been created through its
// designated constructor. Embedding a ConstructorGuard in a struct makes a
// zero-value instance distinguishable from a properly constructed one, which
// keeps invariants enforced: a struct literal that skipped the constructor
// fails Validate before it can be used or persisted.
//
// Example:
//
//	type OrderNumber struct {
//	    value string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewOrderNumber(value string) (OrderNumber, error) {
//	    if value == "" {
//	        return OrderNumber{}, errors.New("order number is required")
//	    }
//	    return OrderNumber{value: value, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (n OrderNumber) Validate() error {
//	    return n.guard.Validate(ErrOrderNumberIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the owning object as properly
// constructed. Call it from the object's constructor only.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate reports whether the owning object went through its constructor.
// Returns nil for a constructed object. For a zero-value object it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
