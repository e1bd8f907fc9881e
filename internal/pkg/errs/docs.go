// Package errs provides standardized error types for the print-shop
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package includes error types for the recoverable failure kinds the
// order ledger surfaces to its callers:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     single-value validation failures
//   - ValidationErrors: field-level failures collected for an entire entity
//   - ObjectNotFoundError: a referenced customer, printer, or order is missing
//   - TransitionError: an illegal status transition was requested
//   - ConflictError: a unique value (order number, customer email) is taken
//   - RefusalError: an operation blocked by a business invariant, with reason
//   - TimeoutError: an external printer probe exceeded its bounded wait
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// No error in this package is ever swallowed: handlers return them
// synchronously, and background jobs log them instead of panicking across
// the scheduling boundary.
package errs
