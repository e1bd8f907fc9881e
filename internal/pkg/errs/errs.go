package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is. Each structured error
// type below unwraps to exactly one of these.
var (
	ErrValueIsRequired   = errors.New("value is required")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrObjectNotFound    = errors.New("object not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrConflict          = errors.New("conflict with existing object")
	ErrOperationRefused  = errors.New("operation refused")
	ErrTimeout           = errors.New("operation timed out")
)

// sanitize strips newlines so error messages stay single-line in logs.
func sanitize(v any) string {
	s := fmt.Sprintf("%v", v)
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

// ValueIsRequiredError indicates a required value was missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, sanitize(e.ParamName), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, sanitize(e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates a value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, sanitize(e.ParamName), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, sanitize(e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates a value fell outside its permitted range.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsOutOfRange, sanitize(e.Value), sanitize(e.ParamName), e.Min, e.Max)
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %s)", sanitize(e.Cause))
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ObjectNotFoundError indicates a referenced object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, sanitize(e.ParamName), sanitize(e.ID), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// TransitionError indicates an illegal state transition was requested.
// The entity is left unchanged when this error is returned.
type TransitionError struct {
	Entity string
	From   string
	To     string
	Reason string
}

func NewTransitionError(entity, from, to string) *TransitionError {
	return &TransitionError{Entity: entity, From: from, To: to}
}

func NewTransitionErrorWithReason(entity, from, to, reason string) *TransitionError {
	return &TransitionError{Entity: entity, From: from, To: to, Reason: reason}
}

func (e *TransitionError) Error() string {
	msg := fmt.Sprintf("%s: %s cannot move from %s to %s",
		ErrInvalidTransition, sanitize(e.Entity), sanitize(e.From), sanitize(e.To))
	if e.Reason != "" {
		msg += fmt.Sprintf(" (%s)", sanitize(e.Reason))
	}
	return msg
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ConflictError indicates a unique value is already taken by another object.
type ConflictError struct {
	ParamName string
	Value     string
	Cause     error
}

func NewConflictError(paramName, value string) *ConflictError {
	return &ConflictError{ParamName: paramName, Value: value}
}

func NewConflictErrorWithCause(paramName, value string, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, Value: value, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %q is already in use (cause: %s)",
			ErrConflict, sanitize(e.ParamName), sanitize(e.Value), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s %q is already in use", ErrConflict, sanitize(e.ParamName), sanitize(e.Value))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// RefusalError indicates an otherwise legal operation was blocked by a
// business invariant. Reason names the blocking invariant for the caller.
type RefusalError struct {
	Operation string
	Reason    string
}

func NewRefusalError(operation, reason string) *RefusalError {
	return &RefusalError{Operation: operation, Reason: reason}
}

func (e *RefusalError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrOperationRefused, sanitize(e.Operation), sanitize(e.Reason))
}

func (e *RefusalError) Unwrap() error {
	return ErrOperationRefused
}

// TimeoutError indicates an external call exceeded its bounded wait.
// The operation is retryable by the caller.
type TimeoutError struct {
	Operation string
	Cause     error
}

func NewTimeoutError(operation string) *TimeoutError {
	return &TimeoutError{Operation: operation}
}

func NewTimeoutErrorWithCause(operation string, cause error) *TimeoutError {
	return &TimeoutError{Operation: operation, Cause: cause}
}

func (e *TimeoutError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrTimeout, sanitize(e.Operation), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrTimeout, sanitize(e.Operation))
}

func (e *TimeoutError) Unwrap() error {
	return ErrTimeout
}

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string
	Message string
}

// ValidationErrors collects field-level validation failures so a caller can
// show every invalid field at once instead of failing on the first one.
// A nil or empty ValidationErrors means validation passed.
type ValidationErrors struct {
	Fields []FieldError
}

func NewValidationErrors() *ValidationErrors {
	return &ValidationErrors{}
}

// Add records a failure for the named field.
func (e *ValidationErrors) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// AddError records a failure for the named field from an existing error.
func (e *ValidationErrors) AddError(field string, err error) {
	if err == nil {
		return
	}
	e.Fields = append(e.Fields, FieldError{Field: field, Message: err.Error()})
}

// HasErrors reports whether any field failed validation.
func (e *ValidationErrors) HasErrors() bool {
	return e != nil && len(e.Fields) > 0
}

// AsError returns the collection as an error, or nil when validation passed.
func (e *ValidationErrors) AsError() error {
	if !e.HasErrors() {
		return nil
	}
	return e
}

func (e *ValidationErrors) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", sanitize(f.Field), sanitize(f.Message)))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, strings.Join(parts, "; "))
}

func (e *ValidationErrors) Unwrap() error {
	return ErrValueIsInvalid
}
