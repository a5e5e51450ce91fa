package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValueIsRequired      = errors.New("value is required")
	ErrValueIsInvalid       = errors.New("value is invalid")
	ErrValueIsOutOfRange    = errors.New("value is out of range")
	ErrValidation           = errors.New("validation failed")
	ErrObjectNotFound       = errors.New("object not found")
	ErrObjectAlreadyExists  = errors.New("object already exists")
	ErrTransport            = errors.New("transport failure")
	ErrInvalidStateTransfer = errors.New("invalid state transition")
)

// FieldError is implemented by errors that concern a single named field.
type FieldError interface {
	error
	Field() string
}

func unwrapWith(sentinel, cause error) []error {
	if cause == nil {
		return []error{sentinel}
	}
	return []error{sentinel, cause}
}

func withCause(base string, cause error) string {
	if cause == nil {
		return base
	}
	return fmt.Sprintf("%s (cause: %v)", base, cause)
}

// ValueIsRequiredError reports a missing value.
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
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Field() string { return e.ParamName }

func (e *ValueIsRequiredError) Unwrap() []error { return unwrapWith(ErrValueIsRequired, e.Cause) }

// ValueIsInvalidError reports a value that is present but unacceptable.
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
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Field() string { return e.ParamName }

func (e *ValueIsInvalidError) Unwrap() []error { return unwrapWith(ErrValueIsInvalid, e.Cause) }

// ValueIsOutOfRangeError reports a value outside [Min, Max].
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

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	return withCause(
		fmt.Sprintf("%s: %s is %v, min value is %v, max value is %v",
			ErrValueIsOutOfRange, e.ParamName, e.Value, e.Min, e.Max),
		e.Cause,
	)
}

func (e *ValueIsOutOfRangeError) Field() string { return e.ParamName }

func (e *ValueIsOutOfRangeError) Unwrap() []error { return unwrapWith(ErrValueIsOutOfRange, e.Cause) }

// ValidationError collects every field failure found while building Subject.
// Fields keeps the order in which failures were reported, without duplicates.
type ValidationError struct {
	Subject string
	Cause   error
	fields  []string
}

// NewValidationError wraps cause, which is usually an errors.Join of FieldError values.
// It returns nil when cause is nil so callers can pass the join result directly.
func NewValidationError(subject string, cause error) error {
	if cause == nil {
		return nil
	}
	e := &ValidationError{Subject: subject, Cause: cause}
	collectFields(cause, &e.fields)
	return e
}

func (e *ValidationError) Error() string {
	if len(e.fields) == 0 {
		return fmt.Sprintf("%s: %s: %v", ErrValidation, e.Subject, e.Cause)
	}
	return fmt.Sprintf("%s: %s [%s]: %v", ErrValidation, e.Subject, strings.Join(e.fields, ", "), e.Cause)
}

// Fields returns the names of the missing or invalid fields.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

func (e *ValidationError) Unwrap() []error { return unwrapWith(ErrValidation, e.Cause) }

func collectFields(err error, out *[]string) {
	if err == nil {
		return
	}
	if fe, ok := err.(FieldError); ok {
		for _, f := range *out {
			if f == fe.Field() {
				return
			}
		}
		*out = append(*out, fe.Field())
		return
	}
	switch u := err.(type) {
	case interface{ Unwrap() []error }:
		for _, inner := range u.Unwrap() {
			collectFields(inner, out)
		}
	case interface{ Unwrap() error }:
		collectFields(u.Unwrap(), out)
	}
}

// ObjectNotFoundError reports a lookup that found nothing.
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
	return withCause(fmt.Sprintf("%s: %s with id %v", ErrObjectNotFound, e.ParamName, e.ID), e.Cause)
}

func (e *ObjectNotFoundError) Unwrap() []error { return unwrapWith(ErrObjectNotFound, e.Cause) }

// ObjectAlreadyExistsError reports a clash on a unique identifier.
type ObjectAlreadyExistsError struct {
	ParamName string
	ID        any
}

func NewObjectAlreadyExistsError(paramName string, id any) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, ID: id}
}

func (e *ObjectAlreadyExistsError) Error() string {
	return fmt.Sprintf("%s: %s with id %v", ErrObjectAlreadyExists, e.ParamName, e.ID)
}

func (e *ObjectAlreadyExistsError) Unwrap() error { return ErrObjectAlreadyExists }

// InvalidStateTransferError reports a lifecycle action that the current state does not allow.
type InvalidStateTransferError struct {
	Action string
	From   string
}

func NewInvalidStateTransferError(action, from string) *InvalidStateTransferError {
	return &InvalidStateTransferError{Action: action, From: from}
}

func (e *InvalidStateTransferError) Error() string {
	return fmt.Sprintf("%s: cannot %s from %s", ErrInvalidStateTransfer, e.Action, e.From)
}

func (e *InvalidStateTransferError) Unwrap() error { return ErrInvalidStateTransfer }

// TransportError reports a failed call to a remote collaborator.
// StatusCode is zero when no response was received.
type TransportError struct {
	Op         string
	StatusCode int
	Cause      error
}

func NewTransportError(op string, statusCode int, cause error) *TransportError {
	return &TransportError{Op: op, StatusCode: statusCode, Cause: cause}
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return withCause(fmt.Sprintf("%s: %s returned status %d", ErrTransport, e.Op, e.StatusCode), e.Cause)
	}
	return withCause(fmt.Sprintf("%s: %s", ErrTransport, e.Op), e.Cause)
}

func (e *TransportError) Unwrap() []error { return unwrapWith(ErrTransport, e.Cause) }
