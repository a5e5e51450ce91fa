// Package errs provides standardized error types for the parcel service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is present but not acceptable
//   - ValueIsOutOfRangeError: a numeric value falls outside its allowed bounds
//   - ValidationError: a set of field failures collected while building an aggregate
//   - ObjectNotFoundError: a lookup by identifier found nothing
//   - ObjectAlreadyExistsError: a unique identifier is already taken
//   - TransportError: a call to a remote collaborator failed
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g., ErrValueIsRequired) for errors.Is checks
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() exposing the sentinel and the cause
package errs
