// Package errs provides standardized error types for the order tracker.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the failure classes the service reports:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed or breaks a business rule
//   - ObjectNotFoundError: an object cannot be found
//   - ObjectAlreadyExistsError: an object with the same identity is already stored
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers classify failures with errors.Is against the sentinels, which is how
// the HTTP adapter picks a response code.
package errs
