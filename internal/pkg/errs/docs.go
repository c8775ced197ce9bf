// Package errs provides standardized error types for the print ordering service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: input validation
//   - ObjectNotFoundError: a referenced document, order, or user does not exist
//   - ObjectAlreadyExistsError: a uniqueness conflict
//   - AccessDeniedError: the caller lacks rights over a resource
//   - StateIsInvalidError: the operation is not valid for the current state
//   - DependencyFailedError: an external collaborator failed
//   - UnauthenticatedError: the caller identity could not be established
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies the error
//
// Adapters classify errors with errors.Is against the sentinels only; callers never
// have to type-switch on the concrete structs.
package errs
