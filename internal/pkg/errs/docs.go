// Package errs provides standardized error types for the delivery query module.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used by the domain model and the query layer.
//
// The package includes:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value breaks a domain rule
//   - ValueIsOutOfRangeError: For when a numeric value leaves its allowed range
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is works
package errs
