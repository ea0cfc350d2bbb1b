// Package errs provides standardized error types for the fulfillment
// application.
//
// Each error type follows the same pattern: a sentinel error variable for
// classification, a struct carrying the error details, constructors with and
// without an underlying cause, an Error method for formatting and an Unwrap
// method so callers can match with errors.Is. Keeping error construction
// uniform makes failures classifiable at the application boundary without
// string matching.
package errs
