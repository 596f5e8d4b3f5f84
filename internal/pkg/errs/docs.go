// Package errs provides standardized error types for the pedidos application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping used throughout the client core and the reference backend.
//
// Local validation failures use ValueIsRequiredError, ValueIsInvalidError and
// ValueIsOutOfRangeError; lifecycle preconditions use InvalidStateError.
// Remote interaction adds two transport-facing kinds: RemoteRejectionError
// (the server answered non-2xx and its message is surfaced verbatim) and
// NetworkError (no HTTP response was produced at all).
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrValueIsInvalid)
//   - a struct type with fields for error details
//   - constructor functions with and without cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Callers classify errors with errors.Is against the sentinels rather than
// matching message strings.
package errs
