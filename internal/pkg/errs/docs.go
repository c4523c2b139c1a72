// Package errs provides standardized error types for the point-of-sale core.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers two kinds of failures:
//
// Validation failures, rejected before any state mutation:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed or out of range
//   - InsufficientCashError: cash tendered does not cover total plus tip
//
// Conflict failures, signaling that the caller's view of the world is stale
// or a precondition is unmet:
//   - ObjectNotFoundError: an order, menu item, or shift cannot be found
//   - InvalidTransitionError: a status change outside the allowed table
//   - PaymentRequiredError: completing an order that is not paid
//   - AlreadyPaidError: a second payment on an already-paid order
//   - ShiftAlreadyActiveError: starting a shift while one is open
//   - ErrNoActiveShift: closing a shift when none is active
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The HTTP adapter maps sentinels to status codes with errors.Is, so every
// error raised by the core must unwrap to one of the sentinels above.
package errs
