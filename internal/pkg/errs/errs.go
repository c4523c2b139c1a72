package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification via errors.Is. Each typed error in this
// package unwraps to exactly one of these.
var (
	ErrObjectNotFound     = errors.New("object not found")
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrValueIsRequired    = errors.New("value is required")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrPaymentRequired    = errors.New("payment required")
	ErrAlreadyPaid        = errors.New("order is already paid")
	ErrInsufficientCash   = errors.New("insufficient cash tendered")
	ErrShiftAlreadyActive = errors.New("a shift is already active")
	ErrNoActiveShift      = errors.New("no active shift")
)

// sanitize strips newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "\r", " ")
}

// ObjectNotFoundError indicates that an object could not be located by its
// identifier. It carries the parameter name and the ID that was looked up.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an
// underlying infrastructure error.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError with a cause
// describing why the value was rejected.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without an underlying cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError with a cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// InvalidTransitionError indicates a requested order status change that is not
// in the allowed transition table. The caller's view is stale and it must
// re-fetch authoritative state rather than retry.
type InvalidTransitionError struct {
	From string
	To   string
}

// NewInvalidTransitionError creates an InvalidTransitionError identifying the
// current and requested states.
func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// PaymentRequiredError indicates an attempt to complete an order that has not
// been paid.
type PaymentRequiredError struct {
	OrderNumber int
}

// NewPaymentRequiredError creates a PaymentRequiredError for the given order number.
func NewPaymentRequiredError(orderNumber int) *PaymentRequiredError {
	return &PaymentRequiredError{OrderNumber: orderNumber}
}

func (e *PaymentRequiredError) Error() string {
	return fmt.Sprintf("%s: order #%d is not paid", ErrPaymentRequired, e.OrderNumber)
}

func (e *PaymentRequiredError) Unwrap() error {
	return ErrPaymentRequired
}

// AlreadyPaidError indicates a second payment attempt on an already-paid order.
type AlreadyPaidError struct {
	OrderNumber int
}

// NewAlreadyPaidError creates an AlreadyPaidError for the given order number.
func NewAlreadyPaidError(orderNumber int) *AlreadyPaidError {
	return &AlreadyPaidError{OrderNumber: orderNumber}
}

func (e *AlreadyPaidError) Error() string {
	return fmt.Sprintf("%s: order #%d", ErrAlreadyPaid, e.OrderNumber)
}

func (e *AlreadyPaidError) Unwrap() error {
	return ErrAlreadyPaid
}

// InsufficientCashError indicates a cash payment where the tendered amount does
// not cover the order total plus tip.
type InsufficientCashError struct {
	Tendered string
	Required string
}

// NewInsufficientCashError creates an InsufficientCashError with the tendered
// and required amounts formatted for display.
func NewInsufficientCashError(tendered, required string) *InsufficientCashError {
	return &InsufficientCashError{Tendered: tendered, Required: required}
}

func (e *InsufficientCashError) Error() string {
	return sanitize(fmt.Sprintf("%s: tendered %s, required %s", ErrInsufficientCash, e.Tendered, e.Required))
}

func (e *InsufficientCashError) Unwrap() error {
	return ErrInsufficientCash
}

// ShiftAlreadyActiveError indicates an attempt to start a shift while another
// one is still open.
type ShiftAlreadyActiveError struct {
	StaffName string
}

// NewShiftAlreadyActiveError creates a ShiftAlreadyActiveError naming the staff
// member holding the open shift.
func NewShiftAlreadyActiveError(staffName string) *ShiftAlreadyActiveError {
	return &ShiftAlreadyActiveError{StaffName: staffName}
}

func (e *ShiftAlreadyActiveError) Error() string {
	return sanitize(fmt.Sprintf("%s: held by %s", ErrShiftAlreadyActive, e.StaffName))
}

func (e *ShiftAlreadyActiveError) Unwrap() error {
	return ErrShiftAlreadyActive
}
