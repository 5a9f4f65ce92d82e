package apperrors

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates that a factory was given an unsupported or malformed argument.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrUnsupportedCurrency indicates that a currency code does not match any registry entry.
var ErrUnsupportedCurrency = errors.New("currency is not supported")

// ErrCurrencyMismatch indicates that a binary money operation was given operands of different currencies.
var ErrCurrencyMismatch = errors.New("currency mismatch")

// ErrDivisionByZero indicates a scalar division by zero.
var ErrDivisionByZero = errors.New("division by zero")

// ErrUnsupported indicates a value obtained without going through validation,
// such as a zero Money or Currency. It signals programmer error.
var ErrUnsupported = errors.New("operation not supported")

// ArgumentError names the argument that failed validation.
type ArgumentError struct {
	Field string
	Value any
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: field %s invalid (%v)", ErrInvalidArgument, e.Field, e.Value)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// NewArgumentError creates an invalid argument error for the named field.
func NewArgumentError(field string, value any) error {
	return &ArgumentError{Field: field, Value: value}
}

// CurrencyMismatchError carries the ISO codes of both operands.
type CurrencyMismatchError struct {
	Left  string
	Right string
}

// Error implements the error interface.
func (e *CurrencyMismatchError) Error() string {
	return fmt.Sprintf("%s: left currency %s does not equal right currency %s", ErrCurrencyMismatch, e.Left, e.Right)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *CurrencyMismatchError) Unwrap() error {
	return ErrCurrencyMismatch
}

// NewCurrencyMismatchError creates a mismatch error for the given ISO codes.
func NewCurrencyMismatchError(left, right string) error {
	return &CurrencyMismatchError{Left: left, Right: right}
}
