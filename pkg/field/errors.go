package field

import "errors"

var (
	// ErrInvalidElement indicates a value outside [0, modulus) or a modulus
	// smaller than 2.
	ErrInvalidElement = errors.New("field: invalid element")

	// ErrOrderMismatch indicates a binary operation between elements of
	// different fields.
	ErrOrderMismatch = errors.New("field: elements have different modulus")

	// ErrDivisionByZero indicates an inverse of the zero element was requested.
	ErrDivisionByZero = errors.New("field: division by zero")
)
