package mymath

import "errors"

var (
	// ErrDivisionByZero is returned by Divide when the divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidArgument is returned by Power when the exponent is negative.
	ErrInvalidArgument = errors.New("negative exponent not supported")
)
