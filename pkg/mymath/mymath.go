// Package mymath provides basic arithmetic operations.
package mymath

import "fmt"

// Package metadata reported to clients of the library.
const (
	Name        = "mymath"
	Version     = "1.0.0"
	License     = "MIT"
	Description = "A simple math library"
)

// Add returns the sum of two integers. Overflow wraps.
func Add(a, b int) int {
	return a + b
}

// Subtract returns the difference between two integers.
func Subtract(a, b int) int {
	return a - b
}

// Multiply returns the product of two integers.
func Multiply(a, b int) int {
	return a * b
}

// Divide returns a / b.
// It returns ErrDivisionByZero if b is 0 (positive or negative zero).
func Divide(a, b float64) (float64, error) {
	if b == 0.0 {
		return 0, fmt.Errorf("divide %g by %g: %w", a, b, ErrDivisionByZero)
	}
	return a / b, nil
}

// Power raises base to exponent by square-and-multiply. Overflow wraps,
// giving the same result as exponent repeated multiplications.
// Power(x, 0) is 1 for every x, including 0.
// It returns ErrInvalidArgument for a negative exponent.
func Power(base, exponent int) (int, error) {
	if exponent < 0 {
		return 0, fmt.Errorf("power %d^%d: %w", base, exponent, ErrInvalidArgument)
	}

	result := 1
	for exponent > 0 {
		if exponent&1 == 1 {
			result = Multiply(result, base)
		}
		base = Multiply(base, base)
		exponent >>= 1
	}
	return result, nil
}
