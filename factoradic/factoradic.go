package factoradic

import (
	"errors"
	"fmt"
	"math/big"
	"slices"
)

// Sentinel errors for factoradic conversions.
var (
	// ErrNegativeValue indicates a negative integer was passed to Digits.
	ErrNegativeValue = errors.New("factoradic: value must be non-negative")

	// ErrDigitOutOfRange indicates a digit outside [0, i] for its place.
	ErrDigitOutOfRange = errors.New("factoradic: digit out of range")

	// ErrNegativeFactorial indicates Factorial was called with n < 0.
	ErrNegativeFactorial = errors.New("factoradic: factorial of negative number")
)

// Digits returns the factorial-base representation of x, most-significant
// digit first. Zero is returned as [0]; otherwise the leading digit is
// non-zero. x is not modified.
//
// Returns ErrNegativeValue if x is negative.
//
// Complexity: O(k) big-integer divisions for a k-digit result.
func Digits(x *big.Int) ([]int, error) {
	if x.Sign() < 0 {
		return nil, fmt.Errorf("%w: %s", ErrNegativeValue, x)
	}
	if x.Sign() == 0 {
		return []int{0}, nil
	}

	var (
		digits []int
		n      = new(big.Int).Set(x)
		div    = new(big.Int)
		rem    = new(big.Int)
	)
	// Peel off the 1!-place digit first (mod 2), then the 2!-place (mod 3),
	// and so on until the quotient is exhausted.
	for b := int64(2); n.Sign() > 0; b++ {
		n.QuoRem(n, div.SetInt64(b), rem)
		digits = append(digits, int(rem.Int64()))
	}
	slices.Reverse(digits)

	return digits, nil
}

// Value returns the integer encoded by a factorial-base digit slice,
// most-significant digit first. The empty slice encodes zero, and leading
// zero digits are accepted.
//
// Returns ErrDigitOutOfRange if the digit at 1-based position i from the
// least significant end lies outside [0, i].
//
// Complexity: O(k) big-integer multiplications for k digits.
func Value(digits []int) (*big.Int, error) {
	var (
		n    = new(big.Int)
		base = big.NewInt(1)
		tmp  = new(big.Int)
	)
	for i := 1; i <= len(digits); i++ {
		d := digits[len(digits)-i]
		if d < 0 || d > i {
			return nil, fmt.Errorf("%w: digit %d at place %d!", ErrDigitOutOfRange, d, i)
		}
		n.Add(n, tmp.SetInt64(int64(d)).Mul(tmp, base))
		base.Mul(base, tmp.SetInt64(int64(i+1)))
	}

	return n, nil
}

// Factorial returns n! as a big integer (0! == 1).
//
// Returns ErrNegativeFactorial if n < 0.
func Factorial(n int) (*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeFactorial, n)
	}

	return new(big.Int).MulRange(1, int64(n)), nil
}
