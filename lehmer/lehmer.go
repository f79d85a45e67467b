package lehmer

import (
	"errors"
	"fmt"
	"math/big"
	"slices"

	"github.com/katalvlaran/permath/perm"
)

// Sentinel errors for the Lehmer codecs.
var (
	// ErrBoundTooSmall indicates a bound n below the permutation's degree.
	ErrBoundTooSmall = errors.New("lehmer: n must be at least the degree")

	// ErrNegativeCode indicates a negative code value.
	ErrNegativeCode = errors.New("lehmer: code must be non-negative")

	// ErrCodeOutOfRange indicates an ordinary code of n! or beyond.
	ErrCodeOutOfRange = errors.New("lehmer: code out of range")
)

// RightInversions returns the right inversion table of p through bound n:
// the entry at index i counts the values x > i+1 with
// p.Apply(x) < p.Apply(i+1). The digit at index i lies in [0, n-1-i], so
// the last digit is always zero; bounds beyond the degree append zeros,
// which matters when converting to and from codes.
//
// Returns ErrBoundTooSmall if n < p.Degree().
//
// Complexity: O(n²).
func RightInversions(p perm.Permutation, n int) ([]int, error) {
	if n < p.Degree() {
		return nil, fmt.Errorf("%w: n=%d, degree %d", ErrBoundTooSmall, n, p.Degree())
	}

	unplaced := make([]int, n)
	for i := range unplaced {
		unplaced[i] = i + 1
	}
	digits := make([]int, 0, n)
	for x := 1; x <= n; x++ {
		i := slices.Index(unplaced, p.Apply(x))
		unplaced = slices.Delete(unplaced, i, i+1)
		digits = append(digits, i)
	}

	return digits, nil
}

// Code returns the ordinary Lehmer code of p with respect to S_n: the
// zero-based rank of p among all permutations of degree at most n in
// lexicographic word order. The code is the right inversion table, minus
// its trailing zero, read as a factorial-base number; it lies in
// 0..n!-1. FromCode inverts it.
//
// Returns ErrBoundTooSmall if n < p.Degree().
//
// Complexity: O(n²).
func Code(p perm.Permutation, n int) (*big.Int, error) {
	digits, err := RightInversions(p, n)
	if err != nil {
		return nil, err
	}
	if len(digits) > 0 {
		digits = digits[:len(digits)-1]
	}

	return value(digits), nil
}

// FromCode returns the permutation of degree at most n whose ordinary
// Lehmer code is x. Inverse of Code. The word is rebuilt from the least
// significant digit up: each digit shifts the previously placed values
// that it equals or passes.
//
// Returns ErrNegativeCode if x < 0, and ErrCodeOutOfRange if x ≥ n!.
//
// Complexity: O(n²).
func FromCode(x *big.Int, n int) (perm.Permutation, error) {
	if x.Sign() < 0 {
		return perm.Permutation{}, fmt.Errorf("%w: %s", ErrNegativeCode, x)
	}

	var (
		mapping = make([]int, 0, max(n, 0))
		rest    = new(big.Int).Set(x)
		div     = new(big.Int)
		rem     = new(big.Int)
	)
	for i := 1; i <= n; i++ {
		rest.QuoRem(rest, div.SetInt64(int64(i)), rem)
		c := int(rem.Int64())
		for j, y := range mapping {
			if y >= c {
				mapping[j]++
			}
		}
		mapping = slices.Insert(mapping, 0, c)
	}
	if rest.Sign() != 0 {
		return perm.Permutation{}, fmt.Errorf("%w: %s with n=%d", ErrCodeOutOfRange, x, n)
	}

	word := make([]int, len(mapping))
	for i, c := range mapping {
		word[i] = c + 1
	}

	return perm.New(word...)
}

// value reads an inversion-digit slice, most-significant first, as a
// factorial-base number. Digits coming from an inversion table are valid
// by construction; external digit strings go through factoradic.Value
// instead.
func value(digits []int) *big.Int {
	var (
		n    = new(big.Int)
		base = big.NewInt(1)
		tmp  = new(big.Int)
	)
	for i := 1; i <= len(digits); i++ {
		n.Add(n, tmp.SetInt64(int64(digits[len(digits)-i])).Mul(tmp, base))
		base.Mul(base, tmp.SetInt64(int64(i+1)))
	}

	return n
}
