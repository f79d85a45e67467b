package lehmer

import (
	"fmt"
	"math/big"
	"slices"

	"github.com/katalvlaran/permath/factoradic"
	"github.com/katalvlaran/permath/perm"
)

// Left returns the left (modified) Lehmer code of p: the left inversion
// table, scanned from the degree down to 1, minus its trailing zero, read
// in factorial base. Unlike Code it takes no bound; Left is a bijection
// between permutations of every degree and the non-negative integers,
// and defines the total order used by perm.Next, perm.Prev and
// perm.Group. The identity maps to 0.
//
// Complexity: O(degree²).
func Left(p perm.Permutation) *big.Int {
	d := p.Degree()
	unplaced := make([]int, d)
	for i := range unplaced {
		unplaced[i] = d - i
	}
	digits := make([]int, 0, d)
	for x := d; x >= 1; x-- {
		i := slices.Index(unplaced, p.Apply(x))
		unplaced = slices.Delete(unplaced, i, i+1)
		digits = append(digits, i)
	}
	if len(digits) > 0 {
		digits = digits[:len(digits)-1]
	}

	return value(digits)
}

// FromLeft returns the permutation with left Lehmer code x. Inverse of
// Left: the factorial-base digits of x are replayed least-significant
// first, bumping previously placed entries, and the finished mapping is
// flipped into a word.
//
// Returns ErrNegativeCode if x < 0.
//
// Complexity: O(k²) for a k-digit code.
func FromLeft(x *big.Int) (perm.Permutation, error) {
	digits, err := factoradic.Digits(x)
	if err != nil {
		return perm.Permutation{}, fmt.Errorf("%w: %s", ErrNegativeCode, x)
	}

	mapping := []int{0}
	for k := len(digits) - 1; k >= 0; k-- {
		c := digits[k]
		for i, y := range mapping {
			if y >= c {
				mapping[i]++
			}
		}
		mapping = append(mapping, c)
	}

	word := make([]int, len(mapping))
	for i, c := range mapping {
		word[i] = len(mapping) - c
	}

	return perm.New(word...)
}
