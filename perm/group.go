package perm

import (
	"fmt"
	"iter"
)

// Group returns the symmetric group S_n as a lazy sequence: every
// permutation of degree at most n, in increasing left Lehmer code order,
// starting at the identity. The sequence yields exactly n! permutations.
// Ranging over it again restarts at the identity; breaking early is safe
// and releases nothing, since no resources are held.
//
// Returns ErrNegativeDegree immediately, before any element is produced,
// if n < 0.
func Group(n int) (iter.Seq[Permutation], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeDegree, n)
	}

	return func(yield func(Permutation) bool) {
		for p := Identity(); p.Degree() <= n; p = p.Next() {
			if !yield(p) {
				return
			}
		}
	}, nil
}
