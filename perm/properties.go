package perm

import "math/big"

// Order returns the group-theoretic order of p: the least k > 0 with
// p.Pow(k) equal to the identity, which is the LCM of the cycle lengths.
// The identity has order 1. The result is arbitrary precision because the
// largest order in S_n (Landau's function) passes int64 near degree 300.
//
// Complexity: O(degree) LCM steps.
func (p Permutation) Order() *big.Int {
	order := big.NewInt(1)
	g := new(big.Int)
	for _, cyc := range p.Cycles() {
		l := big.NewInt(int64(len(cyc)))
		g.GCD(nil, nil, order, l)
		order.Div(order, g).Mul(order, l)
	}

	return order
}

// IsEven reports whether p is the product of an even number of
// transpositions: each cycle of length k contributes k-1 of them.
func (p Permutation) IsEven() bool {
	transpositions := 0
	for _, cyc := range p.Cycles() {
		transpositions += len(cyc) - 1
	}

	return transpositions%2 == 0
}

// IsOdd reports whether p is not even.
func (p Permutation) IsOdd() bool {
	return !p.IsEven()
}

// Sign returns +1 for even permutations and -1 for odd ones.
func (p Permutation) Sign() int {
	if p.IsEven() {
		return 1
	}

	return -1
}

// Inversions returns the number of pairs 1 ≤ i < j ≤ degree with
// p.Apply(i) > p.Apply(j), the Kendall tau distance from the identity.
// It equals the sum of the right inversion table.
//
// Complexity: O(degree²).
func (p Permutation) Inversions() int {
	count := 0
	for i := range p.image {
		for j := i + 1; j < len(p.image); j++ {
			if p.image[j] < p.image[i] {
				count++
			}
		}
	}

	return count
}
