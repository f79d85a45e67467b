// Package lehmer_test contains panic-on-error constructors for fixture
// literals that are known to be valid.
package lehmer_test

import (
	"math/rand"

	"github.com/katalvlaran/permath/perm"
)

// mustNew builds a permutation from a word literal, panicking on invalid
// input.
func mustNew(image ...int) perm.Permutation {
	p, err := perm.New(image...)
	if err != nil {
		panic(err)
	}

	return p
}

// mustCycle builds a cycle literal, panicking on invalid input.
func mustCycle(values ...int) perm.Permutation {
	p, err := perm.Cycle(values...)
	if err != nil {
		panic(err)
	}

	return p
}

// mustFromCycles builds a cycle product literal, panicking on invalid
// input.
func mustFromCycles(cycles ...[]int) perm.Permutation {
	p, err := perm.FromCycles(cycles...)
	if err != nil {
		panic(err)
	}

	return p
}

// mustTransposition builds a transposition literal, panicking on invalid
// input.
func mustTransposition(a, b int) perm.Permutation {
	p, err := perm.Transposition(a, b)
	if err != nil {
		panic(err)
	}

	return p
}

// randomPerm returns a uniformly shuffled permutation of degree at most d
// drawn from rng, for benchmarks.
func randomPerm(rng *rand.Rand, d int) perm.Permutation {
	word := rng.Perm(d)
	for i := range word {
		word[i]++
	}
	p, err := perm.New(word...)
	if err != nil {
		panic(err)
	}

	return p
}
