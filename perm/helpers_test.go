// Package perm_test contains shared fixtures for the permutation tests:
// panic-on-error constructors for literals that are known to be valid,
// and the S4 group in succession order.
package perm_test

import (
	"math/rand"

	"github.com/katalvlaran/permath/perm"
)

// mustNew builds a permutation from a word literal, panicking on invalid
// input. Fixture use only.
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

// s4 lists every permutation of degree at most 4, in succession order:
// s4[i] is s4[i-1].Next(), starting from the identity.
var s4 = []perm.Permutation{
	perm.Identity(),
	mustFromCycles([]int{1, 2}),
	mustFromCycles([]int{2, 3}),
	mustFromCycles([]int{1, 3, 2}),
	mustFromCycles([]int{1, 2, 3}),
	mustFromCycles([]int{1, 3}),
	mustFromCycles([]int{3, 4}),
	mustFromCycles([]int{1, 2}, []int{3, 4}),
	mustFromCycles([]int{2, 4, 3}),
	mustFromCycles([]int{1, 4, 3, 2}),
	mustFromCycles([]int{1, 2, 4, 3}),
	mustFromCycles([]int{1, 4, 3}),
	mustFromCycles([]int{2, 3, 4}),
	mustFromCycles([]int{1, 3, 4, 2}),
	mustFromCycles([]int{2, 4}),
	mustFromCycles([]int{1, 4, 2}),
	mustFromCycles([]int{1, 3}, []int{2, 4}),
	mustFromCycles([]int{1, 4, 2, 3}),
	mustFromCycles([]int{1, 2, 3, 4}),
	mustFromCycles([]int{1, 3, 4}),
	mustFromCycles([]int{1, 2, 4}),
	mustFromCycles([]int{1, 4}),
	mustFromCycles([]int{1, 3, 2, 4}),
	mustFromCycles([]int{1, 4}, []int{2, 3}),
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
