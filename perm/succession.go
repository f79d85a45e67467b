package perm

import "slices"

// Next returns the successor of p: the unique permutation whose left
// Lehmer code is one greater. Within a degree this is the classic
// next-permutation step on the word; after the last word of a degree the
// result rolls over to the first permutation of the next degree, the
// transposition (d d+1) with d = max(degree, 1). Total over all
// permutations.
//
// Complexity: O(degree).
func (p Permutation) Next() Permutation {
	word := make([]int, len(p.image))
	copy(word, p.image)
	for i := 1; i < len(word); i++ {
		if word[i] > word[i-1] {
			j := 0
			for word[i] <= word[j] {
				j++
			}
			word[i], word[j] = word[j], word[i]
			slices.Reverse(word[:i])

			return canonical(word)
		}
	}

	// Fully descending word: roll over to (d d+1).
	d := max(len(p.image), 1)
	word = make([]int, d+1)
	for i := range word {
		word[i] = i + 1
	}
	word[d-1], word[d] = d+1, d

	return Permutation{image: word}
}

// Prev returns the predecessor of p: the unique permutation whose left
// Lehmer code is one smaller.
//
// Returns ErrNoPredecessor for the identity, whose code is 0.
//
// Complexity: O(degree).
func (p Permutation) Prev() (Permutation, error) {
	if len(p.image) == 0 {
		return Permutation{}, ErrNoPredecessor
	}

	word := make([]int, len(p.image))
	copy(word, p.image)
	for i := 1; i < len(word); i++ {
		if word[i] < word[i-1] {
			j := 0
			for word[i] >= word[j] {
				j++
			}
			word[i], word[j] = word[j], word[i]
			slices.Reverse(word[:i])

			return canonical(word), nil
		}
	}

	// Unreachable: a canonical non-identity word always has a descent.
	return Permutation{}, ErrNoPredecessor
}
