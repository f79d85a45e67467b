package perm

import "fmt"

// canonical trims trailing fixed points from word and wraps the rest.
// The word must already be a bijection of 1..len(word); ownership of the
// slice passes to the result.
func canonical(word []int) Permutation {
	d := len(word)
	for d > 0 && word[d-1] == d {
		d--
	}

	return Permutation{image: word[:d]}
}

// New constructs a permutation from its word representation: the
// arguments are the images of 1 through len(image). New() with no
// arguments is the identity, as is any word that fixes every value.
//
// Every value must lie in 1..len(image) and appear exactly once;
// ErrNotPositive, ErrValueMissing or ErrValueRepeated reports the first
// violation together with the offending value.
//
// Complexity: O(d).
func New(image ...int) (Permutation, error) {
	d := len(image)
	used := make([]bool, d)
	for i, v := range image {
		switch {
		case v < 1:
			return Permutation{}, fmt.Errorf("%w: %d at position %d", ErrNotPositive, v, i+1)
		case v > d:
			return Permutation{}, fmt.Errorf("%w: %d exceeds word length %d", ErrValueMissing, v, d)
		case used[v-1]:
			return Permutation{}, fmt.Errorf("%w: %d", ErrValueRepeated, v)
		}
		used[v-1] = true
	}

	word := make([]int, d)
	copy(word, image)

	return canonical(word), nil
}

// Identity returns the identity permutation, the unit of composition.
func Identity() Permutation {
	return Permutation{}
}

// Cycle constructs the cyclic permutation sending values[0] to values[1],
// values[1] to values[2], and so on, with the last value sent back to
// values[0]; everything else stays fixed. Zero or one values give the
// identity.
//
// Values must be positive (ErrNotPositive) and pairwise distinct
// (ErrValueRepeated).
//
// Complexity: O(max value).
func Cycle(values ...int) (Permutation, error) {
	mapping := make(map[int]int, len(values))
	maxVal := 0
	for i, v := range values {
		if v < 1 {
			return Permutation{}, fmt.Errorf("%w: %d", ErrNotPositive, v)
		}
		if _, dup := mapping[v]; dup {
			return Permutation{}, fmt.Errorf("%w: %d appears more than once in cycle", ErrValueRepeated, v)
		}
		next := values[0]
		if i < len(values)-1 {
			next = values[i+1]
		}
		mapping[v] = next
		if v > maxVal {
			maxVal = v
		}
	}

	word := make([]int, maxVal)
	for i := 1; i <= maxVal; i++ {
		word[i-1] = i
		if next, ok := mapping[i]; ok {
			word[i-1] = next
		}
	}

	return canonical(word), nil
}

// Transposition returns the permutation that swaps a and b and fixes all
// other values. The argument order does not matter.
//
// Returns ErrNotPositive if either value is smaller than 1, and
// ErrEqualValues if a == b: a transposition moves two distinct values.
func Transposition(a, b int) (Permutation, error) {
	if a < 1 || b < 1 {
		return Permutation{}, fmt.Errorf("%w: (%d %d)", ErrNotPositive, a, b)
	}
	if a == b {
		return Permutation{}, fmt.Errorf("%w: (%d %d)", ErrEqualValues, a, b)
	}

	word := make([]int, max(a, b))
	for i := range word {
		word[i] = i + 1
	}
	word[a-1], word[b-1] = b, a

	return canonical(word), nil
}

// FromCycles returns the product of the given cycles, with the rightmost
// cycle applied first: FromCycles(c, d) maps x the way c(d(x)) does. The
// cycles need not be disjoint, and the inverse relationship
// FromCycles(p.Cycles()...) == p holds for every p. No cycles give the
// identity.
//
// Each cycle is validated as in Cycle.
func FromCycles(cycles ...[]int) (Permutation, error) {
	product := Permutation{}
	for _, values := range cycles {
		c, err := Cycle(values...)
		if err != nil {
			return Permutation{}, err
		}
		product = product.Compose(c)
	}

	return product, nil
}
