package perm

import "fmt"

// Apply maps i through the permutation. Integers outside 1..Degree,
// including zero and negatives, come back unchanged, which makes
// application a total function over the integers.
func (p Permutation) Apply(i int) int {
	if 0 < i && i <= len(p.image) {
		return p.image[i-1]
	}

	return i
}

// Image returns the images of 1..n as a fresh slice: result[i] is
// p.Apply(i+1). Image(p.Degree()) yields the canonical word, the inverse
// of New.
//
// Returns ErrBoundTooSmall if n is less than the degree.
func (p Permutation) Image(n int) ([]int, error) {
	if n < len(p.image) {
		return nil, fmt.Errorf("%w: n=%d, degree %d", ErrBoundTooSmall, n, len(p.image))
	}

	img := make([]int, n)
	copy(img, p.image)
	for i := len(p.image); i < n; i++ {
		img[i] = i + 1
	}

	return img, nil
}

// Compose returns the product p∘q: the permutation r with
// r(x) == p.Apply(q.Apply(x)) for every integer x, so q acts first.
// Composition is associative and has the identity as two-sided unit; it
// is not commutative in general.
//
// Complexity: O(max degree).
func (p Permutation) Compose(q Permutation) Permutation {
	d := max(len(p.image), len(q.image))
	word := make([]int, d)
	for i := 1; i <= d; i++ {
		word[i-1] = p.Apply(q.Apply(i))
	}

	return canonical(word)
}

// Inverse returns the permutation q with p.Compose(q) and q.Compose(p)
// both equal to the identity. The inverse has the same degree as p.
//
// Complexity: O(degree).
func (p Permutation) Inverse() Permutation {
	word := make([]int, len(p.image))
	for i, v := range p.image {
		word[v-1] = i + 1
	}

	return canonical(word)
}

// Pow returns p raised to the n-th power under composition: Pow(0) is the
// identity and negative exponents invert first. Square-and-multiply keeps
// the chain short.
//
// Complexity: O(degree · log |n|).
func (p Permutation) Pow(n int) Permutation {
	base := p
	var exp uint
	if n < 0 {
		base = p.Inverse()
		// Negating through uint stays exact at math.MinInt.
		exp = uint(-(n + 1)) + 1
	} else {
		exp = uint(n)
	}

	result := Identity()
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Compose(base)
		}
		base = base.Compose(base)
		exp >>= 1
	}

	return result
}

// IsDisjoint reports whether p and q move no integer in common. Beyond
// the shorter degree one side fixes everything, so only the overlapping
// prefix is inspected. Disjoint permutations commute.
//
// Complexity: O(min degree).
func (p Permutation) IsDisjoint(q Permutation) bool {
	m := min(len(p.image), len(q.image))
	for i := 0; i < m; i++ {
		if p.image[i] != i+1 && q.image[i] != i+1 {
			return false
		}
	}

	return true
}

// Permute reorders xs so that the element at 1-based index i lands at
// index p.Apply(i). Permuting the sequence 1..n equals
// p.Inverse().Image(n).
//
// Returns ErrSequenceTooShort if xs has fewer than Degree elements.
//
// Complexity: O(len(xs)).
func Permute[T any](p Permutation, xs []T) ([]T, error) {
	if len(xs) < len(p.image) {
		return nil, fmt.Errorf("%w: got %d, degree %d", ErrSequenceTooShort, len(xs), len(p.image))
	}

	out := make([]T, len(xs))
	for i := range xs {
		out[p.Apply(i+1)-1] = xs[i]
	}

	return out, nil
}
