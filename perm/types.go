package perm

import (
	"encoding/binary"
	"errors"
	"hash/fnv"
	"slices"
)

// Sentinel errors for permutation construction and operations.
var (
	// ErrNotPositive indicates an input value smaller than 1.
	ErrNotPositive = errors.New("perm: values must be positive")

	// ErrValueMissing indicates a word containing a value larger than the
	// word length, so some value in range must be absent.
	ErrValueMissing = errors.New("perm: value missing from input")

	// ErrValueRepeated indicates a duplicated value in a word or cycle.
	ErrValueRepeated = errors.New("perm: value repeated in input")

	// ErrEqualValues indicates a transposition of a value with itself.
	ErrEqualValues = errors.New("perm: values must differ")

	// ErrBadNotation indicates text that is not valid cycle notation.
	ErrBadNotation = errors.New("perm: invalid cycle notation")

	// ErrBoundTooSmall indicates a requested word length below the degree.
	ErrBoundTooSmall = errors.New("perm: n must be at least the degree")

	// ErrSequenceTooShort indicates a slice with fewer elements than the
	// degree.
	ErrSequenceTooShort = errors.New("perm: sequence must have at least degree elements")

	// ErrNoPredecessor indicates Prev was called on the identity.
	ErrNoPredecessor = errors.New("perm: cannot decrement identity")

	// ErrNegativeDegree indicates a negative symmetric-group degree.
	ErrNegativeDegree = errors.New("perm: degree must be non-negative")
)

// Permutation is a bijection of the positive integers that moves only
// finitely many of them. The zero value is the identity.
//
// The stored word is canonical: image[i] is the image of i+1, trailing
// fixed points are trimmed, and values beyond the word map to themselves.
// Equal permutations therefore share exactly one representation.
//
// Permutation values are immutable; every operation returns a new value,
// so they are safe for unsynchronized concurrent use.
type Permutation struct {
	image []int
}

// Degree returns the largest integer moved by p, or 0 for the identity.
func (p Permutation) Degree() int {
	return len(p.image)
}

// IsIdentity reports whether p maps every integer to itself.
func (p Permutation) IsIdentity() bool {
	return len(p.image) == 0
}

// Equal reports whether p and q are the same permutation.
func (p Permutation) Equal(q Permutation) bool {
	return slices.Equal(p.image, q.image)
}

// Hash returns a 64-bit FNV-1a digest of the canonical word. Equal
// permutations hash equal; unequal ones may collide, so confirm with
// Equal.
func (p Permutation) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for _, v := range p.image {
		binary.BigEndian.PutUint64(buf[:], uint64(v))
		h.Write(buf[:])
	}

	return h.Sum64()
}
