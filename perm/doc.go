// Package perm implements permutations of finitely many positive
// integers as immutable algebraic values.
//
// A Permutation is a bijection from 1..n to itself, extended to fix every
// larger integer. The zero value is the identity, values compare with
// Equal, and every operation returns a new value, so instances can be
// shared across goroutines freely.
//
// Construction:
//
//   - New            - from a word (the images of 1..n).
//   - Identity       - the unit.
//   - Cycle          - a single cyclic permutation.
//   - Transposition  - a two-element swap.
//   - FromCycles     - a product of cycles, rightmost applied first.
//   - Parse          - from cycle notation such as "(1 2 5)(3 4)".
//
// Algebra and properties:
//
//   - Apply, Image, Permute       - evaluation and sequence reordering.
//   - Compose, Inverse, Pow       - the group operations. O(d) each,
//     O(d·log|n|) for Pow.
//   - Cycles, String, GoString    - cycle decomposition and notation.
//   - Order, Sign, IsEven, IsOdd  - derived invariants; Order is exact
//     (*big.Int) at any degree.
//   - Inversions, IsDisjoint, Hash, Equal.
//
// Ordering and enumeration:
//
//   - Next, Prev - successor and predecessor in left Lehmer code order,
//     the degree-independent total order over all permutations (see
//     package lehmer).
//   - Group      - S_n as a lazy iter.Seq, identity first, n! elements.
//
// Every invalid input reports a sentinel error (ErrNotPositive,
// ErrValueRepeated, ErrBadNotation, ...) wrapped with the offending
// value; there are no panics and no logging.
//
// Use this package when permutations are data: composing shuffles,
// ranking and unranking orderings, or walking symmetric groups.
package perm
