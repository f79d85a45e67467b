// Package lehmer ranks and unranks permutations as integers.
//
// Two codecs are provided, both arbitrary precision (*big.Int), since
// code ranges grow factorially:
//
//   - Ordinary Lehmer code (Code / FromCode) - the zero-based rank of a
//     permutation among all permutations of degree at most n, ordered
//     lexicographically by word. Parameterized by the bound n; the code
//     of p in S_n lies in 0..n!-1.
//
//   - Left (modified) Lehmer code (Left / FromLeft) - a degree-free
//     bijection between all permutations and the non-negative integers,
//     built from the left inversion table instead of the right one. This
//     is the order behind perm.Next, perm.Prev and perm.Group: the
//     identity has code 0, and the successor of any permutation has a
//     code exactly one greater.
//
// RightInversions exposes the digit vector the ordinary code is built
// from. Both codecs read their digit vectors in factorial base (package
// factoradic).
//
// Complexity: O(n²) for every operation, with n the bound or the digit
// count.
//
// Use this package to number permutations compactly, store them as
// integers, or jump to an arbitrary position in an enumeration.
package lehmer
