// Package permath turns permutations into first-class Go values: build
// them, compose them, rank them as integers, and walk entire symmetric
// groups.
//
// 🚀 What is permath?
//
//	A small, pure-Go library for the algebra of finite permutations:
//		• Value type: immutable, canonical, safe to share across goroutines
//		• Algebra: composition, inverses, powers, disjointness
//		• Cycles: decomposition, construction, cycle-notation parse & format
//		• Codecs: ordinary and left (modified) Lehmer codes, factorial base
//		• Ordering: successor, predecessor, lazy S_n enumeration
//		• Properties: order, parity, sign, inversions
//
// ✨ Why choose permath?
//
//   - Exact at any degree: codes and orders are *big.Int, never truncated
//   - No panics, no logging: invalid input means a wrapped sentinel error
//   - Pure Go: no cgo, no runtime dependencies
//
// Everything is organized under three subpackages:
//
//	perm/       - the Permutation value type, algebra, ordering, notation
//	lehmer/     - permutation-to-integer ranking codecs
//	factoradic/ - factorial number system conversions
//
// Quick taste:
//
//	p, _ := perm.New(2, 5, 4, 3, 1)
//	fmt.Println(p)              // (1 2 5)(3 4)
//	fmt.Println(lehmer.Left(p)) // 110
//
//	go get github.com/katalvlaran/permath
package permath
