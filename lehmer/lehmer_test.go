package lehmer_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/permath/lehmer"
	"github.com/katalvlaran/permath/perm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// codeTable pairs permutations and bounds with their ordinary code and
// right inversion table. The same permutation recurs under growing
// bounds, where the code scales but the word does not.
var codeTable = []struct {
	p    perm.Permutation
	n    int
	code int64
	vec  []int
}{
	{perm.Identity(), 0, 0, []int{}},
	{perm.Identity(), 1, 0, []int{0}},
	{perm.Identity(), 2, 0, []int{0, 0}},
	{mustNew(2, 1, 3), 2, 1, []int{1, 0}},
	{perm.Identity(), 3, 0, []int{0, 0, 0}},
	{mustNew(1, 3, 2), 3, 1, []int{0, 1, 0}},
	{mustNew(2, 1, 3), 3, 2, []int{1, 0, 0}},
	{mustNew(2, 3, 1), 3, 3, []int{1, 1, 0}},
	{mustNew(3, 1, 2), 3, 4, []int{2, 0, 0}},
	{mustNew(3, 2, 1), 3, 5, []int{2, 1, 0}},
	{perm.Identity(), 4, 0, []int{0, 0, 0, 0}},
	{mustNew(1, 3, 2), 4, 2, []int{0, 1, 0, 0}},
	{mustNew(2, 1, 3), 4, 6, []int{1, 0, 0, 0}},
	{mustNew(2, 3, 1), 4, 8, []int{1, 1, 0, 0}},
	{mustNew(3, 1, 2), 4, 12, []int{2, 0, 0, 0}},
	{mustNew(3, 2, 1), 4, 14, []int{2, 1, 0, 0}},
	{mustNew(5, 1, 7, 3, 2, 4, 6), 7, 2982, []int{4, 0, 4, 1, 0, 0, 0}},
}

// TestRightInversions_Table checks the inversion digits against the
// table.
func TestRightInversions_Table(t *testing.T) {
	for _, tc := range codeTable {
		got, err := lehmer.RightInversions(tc.p, tc.n)
		require.NoErrorf(t, err, "RightInversions(%v, %d)", tc.p, tc.n)
		assert.Equalf(t, tc.vec, got, "RightInversions(%v, %d)", tc.p, tc.n)
	}
}

// TestRightInversions_BoundTooSmall checks each table permutation one
// below its degree, including the identity at -1.
func TestRightInversions_BoundTooSmall(t *testing.T) {
	for _, tc := range codeTable {
		_, err := lehmer.RightInversions(tc.p, tc.p.Degree()-1)
		assert.ErrorIsf(t, err, lehmer.ErrBoundTooSmall, "RightInversions(%v, %d)", tc.p, tc.p.Degree()-1)
	}
}

// TestCode_Table checks the factorial-base rank against the table.
func TestCode_Table(t *testing.T) {
	for _, tc := range codeTable {
		got, err := lehmer.Code(tc.p, tc.n)
		require.NoErrorf(t, err, "Code(%v, %d)", tc.p, tc.n)
		assert.Equalf(t, tc.code, got.Int64(), "Code(%v, %d)", tc.p, tc.n)
	}
}

// TestCode_BoundTooSmall checks the shared bound validation.
func TestCode_BoundTooSmall(t *testing.T) {
	for _, tc := range codeTable {
		_, err := lehmer.Code(tc.p, tc.p.Degree()-1)
		assert.ErrorIsf(t, err, lehmer.ErrBoundTooSmall, "Code(%v, %d)", tc.p, tc.p.Degree()-1)
	}
}

// TestFromCode_Table decodes every table rank back to its permutation.
func TestFromCode_Table(t *testing.T) {
	for _, tc := range codeTable {
		got, err := lehmer.FromCode(big.NewInt(tc.code), tc.n)
		require.NoErrorf(t, err, "FromCode(%d, %d)", tc.code, tc.n)
		assert.Truef(t, got.Equal(tc.p), "FromCode(%d, %d) = %v, want %v", tc.code, tc.n, got, tc.p)
	}
}

// TestFromCode_Invalid checks the two failure modes: codes at or past n!
// and negative codes.
func TestFromCode_Invalid(t *testing.T) {
	for _, tc := range []struct {
		code int64
		n    int
		want error
	}{
		{1, 0, lehmer.ErrCodeOutOfRange},
		{1, 1, lehmer.ErrCodeOutOfRange},
		{6, 3, lehmer.ErrCodeOutOfRange},
		{7, 3, lehmer.ErrCodeOutOfRange},
		{24, 3, lehmer.ErrCodeOutOfRange},
		{24, 4, lehmer.ErrCodeOutOfRange},
		{25, 3, lehmer.ErrCodeOutOfRange},
		{25, 4, lehmer.ErrCodeOutOfRange},
		{5040, 5, lehmer.ErrCodeOutOfRange},
		{-1, 0, lehmer.ErrNegativeCode},
		{-1, 3, lehmer.ErrNegativeCode},
	} {
		_, err := lehmer.FromCode(big.NewInt(tc.code), tc.n)
		assert.ErrorIsf(t, err, tc.want, "FromCode(%d, %d)", tc.code, tc.n)
	}
}

// TestCode_RanksWholeGroup checks that Code enumerates S4 injectively:
// decoding every rank 0..23 yields 24 distinct permutations and encoding
// them gives the rank back.
func TestCode_RanksWholeGroup(t *testing.T) {
	seen := make(map[string]bool, 24)
	for r := int64(0); r < 24; r++ {
		p, err := lehmer.FromCode(big.NewInt(r), 4)
		require.NoErrorf(t, err, "rank %d", r)
		require.Falsef(t, seen[p.String()], "rank %d repeats %v", r, p)
		seen[p.String()] = true

		back, err := lehmer.Code(p, 4)
		require.NoErrorf(t, err, "rank %d", r)
		assert.Equalf(t, r, back.Int64(), "rank of %v", p)
	}
}

// TestCode_GrowsWithBound checks the bound dependence on the fixed
// permutation (1 2): all (n-1)! words starting with 1 rank below it, so
// its code in S_n is (n-1)!.
func TestCode_GrowsWithBound(t *testing.T) {
	p := mustNew(2, 1)
	for _, tc := range []struct {
		n    int
		code int64
	}{
		{2, 1},
		{3, 2},
		{4, 6},
		{5, 24},
		{6, 120},
	} {
		got, err := lehmer.Code(p, tc.n)
		require.NoErrorf(t, err, "Code(%v, %d)", p, tc.n)
		assert.Equalf(t, tc.code, got.Int64(), "Code(%v, %d)", p, tc.n)
	}
}
