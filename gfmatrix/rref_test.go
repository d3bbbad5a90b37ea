// Package gfmatrix_test — elimination and row-space predicates.
// Focus:
//  1. RREF shape invariants (pivot 1, zeros above/below, determinism).
//  2. Rank on full-rank, deficient and zero matrices.
//  3. RowSpaceEqual under row operations and against genuinely different
//     spans; sentinel behavior on mismatched operands.
package gfmatrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/codecanon/gfmatrix"
)

func TestRowReduce_Binary(t *testing.T) {
	f := mustField(t, 2)
	m := mustMatrix(t, f, [][]int{
		{1, 1, 0, 1},
		{1, 0, 1, 0},
		{0, 1, 1, 1},
	})

	r, err := m.RowReduce()
	require.NoError(t, err)

	// Row 2 equals row 0 + row 1, so the rank is 2 and the RREF carries a
	// trailing zero row.
	want := [][]int{
		{1, 0, 1, 0},
		{0, 1, 1, 1},
		{0, 0, 0, 0},
	}
	assert.Equal(t, want, dump(t, r))

	// Receiver untouched.
	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestRowReduce_TernaryPivotNormalization(t *testing.T) {
	f := mustField(t, 3)
	m := mustMatrix(t, f, [][]int{
		{2, 1, 0},
		{0, 2, 2},
	})

	r, err := m.RowReduce()
	require.NoError(t, err)

	// 2⁻¹ = 2 in GF(3): row0·2 = [1,2,0]; then clear col1 above/below.
	want := [][]int{
		{1, 0, 1},
		{0, 1, 1},
	}
	assert.Equal(t, want, dump(t, r))
}

func TestRank(t *testing.T) {
	f := mustField(t, 2)

	full := mustMatrix(t, f, [][]int{{1, 0, 0}, {0, 1, 0}})
	k, err := full.Rank()
	require.NoError(t, err)
	assert.Equal(t, 2, k)

	deficient := mustMatrix(t, f, [][]int{{1, 1, 0}, {1, 1, 0}})
	k, err = deficient.Rank()
	require.NoError(t, err)
	assert.Equal(t, 1, k)

	zero := mustMatrix(t, f, [][]int{{0, 0}, {0, 0}})
	k, err = zero.Rank()
	require.NoError(t, err)
	assert.Equal(t, 0, k)
}

func TestRowSpaceEqual_UnderRowOps(t *testing.T) {
	f := mustField(t, 3)
	a := mustMatrix(t, f, [][]int{
		{1, 0, 2, 1},
		{0, 1, 1, 2},
	})
	// b = row ops on a: r0 ← 2·r0 + r1, r1 ← r1 swapped in first.
	b := mustMatrix(t, f, [][]int{
		{0, 1, 1, 2},
		{2, 1, 2, 1},
	})

	eq, err := a.RowSpaceEqual(b)
	require.NoError(t, err)
	assert.True(t, eq, "row operations preserve the span")

	c := mustMatrix(t, f, [][]int{
		{1, 0, 2, 1},
		{0, 1, 1, 0},
	})
	eq, err = a.RowSpaceEqual(c)
	require.NoError(t, err)
	assert.False(t, eq)
}

func TestRowSpaceEqual_DifferentBasisSizes(t *testing.T) {
	f := mustField(t, 2)
	a := mustMatrix(t, f, [][]int{{1, 0, 1}})
	// Redundant second row, same span.
	b := mustMatrix(t, f, [][]int{{1, 0, 1}, {1, 0, 1}})

	eq, err := a.RowSpaceEqual(b)
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestRowSpaceEqual_Sentinels(t *testing.T) {
	f2 := mustField(t, 2)
	f3 := mustField(t, 3)

	a := mustMatrix(t, f2, [][]int{{1, 0}})
	b := mustMatrix(t, f3, [][]int{{1, 0}})
	_, err := a.RowSpaceEqual(b)
	assert.ErrorIs(t, err, gfmatrix.ErrFieldMismatch)

	c := mustMatrix(t, f2, [][]int{{1, 0, 1}})
	_, err = a.RowSpaceEqual(c)
	assert.ErrorIs(t, err, gfmatrix.ErrBadShape)

	_, err = a.RowSpaceEqual(nil)
	assert.ErrorIs(t, err, gfmatrix.ErrNilMatrix)
}

func TestRowReduce_Deterministic(t *testing.T) {
	f := mustField(t, 4)
	m := mustMatrix(t, f, [][]int{
		{2, 3, 1, 0},
		{1, 1, 0, 2},
		{3, 2, 1, 2},
	})

	r1, err := m.RowReduce()
	require.NoError(t, err)
	r2, err := m.RowReduce()
	require.NoError(t, err)
	assert.True(t, r1.Equal(r2), "repeated elimination must be bit-identical")
}
