// Package gfmatrix_test validates construction, indexing and ordering.
// Focus:
//  1. Strict sentinels on malformed inputs (nil field, ragged rows,
//     out-of-field entries, bad indices).
//  2. Value semantics: Clone independence, Equal, total Compare order.
package gfmatrix_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/codecanon/gf"
	"github.com/katalvlaran/codecanon/gfmatrix"
)

// mustField builds GF(q) or aborts the test.
func mustField(t *testing.T, q int) *gf.Field {
	t.Helper()
	f, err := gf.New(q)
	require.NoError(t, err)

	return f
}

// mustMatrix builds a matrix from rows or aborts the test.
func mustMatrix(t *testing.T, f *gf.Field, rows [][]int) *gfmatrix.Matrix {
	t.Helper()
	m, err := gfmatrix.FromRows(f, rows)
	require.NoError(t, err)

	return m
}

// dump flattens a matrix for diffing with go-cmp.
func dump(t *testing.T, m *gfmatrix.Matrix) [][]int {
	t.Helper()
	out := make([][]int, m.Rows())
	for i := 0; i < m.Rows(); i++ {
		out[i] = make([]int, m.Cols())
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out[i][j] = v
		}
	}

	return out
}

func TestFromRows_Sentinels(t *testing.T) {
	f := mustField(t, 2)

	_, err := gfmatrix.FromRows(nil, [][]int{{1}})
	assert.ErrorIs(t, err, gfmatrix.ErrNilField)

	_, err = gfmatrix.FromRows(f, nil)
	assert.ErrorIs(t, err, gfmatrix.ErrBadShape)

	_, err = gfmatrix.FromRows(f, [][]int{{1, 0}, {1}})
	assert.ErrorIs(t, err, gfmatrix.ErrBadShape, "ragged rows must be rejected")

	_, err = gfmatrix.FromRows(f, [][]int{{0, 2}})
	assert.ErrorIs(t, err, gf.ErrElement, "out-of-field entries propagate gf.ErrElement")
}

func TestNew_Sentinels(t *testing.T) {
	f := mustField(t, 3)

	_, err := gfmatrix.New(nil, 2, 2)
	assert.ErrorIs(t, err, gfmatrix.ErrNilField)

	_, err = gfmatrix.New(f, 0, 2)
	assert.ErrorIs(t, err, gfmatrix.ErrBadShape)

	m, err := gfmatrix.New(f, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, v, "New zero-fills")
}

func TestAtSet_Bounds(t *testing.T) {
	f := mustField(t, 5)
	m := mustMatrix(t, f, [][]int{{1, 2}, {3, 4}})

	_, err := m.At(2, 0)
	assert.ErrorIs(t, err, gfmatrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	assert.ErrorIs(t, err, gfmatrix.ErrOutOfRange)

	assert.ErrorIs(t, m.Set(0, 2, 1), gfmatrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 0, 5), gf.ErrElement)

	require.NoError(t, m.Set(0, 0, 4))
	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, v)
}

func TestClone_Independence(t *testing.T) {
	f := mustField(t, 2)
	m := mustMatrix(t, f, [][]int{{1, 0, 1}})
	c := m.Clone()

	require.NoError(t, c.Set(0, 0, 0))
	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, v, "mutating a clone must not touch the original")
	assert.False(t, m.Equal(c))
}

func TestCompare_TotalOrder(t *testing.T) {
	f := mustField(t, 3)
	a := mustMatrix(t, f, [][]int{{0, 1}, {2, 0}})
	b := mustMatrix(t, f, [][]int{{0, 1}, {2, 1}})

	assert.Equal(t, 0, gfmatrix.Compare(a, a.Clone()))
	assert.Equal(t, -1, gfmatrix.Compare(a, b))
	assert.Equal(t, 1, gfmatrix.Compare(b, a))

	// Shape dominates data.
	wide := mustMatrix(t, f, [][]int{{0, 0, 0}})
	tall := mustMatrix(t, f, [][]int{{2, 2}, {2, 2}})
	assert.Equal(t, -1, gfmatrix.Compare(wide, tall), "fewer rows sorts first")
}

func TestDump_RoundTrip(t *testing.T) {
	f := mustField(t, 4)
	rows := [][]int{{0, 1, 2}, {3, 2, 1}}
	m := mustMatrix(t, f, rows)

	if diff := cmp.Diff(rows, dump(t, m)); diff != "" {
		t.Fatalf("matrix content mismatch (-want +got):\n%s", diff)
	}
}

func TestCompareStrict_Sentinels(t *testing.T) {
	f2 := mustField(t, 2)
	f3 := mustField(t, 3)
	a := mustMatrix(t, f2, [][]int{{1, 0}})
	b := mustMatrix(t, f2, [][]int{{0, 1}})

	c, err := gfmatrix.CompareStrict(a, b)
	require.NoError(t, err)
	assert.Equal(t, 1, c)

	_, err = gfmatrix.CompareStrict(a, nil)
	assert.ErrorIs(t, err, gfmatrix.ErrNilMatrix)

	_, err = gfmatrix.CompareStrict(a, mustMatrix(t, f3, [][]int{{1, 0}}))
	assert.ErrorIs(t, err, gfmatrix.ErrFieldMismatch)

	_, err = gfmatrix.CompareStrict(a, mustMatrix(t, f2, [][]int{{1, 0, 0}}))
	assert.ErrorIs(t, err, gfmatrix.ErrBadShape)
}
