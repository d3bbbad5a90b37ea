package canon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartition_UnitAndDiscrete(t *testing.T) {
	p := newUnitPartition(4)
	assert.Equal(t, 1, p.cells())
	assert.False(t, p.isDiscrete())
	assert.Equal(t, 0, p.targetCell())
	assert.Equal(t, []int{0, 1, 2, 3}, p.cellCoords(0))

	single := newUnitPartition(1)
	assert.True(t, single.isDiscrete())
	assert.Equal(t, -1, single.targetCell())
}

func TestPartition_Individualize(t *testing.T) {
	p := newUnitPartition(4)
	p.individualize(2)

	require.Equal(t, 2, p.cells())
	lo, hi := p.bounds(0)
	assert.Equal(t, []int{2}, p.points[lo:hi])
	assert.Equal(t, []int{0, 1, 3}, p.cellCoords(1))
	assert.Equal(t, 0, p.cellOf[2])

	// Individualizing a singleton is a no-op.
	p.individualize(2)
	assert.Equal(t, 2, p.cells())
}

func TestPartition_SplitBySignature(t *testing.T) {
	p := newUnitPartition(5)

	// Three signature classes: {1,4} < {0,2} < {3}.
	sig := []uint64{20, 10, 20, 30, 10}
	require.True(t, p.splitBySignature(sig))
	require.Equal(t, 3, p.cells())
	assert.Equal(t, []int{1, 4}, p.cellCoords(0))
	assert.Equal(t, []int{0, 2}, p.cellCoords(1))
	assert.Equal(t, []int{3}, p.cellCoords(2))

	// A constant signature changes nothing.
	assert.False(t, p.splitBySignature([]uint64{7, 7, 7, 7, 7}))

	// A clone splits independently of its origin.
	q := p.clone()
	require.True(t, q.splitBySignature([]uint64{1, 2, 1, 1, 3}))
	assert.Equal(t, 3, p.cells())
	assert.Equal(t, 5, q.cells())
	assert.True(t, q.isDiscrete())
}

func TestPartition_TargetCellPrefersSmallest(t *testing.T) {
	p := newUnitPartition(6)
	require.True(t, p.splitBySignature([]uint64{1, 1, 1, 2, 2, 3}))

	// Cells: {0,1,2}, {3,4}, {5}; smallest branchable is {3,4}.
	assert.Equal(t, 1, p.targetCell())
}
