package canon

import "sort"

// partition is an ordered partition of the coordinates 0..n-1 into a
// sequence of non-empty cells. Coordinates live in points; each cell is
// a contiguous run, delimited by starts. Cell order is significant
// (it is part of the search state); order inside a cell is not.
type partition struct {
	points []int // arrangement of coordinates
	starts []int // starts[c] = offset of cell c in points, strictly increasing
	cellOf []int // cellOf[coordinate] = cell index, kept in sync
}

// newUnitPartition places all n coordinates in a single cell.
func newUnitPartition(n int) *partition {
	p := &partition{
		points: make([]int, n),
		starts: []int{0},
		cellOf: make([]int, n),
	}
	for i := 0; i < n; i++ {
		p.points[i] = i
	}

	return p
}

// clone returns an independent deep copy.
func (p *partition) clone() *partition {
	return &partition{
		points: append([]int(nil), p.points...),
		starts: append([]int(nil), p.starts...),
		cellOf: append([]int(nil), p.cellOf...),
	}
}

// cells returns the number of cells.
func (p *partition) cells() int { return len(p.starts) }

// bounds returns the half-open range [lo, hi) of cell c in points.
func (p *partition) bounds(c int) (lo, hi int) {
	lo = p.starts[c]
	hi = len(p.points)
	if c+1 < len(p.starts) {
		hi = p.starts[c+1]
	}

	return lo, hi
}

// isDiscrete reports whether every cell is a singleton. A discrete
// partition is a total order on the coordinates.
func (p *partition) isDiscrete() bool { return len(p.starts) == len(p.points) }

// targetCell returns the index of the leftmost cell of minimum size
// among cells larger than one, or -1 when the partition is discrete.
func (p *partition) targetCell() int {
	var (
		best     = -1             // index of the branching cell found so far
		bestSize = len(p.points) + 1 // its size
	)
	for c := 0; c < len(p.starts); c++ {
		lo, hi := p.bounds(c)
		if size := hi - lo; size > 1 && size < bestSize {
			best, bestSize = c, size
		}
	}

	return best
}

// cellCoords returns the coordinates of cell c in ascending order.
func (p *partition) cellCoords(c int) []int {
	lo, hi := p.bounds(c)
	out := append([]int(nil), p.points[lo:hi]...)
	sort.Ints(out)

	return out
}

// individualize splits the cell containing coord into the singleton
// {coord} followed by the remainder of the cell. The singleton takes
// the original cell's position; all later cells shift by one.
func (p *partition) individualize(coord int) {
	var (
		c      = p.cellOf[coord] // cell holding coord
		lo, hi = p.bounds(c)
	)
	if hi-lo < 2 {
		return // already a singleton
	}
	// Move coord to the front of its cell.
	for i := lo; i < hi; i++ {
		if p.points[i] == coord {
			p.points[lo], p.points[i] = p.points[i], p.points[lo]
			break
		}
	}
	// Insert a new cell boundary right after the singleton.
	p.starts = append(p.starts, 0)
	copy(p.starts[c+2:], p.starts[c+1:])
	p.starts[c+1] = lo + 1
	p.reindex()
}

// splitBySignature reorders every cell by ascending signature (ties by
// coordinate, for determinism) and inserts a boundary wherever adjacent
// signatures differ. Reports whether any cell was split.
func (p *partition) splitBySignature(sig []uint64) bool {
	var (
		newStarts = make([]int, 0, len(p.starts)) // rebuilt cell offsets
		changed   = false                         // any boundary added
	)
	for c := 0; c < len(p.starts); c++ {
		lo, hi := p.bounds(c)
		newStarts = append(newStarts, lo)
		if hi-lo < 2 {
			continue
		}
		cell := p.points[lo:hi]
		sort.Slice(cell, func(i, j int) bool {
			if sig[cell[i]] != sig[cell[j]] {
				return sig[cell[i]] < sig[cell[j]]
			}

			return cell[i] < cell[j]
		})
		for i := lo + 1; i < hi; i++ {
			if sig[p.points[i]] != sig[p.points[i-1]] {
				newStarts = append(newStarts, i)
				changed = true
			}
		}
	}
	if changed {
		p.starts = newStarts
		p.reindex()
	}

	return changed
}

// reindex rebuilds cellOf from points and starts.
func (p *partition) reindex() {
	for c := 0; c < len(p.starts); c++ {
		lo, hi := p.bounds(c)
		for i := lo; i < hi; i++ {
			p.cellOf[p.points[i]] = c
		}
	}
}
