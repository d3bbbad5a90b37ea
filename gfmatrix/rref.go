// Package gfmatrix — reduced row echelon form and row-space predicates.
//
// RREF is the fixed normal form of the canonicalization pipeline: two
// generator matrices span the same code iff their RREFs agree after
// trimming zero rows. The elimination is classic Gauss–Jordan with
// deterministic pivot choice (topmost non-zero entry, columns scanned
// left to right), so repeated runs are bit-identical.
package gfmatrix

// RowReduce returns the reduced row echelon form of m (pivots 1, zeros
// above and below each pivot). The receiver is not mutated.
//
// Complexity: O(rows·cols·min(rows, cols)) field operations.
func (m *Matrix) RowReduce() (*Matrix, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}

	var (
		out   = m.Clone()
		f     = m.field
		pivot = 0 // next pivot row to fill

		col, row, r, j int
		inv, factor    int
	)
	for col = 0; col < out.cols && pivot < out.rows; col++ {
		// Stage 1: locate the topmost non-zero entry at or below pivot.
		row = -1
		for r = pivot; r < out.rows; r++ {
			if out.at(r, col) != 0 {
				row = r
				break
			}
		}
		if row < 0 {
			continue
		}

		// Stage 2: move it into position and scale the pivot to 1.
		if row != pivot {
			out.swapRows(row, pivot)
		}
		inv = f.Inv(out.at(pivot, col))
		if inv != 1 {
			for j = col; j < out.cols; j++ {
				out.set(pivot, j, f.Mul(out.at(pivot, j), inv))
			}
		}

		// Stage 3: eliminate the column everywhere else (Gauss–Jordan).
		for r = 0; r < out.rows; r++ {
			if r == pivot {
				continue
			}
			factor = out.at(r, col)
			if factor == 0 {
				continue
			}
			for j = col; j < out.cols; j++ {
				out.set(r, j, f.Sub(out.at(r, j), f.Mul(factor, out.at(pivot, j))))
			}
		}
		pivot++
	}

	return out, nil
}

// Rank returns the dimension of the row space.
func (m *Matrix) Rank() (int, error) {
	r, err := m.RowReduce()
	if err != nil {
		return 0, err
	}

	return r.countNonZeroRows(), nil
}

// RowSpaceEqual reports whether m and other span the same row space.
// Both operands must share the field and the column count (row counts may
// differ; the spans are compared, not the bases).
//
// Errors: ErrNilMatrix, ErrFieldMismatch, ErrBadShape.
//
// Complexity: two RREFs plus an O(rows·cols) comparison.
func (m *Matrix) RowSpaceEqual(other *Matrix) (bool, error) {
	if m == nil || other == nil {
		return false, ErrNilMatrix
	}
	if m.field.Order() != other.field.Order() {
		return false, ErrFieldMismatch
	}
	if m.cols != other.cols {
		return false, ErrBadShape
	}

	ra, err := m.RowReduce()
	if err != nil {
		return false, err
	}
	rb, err := other.RowReduce()
	if err != nil {
		return false, err
	}

	// Spans agree iff the non-zero RREF rows agree pairwise.
	var (
		ka = ra.countNonZeroRows()
		kb = rb.countNonZeroRows()

		i, j int
	)
	if ka != kb {
		return false, nil
	}
	for i = 0; i < ka; i++ {
		for j = 0; j < m.cols; j++ {
			if ra.at(i, j) != rb.at(i, j) {
				return false, nil
			}
		}
	}

	return true, nil
}

// countNonZeroRows counts leading rows with any non-zero entry. In an
// RREF matrix zero rows are swept to the bottom, so the count equals the
// rank.
func (m *Matrix) countNonZeroRows() int {
	var (
		count  int
		i, j   int
		isZero bool
	)
	for i = 0; i < m.rows; i++ {
		isZero = true
		for j = 0; j < m.cols; j++ {
			if m.at(i, j) != 0 {
				isZero = false
				break
			}
		}
		if !isZero {
			count++
		}
	}

	return count
}

// swapRows exchanges two rows in place (internal use only).
func (m *Matrix) swapRows(a, b int) {
	var (
		ra = m.data[a*m.cols : (a+1)*m.cols]
		rb = m.data[b*m.cols : (b+1)*m.cols]
	)
	for j := 0; j < m.cols; j++ {
		ra[j], rb[j] = rb[j], ra[j]
	}
}
