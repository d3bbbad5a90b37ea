// Package gfmatrix — column actions (permutation and monomial maps).
//
// The canonicalization engine rearranges coordinates of a code, which on
// the matrix side is a column permutation optionally combined with
// per-position non-zero scalars. Both actions are pure: a fresh matrix is
// returned, the receiver stays intact.
package gfmatrix

// PermuteColumns returns the matrix whose column at position i is the
// receiver's column p[i]. p must be a bijection of [0, cols).
//
// Errors: ErrNilMatrix, ErrBadPermutation.
//
// Complexity: O(rows·cols).
func (m *Matrix) PermuteColumns(p []int) (*Matrix, error) {
	return m.ApplyMonomial(p, nil)
}

// ApplyMonomial returns the matrix whose column at position i is the
// receiver's column p[i] multiplied by scalars[i]. A nil scalars slice
// means all-ones (plain permutation); otherwise len(scalars) must equal
// cols and every entry must be a non-zero field element.
//
// Errors: ErrNilMatrix, ErrBadPermutation, ErrBadScalars.
//
// Complexity: O(rows·cols).
func (m *Matrix) ApplyMonomial(p []int, scalars []int) (*Matrix, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if err := checkPermutation(p, m.cols); err != nil {
		return nil, err
	}
	if scalars != nil {
		if len(scalars) != m.cols {
			return nil, ErrBadScalars
		}
		for _, s := range scalars {
			if s <= 0 || s >= m.field.Order() {
				return nil, ErrBadScalars
			}
		}
	}

	var (
		out  = &Matrix{field: m.field, rows: m.rows, cols: m.cols, data: make([]int, len(m.data))}
		i, j int
		v    int
	)
	for i = 0; i < m.rows; i++ {
		for j = 0; j < m.cols; j++ {
			v = m.at(i, p[j])
			if scalars != nil && v != 0 {
				v = m.field.Mul(v, scalars[j])
			}
			out.set(i, j, v)
		}
	}

	return out, nil
}

// checkPermutation validates that p is a bijection of [0, n).
func checkPermutation(p []int, n int) error {
	if len(p) != n {
		return ErrBadPermutation
	}
	seen := make([]bool, n)
	for _, v := range p {
		if v < 0 || v >= n || seen[v] {
			return ErrBadPermutation
		}
		seen[v] = true
	}

	return nil
}
