// Package gfmatrix — Matrix type, constructors, accessors, ordering.
//
// Storage is row-major ([]int of element encodings) bound to a *gf.Field,
// mirroring the immutable-value discipline of dense numeric matrices:
// constructors copy their input, methods return fresh matrices.
package gfmatrix

import "github.com/katalvlaran/codecanon/gf"

// Matrix is a dense rows×cols matrix over a fixed finite field.
// The zero value is unusable; obtain instances via New or FromRows.
type Matrix struct {
	field *gf.Field
	rows  int
	cols  int
	data  []int // row-major element encodings
}

// New returns a zero-filled rows×cols matrix over f.
//
// Errors: ErrNilField, ErrBadShape (rows or cols < 1).
//
// Complexity: O(rows·cols).
func New(f *gf.Field, rows, cols int) (*Matrix, error) {
	if f == nil {
		return nil, ErrNilField
	}
	if rows < 1 || cols < 1 {
		return nil, ErrBadShape
	}

	return &Matrix{field: f, rows: rows, cols: cols, data: make([]int, rows*cols)}, nil
}

// FromRows builds a matrix from explicit row data, validating shape and
// every entry against the field.
//
// Errors: ErrNilField, ErrBadShape (empty/ragged), gf.ErrElement
// (propagated unchanged for out-of-field entries).
//
// Complexity: O(rows·cols).
func FromRows(f *gf.Field, rows [][]int) (*Matrix, error) {
	if f == nil {
		return nil, ErrNilField
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}

	var (
		r = len(rows)
		c = len(rows[0])
		m = &Matrix{field: f, rows: r, cols: c, data: make([]int, r*c)}

		i, j int
	)
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, ErrBadShape
		}
		for j = 0; j < c; j++ {
			if err := f.Check(rows[i][j]); err != nil {
				return nil, err
			}
			m.data[i*c+j] = rows[i][j]
		}
	}

	return m, nil
}

// Field returns the field the matrix is bound to.
func (m *Matrix) Field() *gf.Field { return m.field }

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.cols }

// At returns the element at (i, j); ErrOutOfRange on bad indices.
func (m *Matrix) At(i, j int) (int, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, ErrOutOfRange
	}

	return m.data[i*m.cols+j], nil
}

// Set writes the element at (i, j) after validating the value.
//
// Errors: ErrOutOfRange, gf.ErrElement.
func (m *Matrix) Set(i, j, v int) error {
	if m == nil {
		return ErrNilMatrix
	}
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return ErrOutOfRange
	}
	if err := m.field.Check(v); err != nil {
		return err
	}
	m.data[i*m.cols+j] = v

	return nil
}

// at is the unchecked hot-path accessor (internal callers validate shape
// once at the boundary).
func (m *Matrix) at(i, j int) int { return m.data[i*m.cols+j] }

// set is the unchecked hot-path mutator.
func (m *Matrix) set(i, j, v int) { m.data[i*m.cols+j] = v }

// Entries returns the matrix content as a fresh row-major [][]int
// snapshot. Mutating the snapshot does not affect m; callers that loop
// over entries heavily (refinement, scaling passes) take one snapshot
// instead of paying the bounds check of At per element.
func (m *Matrix) Entries() [][]int {
	out := make([][]int, m.rows)
	for i := 0; i < m.rows; i++ {
		out[i] = append([]int(nil), m.data[i*m.cols:(i+1)*m.cols]...)
	}

	return out
}

// Clone returns a deep copy sharing only the (immutable) field.
func (m *Matrix) Clone() *Matrix {
	if m == nil {
		return nil
	}
	out := &Matrix{field: m.field, rows: m.rows, cols: m.cols, data: make([]int, len(m.data))}
	copy(out.data, m.data)

	return out
}

// Equal reports element-wise equality (same field order, shape, data).
func (m *Matrix) Equal(other *Matrix) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.field.Order() != other.field.Order() || m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := range m.data {
		if m.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// Compare imposes a total order used by canonical-form selection:
// field order, then rows, then cols, then row-major element encodings.
// Returns −1, 0 or +1.
//
// Complexity: O(rows·cols) worst case.
func Compare(a, b *Matrix) int {
	// Nil sorts first (stable, though callers never pass nil in practice).
	if a == nil || b == nil {
		switch {
		case a == b:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}

	if c := cmpInt(a.field.Order(), b.field.Order()); c != 0 {
		return c
	}
	if c := cmpInt(a.rows, b.rows); c != 0 {
		return c
	}
	if c := cmpInt(a.cols, b.cols); c != 0 {
		return c
	}
	for i := range a.data {
		if c := cmpInt(a.data[i], b.data[i]); c != 0 {
			return c
		}
	}

	return 0
}

// CompareStrict is Compare restricted to matrices that are actually
// comparable as codes: both non-nil, same field, same shape. Mismatches
// are reported (ErrNilMatrix, ErrFieldMismatch, ErrBadShape) instead of
// being folded into the ordering.
func CompareStrict(a, b *Matrix) (int, error) {
	if a == nil || b == nil {
		return 0, ErrNilMatrix
	}
	if a.field.Order() != b.field.Order() {
		return 0, ErrFieldMismatch
	}
	if a.rows != b.rows || a.cols != b.cols {
		return 0, ErrBadShape
	}

	return Compare(a, b), nil
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
