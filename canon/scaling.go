package canon

import (
	"github.com/katalvlaran/codecanon/gfmatrix"
)

// leaf is one terminal search candidate: a discrete column order
// applied to the code and reduced to its fixed normal form.
type leaf struct {
	form    *gfmatrix.Matrix // scaled RREF, equal for equivalent leaves
	order   []int            // order[i] = original coordinate at position i
	scalars []int            // scalars[i] = column scalar applied at position i
}

// canonicalScaling maps the RREF r of a reordered generator matrix to
// the representative of its orbit under column scalings. For the
// permutation action the orbit is trivial and r is returned as is.
//
// Under the monomial action, scaling the columns of the input by
// d_0..d_{n-1} turns the RREF entry r[i][j] into r[i][j]*d_j/d_p where
// p is the pivot column of row i (re-reduction rescales each row by
// its pivot's scalar). canonicalScaling picks, in row-major order, the
// smallest value each entry can still take given earlier choices: an
// entry whose d_j/d_p ratio is already forced keeps its forced value,
// otherwise the ratio is fixed to make the entry one. Ratio tracking
// uses weighted union-find over the column scalars, so the result is
// the row-major lexicographic minimum of the whole orbit and equal for
// all scalings of the same input.
//
// Returns the normal form together with the per-position column
// scalars realizing it.
func canonicalScaling(r *gfmatrix.Matrix, action Action) (*gfmatrix.Matrix, []int, error) {
	var (
		f = r.Field()
		k = r.Rows()
		n = r.Cols()
	)
	if action != MonomialAction {
		return r, onesVector(n), nil
	}

	var (
		entries = r.Entries()
		pivcol  = make([]int, k)
		parent  = make([]int, n) // union-find over column scalars
		weight  = make([]int, n) // weight[x] = d_x / d_parent[x]
	)
	for i := 0; i < k; i++ {
		pivcol[i] = leadingIndex(entries[i])
	}
	for j := 0; j < n; j++ {
		parent[j] = j
		weight[j] = 1
	}

	// find resolves x to its root with path compression, returning the
	// accumulated ratio d_x / d_root.
	var find func(x int) (int, int)
	find = func(x int) (int, int) {
		if parent[x] == x {
			return x, 1
		}
		root, w := find(parent[x])
		parent[x] = root
		weight[x] = f.Mul(weight[x], w)

		return root, weight[x]
	}

	for i := 0; i < k; i++ {
		p := pivcol[i]
		for j := 0; j < n; j++ {
			v := entries[i][j]
			if v == 0 {
				continue
			}
			var (
				rj, wj = find(j)
				rp, wp = find(p)
			)
			if rj == rp {
				// Ratio forced by earlier entries; the value is fixed.
				entries[i][j] = f.Mul(v, f.Div(wj, wp))
				continue
			}
			// Both scalars still free relative to each other: make the
			// entry one by fixing d_rj = v^-1 * wp / wj * d_rp.
			parent[rj] = rp
			weight[rj] = f.Div(wp, f.Mul(v, wj))
			entries[i][j] = 1
		}
	}

	// Anchor every remaining root at one and read off the scalars.
	scalars := make([]int, n)
	for j := 0; j < n; j++ {
		_, w := find(j)
		scalars[j] = w
	}
	form, err := gfmatrix.FromRows(f, entries)
	if err != nil {
		return nil, nil, err
	}

	return form, scalars, nil
}

// onesVector returns n copies of the field one.
func onesVector(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = 1
	}

	return out
}
