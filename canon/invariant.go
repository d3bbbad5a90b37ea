package canon

import (
	"github.com/katalvlaran/codecanon/gf"
	"github.com/katalvlaran/codecanon/gfmatrix"
)

// FNV-1a constants; signatures are hashes, collisions merely merge
// coordinate classes (refinement stays correct, just coarser).
const (
	fnvOffset uint64 = 14695981039346656037
	fnvPrime  uint64 = 1099511628211
)

// mix folds the eight bytes of x into the running FNV-1a state h.
func mix(h, x uint64) uint64 {
	for i := 0; i < 8; i++ {
		h ^= x & 0xff
		h *= fnvPrime
		x >>= 8
	}

	return h
}

// invariant computes per-coordinate signatures that depend only on the
// code (as a row space) and the current partition. Coordinates related
// by a code automorphism compatible with the partition receive equal
// signatures, so splitting cells by signature never separates
// coordinates that must stay together.
//
// Two components feed every signature:
//
//   - Rank deltas: for each cell D and coordinate c, whether column c
//     lies in the column span of the columns of D. Basis-independent,
//     hence a property of the code, not of the chosen generator rows.
//   - Codeword spectrum (optional, bounded by the codeword cap): every
//     codeword contributes a hash of its per-cell profile to the
//     signatures of the coordinates where it is non-zero. Profiles use
//     per-cell value histograms under the permutation action and
//     per-cell support counts under the monomial action, making them
//     scalar-blind exactly when scalars are part of the group.
type invariant struct {
	field  *gf.Field
	action Action
	k, n   int
	cols   [][]int // ref columns, cols[c] is the length-k column vector
	words  [][]int // enumerated codewords; nil when q^k exceeds the cap
}

// newInvariant snapshots the reference matrix and, when q^k stays
// within wordCap, enumerates the full codeword set once.
func newInvariant(ref *gfmatrix.Matrix, action Action, wordCap int) *invariant {
	var (
		f       = ref.Field()
		k       = ref.Rows()
		n       = ref.Cols()
		entries = ref.Entries()
	)
	in := &invariant{field: f, action: action, k: k, n: n}
	in.cols = make([][]int, n)
	for c := 0; c < n; c++ {
		col := make([]int, k)
		for i := 0; i < k; i++ {
			col[i] = entries[i][c]
		}
		in.cols[c] = col
	}
	if total, ok := powWithin(f.Order(), k, wordCap); ok {
		in.words = enumerateWords(f, entries, total)
	}

	return in
}

// powWithin reports q^k and whether it stays within bound.
func powWithin(q, k, bound int) (int, bool) {
	total := 1
	for i := 0; i < k; i++ {
		if bound <= 0 || total > bound/q {
			return 0, false
		}
		total *= q
	}

	return total, total <= bound
}

// enumerateWords lists all q^k words of the row space in odometer order
// of the coefficient vector. The zero word is skipped (it touches no
// coordinate and would contribute nothing).
func enumerateWords(f *gf.Field, rows [][]int, total int) [][]int {
	var (
		k     = len(rows)
		n     = len(rows[0])
		coef  = make([]int, k)      // current coefficient vector
		words = make([][]int, 0, total-1)
	)
	for idx := 1; idx < total; idx++ {
		// Advance the odometer (least-significant digit first).
		for d := 0; d < k; d++ {
			coef[d]++
			if coef[d] < f.Order() {
				break
			}
			coef[d] = 0
		}
		w := make([]int, n)
		for d := 0; d < k; d++ {
			if coef[d] == 0 {
				continue
			}
			for c := 0; c < n; c++ {
				if rows[d][c] != 0 {
					w[c] = f.Add(w[c], f.Mul(coef[d], rows[d][c]))
				}
			}
		}
		words = append(words, w)
	}

	return words
}

// signatures returns one signature per coordinate for the given
// partition. Deterministic and history-free: equal (code, partition)
// pairs always produce equal signature vectors.
func (in *invariant) signatures(p *partition) []uint64 {
	sig := make([]uint64, in.n)
	for c := range sig {
		sig[c] = fnvOffset
	}
	in.rankSignatures(p, sig)
	if in.words != nil {
		in.spectrumSignatures(p, sig)
	}

	return sig
}

// rankSignatures folds, per coordinate, the membership of its column in
// the span of each cell's columns (in cell order).
func (in *invariant) rankSignatures(p *partition, sig []uint64) {
	scratch := make([]int, in.k)
	for ci := 0; ci < p.cells(); ci++ {
		var (
			lo, hi = p.bounds(ci)
			basis  = in.columnBasis(p.points[lo:hi])
		)
		for c := 0; c < in.n; c++ {
			copy(scratch, in.cols[c])
			delta := uint64(1)
			if in.reduceInPlace(basis, scratch) {
				delta = 2 // residue left: c extends the span
			}
			sig[c] = mix(sig[c], delta)
		}
	}
}

// spectrumSignatures adds, per coordinate, the multiset hash of the
// profiles of all codewords supported there. Contributions are summed
// (commutative), so within-cell coordinate order cannot leak in.
func (in *invariant) spectrumSignatures(p *partition, sig []uint64) {
	var (
		q     = in.field.Order()
		count = make([]int, q) // per-cell value histogram, reused
	)
	for _, w := range in.words {
		// Profile of w against the partition, hashed cell by cell.
		prof := fnvOffset
		for ci := 0; ci < p.cells(); ci++ {
			lo, hi := p.bounds(ci)
			switch in.action {
			case MonomialAction:
				// Scalars are free per coordinate, only the support
				// pattern of w is invariant.
				nz := 0
				for i := lo; i < hi; i++ {
					if w[p.points[i]] != 0 {
						nz++
					}
				}
				prof = mix(prof, uint64(nz))
			default:
				for i := lo; i < hi; i++ {
					count[w[p.points[i]]]++
				}
				for v := 0; v < q; v++ {
					prof = mix(prof, uint64(count[v]))
					count[v] = 0
				}
			}
		}
		for c := 0; c < in.n; c++ {
			if w[c] == 0 {
				continue
			}
			class := uint64(1)
			if in.action == PermAction {
				class = uint64(w[c])
			}
			sig[c] += mix(prof, class)
		}
	}
}

// columnBasis Gauss-eliminates the given columns into a normalized
// echelon basis of their span (leading entries one, increasing leading
// index).
func (in *invariant) columnBasis(coords []int) [][]int {
	basis := make([][]int, 0, in.k)
	vec := make([]int, in.k)
	for _, c := range coords {
		copy(vec, in.cols[c])
		if in.reduceInPlace(basis, vec) {
			basis = insertBasisVector(in.field, basis, vec)
			vec = make([]int, in.k)
		}
	}

	return basis
}

// reduceInPlace eliminates vec against the echelon basis and reports
// whether a non-zero residue remains (vec is mutated).
func (in *invariant) reduceInPlace(basis [][]int, vec []int) bool {
	f := in.field
	for _, b := range basis {
		l := leadingIndex(b)
		if vec[l] == 0 {
			continue
		}
		coef := vec[l] // b[l] == 1 after normalization
		for i := l; i < len(vec); i++ {
			if b[i] != 0 {
				vec[i] = f.Sub(vec[i], f.Mul(coef, b[i]))
			}
		}
	}
	for _, v := range vec {
		if v != 0 {
			return true
		}
	}

	return false
}

// insertBasisVector normalizes vec (leading entry one) and inserts it
// keeping leading indices increasing.
func insertBasisVector(f *gf.Field, basis [][]int, vec []int) [][]int {
	l := leadingIndex(vec)
	if inv := f.Inv(vec[l]); inv != 1 {
		for i := l; i < len(vec); i++ {
			if vec[i] != 0 {
				vec[i] = f.Mul(vec[i], inv)
			}
		}
	}
	at := len(basis)
	for i, b := range basis {
		if leadingIndex(b) > l {
			at = i
			break
		}
	}
	basis = append(basis, nil)
	copy(basis[at+1:], basis[at:])
	basis[at] = vec

	return basis
}

// leadingIndex returns the index of the first non-zero entry.
func leadingIndex(vec []int) int {
	for i, v := range vec {
		if v != 0 {
			return i
		}
	}

	return -1
}
