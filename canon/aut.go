package canon

import (
	"fmt"

	"github.com/katalvlaran/codecanon/gf"
	"github.com/katalvlaran/codecanon/gfmatrix"
	"github.com/katalvlaran/codecanon/perm"
)

// Aut is one automorphism (or equivalence map) of a length-n code:
// coordinate c is sent to position Perm[c] and, under the monomial
// action, scaled by the non-zero field element Scalars[c].
//
// A nil Scalars slice means all scalars are one, i.e. a plain
// coordinate permutation. Composition order follows perm.Compose.
type Aut struct {
	Perm    perm.Perm
	Scalars []int
}

// Identity returns the identity automorphism on n coordinates.
func Identity(n int) Aut {
	return Aut{Perm: perm.Identity(n)}
}

// IsIdentity reports whether a moves no coordinate and scales none.
func (a Aut) IsIdentity() bool {
	if !a.Perm.IsIdentity() {
		return false
	}
	for _, s := range a.Scalars {
		if s != 1 {
			return false
		}
	}

	return true
}

// Clone returns a deep copy of a.
func (a Aut) Clone() Aut {
	out := Aut{Perm: a.Perm.Clone()}
	if a.Scalars != nil {
		out.Scalars = append([]int(nil), a.Scalars...)
	}

	return out
}

// Validate checks that a is a well-formed map of n coordinates over f:
// Perm must be a valid degree-n permutation and every scalar a
// non-zero element of f. The wrapped sentinel is ErrInvalidGroupInput.
func (a Aut) Validate(f *gf.Field, n int) error {
	if err := a.Perm.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidGroupInput, err)
	}
	if a.Perm.Degree() != n {
		return fmt.Errorf("%w: permutation degree %d, want %d", ErrInvalidGroupInput, a.Perm.Degree(), n)
	}
	if a.Scalars == nil {
		return nil
	}
	if len(a.Scalars) != n {
		return fmt.Errorf("%w: %d scalars, want %d", ErrInvalidGroupInput, len(a.Scalars), n)
	}
	for c, s := range a.Scalars {
		if err := f.Check(s); err != nil || s == 0 {
			return fmt.Errorf("%w: scalar %d at coordinate %d", ErrInvalidGroupInput, s, c)
		}
	}

	return nil
}

// ApplyTo returns m transformed by a: column c of m lands at position
// a.Perm[c], multiplied by a.Scalars[c]. m itself is unchanged.
func (a Aut) ApplyTo(m *gfmatrix.Matrix) (*gfmatrix.Matrix, error) {
	if err := a.Perm.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGroupInput, err)
	}
	inv := a.Perm.Inverse()
	var scalars []int
	if a.Scalars != nil {
		// ApplyMonomial scales by destination position, Aut stores
		// scalars by source coordinate; reindex through the inverse.
		scalars = make([]int, len(inv))
		for i, c := range inv {
			scalars[i] = a.Scalars[c]
		}
	}

	return m.ApplyMonomial([]int(inv), scalars)
}

// Compose returns the automorphism "b first, then a": coordinates map
// through b.Perm then a.Perm, and scalars multiply along the way.
func Compose(f *gf.Field, a, b Aut) (Aut, error) {
	p, err := perm.Compose(a.Perm, b.Perm)
	if err != nil {
		return Aut{}, fmt.Errorf("%w: %v", ErrInvalidGroupInput, err)
	}
	out := Aut{Perm: p}
	if a.Scalars != nil || b.Scalars != nil {
		n := p.Degree()
		out.Scalars = make([]int, n)
		for c := 0; c < n; c++ {
			s := 1
			if b.Scalars != nil {
				s = b.Scalars[c]
			}
			if a.Scalars != nil {
				s = f.Mul(s, a.Scalars[b.Perm[c]])
			}
			out.Scalars[c] = s
		}
	}

	return out, nil
}
