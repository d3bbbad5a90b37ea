// Package perm — the Perm value type.
//
// A Perm is an image table: p[i] is the image of point i. Composition
// follows function application order, (a∘b)(i) = a(b(i)), so b acts first.
package perm

// Perm is a permutation of {0,…,n−1} as an image table.
type Perm []int

// Identity returns the identity permutation of degree n.
func Identity(n int) Perm {
	p := make(Perm, n)
	for i := range p {
		p[i] = i
	}

	return p
}

// Validate reports whether p is a bijection of [0, len(p)).
//
// Errors: ErrBadDegree on empty tables, ErrBadPermutation otherwise.
func (p Perm) Validate() error {
	if len(p) == 0 {
		return ErrBadDegree
	}
	seen := make([]bool, len(p))
	for _, v := range p {
		if v < 0 || v >= len(p) || seen[v] {
			return ErrBadPermutation
		}
		seen[v] = true
	}

	return nil
}

// Degree returns the size of the domain.
func (p Perm) Degree() int { return len(p) }

// IsIdentity reports whether p fixes every point.
func (p Perm) IsIdentity() bool {
	for i, v := range p {
		if v != i {
			return false
		}
	}

	return true
}

// Compose returns a∘b, the permutation applying b first: (a∘b)(i) = a(b(i)).
//
// Errors: ErrDegreeMismatch.
func Compose(a, b Perm) (Perm, error) {
	if len(a) != len(b) {
		return nil, ErrDegreeMismatch
	}
	out := make(Perm, len(a))
	for i := range out {
		out[i] = a[b[i]]
	}

	return out, nil
}

// Inverse returns p⁻¹.
func (p Perm) Inverse() Perm {
	out := make(Perm, len(p))
	for i, v := range p {
		out[v] = i
	}

	return out
}

// Clone returns an independent copy.
func (p Perm) Clone() Perm {
	out := make(Perm, len(p))
	copy(out, p)

	return out
}

// Equal reports element-wise equality.
func (p Perm) Equal(other Perm) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}

	return true
}

// mul is the unchecked hot-path composition used inside the chain, where
// degrees are equal by construction.
func mul(a, b Perm) Perm {
	out := make(Perm, len(a))
	for i := range out {
		out[i] = a[b[i]]
	}

	return out
}
