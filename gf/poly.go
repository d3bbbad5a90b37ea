// Package gf — primitive-polynomial machinery for extension fields.
//
// Extension-field elements are polynomials over GF(p) reduced modulo a
// primitive polynomial m(x) of degree e. This file locates m(x) by a
// deterministic ascending scan and provides the coefficient-level
// multiplication used while the exp/log tables are being built (after
// construction, Field.Mul never touches these routines).
package gf

// findPrimitivePolynomial scans monic degree-e candidates in ascending
// encoding order of their low coefficients and stops at the first one for
// which x has multiplicative order exactly q−1.
//
// Soundness: if ord(x) = q−1 then the q−1 powers of x are distinct units,
// so every non-zero residue is a unit, the quotient ring is a field, and
// the candidate is both irreducible and primitive. A reducible candidate
// can never pass (x would be a zero divisor or of smaller order).
//
// Complexity: O(q²·e) worst case; in practice the first hits come early.
func (f *Field) findPrimitivePolynomial() error {
	var (
		enc  int // encoding of the e low coefficients in base p
		low  = make([]int, f.e)
		i, t int
	)
	for enc = 1; enc < f.q; enc++ {
		// Decode candidate low coefficients.
		var r = enc
		for i = 0; i < f.e; i++ {
			low[i] = r % f.p
			r /= f.p
		}
		// A primitive polynomial has a non-zero constant term.
		if low[0] == 0 {
			continue
		}
		f.modulus = low

		// ord(x) == q−1 test: walk x, x², … until 1 reappears or the
		// walk exceeds q−1 steps (zero divisors never reach 1).
		var order = 0
		t = 1
		for i = 1; i <= f.q-1; i++ {
			t = f.rawMul(t, f.p) // t = x^i
			if t == 1 {
				order = i
				break
			}
		}
		if order == f.q-1 {
			// Keep a private copy so later candidates can't alias it.
			f.modulus = append([]int(nil), low...)

			return nil
		}
	}

	// Unreachable: every GF(p^e) admits a primitive polynomial.
	f.modulus = nil

	return ErrOrder
}

// rawMul multiplies two encoded elements without exp/log tables.
// Used during construction only; Field.Mul is the O(1) runtime path.
//
// Complexity: O(1) for prime fields, O(e²) otherwise.
func (f *Field) rawMul(a, b int) int {
	if f.e == 1 {
		return a * b % f.p
	}

	// Stage 1: decode operands into coefficient vectors.
	var (
		da = make([]int, f.e)
		db = make([]int, f.e)
		i  int
	)
	for i = 0; i < f.e; i++ {
		da[i] = a % f.p
		a /= f.p
		db[i] = b % f.p
		b /= f.p
	}

	// Stage 2: schoolbook product (degree ≤ 2e−2).
	var (
		prod = make([]int, 2*f.e-1)
		j    int
	)
	for i = 0; i < f.e; i++ {
		if da[i] == 0 {
			continue
		}
		for j = 0; j < f.e; j++ {
			prod[i+j] = (prod[i+j] + da[i]*db[j]) % f.p
		}
	}

	// Stage 3: reduce modulo m(x) using x^e ≡ −(low part).
	var c, k int
	for i = 2*f.e - 2; i >= f.e; i-- {
		c = prod[i]
		if c == 0 {
			continue
		}
		prod[i] = 0
		for k = 0; k < f.e; k++ {
			if f.modulus[k] == 0 {
				continue
			}
			// prod[i−e+k] −= c·modulus[k]  (mod p)
			prod[i-f.e+k] = (prod[i-f.e+k] + f.p*f.p - c*f.modulus[k]%f.p) % f.p
		}
	}

	// Stage 4: re-encode.
	var (
		out   int
		shift = 1
	)
	for i = 0; i < f.e; i++ {
		out += prod[i] * shift
		shift *= f.p
	}

	return out
}
