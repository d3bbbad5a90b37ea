// Package gf — field construction and element arithmetic.
//
// This file owns the Field type, its constructor New, and the O(1)
// arithmetic surface built on exp/log tables. The primitive-polynomial
// machinery used during construction lives in poly.go.
//
// Design principles:
//   - Deterministic construction: identical tables for identical q.
//   - Hot-path discipline: no allocations and no error returns in
//     arithmetic methods; bounds violations panic (programmer error).
//   - Strict sentinels at the construction boundary (ErrOrder).
package gf

// Field represents GF(p^e) with a fixed primitive element g.
// The zero value is unusable; obtain instances via New.
type Field struct {
	q int // field order p^e
	p int // characteristic
	e int // extension degree

	// modulus holds the low e coefficients of the primitive polynomial
	// x^e + modulus[e-1]·x^(e-1) + … + modulus[0] for extension fields;
	// nil for prime fields.
	modulus []int

	// exp[i] = encoding of g^i for i in [0, 2(q-1)); doubled so that
	// exp[log a + log b] never needs an explicit reduction.
	exp []int
	// log[a] = discrete log of a base g, defined for a in [1, q).
	log []int
}

// New constructs GF(q) for a prime-power order q in [2, MaxOrder].
//
// Contract:
//   - q must be a prime power; otherwise ErrOrder.
//
// Complexity: O(q·e²) table construction for extension fields,
// O(q + p·log p) for prime fields; O(q) memory.
func New(q int) (*Field, error) {
	// Stage 1: order bounds and prime-power factorization.
	if q < 2 || q > MaxOrder {
		return nil, ErrOrder
	}
	p, e, ok := factorPrimePower(q)
	if !ok {
		return nil, ErrOrder
	}

	f := &Field{q: q, p: p, e: e}

	// Stage 2: pick the deterministic generator of the unit group.
	var gen int
	if e == 1 {
		gen = smallestPrimitiveRoot(p)
	} else {
		// The primitive polynomial search fixes f.modulus (poly.go) and
		// certifies that x itself generates the unit group; its encoding
		// is p (digit vector [0,1,0,…]).
		if err := f.findPrimitivePolynomial(); err != nil {
			return nil, err
		}
		gen = p
	}

	// Stage 3: fill exp/log from repeated multiplication by gen.
	f.exp = make([]int, 2*(q-1))
	f.log = make([]int, q)
	var (
		t = 1 // g^0
		i int
	)
	for i = 0; i < q-1; i++ {
		f.exp[i] = t
		f.exp[i+q-1] = t
		f.log[t] = i
		t = f.rawMul(t, gen)
	}

	return f, nil
}

// Order returns q = p^e.
func (f *Field) Order() int { return f.q }

// Char returns the characteristic p.
func (f *Field) Char() int { return f.p }

// Degree returns the extension degree e (1 for prime fields).
func (f *Field) Degree() int { return f.e }

// Primitive returns the encoding of the fixed primitive element g.
func (f *Field) Primitive() int { return f.exp[1] }

// Unit returns the i-th non-zero element in the deterministic power
// order g^0, g^1, …, g^{q-2}; panics for i outside [0, q-1).
func (f *Field) Unit(i int) int {
	if i < 0 || i >= f.q-1 {
		panic(panicElementRange)
	}

	return f.exp[i]
}

// Check reports whether a encodes a field element; ErrElement otherwise.
// Use at trust boundaries; arithmetic methods assume validated operands.
func (f *Field) Check(a int) error {
	if a < 0 || a >= f.q {
		return ErrElement
	}

	return nil
}

// guard panics on out-of-range operands (programmer error, hot path).
func (f *Field) guard(a int) {
	if a < 0 || a >= f.q {
		panic(panicElementRange)
	}
}

// Add returns a + b.
//
// Complexity: O(1) for prime fields, O(e) digit operations otherwise.
func (f *Field) Add(a, b int) int {
	f.guard(a)
	f.guard(b)
	if f.e == 1 {
		return (a + b) % f.p
	}

	// Digit-wise addition in base p (no carries between coefficients).
	var (
		sum    int
		shift  = 1
		da, db int
	)
	for a > 0 || b > 0 {
		da, db = a%f.p, b%f.p
		sum += ((da + db) % f.p) * shift
		a /= f.p
		b /= f.p
		shift *= f.p
	}

	return sum
}

// Neg returns the additive inverse −a.
func (f *Field) Neg(a int) int {
	f.guard(a)
	if f.e == 1 {
		return (f.p - a) % f.p
	}
	var (
		out   int
		shift = 1
		d     int
	)
	for a > 0 {
		d = a % f.p
		out += ((f.p - d) % f.p) * shift
		a /= f.p
		shift *= f.p
	}

	return out
}

// Sub returns a − b.
func (f *Field) Sub(a, b int) int { return f.Add(a, f.Neg(b)) }

// Mul returns a·b via the exp/log tables.
//
// Complexity: O(1).
func (f *Field) Mul(a, b int) int {
	f.guard(a)
	f.guard(b)
	if a == 0 || b == 0 {
		return 0
	}

	return f.exp[f.log[a]+f.log[b]]
}

// Inv returns a⁻¹; panics on a == 0 (programmer error; callers must not
// request the inverse of zero).
func (f *Field) Inv(a int) int {
	f.guard(a)
	if a == 0 {
		panic(panicZeroInverse)
	}
	if a == 1 {
		return 1
	}

	return f.exp[f.q-1-f.log[a]]
}

// Div returns a/b; panics on b == 0.
func (f *Field) Div(a, b int) int { return f.Mul(a, f.Inv(b)) }

// Pow returns a^k for any integer k (negative exponents through the
// inverse). 0^0 is defined as 1.
//
// Complexity: O(1), exponent reduced mod q−1 in the log domain.
func (f *Field) Pow(a, k int) int {
	f.guard(a)
	if a == 0 {
		if k == 0 {
			return 1
		}

		return 0
	}

	// Reduce in int64 to dodge overflow on log·k.
	var (
		m = int64(f.q - 1)
		r = (int64(f.log[a]) * int64(k)) % m
	)
	if r < 0 {
		r += m
	}

	return f.exp[r]
}

// factorPrimePower decomposes q into p^e; ok=false when q is not a
// prime power.
func factorPrimePower(q int) (p, e int, ok bool) {
	// Smallest prime divisor by trial division (q ≤ MaxOrder keeps this cheap).
	var d int
	for d = 2; d*d <= q; d++ {
		if q%d == 0 {
			break
		}
	}
	if d*d > q {
		return q, 1, true // q itself is prime
	}

	p = d
	var n = q
	for n%p == 0 {
		n /= p
		e++
	}
	if n != 1 {
		return 0, 0, false
	}

	return p, e, true
}

// smallestPrimitiveRoot returns the least generator of (Z/pZ)^*.
// Deterministic by construction (ascending candidate scan).
func smallestPrimitiveRoot(p int) int {
	if p == 2 {
		return 1
	}

	// Distinct prime factors of p−1.
	var (
		factors []int
		n       = p - 1
		d       int
	)
	for d = 2; d*d <= n; d++ {
		if n%d == 0 {
			factors = append(factors, d)
			for n%d == 0 {
				n /= d
			}
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}

	// g is primitive iff g^((p−1)/f) ≠ 1 for every prime factor f.
	var g, i int
	for g = 2; g < p; g++ {
		ok := true
		for i = 0; i < len(factors); i++ {
			if powMod(g, (p-1)/factors[i], p) == 1 {
				ok = false
				break
			}
		}
		if ok {
			return g
		}
	}

	// Unreachable for prime p; keep the compiler satisfied.
	return 1
}

// powMod computes b^k mod m by binary exponentiation.
func powMod(b, k, m int) int {
	var (
		r  = 1
		bb = int64(b % m)
		mm = int64(m)
	)
	for k > 0 {
		if k&1 == 1 {
			r = int(int64(r) * bb % mm)
		}
		bb = bb * bb % mm
		k >>= 1
	}

	return r
}
