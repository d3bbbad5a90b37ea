// Package gf_test validates field construction and arithmetic.
// Focus:
//  1. Strict sentinels on bad orders (composite, too small, too large).
//  2. Field axioms on every element pair for a spread of orders
//     (prime, prime-power, characteristic 2 and odd).
//  3. Determinism: two constructions of the same order agree table-for-table.
package gf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/codecanon/gf"
)

// testedOrders spans prime fields and true extensions in both
// characteristic regimes.
var testedOrders = []int{2, 3, 4, 5, 7, 8, 9, 16, 25, 27}

func TestNew_BadOrders(t *testing.T) {
	for _, q := range []int{-1, 0, 1, 6, 10, 12, 100, gf.MaxOrder + 1} {
		_, err := gf.New(q)
		assert.ErrorIs(t, err, gf.ErrOrder, "order %d must be rejected", q)
	}
}

func TestNew_AcceptsPrimePowers(t *testing.T) {
	for _, q := range testedOrders {
		f, err := gf.New(q)
		require.NoError(t, err, "order %d", q)
		assert.Equal(t, q, f.Order())
	}
}

// TestField_Axioms exhaustively checks the field axioms for each tested
// order: commutativity, associativity, distributivity, identities and
// inverses. Exhaustive scans are cheap at these orders (≤ 27³ triples).
func TestField_Axioms(t *testing.T) {
	for _, q := range testedOrders {
		f, err := gf.New(q)
		require.NoError(t, err)

		var a, b, c int
		for a = 0; a < q; a++ {
			// Identities.
			assert.Equal(t, a, f.Add(a, 0))
			assert.Equal(t, a, f.Mul(a, 1))
			assert.Equal(t, 0, f.Add(a, f.Neg(a)), "a + (−a) = 0 in GF(%d)", q)
			if a != 0 {
				assert.Equal(t, 1, f.Mul(a, f.Inv(a)), "a·a⁻¹ = 1 in GF(%d)", q)
			}
			for b = 0; b < q; b++ {
				assert.Equal(t, f.Add(a, b), f.Add(b, a))
				assert.Equal(t, f.Mul(a, b), f.Mul(b, a))
				assert.Equal(t, f.Sub(a, b), f.Add(a, f.Neg(b)))
			}
		}
		// Associativity + distributivity on full triples for small q only.
		if q > 9 {
			continue
		}
		for a = 0; a < q; a++ {
			for b = 0; b < q; b++ {
				for c = 0; c < q; c++ {
					assert.Equal(t, f.Add(f.Add(a, b), c), f.Add(a, f.Add(b, c)))
					assert.Equal(t, f.Mul(f.Mul(a, b), c), f.Mul(a, f.Mul(b, c)))
					assert.Equal(t, f.Mul(a, f.Add(b, c)), f.Add(f.Mul(a, b), f.Mul(a, c)))
				}
			}
		}
	}
}

// TestField_PrimitiveElementOrder asserts the generator really has
// multiplicative order q−1 (its powers enumerate all units).
func TestField_PrimitiveElementOrder(t *testing.T) {
	for _, q := range testedOrders {
		f, err := gf.New(q)
		require.NoError(t, err)

		var (
			seen = make(map[int]bool, q-1)
			x    = 1
			i    int
		)
		for i = 0; i < q-1; i++ {
			assert.False(t, seen[x], "g powers must be distinct in GF(%d)", q)
			seen[x] = true
			x = f.Mul(x, f.Primitive())
		}
		assert.Equal(t, 1, x, "g^(q−1) = 1 in GF(%d)", q)
	}
}

func TestField_Pow(t *testing.T) {
	f, err := gf.New(9)
	require.NoError(t, err)

	var a, k, want int
	for a = 1; a < 9; a++ {
		want = 1
		for k = 0; k < 20; k++ {
			assert.Equal(t, want, f.Pow(a, k), "a=%d k=%d", a, k)
			want = f.Mul(want, a)
		}
		// Negative exponent: a^(−1) must match Inv.
		assert.Equal(t, f.Inv(a), f.Pow(a, -1))
	}
	assert.Equal(t, 1, f.Pow(0, 0))
	assert.Equal(t, 0, f.Pow(0, 5))
}

func TestField_Check(t *testing.T) {
	f, err := gf.New(5)
	require.NoError(t, err)

	assert.NoError(t, f.Check(0))
	assert.NoError(t, f.Check(4))
	assert.ErrorIs(t, f.Check(5), gf.ErrElement)
	assert.ErrorIs(t, f.Check(-1), gf.ErrElement)
}

// TestField_Deterministic pins the determinism contract: repeated
// construction yields identical arithmetic.
func TestField_Deterministic(t *testing.T) {
	for _, q := range testedOrders {
		f1, err := gf.New(q)
		require.NoError(t, err)
		f2, err := gf.New(q)
		require.NoError(t, err)

		assert.Equal(t, f1.Primitive(), f2.Primitive(), "GF(%d)", q)
		var a, b int
		for a = 0; a < q; a++ {
			for b = 0; b < q; b++ {
				assert.Equal(t, f1.Mul(a, b), f2.Mul(a, b))
				assert.Equal(t, f1.Add(a, b), f2.Add(a, b))
			}
		}
	}
}

func TestField_Accessors(t *testing.T) {
	f, err := gf.New(8)
	require.NoError(t, err)

	assert.Equal(t, 8, f.Order())
	assert.Equal(t, 2, f.Char())
	assert.Equal(t, 3, f.Degree())
}

func TestField_Unit(t *testing.T) {
	f, err := gf.New(5)
	require.NoError(t, err)

	// Units enumerate the powers of the primitive element, starting at
	// g^0 = 1, and cover every non-zero element exactly once.
	assert.Equal(t, 1, f.Unit(0))
	seen := make(map[int]bool)
	for i := 0; i < 4; i++ {
		u := f.Unit(i)
		assert.NoError(t, f.Check(u))
		assert.NotZero(t, u)
		seen[u] = true
	}
	assert.Len(t, seen, 4)

	assert.Panics(t, func() { f.Unit(-1) })
	assert.Panics(t, func() { f.Unit(4) })
}
