// Package gf: sentinel error set and construction limits.
// This file defines ONLY package-level sentinel errors and the public
// constants bounding field construction. All constructors MUST return
// these sentinels and tests MUST check them via errors.Is. Panics are
// reserved for programmer errors (out-of-range operands on hot paths).
package gf

import "errors"

// MaxOrder bounds the supported field order. Exp/log tables are O(q) and
// the primitive-polynomial search is polynomial in q, so small orders are
// the intended regime (coding theory rarely needs more).
const MaxOrder = 4096

var (
	// ErrOrder is returned by New when q is below 2, above MaxOrder,
	// or not a prime power.
	ErrOrder = errors.New("gf: order is not a prime power in [2, MaxOrder]")

	// ErrElement is returned by Check when a value does not encode an
	// element of the field (outside [0, q)).
	ErrElement = errors.New("gf: element out of range")
)

// Internal panic messages (no magic strings on hot paths).
const (
	panicElementRange = "gf: operand out of range [0, q)"
	panicZeroInverse  = "gf: inverse of zero"
)
