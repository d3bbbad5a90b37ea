// Package gf implements arithmetic in finite fields GF(q) for prime-power
// orders q = p^e.
//
// Representation:
//
//   - Elements are plain ints in [0, q).
//   - Prime fields (e = 1): the element is its residue mod p.
//   - Extension fields (e > 1): the element encodes the coefficient vector
//     of its polynomial representation in base p: digit i of the encoding
//     is the coefficient of x^i, reduced modulo a deterministically chosen
//     primitive polynomial.
//
// Multiplication, inversion and powers run through precomputed exp/log
// tables over a primitive element, so they are O(1) after construction.
// Addition is digit-wise mod p (a single mod for prime fields).
//
// Determinism: for a given order q the constructed field is always the
// same: the primitive polynomial is the first primitive candidate in
// ascending encoding order, and the primitive element is the first power
// basis generator found. Two calls to New(q) yield identical tables.
//
// Contracts:
//   - New validates the order and returns ErrOrder for anything that is
//     not a prime power in [2, MaxOrder].
//   - Arithmetic methods require operands in [0, q); violating that is a
//     programmer error and panics with a stable message. Use Check at
//     trust boundaries.
//
// Use this package when you need small-field arithmetic with a stable,
// comparable integer encoding (canonical forms, coding theory, linear
// algebra over GF(q)).
package gf
