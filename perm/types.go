// Package perm: sentinel error set.
// All constructors and group operations return these sentinels; tests
// match them via errors.Is. No operation panics on user input.
package perm

import "errors"

var (
	// ErrBadPermutation signals an image table that is not a bijection
	// of [0, n).
	ErrBadPermutation = errors.New("perm: not a bijection of [0, n)")

	// ErrDegreeMismatch signals operands of different degrees.
	ErrDegreeMismatch = errors.New("perm: degree mismatch")

	// ErrBadDegree signals a non-positive degree at construction.
	ErrBadDegree = errors.New("perm: degree must be positive")
)
