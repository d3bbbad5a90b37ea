// Package gfmatrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// package. All operations MUST return these sentinels and tests MUST
// check them via errors.Is. No operation panics on user input.
package gfmatrix

import "errors"

var (
	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("gfmatrix: nil matrix")

	// ErrNilField indicates construction without a field.
	ErrNilField = errors.New("gfmatrix: nil field")

	// ErrBadShape is returned when a requested or supplied shape is invalid
	// (non-positive dimensions, ragged rows).
	ErrBadShape = errors.New("gfmatrix: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("gfmatrix: index out of range")

	// ErrFieldMismatch indicates two operands bound to different fields.
	ErrFieldMismatch = errors.New("gfmatrix: operands over different fields")

	// ErrBadPermutation signals that a column permutation is not a
	// bijection of [0, cols).
	ErrBadPermutation = errors.New("gfmatrix: invalid column permutation")

	// ErrBadScalars signals a monomial scalar vector of wrong length or
	// containing zero / out-of-field values.
	ErrBadScalars = errors.New("gfmatrix: invalid monomial scalars")
)
