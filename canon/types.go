package canon

import "errors"

// Action selects the group acting on the coordinates of the code.
type Action int

const (
	// PermAction is the symmetric group S_n permuting coordinates.
	PermAction Action = iota
	// MonomialAction additionally scales each coordinate by a non-zero
	// field element (the full monomial group of the field).
	MonomialAction
)

// String implements fmt.Stringer for diagnostics and log fields.
func (a Action) String() string {
	switch a {
	case PermAction:
		return "permutation"
	case MonomialAction:
		return "monomial"
	default:
		return "unknown"
	}
}

var (
	// ErrNilMatrix is returned when the generator matrix is nil.
	ErrNilMatrix = errors.New("canon: nil generator matrix")

	// ErrNotFullRank is returned when the generator matrix rows are
	// linearly dependent; canonical forms are defined for full-rank
	// generators only.
	ErrNotFullRank = errors.New("canon: generator matrix is not full row rank")

	// ErrBadShape is returned when matrix dimensions are unusable
	// (zero rows or columns).
	ErrBadShape = errors.New("canon: generator matrix has invalid shape")

	// ErrInvalidGroupInput is returned in strict mode when a seed
	// automorphism passed via WithKnownAutomorphisms does not actually
	// stabilize the code, or is malformed. In the default lax mode the
	// offending seed is dropped instead.
	ErrInvalidGroupInput = errors.New("canon: known automorphism does not stabilize the code")

	// ErrCancelled is returned when the context is cancelled or the
	// soft time limit expires before the search completes. The
	// accompanying result is the best incumbent found so far.
	ErrCancelled = errors.New("canon: search cancelled")

	// ErrUnsupportedAction is returned for an Action value outside the
	// declared constants.
	ErrUnsupportedAction = errors.New("canon: unsupported group action")
)
