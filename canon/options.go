// Package canon: functional configuration for the canonicalization search.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
package canon

import (
	"time"

	"go.uber.org/zap"
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultAction is the plain coordinate-permutation action.
	DefaultAction = PermAction

	// DefaultCodewordCap bounds full codeword enumeration for the
	// spectrum invariant: codewords are enumerated only while
	// q^k <= DefaultCodewordCap. Above the cap the engine falls back to
	// the rank-signature invariant alone (still correct, less refined).
	DefaultCodewordCap = 4096

	// DefaultTimeLimit of zero means no soft deadline; the context
	// passed to the public entry points still applies.
	DefaultTimeLimit = time.Duration(0)
)

// Internal panic messages (no magic strings).
const (
	panicActionInvalid      = "canon: WithAction: unknown action"
	panicCodewordCapInvalid = "canon: WithCodewordCap: cap must be non-negative"
	panicTimeLimitInvalid   = "canon: WithTimeLimit: limit must be non-negative"
)

// Option mutates internal options. Safe to apply repeatedly.
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option
// setters. Public entry points accept ...Option and resolve them via
// gatherOptions.
type Options struct {
	action      Action        // DefaultAction
	codewordCap int           // DefaultCodewordCap; 0 disables enumeration
	timeLimit   time.Duration // DefaultTimeLimit; 0 = unbounded
	strictSeeds bool          // reject vs. drop invalid known automorphisms
	seeds       []Aut         // known automorphisms, validated on entry
	logger      *zap.Logger   // nop unless WithLogger is given
}

// WithAction selects the group acting on coordinates.
// Implementation:
//   - Stage 1: validate a is a declared Action constant.
//   - Stage 2: return a setter that writes a into Options.
//
// Errors:
//   - Panics with a stable message when a is unknown.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithAction(a Action) Option {
	if a != PermAction && a != MonomialAction {
		panic(panicActionInvalid)
	}

	return func(o *Options) { o.action = a }
}

// WithCodewordCap bounds the codeword-spectrum invariant: codewords are
// fully enumerated only while q^k <= cap. A cap of 0 disables the
// enumeration entirely (the rank invariant alone drives refinement).
//
// Raising the cap sharpens refinement (fewer search nodes) in exchange
// for O(q^k * n) work per refinement pass.
//
// Errors:
//   - Panics with a stable message when cap is negative.
func WithCodewordCap(bound int) Option {
	if bound < 0 {
		panic(panicCodewordCapInvalid)
	}

	return func(o *Options) { o.codewordCap = bound }
}

// WithTimeLimit sets a soft deadline for the search, measured from the
// moment CanonicalForm or AutomorphismGroup is entered. On expiry the
// search stops at the next branch boundary and returns ErrCancelled
// together with the best incumbent found so far. Zero disables the
// limit.
//
// Errors:
//   - Panics with a stable message when limit is negative.
func WithTimeLimit(limit time.Duration) Option {
	if limit < 0 {
		panic(panicTimeLimitInvalid)
	}

	return func(o *Options) { o.timeLimit = limit }
}

// WithKnownAutomorphisms seeds the search with automorphisms already
// known to stabilize the code (for example from a previous run on an
// equivalent code). Valid seeds enlarge the pruning group before the
// first branch; invalid seeds are dropped, or rejected with
// ErrInvalidGroupInput when WithStrictGroupValidation is set.
func WithKnownAutomorphisms(auts ...Aut) Option {
	return func(o *Options) { o.seeds = append(o.seeds, auts...) }
}

// WithStrictGroupValidation makes malformed or non-stabilizing seeds a
// hard error (ErrInvalidGroupInput) instead of being silently dropped.
func WithStrictGroupValidation() Option {
	return func(o *Options) { o.strictSeeds = true }
}

// WithLogger attaches a structured logger for search tracing (node and
// leaf counts, pruning, incumbent changes). A nil logger restores the
// default nop logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// NewOptions resolves option setters against documented defaults.
// Last-writer-wins; the result is ready for internal consumption.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user setters on top of defaults. This is the
// canonical internal entry used by the public API.
func gatherOptions(user ...Option) Options {
	o := Options{
		action:      DefaultAction,
		codewordCap: DefaultCodewordCap,
		timeLimit:   DefaultTimeLimit,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	return o
}
