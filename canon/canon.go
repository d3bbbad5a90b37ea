package canon

import (
	"context"
	"math/big"

	"go.uber.org/zap"

	"github.com/katalvlaran/codecanon/gfmatrix"
	"github.com/katalvlaran/codecanon/perm"
)

// CanonicalResult is the outcome of a canonical-form computation.
type CanonicalResult struct {
	// Form is the canonical representative: equal for all generator
	// matrices of equivalent codes under the configured action, fully
	// determined by the code's equivalence class.
	Form *gfmatrix.Matrix

	// Map realizes Form from the input: applying Map to the input
	// matrix and row-reducing yields Form exactly.
	Map Aut
}

// GroupResult describes the automorphism group of the input code under
// the configured action.
type GroupResult struct {
	// Generators generate the full group. Under the monomial action the
	// list ends with the scalar-only generators of the diagonal kernel.
	Generators []Aut

	// Perms is the group of coordinate-permutation parts, with a
	// stabilizer chain for membership and order queries.
	Perms *perm.Group

	// Order is the exact order of the full configured group. Under the
	// monomial action this is |Perms| * (q-1)^c where c is the number
	// of scalar-coupled column components.
	Order *big.Int
}

// CanonicalForm computes the canonical representative of the code
// generated by m under the configured action (default: coordinate
// permutations; see WithAction).
//
// Contracts:
//   - m must be non-nil and of full row rank (ErrNilMatrix,
//     ErrNotFullRank); m is never mutated.
//   - Deterministic: equal inputs and options give bit-equal results,
//     and equivalent codes give equal Form values. Forms computed under
//     different options (action, codeword cap) are not comparable: the
//     refinement invariant is part of the canonical labeling.
//   - Cancellation: on context or time-limit expiry the best incumbent
//     found so far is returned together with ErrCancelled.
//
// Complexity: exponential in n in the worst case; refinement and
// automorphism pruning keep structured codes far below that.
func CanonicalForm(ctx context.Context, m *gfmatrix.Matrix, opts ...Option) (CanonicalResult, error) {
	cr, _, err := run(ctx, m, gatherOptions(opts...))

	return cr, err
}

// AutomorphismGroup computes a generating set, permutation-part group
// and exact order of the stabilizer of the code generated by m under
// the configured action. Contracts match CanonicalForm; on
// cancellation the partial group found so far (always a subgroup of
// the true group) is returned with ErrCancelled.
func AutomorphismGroup(ctx context.Context, m *gfmatrix.Matrix, opts ...Option) (GroupResult, error) {
	_, gr, err := run(ctx, m, gatherOptions(opts...))

	return gr, err
}

// Canonicalize computes both results in a single search; the canonical
// form and the automorphism group come from the same tree walk, so
// asking for both costs no more than asking for one.
func Canonicalize(ctx context.Context, m *gfmatrix.Matrix, opts ...Option) (CanonicalResult, GroupResult, error) {
	return run(ctx, m, gatherOptions(opts...))
}

// run validates, prepares the reference matrix and drives the engine.
func run(ctx context.Context, m *gfmatrix.Matrix, o Options) (CanonicalResult, GroupResult, error) {
	if err := validateInput(m); err != nil {
		return CanonicalResult{}, GroupResult{}, err
	}
	if o.action != PermAction && o.action != MonomialAction {
		return CanonicalResult{}, GroupResult{}, ErrUnsupportedAction
	}
	if ctx == nil {
		ctx = context.Background()
	}
	// The RREF is the basis-free reference every leaf reduces from.
	ref, err := m.RowReduce()
	if err != nil {
		return CanonicalResult{}, GroupResult{}, err
	}
	e, err := newEngine(ctx, ref, o)
	if err != nil {
		return CanonicalResult{}, GroupResult{}, err
	}
	if err = seedKnown(e, o); err != nil {
		return CanonicalResult{}, GroupResult{}, err
	}
	runErr := e.run() // nil or ErrCancelled-wrapped
	cr := buildCanonical(e)
	gr := buildGroup(e)

	return cr, gr, runErr
}

// validateInput performs the staged input checks shared by all entry
// points.
func validateInput(m *gfmatrix.Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.Rows() < 1 || m.Cols() < 1 {
		return ErrBadShape
	}
	rank, err := m.Rank()
	if err != nil {
		return err
	}
	if rank != m.Rows() {
		return ErrNotFullRank
	}

	return nil
}

// seedKnown feeds user-supplied automorphisms to the collector before
// the first branch. Lax mode drops invalid seeds, strict mode fails.
func seedKnown(e *engine, o Options) error {
	for _, a := range o.seeds {
		if _, err := e.col.record(a); err != nil {
			if o.strictSeeds {
				return err
			}
			o.logger.Warn("known automorphism dropped", zap.Error(err))
		}
	}

	return nil
}

// buildCanonical assembles the public canonical-form result from the
// engine's incumbent (nil when cancelled before the first leaf).
func buildCanonical(e *engine) CanonicalResult {
	if e.best == nil {
		return CanonicalResult{}
	}
	a := Aut{Perm: make(perm.Perm, e.n)}
	if e.opts.action == MonomialAction {
		a.Scalars = make([]int, e.n)
	}
	for i, c := range e.best.order {
		a.Perm[c] = i
		if a.Scalars != nil {
			a.Scalars[c] = e.best.scalars[i]
		}
	}

	return CanonicalResult{Form: e.best.form.Clone(), Map: a}
}

// buildGroup assembles the public group result; under the monomial
// action the diagonal kernel is added in closed form.
func buildGroup(e *engine) GroupResult {
	gens := make([]Aut, 0, len(e.col.gens))
	for _, a := range e.col.gens {
		gens = append(gens, a.Clone())
	}
	order := new(big.Int).Set(e.col.group.Order())
	if e.opts.action == MonomialAction {
		kernel, comps := diagonalKernel(e.ref)
		gens = append(gens, kernel...)
		scalarPart := new(big.Int).Exp(
			big.NewInt(int64(e.field.Order()-1)),
			big.NewInt(int64(comps)), nil)
		order.Mul(order, scalarPart)
	}

	return GroupResult{Generators: gens, Perms: e.col.group, Order: order}
}
