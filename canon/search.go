package canon

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/codecanon/gf"
	"github.com/katalvlaran/codecanon/gfmatrix"
	"github.com/katalvlaran/codecanon/perm"
)

// deadlineMask throttles time.Now calls on the hot path; the context
// itself is polled at every branch boundary.
const deadlineMask = 0xff

// engine drives one canonicalization search over a validated,
// row-reduced reference matrix. Single-goroutine, deterministic; the
// search tree is walked with an explicit node stack so memory use is
// bounded by the tree depth (at most n) regardless of call stack
// limits.
type engine struct {
	field *gf.Field
	ref   *gfmatrix.Matrix // RREF of the input, the fixed reference
	n, k  int
	opts  Options
	inv   *invariant
	col   *collector

	ctx         context.Context
	deadline    time.Time
	useDeadline bool
	steps       uint64

	first *leaf // anchor leaf, quotients against it yield automorphisms
	best  *leaf // current canonical incumbent (row-major minimum)

	nodes, leaves, pruned uint64
}

// node is one active branching point on the explicit search stack.
type node struct {
	part        *partition
	candidates  []int // target-cell coordinates, ascending
	next        int   // index of the next candidate to inspect
	explored    []int // candidates actually branched on (ascending)
	prevPathLen int   // length of the path before this node's own choice
}

func newEngine(ctx context.Context, ref *gfmatrix.Matrix, opts Options) (*engine, error) {
	col, err := newCollector(ref, opts.action, opts.logger)
	if err != nil {
		return nil, err
	}
	e := &engine{
		field: ref.Field(),
		ref:   ref,
		n:     ref.Cols(),
		k:     ref.Rows(),
		opts:  opts,
		inv:   newInvariant(ref, opts.action, opts.codewordCap),
		col:   col,
		ctx:   ctx,
	}
	if opts.timeLimit > 0 {
		e.deadline = time.Now().Add(opts.timeLimit)
		e.useDeadline = true
	}

	return e, nil
}

// run explores the whole pruned search tree. On cancellation it stops
// at a branch boundary and returns ErrCancelled; e.best and the
// collector then hold the best-effort partial result.
func (e *engine) run() error {
	root := newUnitPartition(e.n)
	e.refine(root)
	e.nodes++
	if root.isDiscrete() {
		return e.processLeaf(root)
	}

	var (
		stack = []*node{e.newNode(root, 0)}
		path  = make([]int, 0, e.n) // individualized coords along the active branch
	)
	for len(stack) > 0 {
		if err := e.checkCancelled(); err != nil {
			return err
		}
		nd := stack[len(stack)-1]
		c, ok := e.nextCandidate(nd, path)
		if !ok {
			stack = stack[:len(stack)-1]
			path = path[:nd.prevPathLen]
			continue
		}
		child := nd.part.clone()
		child.individualize(c)
		e.refine(child)
		e.nodes++
		if child.isDiscrete() {
			if err := e.processLeaf(child); err != nil {
				return err
			}
			continue
		}
		path = append(path, c)
		stack = append(stack, e.newNode(child, len(path)-1))
	}
	e.opts.logger.Debug("search finished",
		zap.Uint64("nodes", e.nodes),
		zap.Uint64("leaves", e.leaves),
		zap.Uint64("pruned", e.pruned),
		zap.Int("generators", len(e.col.gens)))

	return nil
}

// refine drives the partition to its equitable fixed point: recompute
// signatures, split, repeat until nothing splits.
func (e *engine) refine(p *partition) {
	for !p.isDiscrete() {
		if !p.splitBySignature(e.inv.signatures(p)) {
			return
		}
	}
}

// newNode prepares the branching state for a non-discrete partition.
func (e *engine) newNode(p *partition, prevPathLen int) *node {
	return &node{
		part:        p,
		candidates:  p.cellCoords(p.targetCell()),
		prevPathLen: prevPathLen,
	}
}

// nextCandidate yields the next target-cell coordinate that is not in
// the orbit of an already-explored sibling under automorphisms fixing
// the branch pointwise. Skipped candidates lead to subtrees that are
// images of explored ones, so nothing canonical is lost.
func (e *engine) nextCandidate(nd *node, path []int) (int, bool) {
	for nd.next < len(nd.candidates) {
		c := nd.candidates[nd.next]
		nd.next++
		if e.prunedByOrbit(c, nd.explored, path) {
			e.pruned++
			continue
		}
		nd.explored = append(nd.explored, c)

		return c, true
	}

	return 0, false
}

// prunedByOrbit reports whether c is equivalent, under the recorded
// automorphisms stabilizing path pointwise, to a sibling already
// explored. Generators discovered after a sibling was branched still
// count: the orbit test always uses the current group.
func (e *engine) prunedByOrbit(c int, explored, path []int) bool {
	if len(explored) == 0 || len(e.col.gens) == 0 {
		return false
	}
	gens := e.col.stabilizingGens(path)
	if len(gens) == 0 {
		return false
	}
	for _, x := range perm.OrbitOf(gens, e.n, c) {
		for _, done := range explored {
			if x == done {
				return true
			}
		}
	}

	return false
}

// processLeaf turns a discrete partition into its normal form, then
// either adopts it as anchor/incumbent or extracts the automorphism it
// witnesses.
func (e *engine) processLeaf(p *partition) error {
	e.leaves++
	lf, err := e.buildLeaf(p)
	if err != nil {
		return err
	}
	if e.first == nil {
		e.first = lf
		e.best = lf

		return nil
	}
	switch {
	case lf.form.Equal(e.first.form):
		e.recordQuotient(lf, e.first)
	case e.best != e.first && lf.form.Equal(e.best.form):
		// Ties between two non-anchor leaves are automorphisms too and
		// sharpen pruning for free.
		e.recordQuotient(lf, e.best)
	}
	if gfmatrix.Compare(lf.form, e.best.form) < 0 {
		e.best = lf
		e.opts.logger.Debug("incumbent improved", zap.Uint64("leaf", e.leaves))
	}

	return nil
}

// buildLeaf applies the discrete column order to the reference matrix
// and reduces to the scaled normal form.
func (e *engine) buildLeaf(p *partition) (*leaf, error) {
	order := append([]int(nil), p.points...)
	t, err := e.ref.ApplyMonomial(order, nil)
	if err != nil {
		return nil, err
	}
	r, err := t.RowReduce()
	if err != nil {
		return nil, err
	}
	form, scalars, err := canonicalScaling(r, e.opts.action)
	if err != nil {
		return nil, err
	}

	return &leaf{form: form, order: order, scalars: scalars}, nil
}

// recordQuotient derives the automorphism mapping leaf l2 onto leaf l1
// (equal normal forms) and hands it to the collector. Positions align:
// coordinate l2.order[i] maps to l1.order[i], scaled by the ratio of
// the column scalars the two leaves applied there.
func (e *engine) recordQuotient(l2, l1 *leaf) {
	a := Aut{Perm: make(perm.Perm, e.n)}
	if e.opts.action == MonomialAction {
		a.Scalars = make([]int, e.n)
	}
	for i := 0; i < e.n; i++ {
		c := l2.order[i]
		a.Perm[c] = l1.order[i]
		if a.Scalars != nil {
			a.Scalars[c] = e.field.Div(l2.scalars[i], l1.scalars[i])
		}
	}
	if _, err := e.col.record(a); err != nil {
		// Validation is the safety net under pruning: a rejected
		// candidate is dropped, never used.
		e.opts.logger.Warn("derived automorphism rejected", zap.Error(err))
	}
}

// checkCancelled polls the context every branch boundary and the soft
// deadline sparsely (time.Now is the expensive part).
func (e *engine) checkCancelled() error {
	if err := e.ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrCancelled, err)
	}
	e.steps++
	if e.useDeadline && e.steps&deadlineMask == 0 && time.Now().After(e.deadline) {
		return fmt.Errorf("%w: time limit exceeded", ErrCancelled)
	}

	return nil
}
