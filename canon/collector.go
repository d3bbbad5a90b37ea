package canon

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/codecanon/gf"
	"github.com/katalvlaran/codecanon/gfmatrix"
	"github.com/katalvlaran/codecanon/perm"
)

// collector accumulates automorphism generators as the search finds
// them. Every candidate is re-validated against the reference matrix
// before use, so pruning decisions never rest on an unchecked map, and
// the permutation parts are folded into a perm.Group whose stabilizer
// chain answers membership and order queries.
type collector struct {
	field  *gf.Field
	ref    *gfmatrix.Matrix
	action Action
	group  *perm.Group // closure of the coordinate-permutation parts
	gens   []Aut       // generators that enlarged the group, in discovery order
	log    *zap.Logger
}

func newCollector(ref *gfmatrix.Matrix, action Action, log *zap.Logger) (*collector, error) {
	g, err := perm.NewGroup(ref.Cols())
	if err != nil {
		return nil, err
	}

	return &collector{
		field:  ref.Field(),
		ref:    ref,
		action: action,
		group:  g,
		log:    log,
	}, nil
}

// record verifies that a stabilizes the code and, when its permutation
// part enlarges the group, keeps it as a generator. The returned bool
// reports whether the group grew; a non-nil error (wrapping
// ErrInvalidGroupInput) means a is malformed or not an automorphism.
func (c *collector) record(a Aut) (bool, error) {
	if err := a.Validate(c.field, c.ref.Cols()); err != nil {
		return false, err
	}
	if c.action == PermAction && a.Scalars != nil {
		for _, s := range a.Scalars {
			if s != 1 {
				return false, fmt.Errorf("%w: non-trivial scalars under the permutation action", ErrInvalidGroupInput)
			}
		}
	}
	img, err := a.ApplyTo(c.ref)
	if err != nil {
		return false, err
	}
	same, err := c.ref.RowSpaceEqual(img)
	if err != nil {
		return false, err
	}
	if !same {
		return false, ErrInvalidGroupInput
	}
	grew, err := c.group.Extend(a.Perm)
	if err != nil {
		return false, err
	}
	if grew {
		c.gens = append(c.gens, a.Clone())
		c.log.Debug("automorphism recorded",
			zap.Int("generators", len(c.gens)),
			zap.String("order", c.group.Order().String()))
	}

	return grew, nil
}

// stabilizingGens returns the permutation parts of all recorded
// generators that fix every coordinate of path pointwise. These are
// exactly the known automorphisms respecting the branch's chosen
// individualizations, the subgroup orbit pruning is allowed to use.
func (c *collector) stabilizingGens(path []int) []perm.Perm {
	out := make([]perm.Perm, 0, len(c.gens))
next:
	for _, a := range c.gens {
		for _, x := range path {
			if a.Perm[x] != x {
				continue next
			}
		}
		out = append(out, a.Perm)
	}

	return out
}

// diagonalKernel computes, exactly and in closed form, the subgroup of
// scalar-only maps stabilizing the code. A diagonal scaling by
// d_0..d_{n-1} fixes the RREF r iff d is constant on each connected
// component of the column graph linking every column to the pivot
// column of each row supporting it. The kernel is therefore a product
// of (q-1)-cycles, one per component, with one generator each (scaling
// a whole component by a primitive element).
func diagonalKernel(ref *gfmatrix.Matrix) (gens []Aut, components int) {
	var (
		f       = ref.Field()
		k       = ref.Rows()
		n       = ref.Cols()
		entries = ref.Entries()
		parent  = make([]int, n)
	)
	for j := 0; j < n; j++ {
		parent[j] = j
	}
	var root func(x int) int
	root = func(x int) int {
		if parent[x] != x {
			parent[x] = root(parent[x])
		}

		return parent[x]
	}
	for i := 0; i < k; i++ {
		p := leadingIndex(entries[i])
		for j := 0; j < n; j++ {
			if entries[i][j] != 0 {
				ra, rb := root(j), root(p)
				if ra != rb {
					parent[ra] = rb
				}
			}
		}
	}
	byRoot := make(map[int][]int, n)
	for j := 0; j < n; j++ {
		byRoot[root(j)] = append(byRoot[root(j)], j)
	}
	components = len(byRoot)
	if f.Order() == 2 {
		return nil, components // the only scalar is one
	}
	// Deterministic generator order: components by smallest member.
	for j := 0; j < n; j++ {
		members := byRoot[root(j)]
		if members[0] != j {
			continue
		}
		a := Identity(n)
		a.Scalars = onesVector(n)
		for _, m := range members {
			a.Scalars[m] = f.Primitive()
		}
		gens = append(gens, a)
	}

	return gens, components
}
