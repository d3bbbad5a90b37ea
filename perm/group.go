// Package perm — Schreier–Sims stabilizer chain.
//
// The chain realizes a base-and-strong-generating-set (BSGS) view of the
// group: level l stores a base point b_l, the strong generators first
// moved at that level, and the orbit of b_l under the stabilizer of
// b_0…b_{l−1} together with a transversal (one coset representative per
// orbit point). Membership is sifting; order is the product of orbit
// sizes; every insertion re-verifies Schreier generators to a fixed
// point, so the chain is always a certified BSGS, never a heuristic one.
//
// Determinism: base points are the smallest moved points in insertion
// order, orbits are explored FIFO over generators in (level, index)
// order, and the verification sweep scans levels ascending. Identical
// Extend sequences produce identical chains.
package perm

import "math/big"

// level is one link of the stabilizer chain.
type level struct {
	point       int          // base point b_l
	strong      []Perm       // strong generators first moved at this level
	orbit       []int        // orbit of b_l in deterministic BFS order
	transversal map[int]Perm // orbit point → u with u(b_l) = point
}

// Group is a permutation group on {0,…,degree−1} built incrementally
// from generators. The zero value is unusable; obtain via NewGroup.
type Group struct {
	degree int
	levels []*level
	gens   []Perm // accepted generators, in insertion order
}

// NewGroup returns the trivial group of the given degree.
//
// Errors: ErrBadDegree.
func NewGroup(degree int) (*Group, error) {
	if degree < 1 {
		return nil, ErrBadDegree
	}

	return &Group{degree: degree}, nil
}

// Degree returns the size of the permutation domain.
func (g *Group) Degree() int { return g.degree }

// Generators returns copies of the accepted generators in insertion
// order (generators already implied by earlier ones are not kept).
func (g *Group) Generators() []Perm {
	out := make([]Perm, len(g.gens))
	for i, p := range g.gens {
		out[i] = p.Clone()
	}

	return out
}

// Order returns the exact group order: the product of orbit sizes along
// the chain. Orders grow factorially, hence *big.Int.
func (g *Group) Order() *big.Int {
	order := big.NewInt(1)
	for _, lv := range g.levels {
		order.Mul(order, big.NewInt(int64(len(lv.orbit))))
	}

	return order
}

// Contains tests membership by sifting p through the chain.
//
// Errors: ErrBadPermutation, ErrDegreeMismatch.
//
// Complexity: O(levels·degree).
func (g *Group) Contains(p Perm) (bool, error) {
	if err := p.Validate(); err != nil {
		return false, err
	}
	if p.Degree() != g.degree {
		return false, ErrDegreeMismatch
	}

	residue, _ := g.siftFrom(p, 0)

	return residue.IsIdentity(), nil
}

// Extend folds p into the group. It returns true when p enlarged the
// group (and was recorded as a generator), false when p was already a
// member.
//
// Errors: ErrBadPermutation, ErrDegreeMismatch.
func (g *Group) Extend(p Perm) (bool, error) {
	if err := p.Validate(); err != nil {
		return false, err
	}
	if p.Degree() != g.degree {
		return false, ErrDegreeMismatch
	}

	// Stage 1: sift; members change nothing.
	residue, l := g.siftFrom(p, 0)
	if residue.IsIdentity() {
		return false, nil
	}

	// Stage 2: install the residue as a strong generator and restore the
	// BSGS invariant by Schreier verification.
	g.addStrong(residue, l)
	g.closeChain()
	g.gens = append(g.gens, p.Clone())

	return true, nil
}

// siftFrom strips p through levels start… and returns the residue plus
// the level where stripping stopped (len(levels) when fully stripped).
// The residue fixes every base point above the returned level.
func (g *Group) siftFrom(p Perm, start int) (Perm, int) {
	cur := p
	for l := start; l < len(g.levels); l++ {
		if cur.IsIdentity() {
			return cur, l
		}
		lv := g.levels[l]
		img := cur[lv.point]
		if img == lv.point {
			continue
		}
		u, ok := lv.transversal[img]
		if !ok {
			return cur, l
		}
		cur = mul(u.Inverse(), cur)
	}

	return cur, len(g.levels)
}

// addStrong installs a non-identity residue at level l (creating the
// level if needed, base point = smallest moved point) and recomputes the
// orbits the insertion invalidated (levels ≤ l, whose generator sets all
// gained the residue).
func (g *Group) addStrong(residue Perm, l int) {
	if l == len(g.levels) {
		g.levels = append(g.levels, &level{point: smallestMoved(residue)})
	}
	g.levels[l].strong = append(g.levels[l].strong, residue)
	for ll := 0; ll <= l; ll++ {
		g.recomputeOrbit(ll)
	}
}

// genset collects the generators of the level-l stabilizer: every strong
// generator assigned to level l or deeper (those fix b_0…b_{l−1} by the
// sifting construction). Order is (level, index) for determinism.
func (g *Group) genset(l int) []Perm {
	var out []Perm
	for ll := l; ll < len(g.levels); ll++ {
		out = append(out, g.levels[ll].strong...)
	}

	return out
}

// recomputeOrbit rebuilds orbit and transversal of level l by FIFO BFS.
func (g *Group) recomputeOrbit(l int) {
	var (
		lv   = g.levels[l]
		gens = g.genset(l)
	)
	lv.orbit = lv.orbit[:0]
	lv.transversal = make(map[int]Perm)

	lv.orbit = append(lv.orbit, lv.point)
	lv.transversal[lv.point] = Identity(g.degree)

	for i := 0; i < len(lv.orbit); i++ {
		pt := lv.orbit[i]
		u := lv.transversal[pt]
		for _, s := range gens {
			img := s[pt]
			if _, ok := lv.transversal[img]; ok {
				continue
			}
			lv.orbit = append(lv.orbit, img)
			lv.transversal[img] = mul(s, u)
		}
	}
}

// closeChain re-verifies Schreier generators level by level until no
// insertion happens: on exit, for every level l, orbit point pt and
// generator s of genset(l), the Schreier element u_{s(pt)}⁻¹·s·u_{pt}
// sifts to identity through levels > l; Schreier's lemma then certifies
// the whole chain.
func (g *Group) closeChain() {
	again := true
	for again {
		again = false
	sweep:
		for l := 0; l < len(g.levels); l++ {
			lv := g.levels[l]
			for i := 0; i < len(lv.orbit); i++ {
				pt := lv.orbit[i]
				u := lv.transversal[pt]
				for _, s := range g.genset(l) {
					sch := mul(lv.transversal[s[pt]].Inverse(), mul(s, u))
					if sch.IsIdentity() {
						continue
					}
					residue, rl := g.siftFrom(sch, l+1)
					if residue.IsIdentity() {
						continue
					}
					// Insertion rewrites orbits under our feet; restart
					// the sweep from the top rather than iterate stale
					// state.
					g.addStrong(residue, rl)
					again = true

					break sweep
				}
			}
		}
	}
}

// smallestMoved returns the least point p does not fix.
// Callers guarantee p is not the identity.
func smallestMoved(p Perm) int {
	for i, v := range p {
		if v != i {
			return i
		}
	}

	return 0
}
