// Package perm — orbit computations on the natural action.
//
// These helpers work directly on generator slices (no chain required):
// symmetry pruning needs orbits of whichever generators are currently
// known, not of a fully certified group.
package perm

import "sort"

// Orbits returns the orbit partition of {0,…,n−1} under the generators.
// Orbits are sorted internally (ascending points) and externally (by
// smallest element), so the output is deterministic. With no generators
// every point is its own orbit.
//
// Complexity: O(n·len(gens)) after union-find, effectively linear.
func Orbits(gens []Perm, n int) [][]int {
	parent := unionOrbits(gens, n)

	// Bucket points by root, then sort for a stable shape.
	var (
		buckets = make(map[int][]int, n)
		i       int
	)
	for i = 0; i < n; i++ {
		r := find(parent, i)
		buckets[r] = append(buckets[r], i)
	}

	out := make([][]int, 0, len(buckets))
	for _, orb := range buckets {
		sort.Ints(orb)
		out = append(out, orb)
	}
	sort.Slice(out, func(a, b int) bool { return out[a][0] < out[b][0] })

	return out
}

// OrbitOf returns the sorted orbit of x under the generators.
func OrbitOf(gens []Perm, n, x int) []int {
	parent := unionOrbits(gens, n)

	var (
		rx  = find(parent, x)
		out []int
		i   int
	)
	for i = 0; i < n; i++ {
		if find(parent, i) == rx {
			out = append(out, i)
		}
	}

	return out
}

// unionOrbits builds a union-find forest joining every point with its
// images under all generators.
func unionOrbits(gens []Perm, n int) []int {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	for _, g := range gens {
		if len(g) != n {
			continue // foreign degree: ignore rather than corrupt
		}
		for i, v := range g {
			union(parent, i, v)
		}
	}

	return parent
}

func find(parent []int, x int) int {
	for parent[x] != x {
		parent[x] = parent[parent[x]] // path halving
		x = parent[x]
	}

	return x
}

func union(parent []int, a, b int) {
	ra, rb := find(parent, a), find(parent, b)
	if ra == rb {
		return
	}
	// Deterministic: smaller root wins.
	if ra < rb {
		parent[rb] = ra
	} else {
		parent[ra] = rb
	}
}
