// Package perm provides permutations of {0,…,n−1} and finite permutation
// groups represented by a Schreier–Sims stabilizer chain.
//
// It serves as the group-theory backend for automorphism bookkeeping:
//
//   - Perm — a permutation as an image table (p[i] is the image of i),
//     with composition, inversion and validation.
//   - Group — an incrementally extendable group: Extend folds a new
//     generator into the stabilizer chain (reporting whether it enlarged
//     the group), Contains tests membership, Order returns the exact
//     group order as a *big.Int (orders grow factorially, far past
//     uint64 at modest degrees).
//   - Orbits / OrbitOf — orbit partitions of the natural action, used for
//     symmetry pruning in backtracking searches.
//
// Determinism: the chain uses the ascending natural base (smallest moved
// point first), orbits are explored breadth-first in ascending point
// order, and all returned slices are sorted. Identical generator
// sequences produce identical chains, orders, and orbit partitions.
//
// Complexity: Extend re-verifies Schreier generators to a fixed point,
// polynomial in degree and generator count, intended for the moderate
// degrees (hundreds) of coordinate-permutation groups, not for
// million-point permutation domains.
package perm
