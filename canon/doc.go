// Package canon computes canonical forms and automorphism groups of
// linear codes over finite fields.
//
// A code is given by a full-row-rank k×n generator matrix over GF(q)
// (package gfmatrix). Two codes are equivalent when a coordinate
// permutation, optionally combined with per-coordinate non-zero scalars
// under the monomial action, maps one row space onto the other. The
// package answers the two classification questions at once:
//
//   - CanonicalForm returns a representative matrix that is identical
//     for all codes of one equivalence class (equality of canonical
//     forms decides equivalence), together with the coordinate
//     relabeling that reaches it.
//   - AutomorphismGroup returns a generating set of the stabilizer of
//     the code under the chosen action, its closure as a permutation
//     group (package perm), and the exact group order.
//
// Algorithm (partition backtracking / canonical augmentation):
//
//  1. Coordinates start in one cell of an ordered partition. The
//     partition is refined to its equitable fixed point under
//     coordinate invariants (codeword-spectrum and rank signatures,
//     pure functions of code + partition).
//  2. While the partition is not discrete, the leftmost smallest cell
//     of size > 1 is branched on: each coordinate of the cell is
//     individualized in turn and the child refined again.
//  3. A discrete partition is a column order; applying it to the code
//     and reducing to the fixed normal form (RREF, plus a canonical
//     column-scaling pass under the monomial action) yields a leaf
//     candidate. The smallest candidate seen is the canonical form;
//     leaves that tie with a previous leaf reveal automorphisms.
//  4. Discovered automorphisms prune the remaining search: at every
//     branching node only one representative per orbit of the target
//     cell (under generators fixing the branch's choices pointwise) is
//     explored. Pruned branches are images of explored ones, so neither
//     the canonical minimum nor any generator is lost.
//
// The search is single-goroutine and deterministic: identical inputs
// produce bit-identical canonical forms and generator lists. It is
// cooperative about cancellation: the context (and the optional soft
// time limit) is polled between branches, and ErrCancelled is returned
// together with the best-effort partial result.
//
// Worst-case cost is exponential in n (the problem is
// graph-isomorphism-hard); refinement and orbit pruning keep typical
// codes with hundreds of coordinates tractable.
package canon
