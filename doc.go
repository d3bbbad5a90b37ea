// Package codecanon computes canonical forms and automorphism groups of
// linear codes over finite fields: the classification toolkit for
// deciding when two generator matrices describe the same code up to
// coordinate permutation, optionally combined with column scaling.
//
// 🚀 What is codecanon?
//
//	A deterministic, pure-Go engine built from four subpackages:
//		• gf/       — arithmetic in GF(q) for prime powers q (tables, no allocation per op)
//		• gfmatrix/ — dense matrices over GF(q): RREF, rank, row-space tests, monomial maps
//		• perm/     — permutations, orbits and stabilizer-chain groups (membership, order)
//		• canon/    — the canonicalization search itself (partition refinement,
//		              individualization, orbit pruning, scaling normalization)
//
// ✨ Why choose codecanon?
//
//   - Certified answers – equality of canonical forms decides code
//     equivalence; group orders are exact (math/big)
//   - Deterministic – identical inputs give bit-identical outputs, no
//     randomness, no goroutines
//   - Cooperative – context cancellation and soft time limits with
//     best-effort partial results
//   - Extensible – seed known automorphisms, tune the refinement
//     invariant, trace the search with a structured logger
//
// Quick example:
//
//	f, _ := gf.New(2)
//	m, _ := gfmatrix.FromRows(f, [][]int{{1, 1, 1, 1}})
//	cr, gr, _ := canon.Canonicalize(context.Background(), m)
//	// gr.Order == 24: every coordinate permutation fixes the repetition code.
//	// cr.Form is the canonical representative of its equivalence class.
//
// Start with canon.CanonicalForm and canon.AutomorphismGroup; the other
// packages stand on their own for finite-field linear algebra and
// permutation-group work.
package codecanon
