// Package gfmatrix provides dense matrices over finite fields GF(q).
//
// It is the linear-algebra substrate for code canonicalization:
//
//   - Construction from validated row data (FromRows) or zero-filled
//     shapes (New), always bound to a *gf.Field.
//   - Reduced row echelon form (RowReduce), Rank, and row-space equality
//     (RowSpaceEqual), the normal form that makes two generator matrices
//     of the same code bit-identical.
//   - Column actions: PermuteColumns and ApplyMonomial (permutation plus
//     per-position non-zero scalars).
//   - A total order on matrices (Compare): shape, then row-major
//     lexicographic comparison of element encodings.
//
// All operations are deterministic and side-effect free: methods never
// mutate their receiver, they return fresh matrices. Errors are strict
// package sentinels checked via errors.Is; indexers return ErrOutOfRange
// rather than panicking.
//
// Complexity: RowReduce and RowSpaceEqual are O(r·c·min(r,c)) field
// operations; everything else is O(r·c) or cheaper.
package gfmatrix
