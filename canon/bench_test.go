package canon_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/codecanon/canon"
	"github.com/katalvlaran/codecanon/gf"
	"github.com/katalvlaran/codecanon/gfmatrix"
)

func benchMatrix(b *testing.B, q int, rows [][]int) *gfmatrix.Matrix {
	b.Helper()
	f, err := gf.New(q)
	if err != nil {
		b.Fatal(err)
	}
	m, err := gfmatrix.FromRows(f, rows)
	if err != nil {
		b.Fatal(err)
	}

	return m
}

// BenchmarkCanonicalize_Hamming74 exercises a highly symmetric code
// (automorphism group of order 168), the pruning-heavy regime.
func BenchmarkCanonicalize_Hamming74(b *testing.B) {
	m := benchMatrix(b, 2, [][]int{
		{1, 0, 0, 0, 1, 1, 0},
		{0, 1, 0, 0, 1, 0, 1},
		{0, 0, 1, 0, 0, 1, 1},
		{0, 0, 0, 1, 1, 1, 1},
	})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := canon.Canonicalize(context.Background(), m); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCanonicalize_Monomial measures the monomial action with the
// scaling normalization on a ternary code.
func BenchmarkCanonicalize_Monomial(b *testing.B) {
	m := benchMatrix(b, 3, [][]int{
		{1, 0, 0, 1, 2, 1},
		{0, 1, 0, 2, 1, 1},
		{0, 0, 1, 1, 1, 2},
	})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		opts := []canon.Option{canon.WithAction(canon.MonomialAction)}
		if _, _, err := canon.Canonicalize(context.Background(), m, opts...); err != nil {
			b.Fatal(err)
		}
	}
}
