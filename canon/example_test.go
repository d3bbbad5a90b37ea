package canon_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/codecanon/canon"
	"github.com/katalvlaran/codecanon/gf"
	"github.com/katalvlaran/codecanon/gfmatrix"
	"github.com/katalvlaran/codecanon/perm"
)

// ExampleCanonicalize computes the automorphism group of the binary
// repetition code of length four: every coordinate permutation fixes
// it, so the group is the full symmetric group S_4.
func ExampleCanonicalize() {
	f, _ := gf.New(2)
	m, _ := gfmatrix.FromRows(f, [][]int{{1, 1, 1, 1}})

	cr, gr, err := canon.Canonicalize(context.Background(), m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("order:", gr.Order)
	fmt.Println("canonical form unchanged:", cr.Form.Equal(m))
	// Output:
	// order: 24
	// canonical form unchanged: true
}

// ExampleCanonicalForm decides equivalence of two codes by comparing
// canonical forms: the second matrix is the first with its coordinates
// shuffled, so both sit in the same equivalence class.
func ExampleCanonicalForm() {
	f, _ := gf.New(3)
	a, _ := gfmatrix.FromRows(f, [][]int{
		{1, 0, 2, 1},
		{0, 1, 1, 2},
	})
	shuffle := canon.Aut{Perm: perm.Perm{2, 0, 3, 1}}
	b, _ := shuffle.ApplyTo(a)

	ca, _ := canon.CanonicalForm(context.Background(), a)
	cb, _ := canon.CanonicalForm(context.Background(), b)
	fmt.Println("equivalent:", ca.Form.Equal(cb.Form))
	// Output:
	// equivalent: true
}
