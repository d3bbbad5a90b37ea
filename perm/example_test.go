package perm_test

import (
	"fmt"

	"github.com/katalvlaran/codecanon/perm"
)

// ExampleGroup builds the symmetric group S3 from two generators and
// queries its order and a membership.
func ExampleGroup() {
	g, err := perm.NewGroup(3)
	if err != nil {
		fmt.Println("construction failed:", err)

		return
	}

	_, _ = g.Extend(perm.Perm{1, 0, 2}) // (0 1)
	_, _ = g.Extend(perm.Perm{1, 2, 0}) // (0 1 2)

	ok, _ := g.Contains(perm.Perm{2, 1, 0})
	fmt.Println("order:", g.Order())
	fmt.Println("contains (0 2):", ok)

	// Output:
	// order: 6
	// contains (0 2): true
}
