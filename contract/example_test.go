package contract_test

import (
	"fmt"

	"github.com/katalvlaran/wick/contract"
)

// ExampleAll lists the three matchings of four positions.
func ExampleAll() {
	for c := range contract.All(4) {
		fmt.Println(c)
	}
	// Output:
	// (0,1)(2,3)
	// (0,2)(1,3)
	// (0,3)(1,2)
}

// ExampleValid shows pruning on <Φ_i^a| f |Φ_j^b>.
func ExampleValid() {
	s := singlesString()
	for c := range contract.Valid(s) {
		fmt.Println(c, c.Labels(len(s)))
	}
	// Output:
	// (0,3)(1,4)(2,5) [1 2 3 1 2 3]
	// (0,5)(1,2)(3,4) [1 2 2 3 3 1]
}
