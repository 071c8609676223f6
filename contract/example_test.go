package contract_test

import (
	"fmt"

	"github.com/katalvlaran/lvtensor/contract"
	"github.com/katalvlaran/lvtensor/tensor"
)

// ExampleMultiply contracts two rank-3 tensors over two Cayley indices.
func ExampleMultiply() {
	a := tensor.MustNew(3)
	_ = a.Set([]int{0, 0, 0}, 1)
	_ = a.Set([]int{0, 0, 1}, 2)
	b := tensor.MustNew(3)
	_ = b.Set([]int{0, 0, 0}, 3)
	_ = b.Set([]int{1, 0, 0}, 4)

	out, err := contract.Multiply(a, b, contract.Cayley2)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(out.Rank(), out.Entries())
	// Output: 2 [{[0 0] 3}]
}

// ExampleLookup shows the kernel chosen for a method and rank pair.
func ExampleLookup() {
	k, err := contract.Lookup(contract.Mixed, 4, 3)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(k, k.Aggregation(), contract.Mixed.Describe())
	// Output: mixed[4x3->4] sum (1,1)-convolved product, mixed indices
}
