package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/matcalc/matrix"
)

// ExampleMul multiplies two 2×2 matrices.
func ExampleMul() {
	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.NewDenseFromRows([][]float64{{5, 6}, {7, 8}})

	p, err := matrix.Mul(a, b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(p.(*matrix.Dense).ToRows())

	// Output:
	// [[19 22] [43 50]]
}

// ExampleAdd shows the error surfaced for incompatible shapes.
func ExampleAdd() {
	a, _ := matrix.NewDense(2, 2)
	b, _ := matrix.NewDense(2, 3)

	_, err := matrix.Add(a, b)
	fmt.Println(err)

	// Output:
	// Add: ValidateBinarySameShape: ValidateSameShape: cols 2 != 3: matrix: dimension mismatch
}
