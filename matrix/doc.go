// Package matrix provides a small dense float64 matrix and the elementary
// linear-algebra kernels the calculator is built on.
//
// The matrix package provides:
//
//   - Dense: a row-major R×C container with bounds-checked At/Set that return
//     errors instead of panicking, plus a finite-only numeric policy.
//   - Add, Sub and Mul kernels with strict shape validation. When both operands
//     are *Dense the arithmetic runs on gonum's mat.Dense over the shared
//     backing slice; other Matrix implementations use a fixed i→j(→k) loop.
//   - Constructors for neutral elements (NewZeros, NewIdentity) and for
//     row-slice input (NewDenseFromRows), and AllClose for tolerant comparison.
//
// Every user-triggered failure is reported through a package sentinel
// (ErrDimensionMismatch, ErrInvalidDimensions, ...) wrapped with an operation
// tag, so callers match with errors.Is:
//
//	c, err := matrix.Mul(a, b)
//	if errors.Is(err, matrix.ErrDimensionMismatch) {
//		// a.Cols() != b.Rows()
//	}
//
// Kernels never mutate their operands and always allocate a fresh *Dense.
package matrix
