// Package matcalc is a small desktop matrix calculator: two 2×2 input grids,
// Add / Subtract / Multiply / Clear, and a read-only result grid rendered
// with two decimals.
//
// Under the hood it is organized into:
//
//	matrix/          Dense row-major matrix, validators, Add/Sub/Mul kernels (gonum-backed)
//	calc/            text→matrix parsing, the three operations, two-decimal formatting
//	calculator/      view-model: grid texts, triggers, user-facing error messages
//	config/          MATCALC_* environment configuration and the style record
//	ui/              fyne widgets bound to the view-model
//	cmd/matrixcalc   the executable
//
// Quick start:
//
//	go run ./cmd/matrixcalc
//	MATCALC_ROWS=3 MATCALC_COLS=3 go run ./cmd/matrixcalc
package matcalc
