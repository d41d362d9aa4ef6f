// Package calculator is the view-model of the matrix calculator window.
//
// A Calculator owns the text of the two input grids ("Matrix A", "Matrix B")
// and of the read-only result grid. The presentation layer never keeps its
// own copy of the numbers: it writes what the user types with SetCell, reads
// back with Cell/Grid, and fires the Add, Subtract, Multiply and Clear
// triggers. A failed trigger leaves every grid exactly as it was and returns
// an error whose UserMessage is the text to show in the blocking dialog.
//
// A Calculator is not safe for concurrent use; it is meant to be driven from
// the single UI event goroutine.
package calculator
