// Package calc is the arithmetic contract behind the matrix calculator:
// it turns grids of user-typed text into matrices, adds, subtracts or
// multiplies them, and renders the result with two decimal places.
//
// ⚙️ Usage:
//
//	a, err := calc.Parse([][]string{{"1", "2"}, {"3", "4"}})
//	if err != nil {
//		// *calc.ParseError; errors.Is(err, calc.ErrParse) == true
//	}
//	b, _ := calc.Parse([][]string{{"5", "6"}, {"7", "8"}})
//	p, _ := calc.Multiply(a, b)
//	calc.FormatMatrix(p) // [["19.00" "22.00"] ["43.00" "50.00"]]
//
// Every function is pure. A failed call never yields a partial matrix.
package calc
