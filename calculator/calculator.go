package calculator

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/katalvlaran/matcalc/calc"
)

// DefaultCellText is the text every input and result cell starts with.
const DefaultCellText = "0"

// Grid identifies one of the three grids held by a Calculator.
type Grid int

const (
	GridA Grid = iota
	GridB
	GridResult
)

var gridNames = [...]string{
	GridA:      "Matrix A",
	GridB:      "Matrix B",
	GridResult: "Result",
}

// String returns the grid's display label.
func (g Grid) String() string {
	if !g.valid() {
		return fmt.Sprintf("Grid(%d)", int(g))
	}

	return gridNames[g]
}

func (g Grid) valid() bool { return g >= GridA && g <= GridResult }

// Calculator holds the state of one calculator window.
type Calculator struct {
	rows, cols int
	grids      [3][][]string
	listeners  []func(Grid)
	logger     *log.Logger
}

// New returns a Calculator whose grids are rows×cols and filled with
// DefaultCellText.
func New(rows, cols int, opts ...Option) (*Calculator, error) {
	c := &Calculator{rows: rows, cols: cols, logger: discardLogger()}
	for _, opt := range opts {
		opt(c)
	}
	for g := range c.grids {
		grid, err := c.defaultGrid()
		if err != nil {
			return nil, fmt.Errorf("calculator.New(%d,%d): %w", rows, cols, err)
		}
		c.grids[g] = grid
	}

	return c, nil
}

// defaultGrid renders the zero matrix of the configured shape the way a
// freshly opened form shows it ("0" per cell).
func (c *Calculator) defaultGrid() ([][]string, error) {
	zero, err := calc.Reset(c.rows, c.cols)
	if err != nil {
		return nil, err
	}
	values := zero.ToRows()
	out := make([][]string, len(values))
	for i, row := range values {
		out[i] = make([]string, len(row))
		for j, v := range row {
			out[i][j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
	}

	return out, nil
}

// Dims returns the shape shared by all three grids.
func (c *Calculator) Dims() (rows, cols int) { return c.rows, c.cols }

// OnChange registers fn to be called with the grid that changed after any
// successful mutation. Listeners run in registration order.
func (c *Calculator) OnChange(fn func(Grid)) {
	c.listeners = append(c.listeners, fn)
}

func (c *Calculator) notify(grids ...Grid) {
	for _, g := range grids {
		for _, fn := range c.listeners {
			fn(g)
		}
	}
}

func (c *Calculator) checkCell(g Grid, i, j int) error {
	if !g.valid() {
		return fmt.Errorf("%v: %w", g, ErrUnknownGrid)
	}
	if i < 0 || i >= c.rows || j < 0 || j >= c.cols {
		return fmt.Errorf("%v (%d,%d): %w", g, i, j, ErrOutOfRange)
	}

	return nil
}

// Cell returns the text of cell (i, j) of grid g.
func (c *Calculator) Cell(g Grid, i, j int) (string, error) {
	if err := c.checkCell(g, i, j); err != nil {
		return "", err
	}

	return c.grids[g][i][j], nil
}

// SetCell stores text in cell (i, j) of an input grid. The text is kept
// verbatim; it is validated only when a trigger fires.
func (c *Calculator) SetCell(g Grid, i, j int, text string) error {
	if err := c.checkCell(g, i, j); err != nil {
		return err
	}
	if g == GridResult {
		return fmt.Errorf("%v: %w", g, ErrReadOnly)
	}
	if c.grids[g][i][j] == text {
		return nil
	}
	c.grids[g][i][j] = text
	c.notify(g)

	return nil
}

// Grid returns a copy of every cell text of g.
func (c *Calculator) Grid(g Grid) ([][]string, error) {
	if !g.valid() {
		return nil, fmt.Errorf("%v: %w", g, ErrUnknownGrid)
	}
	src := c.grids[g]
	out := make([][]string, len(src))
	for i := range src {
		out[i] = append([]string(nil), src[i]...)
	}

	return out, nil
}

// Result returns a copy of the result grid.
func (c *Calculator) Result() [][]string {
	out, _ := c.Grid(GridResult)

	return out
}

// Add replaces the result with A + B.
func (c *Calculator) Add() error { return c.run(calc.OpAdd) }

// Subtract replaces the result with A − B.
func (c *Calculator) Subtract() error { return c.run(calc.OpSubtract) }

// Multiply replaces the result with the matrix product A × B.
func (c *Calculator) Multiply() error { return c.run(calc.OpMultiply) }

// Run fires the trigger for op.
func (c *Calculator) Run(op calc.Operation) error { return c.run(op) }

// run computes op over both inputs and, only if every step succeeded, swaps
// in the formatted result. Success means "both grids parsed"; an all-zero
// result is displayed like any other.
func (c *Calculator) run(op calc.Operation) error {
	res, err := calc.Compute(op, c.grids[GridA], c.grids[GridB])
	if err != nil {
		var oe *calc.OperandError
		if errors.As(err, &oe) && errors.Is(err, calc.ErrParse) {
			err = fmt.Errorf("%v: %w: %w", operandGrid(oe.Operand), ErrInvalidInput, oe.Err)
		}
		return c.reject(op, err)
	}

	c.grids[GridResult] = res
	c.notify(GridResult)

	return nil
}

func operandGrid(o calc.Operand) Grid {
	if o == calc.OperandB {
		return GridB
	}

	return GridA
}

func (c *Calculator) reject(op calc.Operation, err error) error {
	err = fmt.Errorf("%v: %w", op, err)
	c.logger.Printf("rejected: %v", err)

	return err
}

// Clear resets both inputs and the result to DefaultCellText in every cell.
func (c *Calculator) Clear() {
	for g := range c.grids {
		c.grids[g], _ = c.defaultGrid() // shape was validated by New
	}
	c.notify(GridA, GridB, GridResult)
}
