package bcd

import "fmt"

// Rows is the number of bits in a column.
const Rows = 4

// MaxDigit is the largest digit a column accepts.
const MaxDigit = 9

// Column is the binary form of one decimal digit, indexed by display row.
type Column struct {
	cells [Rows]bool
}

// Weight returns the bit weight displayed on row.
func Weight(row int) int {
	return 1 << (Rows - 1 - row)
}

// Update decomposes digit into the column's cells, most significant bit first.
//
// Panics if digit is outside [0, MaxDigit]. Digits come from a formatted
// clock reading, so anything else is a bug in the caller.
func (c *Column) Update(digit int) {
	if digit < 0 || digit > MaxDigit {
		panic(fmt.Sprintf("bcd: digit %d out of range [0,%d]", digit, MaxDigit))
	}

	remaining := digit
	for row := 0; row < Rows; row++ {
		w := Weight(row)
		if remaining >= w {
			c.cells[row] = true
			remaining -= w
		} else {
			c.cells[row] = false
		}
	}
}

// Cell reports whether the bit on row is set.
func (c Column) Cell(row int) bool {
	return c.cells[row]
}

// Cells returns a copy of all four cells in row order.
func (c Column) Cells() [Rows]bool {
	return c.cells
}

// Value returns the weighted sum of the set cells.
func (c Column) Value() int {
	v := 0
	for row, set := range c.cells {
		if set {
			v += Weight(row)
		}
	}
	return v
}
