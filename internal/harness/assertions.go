package harness

import (
	"fmt"
	"strings"

	"github.com/roach88/binclock/internal/bcd"
	"github.com/roach88/binclock/internal/display"
)

// AssertionError is returned when an assertion fails.
// It includes the frame to help debug the failure.
type AssertionError struct {
	Type     string // Assertion type for categorization
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
	Frame    string // Rendered frame for context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	if e.Frame != "" {
		fmt.Fprintf(&buf, "\nFrame:\n%s", e.Frame)
	}

	return buf.String()
}

// assertColumnValue checks that a digit column decodes to the expected value.
func assertColumnValue(r *display.Renderer, assertion Assertion) error {
	got := r.Column(assertion.Column).Value()
	if got == assertion.Value {
		return nil
	}
	return &AssertionError{
		Type:     AssertColumnValue,
		Expected: fmt.Sprintf("column %d = %d", assertion.Column, assertion.Value),
		Actual:   fmt.Sprintf("column %d = %d", assertion.Column, got),
		Frame:    r.Frame(),
	}
}

// assertRowMarks checks the cells of one weight row, ignoring group gaps.
func assertRowMarks(r *display.Renderer, assertion Assertion) error {
	row := rowForWeight(assertion.Weight)

	var marks strings.Builder
	for col := 0; col < display.Digits; col++ {
		if r.Column(col).Cell(row) {
			marks.WriteByte('x')
		} else {
			marks.WriteByte('.')
		}
	}

	if marks.String() == assertion.Marks {
		return nil
	}
	return &AssertionError{
		Type:     AssertRowMarks,
		Expected: fmt.Sprintf("row %02d = %s", assertion.Weight, assertion.Marks),
		Actual:   fmt.Sprintf("row %02d = %s", assertion.Weight, marks.String()),
		Frame:    r.Frame(),
	}
}

// rowForWeight maps a bit weight to its display row, or -1.
func rowForWeight(w int) int {
	for row := 0; row < bcd.Rows; row++ {
		if bcd.Weight(row) == w {
			return row
		}
	}
	return -1
}

// EvaluateAssertions evaluates all assertions against the renderer state.
// Returns a slice of error messages for failed assertions.
func EvaluateAssertions(r *display.Renderer, assertions []Assertion) []string {
	var errors []string

	for i, assertion := range assertions {
		var err error

		switch assertion.Type {
		case AssertColumnValue:
			err = assertColumnValue(r, assertion)
		case AssertRowMarks:
			if rowForWeight(assertion.Weight) < 0 {
				err = fmt.Errorf("assertion[%d]: weight %d is not a row weight", i, assertion.Weight)
			} else {
				err = assertRowMarks(r, assertion)
			}
		default:
			err = fmt.Errorf("assertion[%d]: unknown assertion type %q", i, assertion.Type)
		}

		if err != nil {
			errors = append(errors, err.Error())
		}
	}

	return errors
}
