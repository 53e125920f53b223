package harness

import (
	"fmt"
	"strings"

	"github.com/jonboulle/clockwork"

	"github.com/roach88/binclock/internal/display"
)

// Run renders a scenario and checks it against its expectations.
//
// The renderer reads a fake clock frozen at the scenario's time, so the
// result depends only on the scenario. Returns an error only when the
// scenario itself is unusable; failed checks are reported in Result.
func Run(scenario *Scenario) (*Result, error) {
	ts, err := scenario.ParseTime()
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	r := display.New(clockwork.NewFakeClockAt(ts))
	r.Update()

	result := NewResult()
	result.Formatted = r.Formatted()
	result.Frame = r.Frame()

	if len(scenario.Expect) > 0 {
		checkExpect(result, scenario.Expect)
	}

	for _, msg := range EvaluateAssertions(r, scenario.Assertions) {
		result.AddError(msg)
	}

	return result, nil
}

// checkExpect compares the frame line by line with the expected lines.
func checkExpect(result *Result, expect []string) {
	got := strings.Split(strings.TrimSuffix(result.Frame, "\n"), "\n")

	if len(got) != len(expect) {
		result.AddError(fmt.Sprintf("expect: frame has %d lines, want %d", len(got), len(expect)))
		return
	}

	for i := range expect {
		if got[i] != expect[i] {
			result.AddError(fmt.Sprintf("expect: line %d: got %q, want %q", i+1, got[i], expect[i]))
		}
	}
}
