package harness

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_ExpectAndAssertionsPass(t *testing.T) {
	scenario, err := LoadScenario(filepath.Join("testdata", "nine_oh_five.yaml"))
	require.NoError(t, err)

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Empty(t, result.Errors)
	assert.Equal(t, "090507", result.Formatted)
}

func TestRun_ExpectMismatchReportsLine(t *testing.T) {
	scenario := &Scenario{
		Name:        "wrong_row",
		Description: "row 01 is wrong",
		Time:        "09:05:07",
		Expect: []string{
			"     HH  MM  SS",
			"08:  .x  ..  ..",
			"04:  ..  .x  .x",
			"02:  ..  ..  .x",
			"01:  x.  x.  x.",
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "line 5")
}

func TestRun_AssertionFailures(t *testing.T) {
	scenario := &Scenario{
		Name:        "bad_assertions",
		Description: "both assertions are wrong",
		Time:        "12:34:56",
		Assertions: []Assertion{
			{Type: AssertColumnValue, Column: 0, Value: 2},
			{Type: AssertRowMarks, Weight: 4, Marks: "xxxxxx"},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], "Assertion failed: column_value")
	assert.Contains(t, result.Errors[0], "column 0 = 1")
	assert.Contains(t, result.Errors[1], "row 04 = ...xxx")
	assert.Contains(t, result.Errors[1], "Frame:")
}

func TestRun_InvalidTime(t *testing.T) {
	_, err := Run(&Scenario{Name: "bad", Description: "bad", Time: "25:00:00"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scenario bad")
}

func TestEvaluateAssertions_UnknownType(t *testing.T) {
	scenario := &Scenario{
		Name:        "unknown",
		Description: "unknown assertion type bypassing validation",
		Time:        "00:00:00",
		Assertions:  []Assertion{{Type: "frame_contains"}},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], `unknown assertion type "frame_contains"`)
}

func TestRunWithGolden_Scenarios(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		scenario, err := LoadScenario(file)
		require.NoError(t, err, file)

		t.Run(scenario.Name, func(t *testing.T) {
			require.NoError(t, RunWithGolden(t, scenario))
		})
	}
}
