// Package harness runs render scenarios against the clock display.
//
// A scenario pins the clock to a fixed time and states what the frame must
// look like. The harness renders the frame with a fake clock, so results are
// identical on every machine.
//
// # Scenario Format
//
// Scenarios are YAML files:
//
//	name: nine_oh_five
//	description: "Mixed digits, one of them a 9"
//	time: "09:05:07"
//	expect:
//	  - "     HH  MM  SS"
//	  - "08:  .x  ..  .."
//	  - "04:  ..  .x  .x"
//	  - "02:  ..  ..  .x"
//	  - "01:  .x  .x  .x"
//	assertions:
//	  - type: column_value
//	    column: 1
//	    value: 9
//	  - type: row_marks
//	    weight: 1
//	    marks: ".x.x.x"
//
// expect and assertions are both optional. A scenario with neither is only
// checked against its golden file.
//
// # Assertion Types
//
//   - column_value: the digit column at index column (0 = tens of hour) decodes to value
//   - row_marks: the row for weight shows marks, cells only, without group gaps
//
// # Golden Files
//
// RunWithGolden compares the frame against testdata/golden/{name}.golden.
// Regenerate with:
//
//	go test ./internal/harness -update
package harness
