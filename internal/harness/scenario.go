package harness

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/roach88/binclock/internal/bcd"
	"github.com/roach88/binclock/internal/display"
)

// Scenario pins the clock to one time and describes the expected frame.
type Scenario struct {
	// Name uniquely identifies this scenario. Also names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario covers.
	Description string `yaml:"description"`

	// Time is the local wall-clock reading, HH:MM:SS.
	Time string `yaml:"time"`

	// Expect holds the exact frame lines, header first. Optional.
	Expect []string `yaml:"expect,omitempty"`

	// Assertions are targeted checks on the renderer state. Optional.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Assertion checks one aspect of a rendered scenario.
type Assertion struct {
	// Type is column_value or row_marks.
	Type string `yaml:"type"`

	// Column is the digit index (used by column_value).
	Column int `yaml:"column,omitempty"`

	// Value is the expected decoded digit (used by column_value).
	Value int `yaml:"value,omitempty"`

	// Weight selects the row by bit weight (used by row_marks).
	Weight int `yaml:"weight,omitempty"`

	// Marks is the expected row, six x/. characters (used by row_marks).
	Marks string `yaml:"marks,omitempty"`
}

// Assertion type constants.
const (
	AssertColumnValue = "column_value"
	AssertRowMarks    = "row_marks"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML from memory.
func ParseScenario(data []byte) (*Scenario, error) {
	// Strict field validation catches typos like "assertion:" vs "assertions:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// ParseTime returns the scenario's time on 2000-01-01 in the local zone.
func (s *Scenario) ParseTime() (time.Time, error) {
	t, err := time.ParseInLocation(display.ClockLayout, s.Time, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("time %q: %w", s.Time, err)
	}
	return time.Date(2000, time.January, 1, t.Hour(), t.Minute(), t.Second(), 0, time.Local), nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Time == "" {
		return fmt.Errorf("time is required")
	}
	if _, err := s.ParseTime(); err != nil {
		return err
	}

	if len(s.Expect) > 0 && len(s.Expect) != 1+bcd.Rows {
		return fmt.Errorf("expect must have %d lines, got %d", 1+bcd.Rows, len(s.Expect))
	}

	for i, a := range s.Assertions {
		switch a.Type {
		case AssertColumnValue:
			if a.Column < 0 || a.Column >= display.Digits {
				return fmt.Errorf("assertions[%d]: column %d out of range [0,%d)", i, a.Column, display.Digits)
			}
		case AssertRowMarks:
			if rowForWeight(a.Weight) < 0 {
				return fmt.Errorf("assertions[%d]: weight %d is not one of 8, 4, 2, 1", i, a.Weight)
			}
			if len(a.Marks) != display.Digits {
				return fmt.Errorf("assertions[%d]: marks must be %d characters", i, display.Digits)
			}
		case "":
			return fmt.Errorf("assertions[%d]: type is required", i)
		default:
			return fmt.Errorf("assertions[%d]: unknown assertion type %q", i, a.Type)
		}
	}

	return nil
}
