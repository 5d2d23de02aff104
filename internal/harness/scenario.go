package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scenario is one puzzle with its expected answers.
type Scenario struct {
	// Name identifies the scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario covers.
	Description string `yaml:"description"`

	// Grid is the puzzle text, inline.
	Grid string `yaml:"grid,omitempty"`

	// GridFile is a path to the puzzle text, relative to the scenario file.
	// Exactly one of Grid and GridFile must be set.
	GridFile string `yaml:"grid_file,omitempty"`

	// Expect lists the answers to check.
	Expect Expect `yaml:"expect"`
}

// Expect holds expected solve output. Unset fields are not checked.
type Expect struct {
	Farthest   *int   `yaml:"farthest,omitempty"`
	Enclosed   *int   `yaml:"enclosed,omitempty"`
	LoopLength *int   `yaml:"loop_length,omitempty"`
	StartShape string `yaml:"start_shape,omitempty"`

	// Error is the error code the solve must fail with. It excludes every
	// other field.
	Error string `yaml:"error,omitempty"`
}

func (e Expect) empty() bool {
	return e.Farthest == nil && e.Enclosed == nil && e.LoopLength == nil &&
		e.StartShape == "" && e.Error == ""
}

// Error codes a scenario may expect.
var knownErrorCodes = map[string]bool{
	"EMPTY_GRID":       true,
	"RAGGED_ROWS":      true,
	"MISSING_START":    true,
	"DUPLICATE_START":  true,
	"NO_LOOP":          true,
	"UNRESOLVED_START": true,
}

// LoadScenario reads and validates a scenario file. A grid_file reference
// is read immediately and stored in Grid.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	scenario, err := ParseScenario(data)
	if err != nil {
		return nil, err
	}

	if scenario.GridFile != "" {
		gridPath := scenario.GridFile
		if !filepath.IsAbs(gridPath) {
			gridPath = filepath.Join(filepath.Dir(path), gridPath)
		}
		text, err := os.ReadFile(gridPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read grid file: %w", err)
		}
		scenario.Grid = string(text)
	}

	return scenario, nil
}

// ParseScenario decodes and validates scenario YAML. grid_file is checked
// for presence only.
func ParseScenario(data []byte) (*Scenario, error) {
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

func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	switch {
	case s.Grid == "" && s.GridFile == "":
		return fmt.Errorf("one of grid or grid_file is required")
	case s.Grid != "" && s.GridFile != "":
		return fmt.Errorf("grid and grid_file are mutually exclusive")
	}

	return validateExpect(s.Expect)
}

func validateExpect(e Expect) error {
	if e.empty() {
		return fmt.Errorf("expect must name at least one field")
	}

	if e.Error != "" {
		if !knownErrorCodes[e.Error] {
			return fmt.Errorf("expect.error: unknown error code %q", e.Error)
		}
		if e.Farthest != nil || e.Enclosed != nil || e.LoopLength != nil || e.StartShape != "" {
			return fmt.Errorf("expect.error excludes every other expect field")
		}
		return nil
	}

	for field, v := range map[string]*int{
		"farthest":    e.Farthest,
		"enclosed":    e.Enclosed,
		"loop_length": e.LoopLength,
	} {
		if v != nil && *v < 0 {
			return fmt.Errorf("expect.%s must be non-negative", field)
		}
	}

	if s := e.StartShape; s != "" && len([]rune(s)) != 1 {
		return fmt.Errorf("expect.start_shape must be a single tile, got %q", s)
	}

	return nil
}
