package harness

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/pipemaze/internal/ir"
	"github.com/roach88/pipemaze/internal/render"
)

// GoldenDir is where golden files live, relative to the package under test.
const GoldenDir = "testdata/scenarios/golden"

// Snapshot builds a scenario's golden content: a canonical JSON header line
// with the answers, followed by the Unicode rendering of the loop when the
// puzzle solved.
//
// The puzzle ID is left out of the header so that reformatting a grid file
// does not churn its golden file.
func Snapshot(scenario *Scenario, result *Result) ([]byte, error) {
	header := map[string]any{
		"scenario_name": scenario.Name,
	}
	if result.ErrorCode != "" {
		header["error"] = result.ErrorCode
	}
	if sol := result.Solution; sol != nil {
		res := sol.Result
		header["width"] = res.Width
		header["height"] = res.Height
		header["start"] = []any{res.Start.X, res.Start.Y}
		header["start_shape"] = res.StartShape
		header["loop_length"] = res.LoopLength
		header["farthest"] = res.Farthest
		header["enclosed"] = res.Enclosed
	}

	line, err := ir.MarshalCanonical(header)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}

	var buf bytes.Buffer
	buf.Write(line)
	buf.WriteByte('\n')
	if result.Solution != nil {
		buf.WriteString(render.String(result.Solution, render.Unicode))
	}
	return buf.Bytes(), nil
}

// RunWithGolden runs scenario, fails t on unmet expectations, and compares
// its snapshot against GoldenDir/<name>.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}
	for _, msg := range result.Errors {
		t.Errorf("%s: %s", scenario.Name, msg)
	}

	return AssertGolden(t, scenario, result)
}

// AssertGolden compares an existing result against its golden file.
func AssertGolden(t *testing.T, scenario *Scenario, result *Result) error {
	t.Helper()

	snapshot, err := Snapshot(scenario, result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir(GoldenDir),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, snapshot)

	return nil
}
