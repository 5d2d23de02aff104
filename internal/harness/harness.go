package harness

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/pipemaze/internal/solver"
)

// Result is the outcome of one scenario run.
type Result struct {
	// Pass is true when every expectation held.
	Pass bool `json:"pass"`

	// Errors describes each failed expectation.
	Errors []string `json:"errors,omitempty"`

	// Solution is set when the puzzle solved.
	Solution *solver.Solution `json:"-"`

	// ErrorCode is set when the puzzle was rejected.
	ErrorCode string `json:"error_code,omitempty"`
}

// NewResult creates a passing result.
func NewResult() *Result {
	return &Result{Pass: true, Errors: []string{}}
}

// AddError records a failed expectation and marks the result as failed.
func (r *Result) AddError(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
	r.Pass = false
}

// Run solves the scenario's puzzle and checks its expectations. The
// returned error is reserved for failures outside the puzzle itself; a
// rejected puzzle is reported through Result.
func Run(scenario *Scenario) (*Result, error) {
	if scenario.Grid == "" {
		return nil, fmt.Errorf("scenario %s: grid not loaded", scenario.Name)
	}

	s := solver.New(solver.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	result := NewResult()
	sol, err := s.SolveDetailed(scenario.Grid)
	if err != nil {
		code := solver.ErrorCode(err)
		if code == "" {
			return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
		}
		result.ErrorCode = code
	} else {
		result.Solution = sol
	}

	for _, msg := range EvaluateExpect(scenario.Expect, result) {
		result.AddError("%s", msg)
	}

	return result, nil
}
