package harness

import "fmt"

// EvaluateExpect compares a run against its expectations and returns one
// message per mismatch.
func EvaluateExpect(e Expect, r *Result) []string {
	var errs []string

	if e.Error != "" {
		switch {
		case r.ErrorCode == "":
			errs = append(errs, fmt.Sprintf("expected error %s, puzzle solved", e.Error))
		case r.ErrorCode != e.Error:
			errs = append(errs, fmt.Sprintf("expected error %s, got %s", e.Error, r.ErrorCode))
		}
		return errs
	}

	if r.ErrorCode != "" {
		return append(errs, fmt.Sprintf("unexpected error %s", r.ErrorCode))
	}

	res := r.Solution.Result
	errs = appendIntMismatch(errs, "farthest", e.Farthest, res.Farthest)
	errs = appendIntMismatch(errs, "enclosed", e.Enclosed, res.Enclosed)
	errs = appendIntMismatch(errs, "loop_length", e.LoopLength, res.LoopLength)
	if e.StartShape != "" && e.StartShape != res.StartShape {
		errs = append(errs, fmt.Sprintf("start_shape: expected %q, got %q", e.StartShape, res.StartShape))
	}

	return errs
}

func appendIntMismatch(errs []string, field string, want *int, got int) []string {
	if want == nil || *want == got {
		return errs
	}
	return append(errs, fmt.Sprintf("%s: expected %d, got %d", field, *want, got))
}
