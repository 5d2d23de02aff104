package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/pipemaze/internal/testutil"
)

func intPtr(n int) *int { return &n }

func TestRun_Pass(t *testing.T) {
	for _, p := range testutil.AllPuzzles {
		t.Run(p.Name, func(t *testing.T) {
			s := &Scenario{
				Name:   p.Name,
				Grid:   p.Text,
				Expect: Expect{Enclosed: intPtr(p.Enclosed)},
			}
			if p.Farthest > 0 {
				s.Expect.Farthest = intPtr(p.Farthest)
			}

			result, err := Run(s)
			require.NoError(t, err)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
			assert.NotNil(t, result.Solution)
			assert.Empty(t, result.ErrorCode)
		})
	}
}

func TestRun_Mismatch(t *testing.T) {
	s := &Scenario{
		Name: "wrong",
		Grid: testutil.SmallSquare.Text,
		Expect: Expect{
			Farthest:   intPtr(5),
			Enclosed:   intPtr(1),
			LoopLength: intPtr(9),
			StartShape: "7",
		},
	}

	result, err := Run(s)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	assert.Equal(t, []string{
		"farthest: expected 5, got 4",
		"loop_length: expected 9, got 8",
		`start_shape: expected "7", got "F"`,
	}, result.Errors)
}

func TestRun_ExpectedError(t *testing.T) {
	tests := []struct {
		grid string
		code string
	}{
		{testutil.RaggedRows, "RAGGED_ROWS"},
		{testutil.NoStart, "MISSING_START"},
		{testutil.TwoStarts, "DUPLICATE_START"},
		{testutil.BrokenLoop, "NO_LOOP"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			result, err := Run(&Scenario{Name: tt.code, Grid: tt.grid, Expect: Expect{Error: tt.code}})
			require.NoError(t, err)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
			assert.Equal(t, tt.code, result.ErrorCode)
			assert.Nil(t, result.Solution)
		})
	}
}

func TestRun_WrongError(t *testing.T) {
	result, err := Run(&Scenario{Name: "x", Grid: testutil.BrokenLoop, Expect: Expect{Error: "MISSING_START"}})
	require.NoError(t, err)
	assert.False(t, result.Pass)
	assert.Equal(t, []string{"expected error MISSING_START, got NO_LOOP"}, result.Errors)
}

func TestRun_ExpectedErrorButSolved(t *testing.T) {
	result, err := Run(&Scenario{Name: "x", Grid: testutil.SmallSquare.Text, Expect: Expect{Error: "NO_LOOP"}})
	require.NoError(t, err)
	assert.False(t, result.Pass)
	assert.Equal(t, []string{"expected error NO_LOOP, puzzle solved"}, result.Errors)
}

func TestRun_UnexpectedError(t *testing.T) {
	result, err := Run(&Scenario{Name: "x", Grid: testutil.BrokenLoop, Expect: Expect{Enclosed: intPtr(1)}})
	require.NoError(t, err)
	assert.False(t, result.Pass)
	assert.Equal(t, []string{"unexpected error NO_LOOP"}, result.Errors)
}

func TestRun_GridNotLoaded(t *testing.T) {
	_, err := Run(&Scenario{Name: "x", GridFile: "x.txt", Expect: Expect{Enclosed: intPtr(1)}})
	assert.Error(t, err)
}
