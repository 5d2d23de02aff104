package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/pipemaze/internal/solver"
	"github.com/roach88/pipemaze/internal/testutil"
)

// createTestStore opens a fresh database in a temp directory.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestRecord solves p and wraps the result in a record with run ID id.
func createTestRecord(t *testing.T, id string, p testutil.Puzzle) SolveRecord {
	t.Helper()
	result, err := solver.Solve(p.Text)
	require.NoError(t, err)
	rec, err := NewSolveRecord(id, p.Name+".txt", result)
	require.NoError(t, err)
	return rec
}
