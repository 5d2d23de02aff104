package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/pipemaze/internal/testutil"
)

func TestLatestSolve_NotFound(t *testing.T) {
	s := createTestStore(t)

	_, found, err := s.LatestSolve(context.Background(), "no-such-puzzle")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestLatestSolve_ReturnsNewest(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	first := createTestRecord(t, "run-1", testutil.SmallSquare)
	other := createTestRecord(t, "run-2", testutil.Squiggle)
	second := createTestRecord(t, "run-3", testutil.SmallSquare)
	second.Source = "copy.txt"

	for _, rec := range []SolveRecord{first, other, second} {
		_, _, err := s.WriteSolve(ctx, rec)
		require.NoError(t, err)
	}

	got, found, err := s.LatestSolve(ctx, first.PuzzleID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "run-3", got.ID)
	assert.Equal(t, "copy.txt", got.Source)
	assert.Equal(t, int64(3), got.Seq)
}

func TestReadSolve_RoundTrip(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	rec := createTestRecord(t, "run-1", testutil.OpenSqueeze)
	seq, _, err := s.WriteSolve(ctx, rec)
	require.NoError(t, err)
	rec.Seq = seq

	got, err := s.ReadSolve(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, rec, got)
	assert.NoError(t, got.Verify())
	assert.Equal(t, testutil.OpenSqueeze.Farthest, got.Result().Farthest)
	assert.Equal(t, testutil.OpenSqueeze.Enclosed, got.Result().Enclosed)
}

func TestReadSolve_NotFound(t *testing.T) {
	s := createTestStore(t)

	_, err := s.ReadSolve(context.Background(), "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestListSolves_NewestFirstWithLimit(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"run-1", "run-2", "run-3"} {
		_, _, err := s.WriteSolve(ctx, createTestRecord(t, id, testutil.Squiggle))
		require.NoError(t, err)
	}

	all, err := s.ListSolves(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"run-3", "run-2", "run-1"}, []string{all[0].ID, all[1].ID, all[2].ID})

	two, err := s.ListSolves(ctx, 2)
	require.NoError(t, err)
	require.Len(t, two, 2)
	assert.Equal(t, "run-3", two[0].ID)
}

func TestListSolves_EmptyIsNotNil(t *testing.T) {
	s := createTestStore(t)

	records, err := s.ListSolves(context.Background(), 10)
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}
