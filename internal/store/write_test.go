package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/pipemaze/internal/testutil"
)

func TestWriteSolve_AssignsIncreasingSeq(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	var last int64
	for i, p := range testutil.AllPuzzles[:4] {
		rec := createTestRecord(t, "run-"+p.Name, p)
		seq, inserted, err := s.WriteSolve(ctx, rec)
		require.NoError(t, err)
		assert.True(t, inserted)
		assert.Greater(t, seq, last, "write %d", i)
		last = seq
	}
}

func TestWriteSolve_IdempotentOnID(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	rec := createTestRecord(t, "run-1", testutil.SmallSquare)

	seq1, inserted, err := s.WriteSolve(ctx, rec)
	require.NoError(t, err)
	assert.True(t, inserted)

	seq2, inserted, err := s.WriteSolve(ctx, rec)
	require.NoError(t, err)
	assert.False(t, inserted)
	assert.Equal(t, seq1, seq2)

	records, err := s.ListSolves(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestWriteSolve_EmptyID(t *testing.T) {
	s := createTestStore(t)

	rec := createTestRecord(t, "", testutil.SmallSquare)
	_, _, err := s.WriteSolve(context.Background(), rec)
	assert.Error(t, err)
}

func TestWriteSolve_Concurrent(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	gen := NewFixedGenerator("a", "b", "c", "d", "e", "f", "g", "h")
	records := make([]SolveRecord, 8)
	for i := range records {
		records[i] = createTestRecord(t, gen.Generate(), testutil.SmallSquare)
	}

	var wg sync.WaitGroup
	for _, rec := range records {
		wg.Add(1)
		go func(rec SolveRecord) {
			defer wg.Done()
			_, _, err := s.WriteSolve(ctx, rec)
			assert.NoError(t, err)
		}(rec)
	}
	wg.Wait()

	got, err := s.ListSolves(ctx, 0)
	require.NoError(t, err)
	require.Len(t, got, 8)

	seen := make(map[int64]bool)
	for _, rec := range got {
		assert.False(t, seen[rec.Seq], "duplicate seq %d", rec.Seq)
		seen[rec.Seq] = true
	}
}
