package cli

import (
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/pipemaze/internal/testutil"
)

func TestHistory_ListsNewestFirst(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "pipemaze.db")
	a := writeFile(t, dir, "a.txt", testutil.SmallSquare.Text)
	b := writeFile(t, dir, "b.txt", testutil.TightSqueeze.Text)

	_, _, err := execute(t, "", "solve", "--db", db, a)
	require.NoError(t, err)
	_, _, err = execute(t, "", "solve", "--db", db, b)
	require.NoError(t, err)

	out, _, err := execute(t, "", "history", "--db", db, "--format", "json")
	require.NoError(t, err)
	_, history, _ := decodeResponse[HistoryResult](t, out)
	require.Len(t, history.Solves, 2)
	assert.Equal(t, b, history.Solves[0].Source)
	assert.Equal(t, 22, history.Solves[0].Farthest)
	assert.Equal(t, a, history.Solves[1].Source)
	assert.Greater(t, history.Solves[0].Seq, history.Solves[1].Seq)

	out, _, err = execute(t, "", "history", "--db", db, "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "SEQ")
	assert.Contains(t, out, b)
	assert.NotContains(t, out, a)
	assert.Regexp(t, regexp.MustCompile(`\d{4}-\d{2}-\d{2}T`), out)
}

func TestHistory_Empty(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "pipemaze.db")
	bad := writeFile(t, dir, "bad.txt", testutil.BrokenLoop)

	// A rejected puzzle is not recorded, but the database is created.
	_, _, err := execute(t, "", "solve", "--db", db, bad)
	require.Error(t, err)

	out, _, err := execute(t, "", "history", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "No solves recorded.\n", out)
}

func TestHistory_NoDatabase(t *testing.T) {
	_, _, err := execute(t, "", "history")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestHistory_MissingDatabase(t *testing.T) {
	_, _, err := execute(t, "", "history", "--db", filepath.Join(t.TempDir(), "missing.db"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "database not found")
}
