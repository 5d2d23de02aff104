package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/pipemaze/internal/testutil"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "pipemaze", cmd.Use)
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"solve", "validate", "render", "test", "history"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	configFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "", configFlag.DefValue)
}

func TestInvalidFormat(t *testing.T) {
	path := writeFile(t, t.TempDir(), "p.txt", testutil.SmallSquare.Text)

	_, _, err := execute(t, "", "solve", "--format", "xml", path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "invalid format")
}

func TestConfigFile_SetsFormat(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "p.txt", testutil.SmallSquare.Text)
	cfg := writeFile(t, dir, "pipemaze.cue", `format: "json"`)

	out, _, err := execute(t, "", "solve", "--config", cfg, path)
	require.NoError(t, err)

	status, report, _ := decodeResponse[SolveReport](t, out)
	assert.Equal(t, "ok", status)
	assert.Equal(t, 1, report.Solved)
}

func TestConfigFile_FlagWins(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "p.txt", testutil.SmallSquare.Text)
	cfg := writeFile(t, dir, "pipemaze.cue", `format: "json"`)

	out, _, err := execute(t, "", "solve", "--config", cfg, "--format", "text", path)
	require.NoError(t, err)
	assert.Equal(t, path+": farthest=4 enclosed=1\n", out)
}

func TestConfigFile_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "p.txt", testutil.SmallSquare.Text)
	cfg := writeFile(t, dir, "pipemaze.cue", `workers: 0`)

	_, _, err := execute(t, "", "solve", "--config", cfg, path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "invalid config")
}

func TestConfigFile_VerboseLogsToStderr(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "p.txt", testutil.SmallSquare.Text)
	cfg := writeFile(t, dir, "pipemaze.cue", "verbose: true\nformat: \"json\"\n")

	out, errOut, err := execute(t, "", "solve", "--config", cfg, path)
	require.NoError(t, err)
	assert.Contains(t, errOut, "puzzle solved")
	assert.NotContains(t, out, "puzzle solved")
}
