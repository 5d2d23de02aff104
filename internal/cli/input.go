package cli

import (
	"fmt"
	"io"
	"os"
)

// stdinPath names standard input in file arguments.
const stdinPath = "-"

// readPuzzle reads puzzle text from path, or from in when path is "-".
func readPuzzle(path string, in io.Reader) (string, error) {
	if path == stdinPath {
		data, err := io.ReadAll(in)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read puzzle: %w", err)
	}
	return string(data), nil
}

// checkStdinOnce rejects argument lists that read standard input twice.
func checkStdinOnce(files []string) error {
	n := 0
	for _, f := range files {
		if f == stdinPath {
			n++
		}
	}
	if n > 1 {
		return NewExitError(ExitCommandError, "standard input (-) may be given only once")
	}
	return nil
}
