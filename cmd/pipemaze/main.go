// Command pipemaze traces the loop in a pipe grid and counts the cells it
// encloses.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/pipemaze/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "pipemaze: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
