// Command paramgen prints Go struct fields for a parameter table copied from
// API documentation.
//
// Usage:
//
//	paramgen generate params.csv
//	paramgen generate --name Basic --types types.yaml params.txt
//	paramgen template csv
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	app := App()
	app.Writer = stdout
	app.ErrWriter = stderr
	app.ExitErrHandler = func(*cli.Context, error) {}

	err := app.Run(args)
	if err == nil {
		return 0
	}

	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		if msg := exitErr.Error(); msg != "" {
			fmt.Fprintf(stderr, "Error: %s\n", msg)
		}
		return exitErr.ExitCode()
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)
	return 1
}
