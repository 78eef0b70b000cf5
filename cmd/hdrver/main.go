package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/libtcod/hdrver/internal/cli"
	"github.com/libtcod/hdrver/internal/config"
	"github.com/libtcod/hdrver/internal/core"
	"github.com/libtcod/hdrver/internal/parser"
	"github.com/libtcod/hdrver/internal/printer"
)

// Exit codes. Build scripts can tell a missing header from one whose
// layout no longer matches the contract.
const (
	exitOK              = 0
	exitFailure         = 1
	exitFileAccess      = 3
	exitPatternMismatch = 4
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run executes the CLI and maps the outcome to a process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if err := runCLI(args, stdout, stderr); err != nil {
		reportError(stderr, err)
		return exitCode(err)
	}
	return exitOK
}

func runCLI(args []string, stdout, stderr io.Writer) error {
	app := cli.New(core.NewOSFileSystem())
	app.Writer = stdout
	app.ErrWriter = stderr
	return app.Run(context.Background(), cli.NormalizeArgs(app, args))
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, parser.ErrFileAccess):
		return exitFileAccess
	case errors.Is(err, parser.ErrPatternMismatch):
		return exitPatternMismatch
	default:
		return exitFailure
	}
}

// reportError writes the diagnostic and, for the two header failures, a
// hint on how to fix it.
func reportError(w io.Writer, err error) {
	printer.PrintError(w, "Error: "+err.Error())

	var mismatch *parser.PatternMismatchError
	switch {
	case errors.As(err, &mismatch):
		printer.PrintHint(w, fmt.Sprintf("hint: contract %s expects #define %s in this order",
			mismatch.Contract, strings.Join(mismatch.Contract.Macros(), ", then ")))
	case errors.Is(err, parser.ErrFileAccess):
		printer.PrintHint(w, fmt.Sprintf("hint: point to the header with --header, %s or the 'header' key in %s",
			config.EnvHeader, config.DefaultYAMLFile))
	}
}
