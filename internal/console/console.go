// Package console decides how hdrver talks to the terminal: whether
// diagnostics are colored and how verbose the logger is.
package console

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// getenv is swapped in tests.
var getenv = os.Getenv

// ColorEnabled reports whether styled output should be written to w.
// Color is off when disabled is set, when NO_COLOR is present, or when w
// is not a terminal (redirected to a file, a pipe, a build log).
func ColorEnabled(w io.Writer, disabled bool) bool {
	if disabled || getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // G115: fd is a small value, no overflow risk
}

// SetNoColor switches the shared lipgloss renderer between plain ASCII and
// the color profile advertised by the environment.
func SetNoColor(noColor bool) {
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.NewOutput(os.Stderr).EnvColorProfile())
}

// NewLogger returns a stderr-style logger. Only warnings and errors are
// shown unless verbose is set.
func NewLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "hdrver",
		Level:  log.WarnLevel,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
