package printer

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Style definitions for consistent console output across the application.
var (
	faintStyle = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // Red
)

// Render functions return styled strings without printing.

// Faint returns text with faint styling.
func Faint(text string) string {
	return faintStyle.Render(text)
}

// Error returns text with error (red) styling.
func Error(text string) string {
	return errorStyle.Render(text)
}

// Print functions write styled text to w with a newline. Callers pass
// stderr: stdout is reserved for the version line.

// PrintError prints text with error (red) styling.
func PrintError(w io.Writer, text string) {
	fmt.Fprintln(w, Error(text))
}

// PrintHint prints text with faint styling.
func PrintHint(w io.Writer, text string) {
	fmt.Fprintln(w, Faint(text))
}
