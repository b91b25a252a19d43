package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// User-facing output functions with status indicators.
// These write to Stdout/Stderr directly for CLI output,
// separate from the structured debug logging.

var (
	// Stdout receives UserInfo and UserSuccess output.
	Stdout io.Writer = os.Stdout

	// Stderr receives UserWarning and UserError output.
	Stderr io.Writer = os.Stderr
)

// SetOutput redirects user-facing output. A nil writer restores the
// corresponding os stream.
func SetOutput(stdout, stderr io.Writer) {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	Stdout = stdout
	Stderr = stderr
}

// indicator renders a status symbol for w. Colors are only emitted when w
// is a terminal.
func indicator(w io.Writer, symbol string, color string) string {
	return lipgloss.NewRenderer(w).NewStyle().
		Foreground(lipgloss.Color(color)).
		Bold(true).
		Render(symbol)
}

func userf(w io.Writer, symbol, color, format string, args ...interface{}) {
	fmt.Fprintf(w, indicator(w, symbol, color)+" "+format+"\n", args...)
}

// UserInfo prints an info message to stdout.
func UserInfo(format string, args ...interface{}) {
	userf(Stdout, "ℹ", "39", format, args...)
}

// UserSuccess prints a success message to stdout.
func UserSuccess(format string, args ...interface{}) {
	userf(Stdout, "✓", "42", format, args...)
}

// UserWarning prints a warning message to stderr.
func UserWarning(format string, args ...interface{}) {
	userf(Stderr, "⚠", "214", format, args...)
}

// UserError prints an error message to stderr.
func UserError(format string, args ...interface{}) {
	userf(Stderr, "✗", "196", format, args...)
}
