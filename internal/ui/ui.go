// Package ui provides styled terminal output for the sqlforge CLI.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Lipgloss styles for consistent terminal output
var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // Green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // Red
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // Yellow
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12")) // Blue
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))  // Gray
	boldStyle    = lipgloss.NewStyle().Bold(true)

	colorEnabled = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
)

// DisableColors turns off all styling (for --no-color or piped output).
func DisableColors() { colorEnabled = false }

func render(s lipgloss.Style, text string) string {
	if !colorEnabled {
		return text
	}
	return s.Render(text)
}

// Themed output functions
func Success(text string) string { return render(successStyle, "✓ "+text) }
func Error(text string) string   { return render(errorStyle, "✗ "+text) }
func Warning(text string) string { return render(warningStyle, "⚠ "+text) }
func Info(text string) string    { return render(infoStyle, "ℹ "+text) }
func Dim(text string) string     { return render(dimStyle, text) }
func Bold(text string) string    { return render(boldStyle, text) }

// Header renders a bold section header.
func Header(text string) string { return Bold(text) }

// FormatError renders an error for terminal display.
func FormatError(err error) string { return Error(err.Error()) }
