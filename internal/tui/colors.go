package tui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

var (
	commandStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// ConfigureColors disables styling when output is not a terminal or noColor is set
func ConfigureColors(w io.Writer, noColor bool) {
	if noColor || !isTerminal(w) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ColorCommand styles an echoed command line
func ColorCommand(text string) string {
	return commandStyle.Render(text)
}

// ColorDim makes text dim/gray
func ColorDim(text string) string {
	return dimStyle.Render(text)
}

// ColorRed colors text red
func ColorRed(text string) string {
	return errorStyle.Render(text)
}

// ColorYellow colors text yellow
func ColorYellow(text string) string {
	return warnStyle.Render(text)
}

// ColorGreen colors text green
func ColorGreen(text string) string {
	return successStyle.Render(text)
}
