package status

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

var (
	successColor = lipgloss.Color("#34D399")
	warningColor = lipgloss.Color("#FBBF24")
	errorColor   = lipgloss.Color("#F87171")
	mutedColor   = lipgloss.Color("#9CA3AF")

	successStyle = lipgloss.NewStyle().Foreground(successColor).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(warningColor).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(mutedColor)
)

// ConfigureColor picks the color profile for w. Anything that is not a
// terminal, or a terminal with NO_COLOR set, gets plain text.
func ConfigureColor(w io.Writer) {
	lipgloss.SetColorProfile(profileFor(w))
}

func profileFor(w io.Writer) termenv.Profile {
	f, ok := w.(*os.File)
	if !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return termenv.Ascii
	}
	if termenv.EnvNoColor() {
		return termenv.Ascii
	}
	return termenv.NewOutput(f).EnvColorProfile()
}
