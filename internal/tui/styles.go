package tui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor   = lipgloss.Color("#8B5CF6")
	successColor   = lipgloss.Color("#34D399")
	errorColor     = lipgloss.Color("#F87171")
	warningColor   = lipgloss.Color("#FBBF24")
	mutedColor     = lipgloss.Color("#9CA3AF")
	highlightColor = lipgloss.Color("#60A5FA")
	borderColor    = lipgloss.Color("#374151")
	textColor      = lipgloss.Color("#F3F4F6")
	subtleColor    = lipgloss.Color("#6B7280")

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor).
			Background(primaryColor).
			Padding(0, 2)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(subtleColor).
			Italic(true).
			MarginLeft(2)

	phaseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlightColor).
			MarginBottom(1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 2)

	previewBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			PaddingLeft(1)

	keptLineStyle = lipgloss.NewStyle().
			Foreground(textColor)

	droppedLineStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Strikethrough(true)

	lineNumberStyle = lipgloss.NewStyle().
			Foreground(subtleColor)

	cutStyle = lipgloss.NewStyle().
			Foreground(warningColor).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(subtleColor).
			Italic(true).
			MarginTop(1)
)

const (
	iconFailed  = "✗"
	iconSuccess = "✓"
	iconCut     = "✂"
)
