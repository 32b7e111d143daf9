package tui

import (
	"strings"

	"trimlines/internal/textfile"
)

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max < 4 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// displayLine strips the terminator and expands tabs.
func displayLine(line string, width int) string {
	line = strings.TrimRightFunc(line, textfile.IsLineBreak)
	line = strings.ReplaceAll(line, "\t", "    ")
	return truncate(line, width)
}
