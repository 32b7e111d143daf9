package status

import (
	"fmt"
	"io"
	"strings"

	"github.com/docker/go-units"

	"trimlines/internal/truncator"
)

// Render formats a truncation result as the one-line report printed after a
// run, followed by detail lines.
func Render(res *truncator.Result) string {
	var b strings.Builder

	switch {
	case res.DryRun && res.Truncated:
		b.WriteString(warningStyle.Render("Dry run:"))
		fmt.Fprintf(&b, " %s would keep %d of %d lines.\n", res.Path, res.RetainedLines, res.OriginalLines)
	case res.Truncated:
		b.WriteString(successStyle.Render("Trimmed"))
		fmt.Fprintf(&b, " %s: %d lines kept.\n", res.Path, res.RetainedLines)
	default:
		b.WriteString(successStyle.Render("Unchanged"))
		fmt.Fprintf(&b, " %s: %d lines kept.\n", res.Path, res.RetainedLines)
	}

	if res.Truncated {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  discarded %d lines, %s -> %s",
			res.DiscardedLines,
			units.HumanSize(float64(res.OriginalBytes)),
			units.HumanSize(float64(res.RetainedBytes)))))
		b.WriteString("\n")
	}
	if res.BackupPath != "" {
		b.WriteString(mutedStyle.Render("  discarded lines saved to " + res.BackupPath))
		b.WriteString("\n")
	}

	return b.String()
}

// Display writes the rendered result to w.
func Display(w io.Writer, res *truncator.Result) {
	fmt.Fprint(w, Render(res))
}

// DisplayError writes a failed run's message to w.
func DisplayError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", errorStyle.Render("Error:"), err)
}
