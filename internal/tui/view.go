package tui

import (
	"fmt"
	"strings"

	"github.com/docker/go-units"

	"trimlines/internal/constants"
)

func (m *Model) View() string {
	if m.quitting && m.phase == PhaseCancelled {
		return "Cancelled, file left unchanged.\n"
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderPhase())
	b.WriteString("\n")

	switch m.phase {
	case PhaseLoading:
		b.WriteString(boxStyle.Render("Reading " + m.cfg.TargetPath()))
	case PhaseReview, PhaseApplying:
		b.WriteString(m.renderSummary())
		b.WriteString("\n")
		b.WriteString(m.preview.View())
	case PhaseCompleted:
		b.WriteString(m.renderCompleted())
	case PhaseFailed:
		b.WriteString(m.renderFailed())
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.helpText()))
	return b.String()
}

func (m *Model) renderHeader() string {
	return headerStyle.Render(iconCut+" TRIMLINES") + subtitleStyle.Render(m.cfg.TargetPath())
}

func (m *Model) renderPhase() string {
	icon := m.spinner.View()
	switch m.phase {
	case PhaseReview:
		icon = iconCut
	case PhaseCompleted:
		icon = iconSuccess
	case PhaseFailed:
		icon = iconFailed
	}
	return phaseStyle.Render(fmt.Sprintf("%s %s", icon, m.phase.String()))
}

func (m *Model) renderSummary() string {
	p := m.plan
	if p == nil {
		return ""
	}
	if !p.Truncates() {
		return boxStyle.Render(fmt.Sprintf("%d lines, limit %d: nothing to remove.", len(p.Lines), p.Limit))
	}
	return boxStyle.Render(fmt.Sprintf("Keep %d of %d lines (%s), discard %d.",
		p.Keep(), len(p.Lines), units.HumanSize(float64(p.Size)), len(p.Discarded())))
}

func (m *Model) renderCompleted() string {
	res := m.result
	if res == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(successStyle.Render(fmt.Sprintf("%s %d lines kept", iconSuccess, res.RetainedLines)))
	if res.DiscardedLines > 0 {
		b.WriteString(fmt.Sprintf("\n%d lines discarded", res.DiscardedLines))
	}
	if res.BackupPath != "" {
		b.WriteString("\nSaved to " + res.BackupPath)
	}
	return boxStyle.Render(b.String())
}

func (m *Model) renderFailed() string {
	return boxStyle.Render(errorStyle.Render(iconFailed+" Truncation failed") + fmt.Sprintf("\n%v", m.err))
}

func (m *Model) helpText() string {
	switch m.phase {
	case PhaseReview:
		if m.plan != nil && !m.plan.Truncates() {
			return "q quit"
		}
		return "y apply • n cancel • ↑/↓ scroll"
	case PhaseApplying:
		return "writing..."
	default:
		return "q quit"
	}
}

// refreshPreview fills the viewport with the lines around the cut point.
func (m *Model) refreshPreview() {
	if m.plan == nil {
		return
	}
	m.preview.SetContent(renderPreview(m.plan.Lines, m.plan.Keep(), constants.PreviewContextLines,
		min(constants.PreviewLineWidth, max(20, m.preview.Width-10))))
}

func renderPreview(lines []string, keep, context, width int) string {
	var out []string

	start := max(0, keep-context)
	if start > 0 {
		out = append(out, lineNumberStyle.Render(fmt.Sprintf("… %d lines above", start)))
	}
	for i := start; i < keep; i++ {
		out = append(out, numbered(i, keptLineStyle.Render(displayLine(lines[i], width))))
	}

	if keep >= len(lines) {
		out = append(out, cutStyle.Render("── end of file, nothing discarded ──"))
		return strings.Join(out, "\n")
	}

	out = append(out, cutStyle.Render(fmt.Sprintf("── %s cut after line %d ──", iconCut, keep)))

	end := min(len(lines), keep+context)
	for i := keep; i < end; i++ {
		out = append(out, numbered(i, droppedLineStyle.Render(displayLine(lines[i], width))))
	}
	if rest := len(lines) - end; rest > 0 {
		out = append(out, lineNumberStyle.Render(fmt.Sprintf("… %d more lines discarded", rest)))
	}
	return strings.Join(out, "\n")
}

func numbered(index int, text string) string {
	return lineNumberStyle.Render(fmt.Sprintf("%6d ", index+1)) + text
}
