package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"trimlines/internal/config"
	trimerrors "trimlines/internal/errors"
	"trimlines/internal/truncator"
)

type Phase int

const (
	PhaseLoading Phase = iota
	PhaseReview
	PhaseApplying
	PhaseCompleted
	PhaseCancelled
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "Reading file"
	case PhaseReview:
		return "Review"
	case PhaseApplying:
		return "Truncating"
	case PhaseCompleted:
		return "Completed"
	case PhaseCancelled:
		return "Cancelled"
	case PhaseFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

type Model struct {
	cfg *config.Config

	phase    Phase
	plan     *truncator.Plan
	result   *truncator.Result
	err      error
	quitting bool
	width    int
	height   int

	spinner spinner.Model
	preview viewport.Model

	ctx        context.Context
	cancelFunc context.CancelFunc
	loader     PlanLoader
	applier    Applier
}

func NewModel(cfg *config.Config) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(primaryColor)

	v := viewport.New(80, 14)
	v.Style = previewBoxStyle

	ctx, cancel := context.WithCancel(context.Background())

	return &Model{
		cfg:        cfg,
		phase:      PhaseLoading,
		spinner:    s,
		preview:    v,
		ctx:        ctx,
		cancelFunc: cancel,
		loader:     fileLoader{},
		applier:    fileApplier{},
	}
}

func (m *Model) SetLoader(l PlanLoader) {
	m.loader = l
}

func (m *Model) SetApplier(a Applier) {
	m.applier = a
}

type (
	planLoadedMsg struct{ plan *truncator.Plan }
	appliedMsg    struct{ result *truncator.Result }
	errorMsg      struct{ err error }
)

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.loadPlan(),
		tea.WindowSize(),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.preview.Width = max(20, msg.Width-4)
		m.preview.Height = max(6, msg.Height-12)
		m.refreshPreview()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case planLoadedMsg:
		m.plan = msg.plan
		m.phase = PhaseReview
		m.refreshPreview()

	case appliedMsg:
		m.result = msg.result
		m.phase = PhaseCompleted
		return m, tea.Quit

	case errorMsg:
		m.err = msg.err
		m.phase = PhaseFailed
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.preview, cmd = m.preview.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c", "q", "n", "esc":
		if m.phase == PhaseApplying {
			// The rename may already have happened; wait for the outcome so the
			// report matches the file.
			return nil, true
		}
		return m.cancel(), true
	case "y", "enter":
		if m.phase != PhaseReview || m.plan == nil {
			return nil, true
		}
		m.phase = PhaseApplying
		return m.apply(), true
	}
	return nil, false
}

func (m *Model) cancel() tea.Cmd {
	m.quitting = true
	if m.phase != PhaseCompleted && m.phase != PhaseFailed {
		m.phase = PhaseCancelled
	}
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	return tea.Quit
}

// Result is the applied truncation, nil unless the phase is PhaseCompleted.
func (m *Model) Result() *truncator.Result {
	return m.result
}

func (m *Model) Err() error {
	return m.err
}

func (m *Model) ExitCode() int {
	switch m.phase {
	case PhaseCompleted, PhaseCancelled:
		return trimerrors.ExitSuccess
	case PhaseFailed:
		return trimerrors.ExitCode(m.err)
	default:
		return trimerrors.ExitUsage
	}
}
