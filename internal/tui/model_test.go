package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"trimlines/internal/config"
	trimerrors "trimlines/internal/errors"
	"trimlines/internal/truncator"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

type mockLoader struct {
	plan *truncator.Plan
	err  error
}

func (l *mockLoader) Load(cfg *config.Config) (*truncator.Plan, error) {
	return l.plan, l.err
}

type mockApplier struct {
	called bool
	result *truncator.Result
	err    error
}

func (a *mockApplier) Apply(ctx context.Context, cfg *config.Config) (*truncator.Result, error) {
	a.called = true
	return a.result, a.err
}

func testModel(t *testing.T) *Model {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Path = "/tmp/FeedPage.jsx"
	return NewModel(cfg)
}

func testPlan(t *testing.T, content string, limit int) *truncator.Plan {
	t.Helper()
	plan, err := truncator.NewPlan([]byte(content), "utf-8", limit)
	if err != nil {
		t.Fatalf("NewPlan() error = %v", err)
	}
	return plan
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseLoading, "Reading file"},
		{PhaseReview, "Review"},
		{PhaseApplying, "Truncating"},
		{PhaseCompleted, "Completed"},
		{PhaseCancelled, "Cancelled"},
		{PhaseFailed, "Failed"},
		{Phase(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.phase.String(); got != tt.want {
				t.Errorf("Phase.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewModel(t *testing.T) {
	m := testModel(t)

	if m.phase != PhaseLoading {
		t.Errorf("phase = %v, want PhaseLoading", m.phase)
	}
	if m.loader == nil || m.applier == nil {
		t.Error("loader and applier should be set")
	}
	if m.Init() == nil {
		t.Error("Init() should return a command")
	}
}

func TestLoadPlanCommand(t *testing.T) {
	m := testModel(t)
	plan := testPlan(t, "a\nb\n", 1)
	m.SetLoader(&mockLoader{plan: plan})

	msg := m.loadPlan()()
	loaded, ok := msg.(planLoadedMsg)
	if !ok {
		t.Fatalf("loadPlan() returned %T, want planLoadedMsg", msg)
	}
	if loaded.plan != plan {
		t.Error("plan not passed through")
	}

	m.SetLoader(&mockLoader{err: errors.New("boom")})
	if _, ok := m.loadPlan()().(errorMsg); !ok {
		t.Error("loadPlan() should return errorMsg on failure")
	}
}

func TestReviewThenApply(t *testing.T) {
	m := testModel(t)
	applier := &mockApplier{result: &truncator.Result{RetainedLines: 2, DiscardedLines: 1, Truncated: true}}
	m.SetApplier(applier)

	m.Update(planLoadedMsg{plan: testPlan(t, "a\nb\nc\n", 2)})
	if m.phase != PhaseReview {
		t.Fatalf("phase = %v, want PhaseReview", m.phase)
	}
	if !strings.Contains(m.View(), "Keep 2 of 3 lines") {
		t.Errorf("View() should summarize the plan, got %q", m.View())
	}

	_, cmd := m.Update(key("y"))
	if m.phase != PhaseApplying {
		t.Fatalf("phase = %v, want PhaseApplying", m.phase)
	}
	if cmd == nil {
		t.Fatal("confirming should return the apply command")
	}

	msg := cmd()
	if !applier.called {
		t.Error("applier was not called")
	}
	m.Update(msg)

	if m.phase != PhaseCompleted {
		t.Errorf("phase = %v, want PhaseCompleted", m.phase)
	}
	if m.Result() == nil || m.Result().RetainedLines != 2 {
		t.Errorf("Result() = %+v", m.Result())
	}
	if m.ExitCode() != 0 {
		t.Errorf("ExitCode() = %d, want 0", m.ExitCode())
	}
}

func TestConfirmIgnoredBeforePlan(t *testing.T) {
	m := testModel(t)
	applier := &mockApplier{}
	m.SetApplier(applier)

	_, cmd := m.Update(key("y"))
	if cmd != nil {
		t.Error("confirming while loading should do nothing")
	}
	if m.phase != PhaseLoading {
		t.Errorf("phase = %v, want PhaseLoading", m.phase)
	}
}

func TestCancelKeys(t *testing.T) {
	for _, k := range []string{"n", "q", "esc", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			m := testModel(t)
			applier := &mockApplier{}
			m.SetApplier(applier)
			m.Update(planLoadedMsg{plan: testPlan(t, "a\nb\n", 1)})

			m.Update(key(k))

			if m.phase != PhaseCancelled {
				t.Errorf("phase = %v, want PhaseCancelled", m.phase)
			}
			if applier.called {
				t.Error("cancel must not apply")
			}
			if m.ExitCode() != 0 {
				t.Errorf("ExitCode() = %d, want 0", m.ExitCode())
			}
			if m.View() != "Cancelled, file left unchanged.\n" {
				t.Errorf("View() = %q", m.View())
			}
		})
	}
}

func TestQuitIgnoredWhileApplying(t *testing.T) {
	for _, k := range []string{"q", "n", "esc", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			m := testModel(t)
			m.phase = PhaseApplying

			_, cmd := m.Update(key(k))
			if cmd != nil || m.phase != PhaseApplying {
				t.Errorf("%s while applying should be ignored, phase = %v", k, m.phase)
			}
			if m.quitting {
				t.Errorf("%s while applying should not quit", k)
			}
		})
	}
}

func TestErrorMsg(t *testing.T) {
	m := testModel(t)
	err := trimerrors.New("open", "/tmp/FeedPage.jsx", trimerrors.ErrFileNotFound, nil)

	m.Update(errorMsg{err: err})

	if m.phase != PhaseFailed {
		t.Errorf("phase = %v, want PhaseFailed", m.phase)
	}
	if m.ExitCode() != trimerrors.ExitFileAccess {
		t.Errorf("ExitCode() = %d, want %d", m.ExitCode(), trimerrors.ExitFileAccess)
	}
	if !strings.Contains(m.View(), "file not found") {
		t.Errorf("View() should show the error, got %q", m.View())
	}
}

func TestExitCodeWhileRunning(t *testing.T) {
	m := testModel(t)
	if m.ExitCode() != trimerrors.ExitUsage {
		t.Errorf("ExitCode() = %d, want %d", m.ExitCode(), trimerrors.ExitUsage)
	}
}

func TestWindowResize(t *testing.T) {
	m := testModel(t)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	if m.width != 100 || m.height != 40 {
		t.Errorf("size = %dx%d", m.width, m.height)
	}
	if m.preview.Width != 96 || m.preview.Height != 28 {
		t.Errorf("preview = %dx%d, want 96x28", m.preview.Width, m.preview.Height)
	}
}
