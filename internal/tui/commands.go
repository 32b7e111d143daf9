package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"trimlines/internal/config"
	"trimlines/internal/truncator"
)

type PlanLoader interface {
	Load(cfg *config.Config) (*truncator.Plan, error)
}

type Applier interface {
	Apply(ctx context.Context, cfg *config.Config) (*truncator.Result, error)
}

type fileLoader struct{}

func (fileLoader) Load(cfg *config.Config) (*truncator.Plan, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return truncator.Load(cfg.TargetPath(), cfg.Encoding, cfg.Limit)
}

type fileApplier struct{}

func (fileApplier) Apply(ctx context.Context, cfg *config.Config) (*truncator.Result, error) {
	return truncator.Truncate(ctx, cfg)
}

func (m *Model) loadPlan() tea.Cmd {
	// Capture values to avoid races with Update
	loader := m.loader
	cfg := m.cfg

	return func() tea.Msg {
		plan, err := loader.Load(cfg)
		if err != nil {
			return errorMsg{err: err}
		}
		return planLoadedMsg{plan: plan}
	}
}

// apply re-reads the file under its lock, so edits made while the preview
// was on screen are truncated rather than overwritten with the stale plan.
func (m *Model) apply() tea.Cmd {
	applier := m.applier
	cfg := m.cfg
	ctx := m.ctx

	return func() tea.Msg {
		res, err := applier.Apply(ctx, cfg)
		if err != nil {
			return errorMsg{err: err}
		}
		return appliedMsg{result: res}
	}
}
