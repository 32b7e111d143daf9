package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"trimlines/internal/args"
	"trimlines/internal/cli"
	"trimlines/internal/config"
	trimerrors "trimlines/internal/errors"
	"trimlines/internal/logger"
	"trimlines/internal/status"
	"trimlines/internal/tui"
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithOutput(os.Args[1:], os.Stdout)
}

func runWithOutput(argv []string, out io.Writer) int {
	opts, err := args.Parse(argv)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return trimerrors.ExitUsage
	}
	if opts.Help {
		fmt.Fprintln(out, args.HelpText())
		return trimerrors.ExitSuccess
	}
	if err := opts.Validate(); err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		fmt.Fprintln(out, args.HelpText())
		return trimerrors.ExitUsage
	}

	logger.Init(opts.Verbose)
	status.ConfigureColor(out)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return trimerrors.ExitUsage
	}
	applyOptions(cfg, opts)
	logger.Debug("configuration loaded",
		"file", cfg.Path, "limit", cfg.Limit, "encoding", cfg.Encoding,
		"backup", cfg.Backup, "dry_run", cfg.DryRun, "review", opts.Review)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		if cfg.Path == "" {
			fmt.Fprintln(out, args.HelpText())
		}
		return trimerrors.ExitUsage
	}

	if opts.Review {
		return runReview(cfg, out)
	}

	return cli.NewRunner(cfg, out).Run(context.Background())
}

// applyOptions layers command-line values over the loaded configuration.
func applyOptions(cfg *config.Config, opts *args.Options) {
	if opts.Path != "" {
		cfg.Path = opts.Path
	}
	if opts.LimitSet {
		cfg.Limit = opts.Limit
	}
	if opts.Encoding != "" {
		cfg.Encoding = opts.Encoding
	}
	if opts.Backup {
		cfg.Backup = true
	}
	cfg.DryRun = opts.DryRun
}

func runReview(cfg *config.Config, out io.Writer) int {
	model := tui.NewModel(cfg)

	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return trimerrors.ExitUsage
	}

	m, ok := finalModel.(*tui.Model)
	if !ok {
		return trimerrors.ExitUsage
	}

	// The alt screen is gone by now; repeat the outcome on the normal terminal.
	if res := m.Result(); res != nil {
		status.Display(out, res)
	} else if m.Err() != nil {
		status.DisplayError(out, m.Err())
	}
	return m.ExitCode()
}
