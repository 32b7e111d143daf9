package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"trimlines/internal/config"
	trimerrors "trimlines/internal/errors"
	"trimlines/internal/logger"
	"trimlines/internal/status"
	"trimlines/internal/truncator"
)

// Runner handles non-interactive execution
type Runner struct {
	cfg *config.Config
	out io.Writer
}

// NewRunner creates a new CLI runner that reports to out
func NewRunner(cfg *config.Config, out io.Writer) *Runner {
	return &Runner{
		cfg: cfg,
		out: out,
	}
}

// Run truncates the configured file and returns an exit code
func (r *Runner) Run(ctx context.Context) int {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// An interrupt only matters while waiting for the lock; once writing has
	// started the rename either happens or it does not.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			fmt.Fprintln(r.out, "\nInterrupted, shutting down...")
			cancel()
		case <-ctx.Done():
		}
	}()

	res, err := truncator.Truncate(ctx, r.cfg)
	if err != nil {
		logger.Error("truncation failed", "file", r.cfg.TargetPath(), "error", err)
		status.DisplayError(r.out, err)
		return trimerrors.ExitCode(err)
	}

	status.Display(r.out, res)
	return trimerrors.ExitSuccess
}
