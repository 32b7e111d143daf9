package truncator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	"trimlines/internal/config"
	trimerrors "trimlines/internal/errors"
	"trimlines/internal/logger"
	"trimlines/internal/textfile"
)

// Result describes a finished (or, for dry runs, simulated) truncation.
type Result struct {
	Path           string
	OriginalLines  int
	RetainedLines  int
	DiscardedLines int
	OriginalBytes  int
	RetainedBytes  int
	Truncated      bool
	DryRun         bool
	BackupPath     string
}

// TruncateFile keeps the first limit lines of the UTF-8 file at path and
// returns how many lines remain.
func TruncateFile(path string, limit int) (int, error) {
	cfg := config.DefaultConfig()
	cfg.Path = path
	cfg.Limit = limit

	res, err := Truncate(context.Background(), cfg)
	if err != nil {
		return 0, err
	}
	return res.RetainedLines, nil
}

// Truncate rewrites cfg's target so it holds only its first cfg.Limit lines.
//
// Open, permission and decoding failures are reported before anything is
// written. The new content goes to a temporary file that replaces the target
// by rename, so a failed write leaves the original untouched. Files already
// within the limit are not rewritten.
func Truncate(ctx context.Context, cfg *config.Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	path := cfg.TargetPath()
	log := logger.ForFile(path)

	// Operate on the file a symlink points to, so the link survives and the
	// lock and backup belong to the real file.
	target, err := resolveTarget(path)
	if err != nil {
		return nil, err
	}
	if target != path {
		log.Debug("resolved symlink", "target", target)
	}

	// Check access before creating the lock file so a missing target leaves
	// nothing behind.
	if err := checkAccess(target); err != nil {
		return nil, err
	}

	lockPath := cfg.LockPath(target)
	fileLock, err := acquireLock(ctx, lockPath, path, cfg.LockTimeout)
	if err != nil {
		return nil, err
	}
	defer fileLock.Unlock()
	log.Debug("lock acquired", "lock", lockPath)

	plan, err := Load(target, cfg.Encoding, cfg.Limit)
	if err != nil {
		return nil, err
	}
	log.Debug("decoded file", "lines", len(plan.Lines), "bytes", plan.Size, "encoding", cfg.Encoding)

	res := &Result{
		Path:           path,
		OriginalLines:  len(plan.Lines),
		RetainedLines:  plan.Keep(),
		DiscardedLines: len(plan.Discarded()),
		OriginalBytes:  plan.Size,
		RetainedBytes:  plan.Size,
		Truncated:      plan.Truncates(),
		DryRun:         cfg.DryRun,
	}

	if !plan.Truncates() {
		log.Info("file within limit, nothing to do", "lines", res.OriginalLines, "limit", cfg.Limit)
		return res, nil
	}

	retained, err := textfile.Encode(plan.RetainedText(), cfg.Encoding)
	if err != nil {
		return nil, trimerrors.New("encode", path, trimerrors.ErrWriteFailure, err)
	}
	res.RetainedBytes = len(retained)

	if cfg.DryRun {
		log.Info("dry run, file left unchanged", "retained", res.RetainedLines, "discarded", res.DiscardedLines)
		return res, nil
	}

	if cfg.Backup {
		if err := writeBackup(cfg.BackupPath(target), plan, cfg.Encoding); err != nil {
			return nil, trimerrors.New("backup", path, trimerrors.ErrWriteFailure, err)
		}
		res.BackupPath = cfg.BackupPath(target)
		log.Debug("saved discarded lines", "backup", res.BackupPath, "lines", res.DiscardedLines)
	}

	if err := atomic.WriteFile(target, bytes.NewReader(retained)); err != nil {
		return nil, trimerrors.New("write", path, trimerrors.ErrWriteFailure, err)
	}

	log.Info("file truncated", "retained", res.RetainedLines, "discarded", res.DiscardedLines)
	return res, nil
}

// Load reads the file at path and plans a truncation to limit lines without
// writing anything.
func Load(path, encoding string, limit int) (*Plan, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, trimerrors.New("read", path, trimerrors.ErrFileAccess, err)
	}

	plan, err := NewPlan(data, encoding, limit)
	if err != nil {
		return nil, trimerrors.New("decode", path, trimerrors.ErrDecoding, err)
	}
	return plan, nil
}

// resolveTarget returns the absolute path of the file behind path with all
// symlinks followed.
func resolveTarget(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", trimerrors.New("open", path, trimerrors.ErrFileAccess, err)
	}
	target, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", classifyOpenError(path, err)
	}
	return target, nil
}

func checkAccess(path string) error {
	f, err := open(path)
	if err != nil {
		return err
	}
	return f.Close()
}

// open opens path read-write so that a target we could read but never
// replace is rejected up front.
func open(path string) (*os.File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, classifyOpenError(path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, trimerrors.New("open", path, trimerrors.ErrFileAccess, fmt.Errorf("not a regular file"))
	}

	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, classifyOpenError(path, err)
	}
	return f, nil
}

func classifyOpenError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return trimerrors.New("open", path, trimerrors.ErrFileNotFound, err)
	}
	return trimerrors.New("open", path, trimerrors.ErrFileAccess, err)
}

func writeBackup(backupPath string, plan *Plan, encoding string) error {
	data, err := textfile.Encode(plan.DiscardedText(), encoding)
	if err != nil {
		return err
	}
	if err := atomic.WriteFile(backupPath, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write backup %q: %w", backupPath, err)
	}
	return nil
}
