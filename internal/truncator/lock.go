package truncator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"trimlines/internal/constants"
	trimerrors "trimlines/internal/errors"
)

// acquireLock takes the exclusive advisory lock guarding a target file.
// Lock files live in a separate lock directory and are left in place after
// release so that every process contending for a target locks the same inode.
func acquireLock(ctx context.Context, lockPath, target string, timeout time.Duration) (*flock.Flock, error) {
	if err := os.MkdirAll(filepath.Dir(lockPath), 0700); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}
	fileLock := flock.New(lockPath)

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	locked, err := fileLock.TryLockContext(ctx, time.Duration(constants.FileLockRetryDelay)*time.Millisecond)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, trimerrors.New("lock", target, trimerrors.ErrLockTimeout,
				fmt.Errorf("%s not released after %v", lockPath, timeout))
		}
		return nil, fmt.Errorf("error acquiring lock %q: %w", lockPath, err)
	}
	if !locked {
		return nil, trimerrors.New("lock", target, trimerrors.ErrLockTimeout,
			fmt.Errorf("%s not released after %v", lockPath, timeout))
	}

	return fileLock, nil
}
