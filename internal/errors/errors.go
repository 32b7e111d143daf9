package errors

import (
	stderrors "errors"
	"fmt"
)

// Error kinds returned by truncation. Test with errors.Is.
var (
	ErrFileNotFound = stderrors.New("file not found")
	ErrFileAccess   = stderrors.New("file not accessible")
	ErrDecoding     = stderrors.New("cannot decode file")
	ErrWriteFailure = stderrors.New("write failed")
	ErrLockTimeout  = stderrors.New("lock timeout")
)

// Exit codes reported by the command for each error kind.
const (
	ExitSuccess     = 0
	ExitUsage       = 1
	ExitFileAccess  = 2
	ExitDecoding    = 3
	ExitWrite       = 4
	ExitLockTimeout = 5
)

// TruncateError represents errors related to a truncation step
type TruncateError struct {
	Op   string
	Path string
	Kind error
	Err  error
}

func (e *TruncateError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Kind)
	}
	return fmt.Sprintf("%s %s: %v: %v", e.Op, e.Path, e.Kind, e.Err)
}

func (e *TruncateError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// New builds a TruncateError of the given kind.
func New(op, path string, kind, err error) *TruncateError {
	return &TruncateError{Op: op, Path: path, Kind: kind, Err: err}
}

// DecodeError reports the first byte offset that is invalid under an encoding.
type DecodeError struct {
	Encoding string
	Offset   int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid %s sequence at byte %d", e.Encoding, e.Offset)
}

func (e *DecodeError) Is(target error) bool { return target == ErrDecoding }

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case stderrors.Is(err, ErrFileNotFound), stderrors.Is(err, ErrFileAccess):
		return ExitFileAccess
	case stderrors.Is(err, ErrDecoding):
		return ExitDecoding
	case stderrors.Is(err, ErrWriteFailure):
		return ExitWrite
	case stderrors.Is(err, ErrLockTimeout):
		return ExitLockTimeout
	default:
		return ExitUsage
	}
}
