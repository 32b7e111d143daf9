package constants

// Common constants used across the trimlines codebase.

const (
	// DefaultLineLimit is the number of lines kept when no limit is configured.
	DefaultLineLimit = 948

	// DefaultEncoding is the text encoding assumed for target files.
	DefaultEncoding = "utf-8"

	// DefaultBackupSuffix is appended to the target path to name the file
	// holding discarded lines when backups are enabled.
	DefaultBackupSuffix = ".trimmed"

	// LockSuffix ends the name of a target's advisory lock file in the lock dir.
	LockSuffix = ".lock"

	// ConfigFileName is the optional YAML config looked up in the working directory.
	ConfigFileName = "trimlines.yaml"

	// FileLockTimeout is the timeout for acquiring file locks, in seconds.
	// Set to 30 seconds to handle temporary contention without hanging indefinitely.
	FileLockTimeout = 30

	// FileLockRetryDelay is the delay between file lock acquisition attempts, in milliseconds.
	FileLockRetryDelay = 100

	// PreviewContextLines is how many lines on each side of the cut the review
	// screen shows.
	PreviewContextLines = 5

	// PreviewLineWidth caps the rendered width of a previewed line.
	PreviewLineWidth = 120
)
