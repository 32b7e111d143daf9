package config

import (
	_ "crypto/sha256" // registers the digest algorithm used for lock names
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/opencontainers/go-digest"
	"gopkg.in/yaml.v3"

	"trimlines/internal/constants"
	"trimlines/internal/textfile"
)

type Config struct {
	Path         string        `yaml:"path"`
	Limit        int           `yaml:"limit"`
	Encoding     string        `yaml:"encoding"`
	Backup       bool          `yaml:"backup"`
	BackupSuffix string        `yaml:"backup_suffix"`
	LockTimeout  time.Duration `yaml:"lock_timeout"`
	LockDir      string        `yaml:"lock_dir"`
	DryRun       bool          `yaml:"-"`
	WorkDir      string        `yaml:"-"`
}

func DefaultConfig() *Config {
	return &Config{
		Limit:        constants.DefaultLineLimit,
		Encoding:     constants.DefaultEncoding,
		BackupSuffix: constants.DefaultBackupSuffix,
		LockTimeout:  time.Duration(constants.FileLockTimeout) * time.Second,
	}
}

// Load builds the configuration from defaults, the optional YAML file and
// TRIMLINES_* environment variables. Command-line values are applied by the
// caller afterwards, followed by Validate.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if wd, err := os.Getwd(); err == nil {
		cfg.WorkDir = wd
	}

	configFile := cfg.ConfigPath(constants.ConfigFileName)
	explicit := false
	if p := os.Getenv("TRIMLINES_CONFIG"); p != "" {
		configFile = cfg.ConfigPath(p)
		explicit = true
	}
	if err := cfg.loadFile(configFile, explicit); err != nil {
		return nil, err
	}

	if p := os.Getenv("TRIMLINES_FILE"); p != "" {
		cfg.Path = p
	}

	if limitStr := os.Getenv("TRIMLINES_LIMIT"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return nil, fmt.Errorf("invalid TRIMLINES_LIMIT value %q: %w", limitStr, err)
		}
		cfg.Limit = limit
	}

	if enc := os.Getenv("TRIMLINES_ENCODING"); enc != "" {
		cfg.Encoding = enc
	}

	if backupStr := os.Getenv("TRIMLINES_BACKUP"); backupStr != "" {
		backup, err := strconv.ParseBool(backupStr)
		if err != nil {
			return nil, fmt.Errorf("invalid TRIMLINES_BACKUP value %q: %w", backupStr, err)
		}
		cfg.Backup = backup
	}

	return cfg, nil
}

func (c *Config) loadFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return fmt.Errorf("failed to parse config file %q: %w", path, err)
	}

	// Zero values in the file leave defaults in place.
	if fileCfg.Path != "" {
		c.Path = fileCfg.Path
	}
	if fileCfg.Limit != 0 {
		c.Limit = fileCfg.Limit
	}
	if fileCfg.Encoding != "" {
		c.Encoding = fileCfg.Encoding
	}
	if fileCfg.Backup {
		c.Backup = true
	}
	if fileCfg.BackupSuffix != "" {
		c.BackupSuffix = fileCfg.BackupSuffix
	}
	if fileCfg.LockTimeout != 0 {
		c.LockTimeout = fileCfg.LockTimeout
	}
	if fileCfg.LockDir != "" {
		c.LockDir = fileCfg.LockDir
	}
	return nil
}

func (c *Config) ConfigPath(filename string) string {
	if c.WorkDir == "" || filepath.IsAbs(filename) {
		return filename
	}
	return filepath.Join(c.WorkDir, filename)
}

// TargetPath is the file to truncate, resolved against WorkDir.
func (c *Config) TargetPath() string {
	return c.ConfigPath(c.Path)
}

// BackupPath names the file that receives discarded lines of target.
func (c *Config) BackupPath(target string) string {
	return target + c.BackupSuffix
}

// LockPath names the advisory lock for target, which should be absolute with
// symlinks resolved. Locks live under LockDir, never beside the target.
func (c *Config) LockPath(target string) string {
	dir := c.LockDir
	if dir == "" {
		dir = DefaultLockDir()
	}
	return filepath.Join(dir, digest.FromString(target).Encoded()+constants.LockSuffix)
}

// DefaultLockDir is a per-user directory under the system temp dir.
func DefaultLockDir() string {
	return filepath.Join(os.TempDir(), fmt.Sprintf("trimlines-%d", os.Getuid()))
}

func (c *Config) Validate() error {
	if c.Path == "" {
		return fmt.Errorf("no file to truncate given")
	}
	if c.Limit < 0 {
		return fmt.Errorf("limit must be non-negative, got %d", c.Limit)
	}
	if _, err := textfile.Lookup(c.Encoding); err != nil {
		return fmt.Errorf("invalid encoding configuration: %w", err)
	}
	if c.LockTimeout <= 0 {
		return fmt.Errorf("lock_timeout must be positive, got %v", c.LockTimeout)
	}
	if c.Backup {
		if c.BackupSuffix == "" {
			return fmt.Errorf("backup_suffix cannot be empty when backups are enabled")
		}
		if strings.ContainsAny(c.BackupSuffix, `/\`) {
			return fmt.Errorf("backup_suffix must not contain path separators, got %q", c.BackupSuffix)
		}
	}
	return nil
}
