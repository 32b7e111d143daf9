package constants

import (
	"testing"
)

func TestConstantsValues(t *testing.T) {
	tests := []struct {
		name     string
		got      int
		expected int
	}{
		{"DefaultLineLimit", DefaultLineLimit, 948},
		{"FileLockTimeout", FileLockTimeout, 30},
		{"FileLockRetryDelay", FileLockRetryDelay, 100},
		{"PreviewContextLines", PreviewContextLines, 5},
		{"PreviewLineWidth", PreviewLineWidth, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.expected)
			}
		})
	}
}

func TestSuffixesDiffer(t *testing.T) {
	if DefaultBackupSuffix == LockSuffix {
		t.Errorf("backup and lock suffix must differ, both %q", LockSuffix)
	}
}
