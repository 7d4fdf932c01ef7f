package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// SecureFilePermissions is the permission for sensitive files (rw-------)
	SecureFilePermissions = 0o600
	// DataFilePermissions is the permission for regular data files (rw-r--r--)
	DataFilePermissions = 0o644
)

// Timeout and duration constants
const (
	// DefaultAITimeout bounds the single external text-generation call
	DefaultAITimeout = 30 * time.Second
	// DefaultActionTimeout bounds one system/hardware action invocation
	DefaultActionTimeout = 10 * time.Second
	// MonitorJoinTimeout is how long shutdown waits for a background
	// loop that does not exit promptly before giving up on it
	MonitorJoinTimeout = 5 * time.Second
)

// Learning constants
const (
	// RecentContextWindow is how many records feed the derived summary
	RecentContextWindow = 100
	// CommonCommandCount is how many frequent commands the summary keeps
	CommonCommandCount = 5
)

// Time formats
const (
	// TimestampFormat is the standard timestamp format
	TimestampFormat = time.RFC3339
)
