package filesystem

import (
	"os"
	"path/filepath"
)

// UserHomeDir returns the current user's home directory.
// If the home directory cannot be determined, it returns "." as a fallback.
func UserHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

// JarvisDir returns the assistant's state directory (~/.jarvis),
// overridable through JARVIS_HOME for tests and sandboxed runs.
func JarvisDir() string {
	if custom := os.Getenv("JARVIS_HOME"); custom != "" {
		return custom
	}
	return filepath.Join(UserHomeDir(), ".jarvis")
}
