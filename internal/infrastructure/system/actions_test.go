package system

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"jarvis/internal/domain"
)

func newTestController(t *testing.T) *Controller {
	t.Helper()
	return NewController(time.Minute, nopLogger{})
}

func TestExecuteCommandUnknownName(t *testing.T) {
	c := newTestController(t)
	got := c.ExecuteCommand("no_such_command", nil)
	if !strings.Contains(got, "Unknown system command") {
		t.Fatalf("ExecuteCommand() = %q", got)
	}
}

func TestExecuteCommandUnknownControlAction(t *testing.T) {
	c := newTestController(t)
	got := c.ExecuteCommand(string(domain.IntentSystemControl), map[string]string{"action": "levitate"})
	if !strings.Contains(got, "Unknown system control action: levitate") {
		t.Fatalf("ExecuteCommand() = %q", got)
	}
}

func TestFileOperationCreateAndDelete(t *testing.T) {
	c := newTestController(t)
	path := filepath.Join(t.TempDir(), "note.txt")

	got := c.ExecuteCommand(string(domain.IntentFileOperation), map[string]string{
		"action":  "create",
		"path":    path,
		"content": "hello",
	})
	if !strings.Contains(got, "created successfully") {
		t.Fatalf("create result = %q", got)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "hello" {
		t.Fatalf("file content = %q, err = %v", data, err)
	}

	got = c.ExecuteCommand(string(domain.IntentFileOperation), map[string]string{
		"action": "delete",
		"path":   path,
	})
	if !strings.Contains(got, "deleted successfully") {
		t.Fatalf("delete result = %q", got)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("file still exists after delete")
	}
}

func TestFileOperationRequiresPath(t *testing.T) {
	c := newTestController(t)
	got := c.ExecuteCommand(string(domain.IntentFileOperation), map[string]string{"action": "create"})
	if !strings.Contains(got, "requires a path") {
		t.Fatalf("ExecuteCommand() = %q", got)
	}
}

func TestFileOperationSearch(t *testing.T) {
	c := newTestController(t)
	dir := t.TempDir()
	for _, name := range []string{"report.txt", "report-2.txt", "notes.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	got := c.ExecuteCommand(string(domain.IntentFileOperation), map[string]string{
		"action": "search",
		"path":   dir,
		"query":  "report",
	})
	if !strings.Contains(got, "Found 2 files") {
		t.Fatalf("search result = %q", got)
	}
}

func TestStatusReportFormat(t *testing.T) {
	c := newTestController(t)
	c.mu.Lock()
	c.state = domain.SystemState{
		Known:            true,
		CPUPercent:       12.3,
		MemoryPercent:    45.6,
		DiskPercent:      78.9,
		NetworkSpeedMBps: 1.25,
		Processes:        321,
		UptimeSeconds:    3600,
		Temperature:      51.5,
	}
	c.mu.Unlock()

	got := c.ExecuteCommand(string(domain.IntentSystemStatus), nil)
	for _, want := range []string{
		"System Status Report:",
		"CPU Usage: 12.3%",
		"Memory Usage: 45.6%",
		"Active Processes: 321",
		"System Uptime: 1h0m0s",
		"Temperature: 51.5C",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("status report missing %q:\n%s", want, got)
		}
	}
}

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{})        {}
func (nopLogger) Info(string, map[string]interface{})         {}
func (nopLogger) Warn(string, map[string]interface{})         {}
func (nopLogger) Error(string, error, map[string]interface{}) {}
