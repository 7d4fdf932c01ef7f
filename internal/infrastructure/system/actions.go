package system

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"jarvis/internal/domain"
)

// ExecuteCommand performs one named system action and returns a
// human-readable result. Errors are folded into the returned string;
// nothing escapes this boundary.
func (c *Controller) ExecuteCommand(name string, parameters map[string]string) string {
	if parameters == nil {
		parameters = map[string]string{}
	}
	c.logger.Info("executing system command", map[string]interface{}{"command": name})

	switch name {
	case string(domain.IntentSystemControl):
		return c.handleSystemControl(parameters)
	case string(domain.IntentFileOperation):
		return c.handleFileOperation(parameters)
	case string(domain.IntentApplicationControl):
		return c.handleApplicationControl(parameters)
	case string(domain.IntentSystemStatus):
		return c.statusReport()
	default:
		return fmt.Sprintf("Unknown system command: %s", name)
	}
}

func (c *Controller) handleSystemControl(parameters map[string]string) string {
	action := strings.ToLower(parameters["action"])
	delay := 60
	if raw := parameters["delay"]; raw != "" {
		if d, err := strconv.Atoi(raw); err == nil && d >= 0 {
			delay = d
		}
	}

	switch action {
	case "shutdown":
		if err := runPlatformCommand(shutdownCommand(delay)); err != nil {
			return fmt.Sprintf("Failed to shutdown system: %v", err)
		}
		return fmt.Sprintf("System shutdown scheduled in %d seconds.", delay)
	case "restart":
		if err := runPlatformCommand(restartCommand(delay)); err != nil {
			return fmt.Sprintf("Failed to restart system: %v", err)
		}
		return fmt.Sprintf("System restart scheduled in %d seconds.", delay)
	case "sleep":
		if err := runPlatformCommand(sleepCommand()); err != nil {
			return fmt.Sprintf("Failed to put system to sleep: %v", err)
		}
		return "System entering sleep mode."
	case "lock":
		if err := runPlatformCommand(lockCommand()); err != nil {
			return fmt.Sprintf("Failed to lock system: %v", err)
		}
		return "System locked."
	case "hibernate":
		if err := runPlatformCommand(hibernateCommand()); err != nil {
			return fmt.Sprintf("Failed to hibernate system: %v", err)
		}
		return "System hibernating."
	default:
		return fmt.Sprintf("Unknown system control action: %s", action)
	}
}

func (c *Controller) handleFileOperation(parameters map[string]string) string {
	operation := strings.ToLower(parameters["action"])
	path := parameters["path"]

	switch operation {
	case "create":
		if path == "" {
			return "File operation requires a path parameter."
		}
		if err := os.WriteFile(path, []byte(parameters["content"]), domain.DataFilePermissions); err != nil {
			return fmt.Sprintf("Failed to create file: %v", err)
		}
		return fmt.Sprintf("File %s created successfully.", path)
	case "delete":
		if path == "" {
			return "File operation requires a path parameter."
		}
		if err := os.Remove(path); err != nil {
			return fmt.Sprintf("Failed to delete file: %v", err)
		}
		return fmt.Sprintf("File %s deleted successfully.", path)
	case "copy":
		if err := copyFile(path, parameters["destination"]); err != nil {
			return fmt.Sprintf("Failed to copy file: %v", err)
		}
		return fmt.Sprintf("Copied %s to %s.", path, parameters["destination"])
	case "move":
		if err := os.Rename(path, parameters["destination"]); err != nil {
			return fmt.Sprintf("Failed to move file: %v", err)
		}
		return fmt.Sprintf("Moved %s to %s.", path, parameters["destination"])
	case "search", "open", "file":
		matches := searchFiles(parameters["query"], path)
		if len(matches) == 0 {
			return "No matching files found."
		}
		return fmt.Sprintf("Found %d files: %s", len(matches), strings.Join(matches, ", "))
	default:
		return fmt.Sprintf("Unknown file operation: %s", operation)
	}
}

func (c *Controller) handleApplicationControl(parameters map[string]string) string {
	action := strings.ToLower(parameters["action"])
	appName := parameters["app_name"]

	switch action {
	case "launch", "start", "app":
		if appName == "" {
			return "Application control requires an app_name parameter."
		}
		cmd := exec.Command(appName)
		if err := cmd.Start(); err != nil {
			return fmt.Sprintf("Failed to launch %s: %v", appName, err)
		}
		return fmt.Sprintf("Launched %s.", appName)
	case "close":
		if appName == "" {
			return "Application control requires an app_name parameter."
		}
		if err := runPlatformCommand(closeCommand(appName)); err != nil {
			return fmt.Sprintf("Failed to close %s: %v", appName, err)
		}
		return fmt.Sprintf("Closed %s.", appName)
	default:
		return fmt.Sprintf("Unknown application action: %s", action)
	}
}

func (c *Controller) statusReport() string {
	state := c.State()
	uptime := time.Duration(state.UptimeSeconds) * time.Second
	return fmt.Sprintf(`System Status Report:
- CPU Usage: %.1f%%
- Memory Usage: %.1f%%
- Disk Usage: %.1f%%
- Network Activity: %.2f MB/s
- Active Processes: %d
- System Uptime: %s
- Temperature: %.1fC`,
		state.CPUPercent,
		state.MemoryPercent,
		state.DiskPercent,
		state.NetworkSpeedMBps,
		state.Processes,
		uptime,
		state.Temperature,
	)
}

func runPlatformCommand(args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), domain.DefaultActionTimeout)
	defer cancel()
	return exec.CommandContext(ctx, args[0], args[1:]...).Run()
}

func shutdownCommand(delaySeconds int) []string {
	if runtime.GOOS == "windows" {
		return []string{"shutdown", "/s", "/t", strconv.Itoa(delaySeconds)}
	}
	return []string{"shutdown", "-h", fmt.Sprintf("+%d", delaySeconds/60)}
}

func restartCommand(delaySeconds int) []string {
	if runtime.GOOS == "windows" {
		return []string{"shutdown", "/r", "/t", strconv.Itoa(delaySeconds)}
	}
	return []string{"shutdown", "-r", fmt.Sprintf("+%d", delaySeconds/60)}
}

func sleepCommand() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{"rundll32.exe", "powrprof.dll,SetSuspendState", "0,1,0"}
	case "darwin":
		return []string{"pmset", "sleepnow"}
	default:
		return []string{"systemctl", "suspend"}
	}
}

func lockCommand() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{"rundll32.exe", "user32.dll,LockWorkStation"}
	case "darwin":
		return []string{"pmset", "displaysleepnow"}
	default:
		return []string{"loginctl", "lock-session"}
	}
}

func hibernateCommand() []string {
	if runtime.GOOS == "windows" {
		return []string{"shutdown", "/h"}
	}
	return []string{"systemctl", "hibernate"}
}

func closeCommand(appName string) []string {
	if runtime.GOOS == "windows" {
		return []string{"taskkill", "/IM", appName, "/F"}
	}
	return []string{"pkill", "-f", appName}
}

func copyFile(src, dst string) error {
	if src == "" || dst == "" {
		return fmt.Errorf("copy requires source and destination paths")
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = io.Copy(out, in)
	return err
}

// searchFiles walks at most one directory level under root looking for
// names containing query, bounded to keep replies short.
func searchFiles(query, root string) []string {
	if root == "" {
		root, _ = os.Getwd()
	}
	query = strings.ToLower(query)
	var matches []string
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil
	}
	for _, entry := range entries {
		if query == "" || strings.Contains(strings.ToLower(entry.Name()), query) {
			matches = append(matches, filepath.Join(root, entry.Name()))
		}
		if len(matches) >= 10 {
			break
		}
	}
	return matches
}
