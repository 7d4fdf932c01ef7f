// Package hardware monitors low-level hardware state and answers the
// hardware action requests issued by the dispatcher.
package hardware

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	gopsnet "github.com/shirou/gopsutil/v4/net"
	"github.com/shirou/gopsutil/v4/sensors"

	"jarvis/internal/ports"
)

const maxPerformanceHistory = 100

// Snapshot is the hardware state record owned by the monitor loop.
type Snapshot struct {
	CPUUsage        float64
	CPUFrequencyMHz float64
	CPUTemperature  float64
	MemoryUsage     float64
	UploadMBps      float64
	DownloadMBps    float64
	SensorTemps     map[string]float64
	Timestamp       time.Time
}

// Controller polls hardware sensors and keeps a bounded performance
// history for the get_performance report.
type Controller struct {
	interval time.Duration
	logger   ports.Logger

	mu      sync.RWMutex
	current Snapshot
	history []Snapshot

	lastSent uint64
	lastRecv uint64
	lastTime time.Time

	stop chan struct{}
	done chan struct{}
}

// NewController builds a controller polling at the given interval.
func NewController(interval time.Duration, logger ports.Logger) *Controller {
	return &Controller{
		interval: interval,
		logger:   logger,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the background polling loop.
func (c *Controller) Start() {
	go func() {
		defer close(c.done)
		c.refresh()
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()
		for {
			select {
			case <-c.stop:
				return
			case <-ticker.C:
				c.refresh()
			}
		}
	}()
}

// Stop asks the loop to exit and waits up to timeout for it.
func (c *Controller) Stop(timeout time.Duration) bool {
	close(c.stop)
	select {
	case <-c.done:
		return true
	case <-time.After(timeout):
		c.logger.Warn("hardware monitor did not stop in time", nil)
		return false
	}
}

// State returns the latest hardware snapshot.
func (c *Controller) State() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

func (c *Controller) refresh() {
	snap := Snapshot{Timestamp: time.Now(), SensorTemps: map[string]float64{}}

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		snap.CPUUsage = percents[0]
	}
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		snap.CPUFrequencyMHz = infos[0].Mhz
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		snap.MemoryUsage = vm.UsedPercent
	}
	if temps, err := sensors.SensorsTemperatures(); err == nil {
		for _, t := range temps {
			if t.Temperature <= 0 {
				continue
			}
			snap.SensorTemps[t.SensorKey] = t.Temperature
			if snap.CPUTemperature == 0 {
				snap.CPUTemperature = t.Temperature
			}
		}
	}
	snap.UploadMBps, snap.DownloadMBps = c.networkSpeeds()

	c.mu.Lock()
	c.current = snap
	c.history = append(c.history, snap)
	if len(c.history) > maxPerformanceHistory {
		c.history = c.history[len(c.history)-maxPerformanceHistory:]
	}
	c.mu.Unlock()
}

func (c *Controller) networkSpeeds() (up, down float64) {
	counters, err := gopsnet.IOCounters(false)
	if err != nil || len(counters) == 0 {
		return 0, 0
	}
	now := time.Now()
	sent, recv := counters[0].BytesSent, counters[0].BytesRecv
	if !c.lastTime.IsZero() {
		elapsed := now.Sub(c.lastTime).Seconds()
		if elapsed > 0 && sent >= c.lastSent && recv >= c.lastRecv {
			up = float64(sent-c.lastSent) / elapsed / (1024 * 1024)
			down = float64(recv-c.lastRecv) / elapsed / (1024 * 1024)
		}
	}
	c.lastSent, c.lastRecv, c.lastTime = sent, recv, now
	return up, down
}

// ExecuteCommand performs one named hardware query and returns a
// human-readable result. Errors are folded into the returned string.
func (c *Controller) ExecuteCommand(name string, parameters map[string]string) string {
	c.logger.Info("executing hardware command", map[string]interface{}{"command": name})

	switch name {
	case "get_status":
		return c.statusReport()
	case "get_temperatures":
		return c.temperatureReport()
	case "get_performance":
		return c.performanceReport()
	case "optimize_performance":
		return c.optimizationReport()
	default:
		return fmt.Sprintf("Unknown hardware command: %s", name)
	}
}

func (c *Controller) statusReport() string {
	snap := c.State()
	report := fmt.Sprintf(`Hardware Status Report:
- CPU Usage: %.1f%%
- CPU Frequency: %.0f MHz
- Memory Usage: %.1f%%`, snap.CPUUsage, snap.CPUFrequencyMHz, snap.MemoryUsage)
	if snap.CPUTemperature > 0 {
		report += fmt.Sprintf("\n- CPU Temperature: %.1fC", snap.CPUTemperature)
	}
	return report
}

func (c *Controller) temperatureReport() string {
	snap := c.State()
	if len(snap.SensorTemps) == 0 {
		return "Temperature sensors not available"
	}
	var lines []string
	lines = append(lines, "Temperature Information:")
	for sensor, temp := range snap.SensorTemps {
		lines = append(lines, fmt.Sprintf("- %s: %.1fC", sensor, temp))
	}
	return strings.Join(lines, "\n")
}

func (c *Controller) performanceReport() string {
	c.mu.RLock()
	history := c.history
	c.mu.RUnlock()
	if len(history) == 0 {
		return "No performance data available"
	}

	recent := history
	if len(recent) > 10 {
		recent = recent[len(recent)-10:]
	}
	var cpuSum, memSum float64
	for _, snap := range recent {
		cpuSum += snap.CPUUsage
		memSum += snap.MemoryUsage
	}
	latest := recent[len(recent)-1]
	return fmt.Sprintf(`Performance Summary (last %d readings):
- Average CPU Usage: %.1f%%
- Average Memory Usage: %.1f%%
- Network Upload: %.2f MB/s
- Network Download: %.2f MB/s`,
		len(recent),
		cpuSum/float64(len(recent)),
		memSum/float64(len(recent)),
		latest.UploadMBps,
		latest.DownloadMBps,
	)
}

func (c *Controller) optimizationReport() string {
	snap := c.State()
	var suggestions []string
	if snap.CPUUsage > 80 {
		suggestions = append(suggestions, "High CPU usage detected - consider closing unnecessary applications")
	}
	if snap.MemoryUsage > 85 {
		suggestions = append(suggestions, "High memory usage detected - consider freeing memory")
	}
	if snap.CPUTemperature > 70 {
		suggestions = append(suggestions, "High CPU temperature detected - check cooling")
	}
	if len(suggestions) == 0 {
		return "System performance is optimal"
	}
	return "Performance optimizations suggested:\n- " + strings.Join(suggestions, "\n- ")
}

var (
	_ ports.ActionExecutor = (*Controller)(nil)
	_ ports.Monitor        = (*Controller)(nil)
)
