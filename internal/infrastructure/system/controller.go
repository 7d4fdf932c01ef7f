// Package system monitors host state and executes OS-level actions on
// behalf of the action dispatcher.
package system

import (
	"sync"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	gopsnet "github.com/shirou/gopsutil/v4/net"
	"github.com/shirou/gopsutil/v4/process"
	"github.com/shirou/gopsutil/v4/sensors"

	"jarvis/internal/domain"
	"jarvis/internal/ports"
)

// Alert thresholds, in percent.
const (
	cpuAlertThreshold    = 90.0
	memoryAlertThreshold = 85.0
	diskAlertThreshold   = 90.0
)

// Controller owns the system state record. The monitor loop is its only
// writer; everyone else reads through State().
type Controller struct {
	interval time.Duration
	logger   ports.Logger

	mu    sync.RWMutex
	state domain.SystemState

	lastNetBytes uint64
	lastNetTime  time.Time

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
				c.checkAlerts()
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
		c.logger.Warn("system monitor did not stop in time", nil)
		return false
	}
}

// State returns the latest snapshot.
func (c *Controller) State() domain.SystemState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Controller) refresh() {
	state := domain.SystemState{Known: true}

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		state.CPUPercent = percents[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		state.MemoryPercent = vm.UsedPercent
	}
	if usage, err := disk.Usage("/"); err == nil {
		state.DiskPercent = usage.UsedPercent
	}
	if uptime, err := host.Uptime(); err == nil {
		state.UptimeSeconds = uptime
	}
	if pids, err := process.Pids(); err == nil {
		state.Processes = len(pids)
	}
	state.Temperature = cpuTemperature()
	state.NetworkSpeedMBps = c.networkSpeed()

	c.mu.Lock()
	c.state = state
	c.mu.Unlock()
}

// networkSpeed derives MB/s from the delta of total interface counters
// between two refreshes. The first sample has no baseline and reports 0.
func (c *Controller) networkSpeed() float64 {
	counters, err := gopsnet.IOCounters(false)
	if err != nil || len(counters) == 0 {
		return 0
	}
	total := counters[0].BytesSent + counters[0].BytesRecv
	now := time.Now()

	speed := 0.0
	if !c.lastNetTime.IsZero() && total >= c.lastNetBytes {
		elapsed := now.Sub(c.lastNetTime).Seconds()
		if elapsed > 0 {
			speed = float64(total-c.lastNetBytes) / elapsed / (1024 * 1024)
		}
	}
	c.lastNetBytes = total
	c.lastNetTime = now
	return speed
}

func cpuTemperature() float64 {
	temps, err := sensors.SensorsTemperatures()
	if err != nil {
		return 0
	}
	for _, t := range temps {
		if t.Temperature > 0 {
			return t.Temperature
		}
	}
	return 0
}

func (c *Controller) checkAlerts() {
	state := c.State()
	if state.CPUPercent > cpuAlertThreshold {
		c.logger.Warn("high CPU usage", map[string]interface{}{"cpu_percent": state.CPUPercent})
	}
	if state.MemoryPercent > memoryAlertThreshold {
		c.logger.Warn("high memory usage", map[string]interface{}{"memory_percent": state.MemoryPercent})
	}
	if state.DiskPercent > diskAlertThreshold {
		c.logger.Warn("high disk usage", map[string]interface{}{"disk_percent": state.DiskPercent})
	}
}

var (
	_ ports.SystemStateProvider = (*Controller)(nil)
	_ ports.Monitor             = (*Controller)(nil)
	_ ports.ActionExecutor      = (*Controller)(nil)
)
