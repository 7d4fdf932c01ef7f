// Package network monitors connectivity: latency probes against
// well-known hosts plus interface counter deltas.
package network

import (
	"net"
	"sync"
	"time"

	gopsnet "github.com/shirou/gopsutil/v4/net"

	"jarvis/internal/domain"
	"jarvis/internal/ports"
)

const probeTimeout = 3 * time.Second

// Default probe targets; DNS ports answer quickly and are reachable
// from most networks.
var defaultProbeHosts = []string{"8.8.8.8:53", "1.1.1.1:53"}

// Manager owns the network state record. The monitor loop is the only
// writer.
type Manager struct {
	interval   time.Duration
	probeHosts []string
	logger     ports.Logger

	mu     sync.RWMutex
	status domain.NetworkStatus

	lastSent uint64
	lastRecv uint64
	lastTime time.Time

	stop chan struct{}
	done chan struct{}
}

// NewManager builds a manager polling at the given interval.
func NewManager(interval time.Duration, logger ports.Logger) *Manager {
	return &Manager{
		interval:   interval,
		probeHosts: defaultProbeHosts,
		logger:     logger,
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

// Start launches the background polling loop.
func (m *Manager) Start() {
	go func() {
		defer close(m.done)
		m.refresh()
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()
		for {
			select {
			case <-m.stop:
				return
			case <-ticker.C:
				m.refresh()
			}
		}
	}()
}

// Stop asks the loop to exit and waits up to timeout for it.
func (m *Manager) Stop(timeout time.Duration) bool {
	close(m.stop)
	select {
	case <-m.done:
		return true
	case <-time.After(timeout):
		m.logger.Warn("network monitor did not stop in time", nil)
		return false
	}
}

// Status returns the latest connectivity snapshot.
func (m *Manager) Status() domain.NetworkStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

func (m *Manager) refresh() {
	status := domain.NetworkStatus{Known: true}
	status.Connected, status.LatencyMS = m.probe()
	status.UploadMBps, status.DownloadMBps = m.speeds()
	if conns, err := gopsnet.Connections("tcp"); err == nil {
		status.Connections = len(conns)
	}

	m.mu.Lock()
	m.status = status
	m.mu.Unlock()
}

// probe measures TCP dial latency against the configured hosts and
// averages the successful ones.
func (m *Manager) probe() (bool, float64) {
	var total float64
	var ok int
	for _, host := range m.probeHosts {
		start := time.Now()
		conn, err := net.DialTimeout("tcp", host, probeTimeout)
		if err != nil {
			continue
		}
		_ = conn.Close()
		total += float64(time.Since(start).Milliseconds())
		ok++
	}
	if ok == 0 {
		return false, 0
	}
	return true, total / float64(ok)
}

func (m *Manager) speeds() (up, down float64) {
	counters, err := gopsnet.IOCounters(false)
	if err != nil || len(counters) == 0 {
		return 0, 0
	}
	now := time.Now()
	sent, recv := counters[0].BytesSent, counters[0].BytesRecv
	if !m.lastTime.IsZero() {
		elapsed := now.Sub(m.lastTime).Seconds()
		if elapsed > 0 && sent >= m.lastSent && recv >= m.lastRecv {
			up = float64(sent-m.lastSent) / elapsed / (1024 * 1024)
			down = float64(recv-m.lastRecv) / elapsed / (1024 * 1024)
		}
	}
	m.lastSent, m.lastRecv, m.lastTime = sent, recv, now
	return up, down
}

var (
	_ ports.NetworkStateProvider = (*Manager)(nil)
	_ ports.Monitor              = (*Manager)(nil)
)
