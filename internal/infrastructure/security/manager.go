package security

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"jarvis/internal/domain"
	"jarvis/internal/ports"
)

const (
	maxSecurityEvents = 1000
	eventRetainDays   = 7
)

// Event is one entry in the bounded in-memory security log.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
}

// Status is the snapshot returned to the GUI backend and console.
type Status struct {
	Authenticated bool    `json:"authenticated"`
	AuthAttempts  int     `json:"auth_attempts"`
	LockedOut     bool    `json:"locked_out"`
	RecentEvents  []Event `json:"recent_events"`
}

// Manager enforces authentication with lockout and runs the periodic
// security sweep. It also performs the startup integrity check; an
// integrity failure is fatal and reported to the caller as an error.
type Manager struct {
	settings domain.SecuritySettings
	dataDir  string
	interval time.Duration
	logger   ports.Logger

	mu              sync.Mutex
	authenticated   bool
	authAttempts    int
	lastAuthAttempt time.Time
	events          []Event

	stop chan struct{}
	done chan struct{}
}

func NewManager(settings domain.SecuritySettings, dataDir string, interval time.Duration, logger ports.Logger) *Manager {
	return &Manager{
		settings: settings,
		dataDir:  dataDir,
		interval: interval,
		logger:   logger,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// VerifyIntegrity confirms the configuration and data directories exist
// (creating them if needed) and are writable. Callers treat a failure
// as fatal at startup.
func (m *Manager) VerifyIntegrity(dirs ...string) error {
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, domain.DirectoryPermissions); err != nil {
			return fmt.Errorf("security: directory %s not creatable: %w", dir, err)
		}
		probe := filepath.Join(dir, ".integrity")
		if err := os.WriteFile(probe, []byte("ok"), domain.SecureFilePermissions); err != nil {
			return fmt.Errorf("security: directory %s not writable: %w", dir, err)
		}
		os.Remove(probe)
	}
	m.record("INFO", "integrity verification passed")
	return nil
}

// Authenticate checks the supplied password against the configured
// requirement. While require_authentication is off any call succeeds.
// After max_auth_attempts consecutive failures further attempts are
// rejected until lockout_seconds have elapsed.
func (m *Manager) Authenticate(password string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	if m.lockedOutLocked(now) {
		remaining := m.lockoutWindow() - now.Sub(m.lastAuthAttempt)
		m.recordLocked("WARNING", fmt.Sprintf("authentication locked out for %.0f seconds", remaining.Seconds()))
		return false
	}
	if m.authAttempts >= m.settings.MaxAuthAttempts {
		m.authAttempts = 0
	}

	if !m.settings.RequireAuthentication {
		m.authenticated = true
		m.recordLocked("INFO", "authenticated, no authentication required")
		return true
	}

	if password != "" && password == os.Getenv("JARVIS_PASSWORD") {
		m.authenticated = true
		m.authAttempts = 0
		m.recordLocked("INFO", "authenticated successfully")
		return true
	}

	m.authAttempts++
	m.lastAuthAttempt = now
	m.recordLocked("WARNING", fmt.Sprintf("authentication failed, attempt %d", m.authAttempts))
	return false
}

func (m *Manager) lockoutWindow() time.Duration {
	return time.Duration(m.settings.LockoutSeconds) * time.Second
}

func (m *Manager) lockedOutLocked(now time.Time) bool {
	return m.authAttempts >= m.settings.MaxAuthAttempts &&
		now.Sub(m.lastAuthAttempt) < m.lockoutWindow()
}

// Status returns the current authentication state and the ten most
// recent security events.
func (m *Manager) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()

	recent := m.events
	if len(recent) > 10 {
		recent = recent[len(recent)-10:]
	}
	return Status{
		Authenticated: m.authenticated,
		AuthAttempts:  m.authAttempts,
		LockedOut:     m.lockedOutLocked(time.Now()),
		RecentEvents:  append([]Event(nil), recent...),
	}
}

// Start launches the periodic security sweep.
func (m *Manager) Start() {
	go func() {
		defer close(m.done)
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()
		for {
			select {
			case <-m.stop:
				return
			case <-ticker.C:
				m.sweep()
			}
		}
	}()
}

// Stop asks the sweep loop to exit, waits up to timeout, and persists
// the event log.
func (m *Manager) Stop(timeout time.Duration) bool {
	close(m.stop)
	stopped := true
	select {
	case <-m.done:
	case <-time.After(timeout):
		m.logger.Warn("security sweep did not stop in time", nil)
		stopped = false
	}
	m.saveEvents()
	return stopped
}

func (m *Manager) sweep() {
	m.mu.Lock()
	cutoff := time.Now().AddDate(0, 0, -eventRetainDays)
	kept := m.events[:0]
	for _, ev := range m.events {
		if ev.Timestamp.After(cutoff) {
			kept = append(kept, ev)
		}
	}
	m.events = kept
	attempts := m.authAttempts
	authenticated := m.authenticated
	m.mu.Unlock()

	m.logger.Debug("security sweep", map[string]interface{}{
		"auth_attempts": attempts,
		"authenticated": authenticated,
		"events":        len(kept),
	})
}

func (m *Manager) record(level, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recordLocked(level, message)
}

func (m *Manager) recordLocked(level, message string) {
	m.events = append(m.events, Event{Timestamp: time.Now(), Level: level, Message: message})
	if len(m.events) > maxSecurityEvents {
		m.events = m.events[len(m.events)-maxSecurityEvents:]
	}
	switch level {
	case "WARNING", "CRITICAL":
		m.logger.Warn("security: "+message, nil)
	default:
		m.logger.Info("security: "+message, nil)
	}
}

func (m *Manager) saveEvents() {
	m.mu.Lock()
	events := append([]Event(nil), m.events...)
	m.mu.Unlock()

	if err := os.MkdirAll(m.dataDir, domain.DirectoryPermissions); err != nil {
		m.logger.Error("could not create data dir", err, nil)
		return
	}
	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return
	}
	path := filepath.Join(m.dataDir, "security_events.json")
	if err := os.WriteFile(path, data, domain.DataFilePermissions); err != nil {
		m.logger.Error("could not write security events", err, nil)
	}
}

var _ ports.Monitor = (*Manager)(nil)
