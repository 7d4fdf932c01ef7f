package security

import (
	"testing"
	"time"

	"jarvis/internal/domain"
)

func newTestManager(t *testing.T, settings domain.SecuritySettings) *Manager {
	t.Helper()
	return NewManager(settings, t.TempDir(), time.Minute, nopLogger{})
}

func TestAuthenticateWithoutRequirementAlwaysSucceeds(t *testing.T) {
	m := newTestManager(t, domain.SecuritySettings{RequireAuthentication: false})
	if !m.Authenticate("") {
		t.Fatal("Authenticate() = false with authentication disabled")
	}
	if !m.Status().Authenticated {
		t.Fatal("Status().Authenticated = false after successful auth")
	}
}

func TestAuthenticateLockoutAfterMaxAttempts(t *testing.T) {
	t.Setenv("JARVIS_PASSWORD", "correct-horse")
	m := newTestManager(t, domain.SecuritySettings{
		RequireAuthentication: true,
		MaxAuthAttempts:       2,
		LockoutSeconds:        300,
	})

	if m.Authenticate("wrong") {
		t.Fatal("wrong password accepted")
	}
	if m.Authenticate("wrong") {
		t.Fatal("wrong password accepted")
	}

	// Attempts are exhausted: even the correct password is rejected
	// until the lockout window elapses.
	if m.Authenticate("correct-horse") {
		t.Fatal("Authenticate() succeeded during lockout")
	}
	if !m.Status().LockedOut {
		t.Fatal("Status().LockedOut = false during lockout")
	}
}

func TestAuthenticateLockoutExpires(t *testing.T) {
	t.Setenv("JARVIS_PASSWORD", "correct-horse")
	m := newTestManager(t, domain.SecuritySettings{
		RequireAuthentication: true,
		MaxAuthAttempts:       1,
		LockoutSeconds:        300,
	})

	m.Authenticate("wrong")
	// Age the last attempt past the lockout window.
	m.mu.Lock()
	m.lastAuthAttempt = time.Now().Add(-301 * time.Second)
	m.mu.Unlock()

	if !m.Authenticate("correct-horse") {
		t.Fatal("Authenticate() failed after lockout expired")
	}
	status := m.Status()
	if !status.Authenticated || status.AuthAttempts != 0 {
		t.Fatalf("Status() = %+v after successful auth", status)
	}
}

func TestVerifyIntegrityCreatesDirectories(t *testing.T) {
	m := newTestManager(t, domain.SecuritySettings{})
	dir := t.TempDir() + "/nested/data"
	if err := m.VerifyIntegrity(dir); err != nil {
		t.Fatalf("VerifyIntegrity() error = %v", err)
	}
}

func TestStatusBoundsRecentEvents(t *testing.T) {
	m := newTestManager(t, domain.SecuritySettings{})
	for i := 0; i < 50; i++ {
		m.record("INFO", "event")
	}
	if got := len(m.Status().RecentEvents); got != 10 {
		t.Fatalf("len(RecentEvents) = %d, want 10", got)
	}
}

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{})        {}
func (nopLogger) Info(string, map[string]interface{})         {}
func (nopLogger) Warn(string, map[string]interface{})         {}
func (nopLogger) Error(string, error, map[string]interface{}) {}
