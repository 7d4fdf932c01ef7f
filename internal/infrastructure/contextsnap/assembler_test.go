package contextsnap

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"jarvis/internal/domain"
)

func TestBuildWithoutCollaboratorsYieldsPlaceholders(t *testing.T) {
	a := NewAssembler(nil, nil, nil, nil)
	a.now = func() time.Time { return time.Date(2026, 5, 2, 14, 0, 0, 0, time.UTC) }

	got := a.Build(context.Background())

	want := domain.Context{
		Timestamp: time.Date(2026, 5, 2, 14, 0, 0, 0, time.UTC),
		Language:  domain.LanguageEnglish,
		UserHistory: domain.UserContext{
			PreferredLanguage: domain.LanguageEnglish,
			TimeOfDay:         "afternoon",
		},
		Environment: domain.Environment{
			TimeOfDay: "afternoon",
			DayOfWeek: "Saturday",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Build() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildAggregatesCollaborators(t *testing.T) {
	system := stubSystem{state: domain.SystemState{Known: true, CPUPercent: 33}}
	network := stubNetwork{status: domain.NetworkStatus{Known: true, Connected: true}}
	recorder := stubRecorder{ctx: domain.UserContext{
		TotalInteractions: 7,
		CommonCommands:    []string{"open browser"},
		PreferredLanguage: domain.LanguageHindi,
	}}
	detector := stubDetector{lang: domain.LanguageHindi}

	a := NewAssembler(system, network, recorder, detector)
	got := a.Build(context.Background())

	if got.Language != domain.LanguageHindi {
		t.Fatalf("Language = %s, want hindi", got.Language)
	}
	if !got.System.Known || got.System.CPUPercent != 33 {
		t.Fatalf("System = %+v", got.System)
	}
	if got.Environment.SystemLoad != 33 {
		t.Fatalf("Environment.SystemLoad = %v, want CPU percent", got.Environment.SystemLoad)
	}
	if !got.Network.Connected {
		t.Fatalf("Network = %+v", got.Network)
	}
	if diff := cmp.Diff(recorder.ctx, got.UserHistory); diff != "" {
		t.Fatalf("UserHistory mismatch (-want +got):\n%s", diff)
	}
}

// Build is a pure read: two consecutive snapshots differ only in their
// timestamps.
func TestBuildIsIdempotent(t *testing.T) {
	system := stubSystem{state: domain.SystemState{Known: true, CPUPercent: 12}}
	a := NewAssembler(system, nil, nil, nil)
	a.now = func() time.Time { return time.Date(2026, 5, 2, 9, 0, 0, 0, time.UTC) }

	first := a.Build(context.Background())
	second := a.Build(context.Background())

	first.Timestamp = time.Time{}
	second.Timestamp = time.Time{}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("consecutive snapshots diverge (-first +second):\n%s", diff)
	}
}

type stubSystem struct{ state domain.SystemState }

func (s stubSystem) State() domain.SystemState { return s.state }

type stubNetwork struct{ status domain.NetworkStatus }

func (s stubNetwork) Status() domain.NetworkStatus { return s.status }

type stubRecorder struct{ ctx domain.UserContext }

func (s stubRecorder) Record(domain.Command, domain.AIResponse) {}
func (s stubRecorder) History() []domain.Message                { return nil }
func (s stubRecorder) RecentContext() domain.UserContext        { return s.ctx }
func (s stubRecorder) ResetConversation()                       {}

type stubDetector struct{ lang domain.Language }

func (s stubDetector) Detect(string) domain.Language { return s.lang }
func (s stubDetector) Active() domain.Language       { return s.lang }
func (s stubDetector) SetActive(domain.Language)     {}
