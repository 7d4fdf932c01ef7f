package contextsnap

import (
	"context"
	"time"

	"jarvis/internal/domain"
	"jarvis/internal/ports"
)

// Assembler builds the per-command context snapshot from whichever
// collaborators are wired. A nil collaborator yields placeholder fields
// rather than an error so classification can proceed degraded.
type Assembler struct {
	system   ports.SystemStateProvider
	network  ports.NetworkStateProvider
	recorder ports.InteractionRecorder
	detector ports.LanguageDetector
	now      func() time.Time
}

func NewAssembler(system ports.SystemStateProvider, network ports.NetworkStateProvider, recorder ports.InteractionRecorder, detector ports.LanguageDetector) *Assembler {
	return &Assembler{
		system:   system,
		network:  network,
		recorder: recorder,
		detector: detector,
		now:      time.Now,
	}
}

// Build implements ports.ContextAssembler.
func (a *Assembler) Build(ctx context.Context) domain.Context {
	now := a.now()
	snapshot := domain.Context{
		Timestamp: now,
		Language:  domain.LanguageEnglish,
		UserHistory: domain.UserContext{
			PreferredLanguage: domain.LanguageEnglish,
			TimeOfDay:         domain.TimeOfDayBucket(now.Hour()),
		},
		Environment: domain.Environment{
			TimeOfDay: domain.TimeOfDayBucket(now.Hour()),
			DayOfWeek: now.Weekday().String(),
		},
	}

	if a.detector != nil {
		snapshot.Language = a.detector.Active()
	}
	if a.system != nil {
		snapshot.System = a.system.State()
		snapshot.Environment.SystemLoad = snapshot.System.CPUPercent
		snapshot.Environment.ActiveApps = snapshot.System.Processes
	}
	if a.network != nil {
		snapshot.Network = a.network.Status()
	}
	if a.recorder != nil {
		snapshot.UserHistory = a.recorder.RecentContext()
	}
	return snapshot
}

var _ ports.ContextAssembler = (*Assembler)(nil)
