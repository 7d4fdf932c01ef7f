package learning

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"jarvis/internal/domain"
	"jarvis/internal/ports"
)

// Recorder owns the conversation window and the durable interaction
// log. Appends from concurrent sessions are serialized by mu; the store
// guards its own database handle.
type Recorder struct {
	store    *InteractionStore
	dataDir  string
	learning bool
	detector ports.LanguageDetector
	logger   ports.Logger

	mu      sync.Mutex
	history *domain.ConversationHistory
	prefs   domain.Preferences

	sweepInterval time.Duration
	retainDays    int
	stop          chan struct{}
	done          chan struct{}
}

// NewRecorder loads persisted conversation history and preferences and
// wires the durable store.
func NewRecorder(store *InteractionStore, dataDir string, cfg domain.LearningSettings, retainDays int, detector ports.LanguageDetector, logger ports.Logger) *Recorder {
	r := &Recorder{
		store:         store,
		dataDir:       dataDir,
		learning:      cfg.Enabled,
		detector:      detector,
		logger:        logger,
		history:       domain.NewConversationHistory(nil),
		sweepInterval: time.Duration(cfg.SweepIntervalSeconds) * time.Second,
		retainDays:    retainDays,
		stop:          make(chan struct{}),
		done:          make(chan struct{}),
	}
	r.loadState()
	return r
}

// Record implements ports.InteractionRecorder.
func (r *Recorder) Record(cmd domain.Command, resp domain.AIResponse) {
	r.mu.Lock()
	r.history.AppendExchange(cmd.Text, resp.Text)
	r.mu.Unlock()

	if !r.learning {
		return
	}

	sessionLength, _ := r.store.CountSince(time.Now().Add(-time.Hour))
	rec := domain.InteractionRecord{
		Timestamp:     cmd.Timestamp,
		Command:       cmd.Text,
		Response:      resp,
		Language:      r.detector.Active(),
		Hour:          cmd.Timestamp.Hour(),
		DayOfWeek:     int(cmd.Timestamp.Weekday()),
		SessionLength: sessionLength,
	}
	if err := r.store.Save(rec); err != nil {
		r.logger.Error("failed to persist interaction", err, nil)
	}
}

// History returns a copy of the conversation window.
func (r *Recorder) History() []domain.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.history.Messages()
}

// ResetConversation clears the window on explicit user request.
func (r *Recorder) ResetConversation() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.history.Reset()
	r.logger.Info("conversation history reset", nil)
}

// RecentContext derives the usage summary from the last records. It is
// recomputed on every call, never cached.
func (r *Recorder) RecentContext() domain.UserContext {
	now := time.Now()
	ctx := domain.UserContext{
		PreferredLanguage: domain.LanguageEnglish,
		TimeOfDay:         domain.TimeOfDayBucket(now.Hour()),
	}

	records, err := r.store.Recent(domain.RecentContextWindow)
	if err != nil {
		r.logger.Warn("recent-context query failed", map[string]interface{}{"error": err.Error()})
		return ctx
	}
	if total, err := r.store.Count(); err == nil {
		ctx.TotalInteractions = total
	}

	freq := map[string]int{}
	langFreq := map[domain.Language]int{}
	oneHourAgo := now.Add(-time.Hour)
	for _, rec := range records {
		freq[rec.Command]++
		langFreq[rec.Language]++
		if rec.Timestamp.After(oneHourAgo) {
			ctx.SessionLength++
		}
	}
	ctx.CommonCommands = topCommands(freq, domain.CommonCommandCount)
	if lang := topLanguage(langFreq); lang != "" {
		ctx.PreferredLanguage = lang
	}
	return ctx
}

func topCommands(freq map[string]int, n int) []string {
	type entry struct {
		command string
		count   int
	}
	entries := make([]entry, 0, len(freq))
	for command, count := range freq {
		entries = append(entries, entry{command, count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].command < entries[j].command
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	commands := make([]string, len(entries))
	for i, e := range entries {
		commands[i] = e.command
	}
	return commands
}

func topLanguage(freq map[domain.Language]int) domain.Language {
	var best domain.Language
	bestCount := 0
	for lang, count := range freq {
		if count > bestCount && lang.IsSupported() {
			best, bestCount = lang, count
		}
	}
	return best
}

// Start launches the periodic learning sweep: prune old records, refresh
// learned preferences, checkpoint state files.
func (r *Recorder) Start() {
	go func() {
		defer close(r.done)
		ticker := time.NewTicker(r.sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-r.stop:
				return
			case <-ticker.C:
				r.sweep()
			}
		}
	}()
}

// Stop asks the sweep loop to exit, waits up to timeout, and writes a
// final checkpoint either way.
func (r *Recorder) Stop(timeout time.Duration) bool {
	close(r.stop)
	stopped := true
	select {
	case <-r.done:
	case <-time.After(timeout):
		r.logger.Warn("learning sweep did not stop in time", nil)
		stopped = false
	}
	r.saveState()
	return stopped
}

func (r *Recorder) sweep() {
	if err := r.store.PruneOlderThan(r.retainDays); err != nil {
		r.logger.Error("interaction prune failed", err, nil)
	}

	summary := r.RecentContext()
	r.mu.Lock()
	r.prefs = domain.Preferences{
		PreferredLanguage: summary.PreferredLanguage,
		CommonCommands:    summary.CommonCommands,
		UpdatedAt:         time.Now(),
	}
	r.mu.Unlock()

	r.saveState()
}

// Preferences returns the latest learned preferences.
func (r *Recorder) Preferences() domain.Preferences {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.prefs
}

func (r *Recorder) conversationPath() string {
	return filepath.Join(r.dataDir, "conversation_history.json")
}

func (r *Recorder) preferencesPath() string {
	return filepath.Join(r.dataDir, "preferences.json")
}

// loadState reads the persisted conversation window and preferences;
// missing files yield empty defaults.
func (r *Recorder) loadState() {
	if data, err := os.ReadFile(r.conversationPath()); err == nil {
		var messages []domain.Message
		if err := json.Unmarshal(data, &messages); err == nil {
			r.history = domain.NewConversationHistory(messages)
		} else {
			r.logger.Warn("corrupt conversation history, starting empty", map[string]interface{}{"error": err.Error()})
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		r.logger.Warn("could not read conversation history", map[string]interface{}{"error": err.Error()})
	}

	if data, err := os.ReadFile(r.preferencesPath()); err == nil {
		var prefs domain.Preferences
		if err := json.Unmarshal(data, &prefs); err == nil {
			r.prefs = prefs
		}
	}
}

// saveState checkpoints the window and preferences as whole-file JSON
// rewrites of bounded structures.
func (r *Recorder) saveState() {
	r.mu.Lock()
	messages := r.history.Messages()
	prefs := r.prefs
	r.mu.Unlock()

	if err := os.MkdirAll(r.dataDir, domain.DirectoryPermissions); err != nil {
		r.logger.Error("could not create data dir", err, nil)
		return
	}
	if data, err := json.MarshalIndent(messages, "", "  "); err == nil {
		if err := os.WriteFile(r.conversationPath(), data, domain.DataFilePermissions); err != nil {
			r.logger.Error("could not write conversation history", err, nil)
		}
	}
	if data, err := json.MarshalIndent(prefs, "", "  "); err == nil {
		if err := os.WriteFile(r.preferencesPath(), data, domain.DataFilePermissions); err != nil {
			r.logger.Error("could not write preferences", err, nil)
		}
	}
}

var (
	_ ports.InteractionRecorder = (*Recorder)(nil)
	_ ports.Monitor             = (*Recorder)(nil)
)
