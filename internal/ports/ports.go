// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// The application core depends only on these contracts; the adapters in
// the infrastructure layer implement them. This keeps the pipeline
// testable against fakes and independent of gopsutil, go-openai, SQLite
// and the other concrete collaborators.
package ports

import (
	"context"
	"time"

	"jarvis/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.jarvis/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// LanguageDetector classifies input text into a supported language and
// owns the sticky "active language" used to break scoring ties.
type LanguageDetector interface {
	Detect(text string) domain.Language
	Active() domain.Language
	SetActive(domain.Language)
}

// Localizer resolves translation keys into user-visible strings.
type Localizer interface {
	Text(lang domain.Language, key string) string
}

// ContextAssembler builds the per-request snapshot that enriches the AI
// prompt. It never fails: unavailable collaborators yield placeholder
// fields.
type ContextAssembler interface {
	Build(context.Context) domain.Context
}

// IntentClassifier maps raw command text to a coarse intent category.
type IntentClassifier interface {
	Classify(text string) domain.Intent
}

// ResponseGenerator delegates to the external text-generation service.
// Transport and service failures are absorbed into a failure AIResponse
// rather than surfaced as errors; the error return is reserved for
// request-assembly problems.
type ResponseGenerator interface {
	Respond(ctx context.Context, cmd domain.Command, snapshot domain.Context, intent domain.Intent, history []domain.Message) (domain.AIResponse, error)
}

// ActionExecutor performs one named OS-level or hardware action and
// returns a human-readable result or error string. Implementations never
// panic past this boundary.
type ActionExecutor interface {
	ExecuteCommand(name string, parameters map[string]string) string
}

// SystemStateProvider exposes the monitored host snapshot.
type SystemStateProvider interface {
	State() domain.SystemState
}

// NetworkStateProvider exposes the monitored connectivity snapshot.
type NetworkStateProvider interface {
	Status() domain.NetworkStatus
}

// InteractionRecorder appends (command, response) pairs to the bounded
// conversation window and the durable interaction log, and derives the
// recent-usage summary.
type InteractionRecorder interface {
	Record(cmd domain.Command, resp domain.AIResponse)
	History() []domain.Message
	RecentContext() domain.UserContext
	ResetConversation()
}

// VoiceEngine is the optional speech collaborator. The pipeline must run
// correctly when Enabled reports false.
type VoiceEngine interface {
	Enabled() bool
	Speak(text string, lang domain.Language) error
	Listen(timeout time.Duration) (string, bool)
}

// Monitor is a long-lived background polling loop. Stop is cooperative
// and returns false if the loop did not exit within the join timeout.
type Monitor interface {
	Start()
	Stop(timeout time.Duration) bool
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
