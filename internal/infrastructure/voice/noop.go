// Package voice holds the optional speech collaborator. The shipped
// adapter is a disabled stub; the pipeline treats Enabled() == false as
// "text only" and never blocks on it.
package voice

import (
	"time"

	"jarvis/internal/domain"
	"jarvis/internal/ports"
)

// NoopEngine fulfils the voice port without any audio stack.
type NoopEngine struct{}

func NewNoopEngine() *NoopEngine { return &NoopEngine{} }

func (*NoopEngine) Enabled() bool { return false }

func (*NoopEngine) Speak(text string, lang domain.Language) error { return nil }

func (*NoopEngine) Listen(timeout time.Duration) (string, bool) { return "", false }

var _ ports.VoiceEngine = (*NoopEngine)(nil)
