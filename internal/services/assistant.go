package services

import (
	"context"
	"fmt"
	"sync"

	"jarvis/internal/domain"
	"jarvis/internal/ports"
)

// AssistantService orchestrates the per-command pipeline: detect the
// language, assemble the context snapshot, classify the intent,
// delegate to the response generator, dispatch any requested actions
// and record the exchange.
//
// Process never returns an error: every failure is folded into an
// AIResponse with Success=false and localized text so the surfaces can
// always render something and return to idle.
type AssistantService struct {
	Detector   ports.LanguageDetector
	Localizer  ports.Localizer
	Assembler  ports.ContextAssembler
	Classifier ports.IntentClassifier
	Generator  ports.ResponseGenerator
	System     ports.ActionExecutor
	Hardware   ports.ActionExecutor
	Recorder   ports.InteractionRecorder
	Logger     ports.Logger

	mu       sync.Mutex
	sessions map[string]*sync.Mutex
}

// Process runs one command through the pipeline. At most one command
// per session is in flight at a time; concurrent sessions proceed
// independently and share only the recorder.
func (s *AssistantService) Process(ctx context.Context, cmd domain.Command) domain.AIResponse {
	lock := s.sessionLock(cmd.SessionID)
	lock.Lock()
	defer lock.Unlock()

	lang := s.Detector.Detect(cmd.Text)
	s.Detector.SetActive(lang)

	resp := s.respond(ctx, cmd, lang)
	resp = s.dispatch(resp)
	s.Recorder.Record(cmd, resp)
	return resp
}

func (s *AssistantService) respond(ctx context.Context, cmd domain.Command, lang domain.Language) domain.AIResponse {
	snapshot := s.Assembler.Build(ctx)
	intent := s.Classifier.Classify(cmd.Text)

	s.Logger.Debug("command classified", map[string]interface{}{
		"session":    cmd.SessionID,
		"language":   string(lang),
		"intent":     string(intent.Category),
		"confidence": intent.Confidence,
	})

	resp, err := s.Generator.Respond(ctx, cmd, snapshot, intent, s.Recorder.History())
	if err != nil {
		s.Logger.Error("response generation failed", err, map[string]interface{}{"session": cmd.SessionID})
		return domain.FailureResponse(s.Localizer.Text(lang, "error_processing"))
	}
	return resp
}

// dispatch executes the action requests carried on the response. The
// two dispatches are independent: a failing system action never
// suppresses the hardware one, and vice versa.
func (s *AssistantService) dispatch(resp domain.AIResponse) domain.AIResponse {
	if resp.RequiresSystemAction && s.System != nil {
		resp.SystemResult = s.execute(s.System, resp.SystemCommand, resp.Parameters)
	}
	if resp.RequiresHardwareAction && s.Hardware != nil {
		resp.HardwareResult = s.execute(s.Hardware, resp.HardwareCommand, resp.Parameters)
	}
	return resp
}

// execute shields the pipeline from a misbehaving executor: a panic is
// converted into an inline error string in the result field.
func (s *AssistantService) execute(executor ports.ActionExecutor, name string, parameters map[string]string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			s.Logger.Error("action executor panicked", fmt.Errorf("%v", r), map[string]interface{}{"command": name})
			result = fmt.Sprintf("Error executing %s: %v", name, r)
		}
	}()
	return executor.ExecuteCommand(name, parameters)
}

func (s *AssistantService) sessionLock(sessionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessions == nil {
		s.sessions = make(map[string]*sync.Mutex)
	}
	lock, ok := s.sessions[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		s.sessions[sessionID] = lock
	}
	return lock
}
