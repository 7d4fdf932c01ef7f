package domain

import "time"

// Command is one user utterance entering the pipeline. It is immutable
// once created; the pipeline reads it and never writes it back.
type Command struct {
	Text      string    `json:"text"`
	SessionID string    `json:"session_id"`
	Timestamp time.Time `json:"timestamp"`
}

// NewCommand stamps a command with the current time.
func NewCommand(text, sessionID string) Command {
	return Command{
		Text:      text,
		SessionID: sessionID,
		Timestamp: time.Now(),
	}
}

// IntentCategory is the coarse label attached to a command. It is only
// used to decide whether the response should request a system or
// hardware action.
type IntentCategory string

const (
	IntentGeneral            IntentCategory = "general"
	IntentSystemControl      IntentCategory = "system_control"
	IntentFileOperation      IntentCategory = "file_operation"
	IntentApplicationControl IntentCategory = "application_control"
	IntentInformationRequest IntentCategory = "information_request"
	IntentSystemStatus       IntentCategory = "system_status"
)

// Intent is the classifier's verdict for one command. Action carries the
// keyword that matched (e.g. "shutdown") so executors receive a concrete
// action parameter instead of re-parsing the text.
type Intent struct {
	Category   IntentCategory
	Confidence float64
	Action     string
	Parameters map[string]string
}

// RequiresSystemAction reports whether this intent category maps to a
// system executor call.
func (i Intent) RequiresSystemAction() bool {
	switch i.Category {
	case IntentSystemControl, IntentFileOperation, IntentApplicationControl, IntentSystemStatus:
		return true
	default:
		return false
	}
}

// AIResponse is the structured result of one pipeline invocation. The
// dispatcher mutates it additively: SystemResult and HardwareResult are
// appended after the generator produced the rest, nothing is ever
// overwritten.
type AIResponse struct {
	Text                   string            `json:"text"`
	Confidence             float64           `json:"confidence"`
	RequiresSystemAction   bool              `json:"requires_system_action"`
	RequiresHardwareAction bool              `json:"requires_hardware_action"`
	SystemCommand          string            `json:"system_command,omitempty"`
	HardwareCommand        string            `json:"hardware_command,omitempty"`
	Parameters             map[string]string `json:"parameters,omitempty"`
	SystemResult           string            `json:"system_result,omitempty"`
	HardwareResult         string            `json:"hardware_result,omitempty"`
	Success                bool              `json:"success"`
}

// FailureResponse builds the canonical failed response: localized text,
// zero confidence, no action flags.
func FailureResponse(text string) AIResponse {
	return AIResponse{
		Text:       text,
		Confidence: 0,
		Success:    false,
	}
}
