package domain

import "time"

// Conversation history limits. When the message cap is exceeded the
// oldest half is evicted in one step rather than sliding one-by-one, so
// the window always keeps whole recent exchanges together.
const (
	MaxConversationMessages = 20
	MaxInteractionRecords   = 10000
	InteractionRetainDays   = 30
)

// Message is one role-tagged entry in the conversation window.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ConversationHistory is the sliding window of role-tagged messages
// passed to the response generator. Not safe for concurrent use; the
// recorder guards it.
type ConversationHistory struct {
	messages []Message
}

// NewConversationHistory seeds a history from previously persisted
// messages, trimming to the cap if the file on disk grew beyond it.
func NewConversationHistory(messages []Message) *ConversationHistory {
	h := &ConversationHistory{}
	for _, m := range messages {
		h.push(m)
	}
	return h
}

// AppendExchange records one user/assistant pair.
func (h *ConversationHistory) AppendExchange(command, reply string) {
	h.push(Message{Role: "user", Content: command})
	h.push(Message{Role: "assistant", Content: reply})
}

func (h *ConversationHistory) push(m Message) {
	h.messages = append(h.messages, m)
	if len(h.messages) > MaxConversationMessages {
		keep := MaxConversationMessages / 2
		h.messages = append(h.messages[:0:0], h.messages[len(h.messages)-keep:]...)
	}
}

// Messages returns a copy of the full window.
func (h *ConversationHistory) Messages() []Message {
	out := make([]Message, len(h.messages))
	copy(out, h.messages)
	return out
}

// LastExchanges returns up to n most recent exchanges (2n messages).
func (h *ConversationHistory) LastExchanges(n int) []Message {
	limit := n * 2
	if limit > len(h.messages) {
		limit = len(h.messages)
	}
	out := make([]Message, limit)
	copy(out, h.messages[len(h.messages)-limit:])
	return out
}

// Len reports the number of messages currently in the window.
func (h *ConversationHistory) Len() int {
	return len(h.messages)
}

// Reset clears the window. Only an explicit user action does this.
func (h *ConversationHistory) Reset() {
	h.messages = nil
}

// InteractionRecord is one persisted (command, response) pair used for
// history replay and usage-pattern learning.
type InteractionRecord struct {
	Timestamp     time.Time  `json:"timestamp"`
	Command       string     `json:"command"`
	Response      AIResponse `json:"response"`
	Feedback      string     `json:"feedback,omitempty"`
	Language      Language   `json:"language"`
	Hour          int        `json:"hour"`
	DayOfWeek     int        `json:"day_of_week"`
	SessionLength int        `json:"session_length"`
}

// Preferences are the learned user preferences persisted between runs.
type Preferences struct {
	PreferredLanguage Language  `json:"preferred_language"`
	CommonCommands    []string  `json:"common_commands"`
	UpdatedAt         time.Time `json:"updated_at"`
}
