package ai

import (
	"strings"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"jarvis/internal/domain"
)

func TestBuildMessagesOrdering(t *testing.T) {
	settings := domain.AISettings{HistoryExchanges: 5}
	cmd := domain.Command{Text: "what is the cpu load", SessionID: "s1"}
	snapshot := domain.Context{
		Timestamp: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		Language:  domain.LanguageEnglish,
	}
	intent := domain.Intent{Category: domain.IntentSystemStatus, Confidence: 0.9}
	history := []domain.Message{
		{Role: "user", Content: "hello"},
		{Role: "assistant", Content: "good morning, sir"},
	}

	messages := buildMessages(settings, cmd, snapshot, intent, history)

	if len(messages) != 5 {
		t.Fatalf("len(messages) = %d, want 5 (persona + 2 history + summary + command)", len(messages))
	}
	if messages[0].Role != openai.ChatMessageRoleSystem || !strings.Contains(messages[0].Content, "You are JARVIS") {
		t.Fatalf("messages[0] is not the persona preamble: %+v", messages[0])
	}
	if !strings.Contains(messages[0].Content, "2026-03-14 09:30:00") {
		t.Fatalf("persona preamble missing rendered time: %q", messages[0].Content)
	}
	if messages[1].Content != "hello" || messages[2].Content != "good morning, sir" {
		t.Fatal("history exchanges are not in chronological order after the persona")
	}
	if messages[3].Role != openai.ChatMessageRoleSystem || !strings.Contains(messages[3].Content, "Current Context:") {
		t.Fatalf("messages[3] is not the context summary: %+v", messages[3])
	}
	last := messages[len(messages)-1]
	if last.Role != openai.ChatMessageRoleUser || last.Content != cmd.Text {
		t.Fatalf("final message is not the user command: %+v", last)
	}
}

func TestBuildMessagesTruncatesHistory(t *testing.T) {
	settings := domain.AISettings{HistoryExchanges: 2}

	var history []domain.Message
	for i := 0; i < 10; i++ {
		history = append(history,
			domain.Message{Role: "user", Content: "u"},
			domain.Message{Role: "assistant", Content: "a"},
		)
	}

	messages := buildMessages(settings, domain.Command{Text: "hi"}, domain.Context{}, domain.Intent{}, history)

	// persona + 4 history messages + summary + command
	if len(messages) != 7 {
		t.Fatalf("len(messages) = %d, want 7", len(messages))
	}
}

func TestContextSummaryPlaceholders(t *testing.T) {
	snapshot := domain.Context{Language: domain.LanguageEnglish}
	summary := contextSummary(snapshot, domain.Intent{Category: domain.IntentGeneral, Confidence: 0.5})

	if !strings.Contains(summary, "System Load: unknown") {
		t.Fatalf("summary missing placeholder for unknown system state: %q", summary)
	}
	if strings.Contains(summary, "Network:") {
		t.Fatalf("summary mentions network despite unknown status: %q", summary)
	}
	if !strings.Contains(summary, "Intent: general (confidence: 0.50)") {
		t.Fatalf("summary missing intent line: %q", summary)
	}
}

func TestContextSummaryIncludesKnownState(t *testing.T) {
	snapshot := domain.Context{
		Language: domain.LanguageEnglish,
		System:   domain.SystemState{Known: true, CPUPercent: 42.5, MemoryPercent: 61.2},
		Network:  domain.NetworkStatus{Known: true, Connected: true, LatencyMS: 12},
		UserHistory: domain.UserContext{
			CommonCommands: []string{"open browser", "system status"},
		},
		Environment: domain.Environment{TimeOfDay: "morning", DayOfWeek: "Saturday"},
	}
	summary := contextSummary(snapshot, domain.Intent{Category: domain.IntentSystemStatus, Confidence: 0.9})

	for _, want := range []string{
		"42.5% CPU",
		"connected=true",
		"open browser, system status",
		"morning (Saturday)",
	} {
		if !strings.Contains(summary, want) {
			t.Fatalf("summary missing %q:\n%s", want, summary)
		}
	}
}
