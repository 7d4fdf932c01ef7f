package ai

import (
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"jarvis/internal/domain"
)

const personaPrompt = `You are JARVIS, an advanced AI assistant. You are:

PERSONALITY:
- Highly intelligent and sophisticated
- Professional yet personable
- Witty with dry humor when appropriate
- Always address the user as 'Sir' or 'Ma'am'
- Loyal and dedicated

CAPABILITIES:
- System control and monitoring
- Hardware management and diagnostics
- Network operations
- File and application management
- Multi-language support (English/Hindi)

BEHAVIOR:
- Maintain a professional demeanor
- Provide detailed yet concise responses
- Respond in the language the user communicates in

Current system time: %s
Current language: %s`

// buildMessages assembles the ordered message list: persona preamble,
// the last N history exchanges, one synthesized context-summary system
// message, then the user command.
func buildMessages(settings domain.AISettings, cmd domain.Command, snapshot domain.Context, intent domain.Intent, history []domain.Message) []openai.ChatCompletionMessage {
	messages := []openai.ChatCompletionMessage{{
		Role:    openai.ChatMessageRoleSystem,
		Content: fmt.Sprintf(personaPrompt, snapshot.Timestamp.Format("2006-01-02 15:04:05"), snapshot.Language),
	}}

	for _, m := range lastExchanges(history, settings.HistoryExchanges) {
		messages = append(messages, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: contextSummary(snapshot, intent),
	})

	return append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: cmd.Text,
	})
}

func lastExchanges(history []domain.Message, n int) []domain.Message {
	limit := n * 2
	if limit >= len(history) {
		return history
	}
	return history[len(history)-limit:]
}

func contextSummary(snapshot domain.Context, intent domain.Intent) string {
	var lines []string
	lines = append(lines, "Current Context:")
	lines = append(lines, fmt.Sprintf("- Time: %s", snapshot.Timestamp.Format(time.RFC3339)))
	lines = append(lines, fmt.Sprintf("- Language: %s", snapshot.Language))
	if snapshot.System.Known {
		lines = append(lines, fmt.Sprintf("- System Load: %.1f%% CPU, %.1f%% memory", snapshot.System.CPUPercent, snapshot.System.MemoryPercent))
	} else {
		lines = append(lines, "- System Load: unknown")
	}
	if snapshot.Network.Known {
		lines = append(lines, fmt.Sprintf("- Network: connected=%t latency=%.0fms", snapshot.Network.Connected, snapshot.Network.LatencyMS))
	}
	if len(snapshot.UserHistory.CommonCommands) > 0 {
		lines = append(lines, fmt.Sprintf("- Frequent commands: %s", strings.Join(snapshot.UserHistory.CommonCommands, ", ")))
	}
	if snapshot.Environment.TimeOfDay != "" {
		lines = append(lines, fmt.Sprintf("- Time of day: %s (%s)", snapshot.Environment.TimeOfDay, snapshot.Environment.DayOfWeek))
	}
	lines = append(lines, fmt.Sprintf("- Intent: %s (confidence: %.2f)", intent.Category, intent.Confidence))
	return strings.Join(lines, "\n")
}
