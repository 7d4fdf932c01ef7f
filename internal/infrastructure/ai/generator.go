// Package ai implements the response generator: a single best-effort
// call to an OpenRouter-compatible chat-completions service.
package ai

import (
	"context"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"jarvis/internal/domain"
	"jarvis/internal/ports"
)

// Generator delegates to the external text-generation service. One call
// per command, bounded timeout, no automatic retry: any failure is
// folded into a localized failure response and is terminal for that
// command.
type Generator struct {
	client    *openai.Client
	settings  domain.AISettings
	localizer ports.Localizer
	logger    ports.Logger
}

// NewGenerator builds a generator from the AI settings. The API key is
// read from the configured environment variable; a missing key is not
// fatal here, the first call will fail and surface as a localized error.
func NewGenerator(settings domain.AISettings, localizer ports.Localizer, logger ports.Logger) *Generator {
	cfg := openai.DefaultConfig(os.Getenv(settings.APIKeyEnv))
	cfg.BaseURL = settings.BaseURL
	return &Generator{
		client:    openai.NewClientWithConfig(cfg),
		settings:  settings,
		localizer: localizer,
		logger:    logger,
	}
}

// Respond implements ports.ResponseGenerator.
func (g *Generator) Respond(ctx context.Context, cmd domain.Command, snapshot domain.Context, intent domain.Intent, history []domain.Message) (domain.AIResponse, error) {
	messages := buildMessages(g.settings, cmd, snapshot, intent, history)

	callCtx, cancel := context.WithTimeout(ctx, g.settings.Timeout())
	defer cancel()

	resp, err := g.client.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
		Model:            g.settings.Model,
		Messages:         messages,
		Temperature:      float32(g.settings.Temperature),
		TopP:             float32(g.settings.TopP),
		FrequencyPenalty: float32(g.settings.FrequencyPenalty),
		PresencePenalty:  float32(g.settings.PresencePenalty),
		MaxTokens:        g.settings.MaxTokens,
	})
	if err != nil {
		g.logger.Error("text-generation call failed", err, map[string]interface{}{
			"model": g.settings.Model,
		})
		return domain.FailureResponse(g.localizer.Text(snapshot.Language, "api_error")), nil
	}
	if len(resp.Choices) == 0 {
		g.logger.Warn("text-generation returned no choices", map[string]interface{}{
			"model": g.settings.Model,
		})
		return domain.FailureResponse(g.localizer.Text(snapshot.Language, "ai_error")), nil
	}

	out := domain.AIResponse{
		Text:       strings.TrimSpace(resp.Choices[0].Message.Content),
		Confidence: 0.8,
		Success:    true,
	}
	applyIntentActions(&out, intent, cmd.Text)
	return out, nil
}

// applyIntentActions populates the action-request fields from the
// classified intent. System actions follow directly from the category;
// hardware actions are requested when a status query names a hardware
// topic the hardware executor understands.
func applyIntentActions(resp *domain.AIResponse, intent domain.Intent, text string) {
	if intent.RequiresSystemAction() {
		resp.RequiresSystemAction = true
		resp.SystemCommand = string(intent.Category)
		resp.Parameters = intent.Parameters
	}

	if intent.Category != domain.IntentSystemStatus {
		return
	}
	if cmd := hardwareCommandFor(text); cmd != "" {
		resp.RequiresHardwareAction = true
		resp.HardwareCommand = cmd
	}
}

func hardwareCommandFor(text string) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "temperature"):
		return "get_temperatures"
	case strings.Contains(lower, "hardware"), strings.Contains(lower, "gpu"), strings.Contains(lower, "fan"):
		return "get_status"
	default:
		return ""
	}
}

var _ ports.ResponseGenerator = (*Generator)(nil)
