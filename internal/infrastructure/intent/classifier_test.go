package intent

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"jarvis/internal/domain"
)

func TestClassifyRuleOrderAndConfidence(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name string
		text string
		want domain.Intent
	}{
		{
			name: "shutdown wins over later rules",
			text: "what happens when I shutdown the system",
			want: domain.Intent{
				Category:   domain.IntentSystemControl,
				Confidence: 0.9,
				Action:     "shutdown",
				Parameters: map[string]string{"action": "shutdown"},
			},
		},
		{
			name: "file operation",
			text: "please delete the old report",
			want: domain.Intent{
				Category:   domain.IntentFileOperation,
				Confidence: 0.8,
				Action:     "delete",
				Parameters: map[string]string{"action": "delete"},
			},
		},
		{
			name: "application control",
			text: "launch the browser",
			want: domain.Intent{
				Category:   domain.IntentApplicationControl,
				Confidence: 0.8,
				Action:     "launch",
				Parameters: map[string]string{"action": "launch"},
			},
		},
		{
			name: "information request",
			text: "why is the sky blue",
			want: domain.Intent{
				Category:   domain.IntentInformationRequest,
				Confidence: 0.7,
				Action:     "why",
				Parameters: map[string]string{"action": "why"},
			},
		},
		{
			name: "system status",
			text: "give me a health report",
			want: domain.Intent{
				Category:   domain.IntentSystemStatus,
				Confidence: 0.9,
				Action:     "health",
				Parameters: map[string]string{"action": "health"},
			},
		},
		{
			name: "case insensitive",
			text: "SHUTDOWN now",
			want: domain.Intent{
				Category:   domain.IntentSystemControl,
				Confidence: 0.9,
				Action:     "shutdown",
				Parameters: map[string]string{"action": "shutdown"},
			},
		},
		{
			name: "no keyword falls back to general",
			text: "tell me a joke",
			want: domain.Intent{
				Category:   domain.IntentGeneral,
				Confidence: 0.5,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.text)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Classify(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

func TestClassifyEarlierRuleShadowsLaterKeywords(t *testing.T) {
	c := NewClassifier()

	// "open" (file_operation) appears before "status" (system_status)
	// in the ordered rule list, so it wins regardless of position in
	// the text.
	got := c.Classify("show the status after you open the panel")
	if got.Category != domain.IntentFileOperation {
		t.Fatalf("Classify() category = %s, want %s", got.Category, domain.IntentFileOperation)
	}
}
