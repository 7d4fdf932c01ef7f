// Package intent maps raw command text to a coarse intent category via
// ordered keyword-membership tests.
package intent

import (
	"strings"

	"jarvis/internal/domain"
	"jarvis/internal/ports"
)

// rule is one (category, keyword-set, confidence) tuple. Rules are
// evaluated in order and the first match wins; the keyword sets overlap
// and list order is the only precedence, so do not reorder.
type rule struct {
	category   domain.IntentCategory
	keywords   []string
	confidence float64
}

var rules = []rule{
	{domain.IntentSystemControl, []string{"shutdown", "restart", "sleep", "lock"}, 0.9},
	{domain.IntentFileOperation, []string{"open", "create", "delete", "file"}, 0.8},
	{domain.IntentApplicationControl, []string{"launch", "start", "close", "app"}, 0.8},
	{domain.IntentInformationRequest, []string{"what", "how", "when", "where", "why"}, 0.7},
	{domain.IntentSystemStatus, []string{"status", "health", "performance"}, 0.9},
}

// Classifier implements keyword-priority intent classification.
type Classifier struct{}

// NewClassifier creates a Classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify tags text with the first matching category. The matched
// keyword is kept as the action entity so executors receive, for
// example, parameters["action"] = "shutdown".
func (c *Classifier) Classify(text string) domain.Intent {
	lower := strings.ToLower(text)

	for _, r := range rules {
		for _, keyword := range r.keywords {
			if strings.Contains(lower, keyword) {
				return domain.Intent{
					Category:   r.category,
					Confidence: r.confidence,
					Action:     keyword,
					Parameters: map[string]string{"action": keyword},
				}
			}
		}
	}

	return domain.Intent{Category: domain.IntentGeneral, Confidence: 0.5}
}

var _ ports.IntentClassifier = (*Classifier)(nil)
