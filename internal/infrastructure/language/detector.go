// Package language implements pattern-scoring language detection and
// the translation tables for localized assistant strings.
package language

import (
	"regexp"
	"strings"
	"sync"

	"jarvis/internal/domain"
	"jarvis/internal/ports"
)

// Per-language scoring patterns: character-set membership plus fixed
// vocabulary lists, counted against the lower-cased input.
var (
	devanagariRunes = regexp.MustCompile(`[\x{0900}-\x{097F}]`)
	latinRunes      = regexp.MustCompile(`[a-zA-Z]`)

	hindiVocabulary = regexp.MustCompile(`(क्या|कैसे|कहाँ|कब|क्यों|जार्विस|सिस्टम|फाइल|खोलो|बंद|करो|दिखाओ|बताओ)`)
	hindiPronouns   = regexp.MustCompile(`(आप|मैं|हम|यह|वह|कौन|किसका|किसको)`)

	englishVocabulary = regexp.MustCompile(`\b(what|how|where|when|why|jarvis|system|file|open|close|show|tell|the|and|or|but)\b`)
	englishPronouns   = regexp.MustCompile(`\b(you|i|we|this|that|who|whose|whom)\b`)
)

// Detector scores input text per language and keeps the sticky active
// language used as the tie-break, so ambiguous short inputs do not
// thrash between languages.
type Detector struct {
	mu     sync.RWMutex
	active domain.Language
}

// NewDetector creates a detector with the given initial active language.
func NewDetector(initial domain.Language) *Detector {
	if !initial.IsSupported() {
		initial = domain.LanguageEnglish
	}
	return &Detector{active: initial}
}

// Detect classifies text and always returns a valid language tag.
func (d *Detector) Detect(text string) domain.Language {
	if strings.TrimSpace(text) == "" {
		return d.Active()
	}

	lower := strings.ToLower(text)
	hindi := countMatches(lower, devanagariRunes, hindiVocabulary, hindiPronouns)
	english := countMatches(lower, latinRunes, englishVocabulary, englishPronouns)

	switch {
	case hindi > english:
		return domain.LanguageHindi
	case english > hindi:
		return domain.LanguageEnglish
	default:
		return d.Active()
	}
}

func countMatches(text string, patterns ...*regexp.Regexp) int {
	total := 0
	for _, p := range patterns {
		total += len(p.FindAllStringIndex(text, -1))
	}
	return total
}

// Active returns the current sticky language.
func (d *Detector) Active() domain.Language {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.active
}

// SetActive switches the sticky language; unsupported tags are ignored.
func (d *Detector) SetActive(lang domain.Language) {
	if !lang.IsSupported() {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.active = lang
}

var _ ports.LanguageDetector = (*Detector)(nil)
