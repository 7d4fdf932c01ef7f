package language

import (
	"testing"

	"jarvis/internal/domain"
)

func TestDetectLatinInputReturnsEnglish(t *testing.T) {
	d := NewDetector(domain.LanguageHindi)

	tests := []struct {
		name string
		text string
	}{
		{"plain question", "what is the weather today"},
		{"command", "open the file please"},
		{"no vocabulary hits", "zxcvbnm qwerty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Detect(tt.text); got != domain.LanguageEnglish {
				t.Fatalf("Detect(%q) = %s, want english", tt.text, got)
			}
		})
	}
}

func TestDetectDevanagariInputReturnsHindi(t *testing.T) {
	d := NewDetector(domain.LanguageEnglish)

	tests := []struct {
		name string
		text string
	}{
		{"plain question", "क्या हाल है"},
		{"command", "फाइल खोलो"},
		{"mixed but devanagari dominant", "जार्विस सिस्टम बंद करो अभी"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Detect(tt.text); got != domain.LanguageHindi {
				t.Fatalf("Detect(%q) = %s, want hindi", tt.text, got)
			}
		})
	}
}

func TestDetectTieReturnsActiveLanguage(t *testing.T) {
	d := NewDetector(domain.LanguageHindi)

	// Empty and whitespace-only input score zero for both languages.
	for _, text := range []string{"", "   ", "123 456"} {
		if got := d.Detect(text); got != domain.LanguageHindi {
			t.Fatalf("Detect(%q) = %s, want sticky hindi", text, got)
		}
	}

	d.SetActive(domain.LanguageEnglish)
	if got := d.Detect(""); got != domain.LanguageEnglish {
		t.Fatalf("Detect(\"\") after SetActive = %s, want english", got)
	}
}

func TestSetActiveIgnoresUnsupportedTags(t *testing.T) {
	d := NewDetector(domain.LanguageEnglish)
	d.SetActive(domain.Language("klingon"))
	if got := d.Active(); got != domain.LanguageEnglish {
		t.Fatalf("Active() = %s, want english after rejected switch", got)
	}
}

func TestNewDetectorFallsBackToEnglish(t *testing.T) {
	d := NewDetector(domain.Language("unsupported"))
	if got := d.Active(); got != domain.LanguageEnglish {
		t.Fatalf("Active() = %s, want english fallback", got)
	}
}
