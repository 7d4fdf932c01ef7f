package domain

// Language identifies one of the assistant's supported languages.
type Language string

const (
	LanguageEnglish Language = "english"
	LanguageHindi   Language = "hindi"
)

// SupportedLanguages lists every language the detector can return.
func SupportedLanguages() []Language {
	return []Language{LanguageEnglish, LanguageHindi}
}

// IsSupported reports whether lang is a known language tag.
func (l Language) IsSupported() bool {
	for _, lang := range SupportedLanguages() {
		if l == lang {
			return true
		}
	}
	return false
}
