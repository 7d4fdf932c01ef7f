package language

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"jarvis/assets"
	"jarvis/internal/domain"
	"jarvis/internal/pkg/filesystem"
	"jarvis/internal/ports"
)

// Translations resolves localized strings from the embedded tables,
// optionally merged with user overrides from data/translations.json.
type Translations struct {
	table map[domain.Language]map[string]string
}

// LoadTranslations parses the embedded defaults and merges any override
// file found under the assistant's data directory. A missing override
// file is fine; a corrupt one is an error so typos do not silently drop
// half the table.
func LoadTranslations() (*Translations, error) {
	table, err := parseTable(assets.DefaultTranslationsJSON)
	if err != nil {
		return nil, err
	}

	overridePath := filepath.Join(filesystem.JarvisDir(), "data", "translations.json")
	data, err := os.ReadFile(overridePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Translations{table: table}, nil
		}
		return nil, err
	}

	overrides, err := parseTable(data)
	if err != nil {
		return nil, err
	}
	for lang, entries := range overrides {
		if table[lang] == nil {
			table[lang] = map[string]string{}
		}
		for key, value := range entries {
			table[lang][key] = value
		}
	}
	return &Translations{table: table}, nil
}

func parseTable(raw []byte) (map[domain.Language]map[string]string, error) {
	var table map[domain.Language]map[string]string
	if err := json.Unmarshal(raw, &table); err != nil {
		return nil, err
	}
	return table, nil
}

// Text returns the translation for key, falling back to English and
// finally to the key itself when no translation exists.
func (t *Translations) Text(lang domain.Language, key string) string {
	if entries, ok := t.table[lang]; ok {
		if text, ok := entries[key]; ok {
			return text
		}
	}
	if entries, ok := t.table[domain.LanguageEnglish]; ok {
		if text, ok := entries[key]; ok {
			return text
		}
	}
	return key
}

var _ ports.Localizer = (*Translations)(nil)
