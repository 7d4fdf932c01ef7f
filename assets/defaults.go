package assets

import (
	_ "embed"
)

// DefaultConfigYAML contains the embedded default configuration.
//
//go:embed defaults/config.yaml
var DefaultConfigYAML []byte

// DefaultTranslationsJSON contains the embedded translation tables.
//
//go:embed defaults/translations.json
var DefaultTranslationsJSON []byte
