// Package config loads YAML configuration with embedded defaults.
package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"jarvis/assets"
	"jarvis/internal/domain"
	"jarvis/internal/pkg/filesystem"
	"jarvis/internal/ports"
)

// FileLoader loads YAML configuration from ~/.jarvis/config.yaml
// (overridable via JARVIS_CONFIG).
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider. A missing file is not an error:
// the embedded defaults are written out and returned.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.resolvePath()
	if err := ensureConfigDir(path); err != nil {
		return domain.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg, err := defaultConfig()
			if err != nil {
				return domain.Config{}, err
			}
			if err := os.WriteFile(path, assets.DefaultConfigYAML, domain.SecureFilePermissions); err != nil {
				return domain.Config{}, err
			}
			return cfg, nil
		}
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, err
	}

	return hydrateDefaults(cfg), nil
}

// Path returns the resolved config file path.
func (l *FileLoader) Path() string {
	return l.resolvePath()
}

// Save writes the given config back to disk.
func (l *FileLoader) Save(cfg domain.Config) error {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := ensureConfigDir(l.resolvePath()); err != nil {
		return err
	}
	return os.WriteFile(l.resolvePath(), raw, domain.SecureFilePermissions)
}

func (l *FileLoader) resolvePath() string {
	if l.overridePath != "" {
		return l.overridePath
	}
	if custom := os.Getenv("JARVIS_CONFIG"); custom != "" {
		return custom
	}
	return filepath.Join(filesystem.JarvisDir(), "config.yaml")
}

func ensureConfigDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions)
}

func defaultConfig() (domain.Config, error) {
	var cfg domain.Config
	if err := yaml.Unmarshal(assets.DefaultConfigYAML, &cfg); err != nil {
		return domain.Config{}, err
	}
	return hydrateDefaults(cfg), nil
}

// hydrateDefaults backfills zero values so a sparse or hand-edited file
// still yields a usable configuration.
func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.AI.Model == "" {
		cfg.AI.Model = "google/gemini-2.5-flash-lite-preview-06-17"
	}
	if cfg.AI.BaseURL == "" {
		cfg.AI.BaseURL = "https://openrouter.ai/api/v1"
	}
	if cfg.AI.APIKeyEnv == "" {
		cfg.AI.APIKeyEnv = "OPENROUTER_API_KEY"
	}
	if cfg.AI.MaxTokens <= 0 {
		cfg.AI.MaxTokens = 1000
	}
	if cfg.AI.Temperature <= 0 {
		cfg.AI.Temperature = 0.7
	}
	if cfg.AI.TopP <= 0 {
		cfg.AI.TopP = 0.9
	}
	if cfg.AI.TimeoutSeconds <= 0 {
		cfg.AI.TimeoutSeconds = 30
	}
	if cfg.AI.HistoryExchanges <= 0 {
		cfg.AI.HistoryExchanges = 5
	}
	if cfg.Language.Default == "" {
		cfg.Language.Default = string(domain.LanguageEnglish)
	}
	if cfg.History.MaxRecords <= 0 {
		cfg.History.MaxRecords = domain.MaxInteractionRecords
	}
	if cfg.History.RetainDays <= 0 {
		cfg.History.RetainDays = domain.InteractionRetainDays
	}
	if cfg.Learning.SweepIntervalSeconds <= 0 {
		cfg.Learning.SweepIntervalSeconds = 300
	}
	if cfg.Monitors.SystemSeconds <= 0 {
		cfg.Monitors.SystemSeconds = 2
	}
	if cfg.Monitors.HardwareSeconds <= 0 {
		cfg.Monitors.HardwareSeconds = 5
	}
	if cfg.Monitors.NetworkSeconds <= 0 {
		cfg.Monitors.NetworkSeconds = 30
	}
	if cfg.Monitors.SecuritySeconds <= 0 {
		cfg.Monitors.SecuritySeconds = 60
	}
	if cfg.Security.MaxAuthAttempts <= 0 {
		cfg.Security.MaxAuthAttempts = 3
	}
	if cfg.Security.LockoutSeconds <= 0 {
		cfg.Security.LockoutSeconds = 300
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "127.0.0.1"
	}
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8750
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	return cfg
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
