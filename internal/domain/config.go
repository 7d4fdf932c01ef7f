package domain

import "time"

// Config is the root configuration loaded from ~/.jarvis/config.yaml.
type Config struct {
	AI       AISettings       `yaml:"ai"`
	Language LanguageSettings `yaml:"language"`
	History  HistorySettings  `yaml:"history"`
	Learning LearningSettings `yaml:"learning"`
	Monitors MonitorSettings  `yaml:"monitors"`
	Security SecuritySettings `yaml:"security"`
	Server   ServerSettings   `yaml:"server"`
	Voice    VoiceSettings    `yaml:"voice"`
	Logging  LoggingSettings  `yaml:"logging"`
}

// AISettings configure the text-generation delegate.
type AISettings struct {
	Model            string  `yaml:"model"`
	BaseURL          string  `yaml:"base_url"`
	APIKeyEnv        string  `yaml:"api_key_env"`
	MaxTokens        int     `yaml:"max_tokens"`
	Temperature      float64 `yaml:"temperature"`
	TopP             float64 `yaml:"top_p"`
	FrequencyPenalty float64 `yaml:"frequency_penalty"`
	PresencePenalty  float64 `yaml:"presence_penalty"`
	TimeoutSeconds   int     `yaml:"timeout_seconds"`
	HistoryExchanges int     `yaml:"history_exchanges"`
}

// Timeout returns the bounded deadline for one AI call.
func (a AISettings) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// LanguageSettings select the default (sticky) language.
type LanguageSettings struct {
	Default string `yaml:"default"`
}

// HistorySettings bound the durable stores.
type HistorySettings struct {
	MaxRecords int `yaml:"max_records"`
	RetainDays int `yaml:"retain_days"`
}

// LearningSettings control the adaptation sweep.
type LearningSettings struct {
	Enabled              bool `yaml:"enabled"`
	SweepIntervalSeconds int  `yaml:"sweep_interval_seconds"`
}

// MonitorSettings are the fixed sleep intervals of the background
// polling loops, in seconds.
type MonitorSettings struct {
	SystemSeconds   int `yaml:"system_seconds"`
	HardwareSeconds int `yaml:"hardware_seconds"`
	NetworkSeconds  int `yaml:"network_seconds"`
	SecuritySeconds int `yaml:"security_seconds"`
}

// SecuritySettings control authentication and the integrity check.
type SecuritySettings struct {
	RequireAuthentication bool `yaml:"require_authentication"`
	MaxAuthAttempts       int  `yaml:"max_auth_attempts"`
	LockoutSeconds        int  `yaml:"lockout_seconds"`
}

// ServerSettings bind the GUI backend.
type ServerSettings struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// VoiceSettings toggle the optional voice collaborator.
type VoiceSettings struct {
	Enabled bool `yaml:"enabled"`
}

// LoggingSettings pick the log level.
type LoggingSettings struct {
	Level string `yaml:"level"`
}

// DefaultLanguage returns the configured default language, falling back
// to english for unknown tags.
func (c Config) DefaultLanguage() Language {
	lang := Language(c.Language.Default)
	if lang.IsSupported() {
		return lang
	}
	return LanguageEnglish
}
