package domain

import "time"

// SystemState is a read-only snapshot of host health. Known is false
// when the provider was unavailable and the remaining fields are
// placeholders.
type SystemState struct {
	CPUPercent       float64 `json:"cpu_percent"`
	MemoryPercent    float64 `json:"memory_percent"`
	DiskPercent      float64 `json:"disk_percent"`
	NetworkSpeedMBps float64 `json:"network_speed_mbps"`
	Temperature      float64 `json:"temperature"`
	Processes        int     `json:"processes"`
	UptimeSeconds    uint64  `json:"uptime_seconds"`
	Known            bool    `json:"known"`
}

// NetworkStatus is a read-only snapshot of connectivity.
type NetworkStatus struct {
	Connected    bool    `json:"connected"`
	LatencyMS    float64 `json:"latency_ms"`
	UploadMBps   float64 `json:"upload_mbps"`
	DownloadMBps float64 `json:"download_mbps"`
	Connections  int     `json:"connections"`
	Known        bool    `json:"known"`
}

// UserContext is the derived summary of recent interaction history that
// enriches the AI prompt. It is recomputed on demand, never cached.
type UserContext struct {
	TotalInteractions int      `json:"total_interactions"`
	CommonCommands    []string `json:"common_commands"`
	PreferredLanguage Language `json:"preferred_language"`
	SessionLength     int      `json:"session_length"`
	TimeOfDay         string   `json:"time_of_day"`
}

// Environment captures ambient facts about the moment a command arrived.
type Environment struct {
	TimeOfDay  string  `json:"time_of_day"`
	DayOfWeek  string  `json:"day_of_week"`
	SystemLoad float64 `json:"system_load"`
	ActiveApps int     `json:"active_apps"`
}

// Context is the per-request snapshot assembled before the AI call. It
// is built fresh for every command, owned by the orchestrator for the
// duration of that request, and read-only once built.
type Context struct {
	Timestamp   time.Time     `json:"timestamp"`
	Language    Language      `json:"language"`
	System      SystemState   `json:"system_state"`
	Network     NetworkStatus `json:"network_status"`
	UserHistory UserContext   `json:"user_history"`
	Environment Environment   `json:"environment"`
}

// TimeOfDayBucket maps an hour to the coarse buckets the learning
// engine and context assembler share.
func TimeOfDayBucket(hour int) string {
	switch {
	case hour >= 6 && hour < 12:
		return "morning"
	case hour >= 12 && hour < 18:
		return "afternoon"
	case hour >= 18 && hour < 22:
		return "evening"
	default:
		return "night"
	}
}
