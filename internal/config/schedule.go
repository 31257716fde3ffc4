package config

import "time"

// ScheduleConfig controls the game-schedule provider client.
type ScheduleConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

func loadSchedule() ScheduleConfig {
	return ScheduleConfig{
		BaseURL: envOrDefault(envScheduleBaseURL, ""),
		APIKey:  envOrDefault(envScheduleAPIKey, ""),
		Timeout: durationEnvOrDefault(envScheduleTimeout, 15*time.Second),
	}
}
