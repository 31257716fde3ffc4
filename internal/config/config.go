package config

import "time"

// Config holds runtime configuration for the monitor.
type Config struct {
	Port   string
	Sports []string

	// PollInterval is how often serve mode re-runs the aggregation pass.
	PollInterval time.Duration
	// RunTimeout bounds a whole aggregation pass; in-flight sources past
	// the deadline are abandoned and reported failed.
	RunTimeout time.Duration
	// FetchTimeout bounds a single origin fetch attempt.
	FetchTimeout time.Duration
	// RetryDelay is the fixed pause before the single retry of a
	// transient fetch failure.
	RetryDelay time.Duration
	// ThrottleInterval is the minimum spacing between requests to the
	// same origin domain, shared across sports.
	ThrottleInterval time.Duration

	SourcesFile string
	State       StateConfig
	Schedule    ScheduleConfig
	Metrics     MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:             envOrDefault(envPort, defaultPort),
		Sports:           listEnvOrDefault(envSports, defaultSports),
		PollInterval:     durationEnvOrDefault(envPollInterval, defaultPollInterval),
		RunTimeout:       durationEnvOrDefault(envRunTimeout, defaultRunTimeout),
		FetchTimeout:     durationEnvOrDefault(envFetchTimeout, defaultFetchTimeout),
		RetryDelay:       durationEnvOrDefault(envRetryDelay, defaultRetryDelay),
		ThrottleInterval: durationEnvOrDefault(envThrottle, defaultThrottle),
		SourcesFile:      envOrDefault(envSourcesFile, ""),
		State:            loadState(),
		Schedule:         loadSchedule(),
		Metrics:          loadMetrics(),
	}
}
