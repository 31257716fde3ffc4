package config

import "time"

// Environment variable names.
const (
	envPort            = "PORT"
	envSports          = "SPORTS"
	envPollInterval    = "POLL_INTERVAL"
	envRunTimeout      = "RUN_TIMEOUT"
	envFetchTimeout    = "FETCH_TIMEOUT"
	envRetryDelay      = "SOURCE_RETRY_DELAY"
	envThrottle        = "SOURCE_THROTTLE_INTERVAL"
	envSourcesFile     = "SOURCES_CONFIG"
	envStatePath       = "INJURY_STATE_PATH"
	envStateBackend    = "STATE_BACKEND"
	envRedisAddr       = "REDIS_ADDR"
	envRedisPassword   = "REDIS_PASSWORD"
	envRedisDB         = "REDIS_DB"
	envRedisStateKey   = "REDIS_STATE_KEY"
	envScheduleBaseURL = "SHIPP_BASE_URL"
	envScheduleAPIKey  = "SHIPP_API_KEY"
	envScheduleTimeout = "SCHEDULE_TIMEOUT"
)

// Defaults.
const (
	defaultPort          = "8080"
	defaultSports        = "nba,mlb,soccer"
	defaultPollInterval  = 15 * time.Minute
	defaultRunTimeout    = 2 * time.Minute
	defaultFetchTimeout  = 15 * time.Second
	defaultRetryDelay    = 5 * time.Second
	defaultThrottle      = 2 * time.Second
	defaultStatePath     = "data/injury_state.json"
	defaultStateBackend  = "fs"
	defaultRedisStateKey = "injury-monitor:state"
)
