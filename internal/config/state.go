package config

// StateConfig selects and parameterizes the snapshot store backend.
type StateConfig struct {
	// Backend is one of "fs", "redis", "memory".
	Backend string
	// Path is the snapshot file location for the fs backend.
	Path string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisKey      string
}

func loadState() StateConfig {
	return StateConfig{
		Backend:       envOrDefault(envStateBackend, defaultStateBackend),
		Path:          envOrDefault(envStatePath, defaultStatePath),
		RedisAddr:     envOrDefault(envRedisAddr, "localhost:6379"),
		RedisPassword: envOrDefault(envRedisPassword, ""),
		RedisDB:       intEnvOrDefault(envRedisDB, 0),
		RedisKey:      envOrDefault(envRedisStateKey, defaultRedisStateKey),
	}
}
