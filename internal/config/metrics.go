package config

// MetricsConfig controls telemetry export.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault("METRICS_ENABLED", false),
		Port:         envOrDefault("METRICS_PORT", "9090"),
		ServiceName:  envOrDefault("METRICS_SERVICE_NAME", "injury-report-service"),
		OtlpEndpoint: envOrDefault("OTLP_ENDPOINT", ""),
		OtlpInsecure: boolEnvOrDefault("OTLP_INSECURE", false),
	}
}
