package config

// MetricsConfig controls the telemetry exporters.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, false),
		Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
		ServiceName:  envOrDefault(envOtelService, "ign-lookup-service"),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, ""),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, false),
	}
}
