package config

import "strings"

// Config holds runtime configuration for the server.
type Config struct {
	Port         string
	DatabasePath string
	CORSOrigins  []string

	JWTSecret string
	JWTTTL    Duration

	CacheTTL  Duration
	CacheSize int

	RateLimitRPS   float64
	RateLimitBurst int

	Codashop CodashopConfig
	Metrics  MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:           envOrDefault(envPort, defaultPort),
		DatabasePath:   envOrDefault(envDatabasePath, defaultDatabasePath),
		CORSOrigins:    splitOrigins(envOrDefault(envCORSOrigins, defaultCORSOrigins)),
		JWTSecret:      envOrDefault(envJWTSecret, defaultJWTSecret),
		JWTTTL:         durationEnvOrDefault(envJWTTTL, defaultJWTTTL),
		CacheTTL:       durationEnvOrDefault(envCacheTTL, defaultCacheTTL),
		CacheSize:      intEnvOrDefault(envCacheSize, defaultCacheSize),
		RateLimitRPS:   floatEnvOrDefault(envRateLimitRPS, defaultRateLimitRPS),
		RateLimitBurst: intEnvOrDefault(envRateLimitBurst, defaultRateLimitBurst),
		Codashop:       loadCodashop(),
		Metrics:        loadMetrics(),
	}
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
