package config

import "time"

const (
	envPort         = "PORT"
	envDatabasePath = "DATABASE_PATH"
	envCORSOrigins  = "CORS_ORIGINS"

	envJWTSecret = "JWT_SECRET"
	envJWTTTL    = "JWT_TTL"

	envCacheTTL  = "CACHE_TTL"
	envCacheSize = "CACHE_SIZE"

	envRateLimitRPS   = "RATE_LIMIT_RPS"
	envRateLimitBurst = "RATE_LIMIT_BURST"

	envMetricsOn    = "METRICS_ENABLED"
	envMetricsPort  = "METRICS_PORT"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort         = "6969"
	defaultDatabasePath = "data/ign.db"
	defaultCORSOrigins  = "*"

	// Development fallback only; deployments must set JWT_SECRET.
	defaultJWTSecret = "fallback-secret-key"
	defaultJWTTTL    = 24 * time.Hour

	defaultCacheTTL  = 5 * time.Minute
	defaultCacheSize = 1024

	// Generous enough for interactive use while keeping scripted abuse off
	// the upstream storefront.
	defaultRateLimitRPS   = 5.0
	defaultRateLimitBurst = 10

	defaultMetricsPort = "9090"
)
