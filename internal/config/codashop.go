package config

import "time"

const (
	envCodashopBaseURL = "CODASHOP_BASE_URL"
	envAPITimeout      = "API_TIMEOUT"
	envAPIRetries      = "API_RETRIES"
	envRetryBackoff    = "RETRY_BACKOFF"

	defaultAPITimeout   = 10 * time.Second
	defaultAPIRetries   = 3
	defaultRetryBackoff = time.Second
)

// CodashopConfig controls how we talk to the upstream storefront.
type CodashopConfig struct {
	BaseURL      string
	Timeout      Duration
	Retries      int
	RetryBackoff Duration
}

func loadCodashop() CodashopConfig {
	return CodashopConfig{
		BaseURL:      envOrDefault(envCodashopBaseURL, ""),
		Timeout:      durationEnvOrDefault(envAPITimeout, defaultAPITimeout),
		Retries:      intEnvOrDefault(envAPIRetries, defaultAPIRetries),
		RetryBackoff: durationEnvOrDefault(envRetryBackoff, defaultRetryBackoff),
	}
}
