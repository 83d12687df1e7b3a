package config

import "time"

// BackendConfig contains configuration for the property-management backend
// API this gateway proxies to.
type BackendConfig struct {
	// URL is the backend origin, e.g. "http://localhost:8000".
	URL string `env:"URL" envDefault:"http://localhost:8000"`

	// Timeout bounds each backend request attempt.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`

	// RetryMax is the retry budget for idempotent (read) requests.
	// Mutating requests are never retried.
	RetryMax int `env:"RETRY_MAX" envDefault:"2"`
}

// Sanitize applies guardrails to backend configuration values.
func (b *BackendConfig) Sanitize() {
	if b.Timeout <= 0 {
		b.Timeout = 10 * time.Second
	}
	if b.RetryMax < 0 {
		b.RetryMax = 0
	}
	const retryCap = 5
	if b.RetryMax > retryCap {
		b.RetryMax = retryCap
	}
}
