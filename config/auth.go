package config

import "time"

// AuthConfig groups session-related configuration.
type AuthConfig struct {
	// SessionTTL is how long a gateway session lives. The backend token it
	// wraps has its own lifetime; an expired token surfaces as a failed
	// resume regardless of this value.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	// SessionPrefix namespaces session keys in Redis.
	SessionPrefix string `env:"SESSION_PREFIX" envDefault:"session:"`
}

// Sanitize applies guardrails to session configuration values.
func (a *AuthConfig) Sanitize() {
	if a.SessionTTL < time.Minute {
		a.SessionTTL = 24 * time.Hour
	}
	if a.SessionPrefix == "" {
		a.SessionPrefix = "session:"
	}
}
