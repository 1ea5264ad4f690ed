package config

import "time"

// SessionConfig содержит настройки серверных сессий.
type SessionConfig struct {
	Name      string `yaml:"name" env:"AUTHGATE_SESSION_NAME" env-default:"authgate_sid"`
	KeyPrefix string `yaml:"key_prefix" env:"AUTHGATE_SESSION_KEY_PREFIX" env-default:"session:"`
	TTL       string `yaml:"ttl" env:"AUTHGATE_SESSION_TTL" env-default:"24h"`
}

// GetTTL возвращает время жизни сессии.
func (c *SessionConfig) GetTTL() time.Duration {
	duration, err := time.ParseDuration(c.TTL)
	if err != nil {
		return 24 * time.Hour
	}
	return duration
}
