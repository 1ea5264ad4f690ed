package config

import "time"

// JWTConfig содержит настройки для JWT токенов.
type JWTConfig struct {
	SecretKey string `yaml:"secret_key" env:"AUTHGATE_JWT_SECRET_KEY" env-default:"super-secret-key-change-me-in-production"`
	TokenTTL  string `yaml:"token_ttl" env:"AUTHGATE_JWT_TOKEN_TTL" env-default:"15m"`
}

// GetTokenTTL возвращает продолжительность времени жизни токена.
func (c *JWTConfig) GetTokenTTL() time.Duration {
	duration, err := time.ParseDuration(c.TokenTTL)
	if err != nil {
		return 15 * time.Minute
	}
	return duration
}
