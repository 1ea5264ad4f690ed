package config

// HashingConfig содержит секрет для хэширования паролей.
// Смена секрета делает недействительными все сохраненные дайджесты.
type HashingConfig struct {
	Secret string `yaml:"secret" env:"AUTHGATE_HASHING_SECRET" env-default:"hashing-secret-change-me-in-production"`
}
