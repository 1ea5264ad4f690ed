package services

// Границы длины пароля до хэширования.
const (
	MinPasswordLength = 6
	MaxPasswordLength = 255
)

// DigestLength - длина hex-дайджеста HMAC-SHA256.
const DigestLength = 64
