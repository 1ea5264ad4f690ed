package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"go.uber.org/zap"

	svc "authgate/internal/authgate/ports/services"
	"authgate/pkg/logger"
)

const (
	methodHash   = "Hash"
	methodVerify = "Verify"

	msgHashingPassword  = "hashing password"
	msgVerifyingDigest  = "verifying password digest"
	msgDigestMismatched = "password digest mismatch"
)

// ServiceHMAC реализует хэширование пароля как HMAC-SHA256 с секретным
// ключом, закодированный в hex. Дайджест детерминирован: один пароль
// всегда дает один и тот же дайджест. Это осознанно слабее соленых
// схем, формат хранения зафиксирован существующими данными.
type ServiceHMAC struct {
	secret []byte
}

// NewHMAC создает новый экземпляр сервиса хэширования паролей.
func NewHMAC(secret string) svc.PasswordService {
	return &ServiceHMAC{secret: []byte(secret)}
}

// Hash возвращает hex-дайджест HMAC-SHA256 пароля. Длина результата
// всегда 64 символа, в том числе для пустой строки.
func (s *ServiceHMAC) Hash(ctx context.Context, password string) string {
	log := logger.Log(ctx).With(zap.String("method", methodHash))
	log.Debug(ctx, msgHashingPassword)

	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(password))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify сравнивает дайджест пароля с сохраненным за постоянное время.
func (s *ServiceHMAC) Verify(ctx context.Context, password, digest string) bool {
	log := logger.Log(ctx).With(zap.String("method", methodVerify))
	log.Debug(ctx, msgVerifyingDigest)

	computed := s.Hash(ctx, password)
	if subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) != 1 {
		log.Debug(ctx, msgDigestMismatched)
		return false
	}
	return true
}
