// Package services предоставляет фабрику для создания и доступа к сервисам
// аутентификации: хэшированию паролей и токенам идентичности.
package services

import (
	"time"

	"authgate/internal/authgate/ports/services"
)

// ServiceFactory создает все необходимые сервисы для аутентификации.
type ServiceFactory struct {
	passwordService services.PasswordService
	tokenService    services.TokenService
}

// NewServiceFactory создает новую фабрику сервисов.
func NewServiceFactory(hashingSecret, jwtSecretKey string, tokenTTL time.Duration) *ServiceFactory {
	return &ServiceFactory{
		passwordService: NewHMAC(hashingSecret),
		tokenService:    NewJWT(jwtSecretKey, tokenTTL),
	}
}

// PasswordService возвращает сервис для работы с паролями.
func (f *ServiceFactory) PasswordService() services.PasswordService {
	return f.passwordService
}

// TokenService возвращает сервис для работы с токенами.
func (f *ServiceFactory) TokenService() services.TokenService {
	return f.tokenService
}
