// Package services содержит типы и ошибки домена аутентификации.
package services

import (
	"errors"
	"strings"
	"time"

	"authgate/internal/authgate/domain/entities"
)

// Ошибки домена аутентификации.
var (
	// ErrIncorrectCredentials намеренно не различает неизвестный email
	// и неверный пароль, чтобы исключить перечисление аккаунтов.
	ErrIncorrectCredentials = errors.New("incorrect credentials")
	ErrUserAlreadyExists    = errors.New("user with this email already exists")
	ErrPasswordMismatch     = errors.New("password confirmation does not match")
	ErrSessionDestroy       = errors.New("failed to destroy session")
)

// ValidationError переносит полный упорядоченный список сообщений
// о невалидных полях; проверки не прерываются на первой ошибке.
type ValidationError struct {
	Messages []string
}

// Error возвращает все сообщения одной строкой.
func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

// NewValidationError создает ошибку валидации из списка сообщений.
func NewValidationError(messages []string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// IssuedToken представляет выданный токен аутентификации.
type IssuedToken struct {
	Token     string
	ExpiresAt time.Time
}

// LoginResult представляет результат успешного входа.
type LoginResult struct {
	Token IssuedToken
	User  *entities.User
}
