// Package api определяет прикладные интерфейсы сервиса аутентификации.
package api

import (
	"context"

	"authgate/internal/authgate/domain/entities"
	"authgate/internal/authgate/domain/services"
)

// RegisterInput содержит поля запроса регистрации.
type RegisterInput struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
}

// LoginInput содержит поля запроса входа.
type LoginInput struct {
	Email    string
	Password string
}

// AuthUseCase определяет операции регистрации, входа и выхода.
type AuthUseCase interface {
	Register(ctx context.Context, input RegisterInput) (*entities.User, error)

	Login(ctx context.Context, input LoginInput, sessionID string) (*services.LoginResult, error)

	Logout(ctx context.Context, sessionID string) error
}

// UserUseCase определяет операции чтения профиля пользователя.
type UserUseCase interface {
	GetUserProfile(ctx context.Context, userID string) (*entities.User, error)
}
