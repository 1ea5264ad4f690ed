// Package dto содержит объекты передачи данных HTTP слоя.
package dto

import (
	"time"

	"authgate/internal/authgate/domain/entities"
)

// RegisterRequest содержит данные формы регистрации. Поля принимаются
// как из JSON, так и из обычной HTML формы.
type RegisterRequest struct {
	FirstName       string `json:"firstName" form:"firstName"`
	LastName        string `json:"lastName" form:"lastName"`
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword"`
}

// LoginRequest содержит данные формы входа.
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// UserResponse содержит публичные данные пользователя.
type UserResponse struct {
	UserID    string    `json:"user_id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserResponse преобразует доменного пользователя в ответ API.
func NewUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		UserID:    user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// LoginResponse содержит результат успешного входа.
type LoginResponse struct {
	Message   string    `json:"message"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// MessageResponse содержит единственное пользовательское сообщение.
type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse содержит накопленные сообщения валидации.
type ValidationErrorResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}
