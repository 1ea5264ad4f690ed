// Package entities содержит основные сущности домена пользователя.
package entities

import (
	"errors"
	"time"
)

// Ошибки домена пользователя.
var (
	ErrEmptyUserID  = errors.New("user ID cannot be empty")
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email is already taken")
)

// User представляет зарегистрированного пользователя.
// Email хранится в нижнем регистре и уникален; имена хранятся
// с заглавной первой буквой. PasswordDigest - hex-дайджест, никогда
// не открытый пароль.
type User struct {
	ID             string
	FirstName      string
	LastName       string
	Email          string
	PasswordDigest string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
