package services

import "context"

// Ключи значений, которые хранит сессия.
const (
	SessionKeyToken    = "token"
	SessionKeyLoggedIn = "logged_in"
)

// SessionStore определяет явную key-value возможность сессии.
// Сессия принадлежит внешнему хранилищу; ядро только читает, пишет
// и уничтожает ее.
type SessionStore interface {
	Get(ctx context.Context, sessionID, key string) (string, error)

	Set(ctx context.Context, sessionID, key, value string) error

	Destroy(ctx context.Context, sessionID string) error
}
