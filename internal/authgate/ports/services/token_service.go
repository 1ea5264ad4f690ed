package services

import (
	"context"
	"time"
)

// TokenService определяет интерфейс для операций с токенами идентичности.
// Токен самодостаточен: подписан, ограничен по времени и проверяется
// без обращения к хранилищу.
type TokenService interface {
	IssueToken(ctx context.Context, userID string) (string, time.Time, error)

	VerifyToken(ctx context.Context, token string) (string, error)
}
