// Package services определяет контракты сервисов аутентификации.
package services

import "context"

// PasswordService определяет операции хэширования пароля.
// Hash детерминирован: один и тот же пароль всегда дает один и тот же
// дайджест фиксированной длины; пустая строка хэшируется в
// фиксированный дайджест. Операции не имеют побочных эффектов и ошибок.
type PasswordService interface {
	Hash(ctx context.Context, password string) string

	Verify(ctx context.Context, password, digest string) bool
}
