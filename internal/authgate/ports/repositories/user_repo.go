// Package repositories определяет контракты сохранения данных.
package repositories

import (
	"context"

	"authgate/internal/authgate/domain/entities"
)

// UserRepository определяет интерфейс каталога пользователей с
// уникальностью по email. Уникальность обеспечивается атомарно на
// уровне хранилища: Create возвращает entities.ErrEmailTaken при
// гонке двух одновременных регистраций, предварительная проверка
// ExistsByEmail - лишь оптимизация.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)

	FindByID(ctx context.Context, id string) (*entities.User, error)

	FindByEmail(ctx context.Context, email string) (*entities.User, error)

	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
