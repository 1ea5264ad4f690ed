package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"authgate/internal/authgate/domain/entities"
	"authgate/internal/authgate/ports/api"
	"authgate/internal/authgate/ports/repositories"
	"authgate/pkg/logger"
)

const (
	methodGetUserProfile = "GetUserProfile"

	msgFetchingProfile  = "fetching user profile"
	msgProfileFetched   = "user profile fetched"
	msgErrEmptyUserID   = "empty user id provided"
	msgErrFetchingUser  = "failed to fetch user"
	errCtxFetchingUser  = "fetching user"
	errCtxEmptyUserID   = "checking user id"
)

// UserUseCaseImpl реализует интерфейс UserUseCase.
type UserUseCaseImpl struct {
	userRepo repositories.UserRepository
}

// NewUserUseCase создает новый экземпляр сервиса профиля пользователя.
func NewUserUseCase(userRepo repositories.UserRepository) api.UserUseCase {
	return &UserUseCaseImpl{userRepo: userRepo}
}

// GetUserProfile возвращает профиль пользователя по идентификатору.
func (u *UserUseCaseImpl) GetUserProfile(ctx context.Context, userID string) (*entities.User, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodGetUserProfile),
		zap.String("userID", userID),
	)
	log.Debug(ctx, msgFetchingProfile)

	if userID == "" {
		log.Debug(ctx, msgErrEmptyUserID)
		return nil, fmt.Errorf("%s: %w", errCtxEmptyUserID, entities.ErrEmptyUserID)
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		log.Error(ctx, msgErrFetchingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFetchingUser, err)
	}

	log.Debug(ctx, msgProfileFetched)
	return user, nil
}
