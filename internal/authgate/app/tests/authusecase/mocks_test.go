package authusecase_test

import (
	"context"
	"fmt"
	"time"

	"github.com/stretchr/testify/mock"

	"authgate/internal/authgate/domain/entities"
)

const (
	ErrCreateUser      = "failed to create user"
	ErrFindUserByID    = "failed to find user by ID"
	ErrFindUserByEmail = "failed to find user by email"
	ErrExistsByEmail   = "failed to check email existence"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrCreateUser, err)
		}
		return nil, nil
	}
	return args.Get(0).(*entities.User), nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrFindUserByID, err)
		}
		return nil, nil
	}
	return args.Get(0).(*entities.User), nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrFindUserByEmail, err)
		}
		return nil, nil
	}
	return args.Get(0).(*entities.User), nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	if err := args.Error(1); err != nil {
		return args.Bool(0), fmt.Errorf("%s: %w", ErrExistsByEmail, err)
	}
	return args.Bool(0), nil
}

type mockPasswordService struct {
	mock.Mock
}

func (m *mockPasswordService) Hash(ctx context.Context, password string) string {
	args := m.Called(ctx, password)
	return args.String(0)
}

func (m *mockPasswordService) Verify(ctx context.Context, password, digest string) bool {
	args := m.Called(ctx, password, digest)
	return args.Bool(0)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) IssueToken(ctx context.Context, userID string) (string, time.Time, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *mockTokenService) VerifyToken(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

type mockSessionStore struct {
	mock.Mock
}

func (m *mockSessionStore) Get(ctx context.Context, sessionID, key string) (string, error) {
	args := m.Called(ctx, sessionID, key)
	return args.String(0), args.Error(1)
}

func (m *mockSessionStore) Set(ctx context.Context, sessionID, key, value string) error {
	return m.Called(ctx, sessionID, key, value).Error(0)
}

func (m *mockSessionStore) Destroy(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}
