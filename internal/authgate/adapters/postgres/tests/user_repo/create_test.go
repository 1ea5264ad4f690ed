package userrepo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authgate/internal/authgate/adapters/postgres"
	"authgate/internal/authgate/domain/entities"
	"authgate/pkg/logger"
)

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()
	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	ctx = logger.NewContext(ctx, testLogger)

	newUser := &entities.User{
		FirstName:      "Marie",
		LastName:       "Curie",
		Email:          "marie.curie@example.com",
		PasswordDigest: "ac58cbfd4cf4c49542fabaf0a3c02e135b7fdfa374e6ef853f0c8ad425abf189",
	}

	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("Успешное создание пользователя", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		rows := pgxmock.NewRows([]string{"id", "first_name", "last_name", "email", "password_digest", "created_at", "updated_at"}).
			AddRow("generated-id", newUser.FirstName, newUser.LastName, newUser.Email, newUser.PasswordDigest, now, now)

		mock.ExpectQuery("INSERT INTO users").
			WithArgs(newUser.FirstName, newUser.LastName, newUser.Email, newUser.PasswordDigest).
			WillReturnRows(rows)

		repo := postgres.NewUserRepository(mock)

		created, err := repo.Create(ctx, newUser)

		require.NoError(t, err)
		assert.Equal(t, "generated-id", created.ID)
		assert.Equal(t, newUser.Email, created.Email)
		assert.Equal(t, newUser.PasswordDigest, created.PasswordDigest)
		assert.Equal(t, now, created.CreatedAt)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Нарушение уникальности email", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO users").
			WithArgs(newUser.FirstName, newUser.LastName, newUser.Email, newUser.PasswordDigest).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"})

		repo := postgres.NewUserRepository(mock)

		created, err := repo.Create(ctx, newUser)

		assert.Nil(t, created)
		assert.ErrorIs(t, err, entities.ErrEmailTaken)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка базы данных при создании", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO users").
			WithArgs(newUser.FirstName, newUser.LastName, newUser.Email, newUser.PasswordDigest).
			WillReturnError(errors.New("database connection failed"))

		repo := postgres.NewUserRepository(mock)

		created, err := repo.Create(ctx, newUser)

		assert.Nil(t, created)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "error creating user")

		require.NoError(t, mock.ExpectationsWereMet())
	})
}
