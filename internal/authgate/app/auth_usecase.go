// Package app содержит прикладную логику регистрации, входа и выхода.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"authgate/internal/authgate/domain/entities"
	"authgate/internal/authgate/domain/services"
	"authgate/internal/authgate/ports/api"
	"authgate/internal/authgate/ports/repositories"
	svc "authgate/internal/authgate/ports/services"
	"authgate/internal/authgate/validation"
	"authgate/pkg/logger"
)

const (
	methodRegister = "Register"
	methodLogin    = "Login"
	methodLogout   = "Logout"

	msgStartRegistration   = "starting user registration"
	msgValidationFailed    = "registration input failed validation"
	msgEmailExists         = "user with this email already exists"
	msgPasswordMismatch    = "password confirmation does not match"
	msgDuplicateOnInsert   = "duplicate email surfaced by insert, registration lost the race"
	msgUserRegistered      = "user registered successfully"
	msgLoginAttempt        = "login attempt"
	msgLoginValidation     = "login input failed validation"
	msgLoginNonExistent    = "login attempt with non-existent email"
	msgInvalidPasswordAuth = "invalid password provided"
	msgUserLoggedIn        = "user logged in successfully"
	msgTokenIssued         = "identity token issued"
	msgSessionPopulated    = "session populated with token"
	msgProcessingLogout    = "processing logout request"
	msgUserLoggedOut       = "session destroyed successfully"

	msgErrCheckExistingUser = "failed to check existing user"
	msgErrFindingUser       = "error finding user by email"
	msgErrCreateUser        = "failed to create user"
	msgErrIssueToken        = "failed to issue token"
	msgErrPopulateSession   = "failed to populate session"
	msgErrDestroySession    = "failed to destroy session"

	errCtxValidatingInput    = "validating input"
	errCtxCheckingUser       = "checking existing user"
	errCtxEmailRegistered    = "email already registered"
	errCtxPasswordMismatch   = "confirming password"
	errCtxCreatingUser       = "creating user"
	errCtxInvalidCredentials = "invalid credentials"
	errCtxFindingUser        = "finding user"
	errCtxIssuingToken       = "issuing token"
	errCtxPopulatingSession  = "populating session"
	errCtxDestroyingSession  = "destroying session"
)

// AuthUseCaseImpl реализует интерфейс AuthUseCase.
type AuthUseCaseImpl struct {
	userRepo    repositories.UserRepository
	passwordSvc svc.PasswordService
	tokenSvc    svc.TokenService
	sessions    svc.SessionStore
}

// NewAuthUseCase создает новый экземпляр сервиса аутентификации.
func NewAuthUseCase(
	userRepo repositories.UserRepository,
	passwordSvc svc.PasswordService,
	tokenSvc svc.TokenService,
	sessions svc.SessionStore,
) api.AuthUseCase {
	return &AuthUseCaseImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		sessions:    sessions,
	}
}

// Register создает нового пользователя с предоставленными данными.
// Все ошибки валидации накапливаются и возвращаются одним списком.
func (a *AuthUseCaseImpl) Register(ctx context.Context, input api.RegisterInput) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRegister))
	log.Debug(ctx, msgStartRegistration)

	input = trimRegisterInput(input)

	messages := validation.ValidateRegistration(validation.RegistrationInput{
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		Email:           input.Email,
		Password:        input.Password,
		ConfirmPassword: input.ConfirmPassword,
	})
	if len(messages) > 0 {
		log.Debug(ctx, msgValidationFailed, zap.Strings("messages", messages))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingInput, services.NewValidationError(messages))
	}

	email := strings.ToLower(input.Email)
	log = log.With(zap.String("email", email))

	exists, err := a.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		log.Error(ctx, msgErrCheckExistingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCheckingUser, err)
	}
	if exists {
		log.Debug(ctx, msgEmailExists)
		return nil, fmt.Errorf("%s: %w", errCtxEmailRegistered, services.ErrUserAlreadyExists)
	}

	if input.Password != input.ConfirmPassword {
		log.Debug(ctx, msgPasswordMismatch)
		return nil, fmt.Errorf("%s: %w", errCtxPasswordMismatch, services.ErrPasswordMismatch)
	}

	newUser := &entities.User{
		FirstName:      capitalize(input.FirstName),
		LastName:       capitalize(input.LastName),
		Email:          email,
		PasswordDigest: a.passwordSvc.Hash(ctx, input.Password),
	}

	createdUser, err := a.userRepo.Create(ctx, newUser)
	if err != nil {
		// Проверка существования выше могла устареть: уникальность
		// email гарантирует только само хранилище.
		if errors.Is(err, entities.ErrEmailTaken) {
			log.Debug(ctx, msgDuplicateOnInsert)
			return nil, fmt.Errorf("%s: %w", errCtxEmailRegistered, services.ErrUserAlreadyExists)
		}
		log.Error(ctx, msgErrCreateUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingUser, err)
	}

	log.Info(ctx, msgUserRegistered, zap.String("userID", createdUser.ID))
	return createdUser, nil
}

// Login аутентифицирует пользователя по email и паролю, выдает токен
// и, при наличии сессии, заполняет ее.
func (a *AuthUseCaseImpl) Login(ctx context.Context, input api.LoginInput, sessionID string) (*services.LoginResult, error) {
	log := logger.Log(ctx).With(zap.String("method", methodLogin))
	log.Debug(ctx, msgLoginAttempt)

	input.Email = strings.TrimSpace(input.Email)
	input.Password = strings.TrimSpace(input.Password)

	messages := validation.ValidateLogin(validation.LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if len(messages) > 0 {
		log.Debug(ctx, msgLoginValidation, zap.Strings("messages", messages))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingInput, services.NewValidationError(messages))
	}

	email := strings.ToLower(input.Email)
	log = log.With(zap.String("email", email))

	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgLoginNonExistent)
			return nil, fmt.Errorf("%s: %w", errCtxInvalidCredentials, services.ErrIncorrectCredentials)
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	if !a.passwordSvc.Verify(ctx, input.Password, user.PasswordDigest) {
		log.Debug(ctx, msgInvalidPasswordAuth, zap.String("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxInvalidCredentials, services.ErrIncorrectCredentials)
	}

	token, expiresAt, err := a.tokenSvc.IssueToken(ctx, user.ID)
	if err != nil {
		log.Error(ctx, msgErrIssueToken, zap.Error(err), zap.String("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxIssuingToken, err)
	}

	log.Debug(ctx, msgTokenIssued, zap.String("userID", user.ID))

	if sessionID != "" {
		if err := a.sessions.Set(ctx, sessionID, svc.SessionKeyToken, token); err != nil {
			log.Error(ctx, msgErrPopulateSession, zap.Error(err))
			return nil, fmt.Errorf("%s: %w", errCtxPopulatingSession, err)
		}
		if err := a.sessions.Set(ctx, sessionID, svc.SessionKeyLoggedIn, "true"); err != nil {
			log.Error(ctx, msgErrPopulateSession, zap.Error(err))
			return nil, fmt.Errorf("%s: %w", errCtxPopulatingSession, err)
		}
		log.Debug(ctx, msgSessionPopulated)
	}

	log.Info(ctx, msgUserLoggedIn, zap.String("userID", user.ID))

	return &services.LoginResult{
		Token: services.IssuedToken{Token: token, ExpiresAt: expiresAt},
		User:  user,
	}, nil
}

// Logout уничтожает сессию пользователя.
func (a *AuthUseCaseImpl) Logout(ctx context.Context, sessionID string) error {
	log := logger.Log(ctx).With(zap.String("method", methodLogout))
	log.Debug(ctx, msgProcessingLogout)

	if sessionID == "" {
		return nil
	}

	if err := a.sessions.Destroy(ctx, sessionID); err != nil {
		log.Error(ctx, msgErrDestroySession, zap.Error(err))
		return fmt.Errorf("%s: %w: %w", errCtxDestroyingSession, services.ErrSessionDestroy, err)
	}

	log.Info(ctx, msgUserLoggedOut)
	return nil
}

// trimRegisterInput обрезает пробелы во всех строковых полях запроса.
func trimRegisterInput(input api.RegisterInput) api.RegisterInput {
	return api.RegisterInput{
		FirstName:       strings.TrimSpace(input.FirstName),
		LastName:        strings.TrimSpace(input.LastName),
		Email:           strings.TrimSpace(input.Email),
		Password:        strings.TrimSpace(input.Password),
		ConfirmPassword: strings.TrimSpace(input.ConfirmPassword),
	}
}

// capitalize переводит первую букву строки в верхний регистр.
func capitalize(value string) string {
	runes := []rune(value)
	if len(runes) == 0 {
		return value
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
