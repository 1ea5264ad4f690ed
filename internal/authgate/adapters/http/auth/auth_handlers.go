// Package auth содержит HTTP обработчики регистрации, входа и выхода.
package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"authgate/internal/authgate/adapters/http/dto"
	"authgate/internal/authgate/adapters/http/middleware"
	"authgate/internal/authgate/config"
	"authgate/internal/authgate/domain/services"
	"authgate/internal/authgate/ports/api"
	"authgate/internal/authgate/validation"
	"authgate/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerRegister = "auth handler: register"
	LogHandlerLogin    = "auth handler: login"
	LogHandlerLogout   = "auth handler: logout"

	ErrorInvalidRequest       = "invalid request"
	ErrorFailedToServeRequest = "failed to serve request"
)

// Пользовательские сообщения обработчиков.
const (
	msgRegistered = "Inscription réussie ! Bienvenue sur l'application %s"
	msgLoggedIn   = "Vous êtes bien connecté !"
)

// Handler содержит HTTP обработчики аутентификации.
type Handler struct {
	authUseCase api.AuthUseCase
	sessionCfg  *config.SessionConfig
}

// NewHandler создает новый экземпляр обработчика аутентификации.
func NewHandler(authUseCase api.AuthUseCase, sessionCfg *config.SessionConfig) *Handler {
	return &Handler{
		authUseCase: authUseCase,
		sessionCfg:  sessionCfg,
	}
}

// Вспомогательная функция для отправки одного сообщения с кодом состояния.
func sendMessageResponse(ctx fiber.Ctx, statusCode int, message string) error {
	if err := ctx.Status(statusCode).JSON(dto.MessageResponse{Message: message}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Register обрабатывает запрос на регистрацию нового пользователя.
func (h *Handler) Register(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerRegister)

	var req dto.RegisterRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendMessageResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	user, err := h.authUseCase.Register(requestCtx, api.RegisterInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return h.sendRegisterError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.MessageResponse{
		Message: fmt.Sprintf(msgRegistered, user.FirstName),
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// sendRegisterError транслирует ошибки регистрации в ответы API.
func (h *Handler) sendRegisterError(ctx fiber.Ctx, err error) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)

	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		if sendErr := ctx.Status(http.StatusBadRequest).JSON(dto.ValidationErrorResponse{
			Message: strings.Join(validationErr.Messages, ", "),
			Errors:  validationErr.Messages,
		}); sendErr != nil {
			return fmt.Errorf("sending validation response: %w", sendErr)
		}
		return nil
	}

	switch {
	case errors.Is(err, services.ErrUserAlreadyExists):
		return sendMessageResponse(ctx, http.StatusBadRequest, validation.MsgUserExists)
	case errors.Is(err, services.ErrPasswordMismatch):
		return sendMessageResponse(ctx, http.StatusBadRequest, validation.MsgConfirmPasswordWrong)
	default:
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendMessageResponse(ctx, http.StatusInternalServerError, ErrorFailedToServeRequest)
	}
}

// Login обрабатывает запрос на вход пользователя.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogin)

	var req dto.LoginRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendMessageResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	sessionID := middleware.SessionIDFromCtx(ctx)

	result, err := h.authUseCase.Login(requestCtx, api.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	}, sessionID)
	if err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			if sendErr := ctx.Status(http.StatusBadRequest).JSON(dto.ValidationErrorResponse{
				Message: strings.Join(validationErr.Messages, ", "),
				Errors:  validationErr.Messages,
			}); sendErr != nil {
				return fmt.Errorf("sending validation response: %w", sendErr)
			}
			return nil
		}

		// Неизвестный email и неверный пароль отвечают одинаково.
		if errors.Is(err, services.ErrIncorrectCredentials) {
			return sendMessageResponse(ctx, http.StatusUnauthorized, validation.MsgIncorrectCredentials)
		}

		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendMessageResponse(ctx, http.StatusInternalServerError, ErrorFailedToServeRequest)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.LoginResponse{
		Message:   msgLoggedIn,
		Token:     result.Token.Token,
		ExpiresAt: result.Token.ExpiresAt,
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Logout обрабатывает запрос на выход пользователя: уничтожает сессию,
// сбрасывает cookie и перенаправляет на главную страницу.
func (h *Handler) Logout(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogout)

	sessionID := middleware.SessionIDFromCtx(ctx)

	if err := h.authUseCase.Logout(requestCtx, sessionID); err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendMessageResponse(ctx, http.StatusInternalServerError, ErrorFailedToServeRequest)
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     h.sessionCfg.Name,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	if err := ctx.Redirect().To("/"); err != nil {
		return fmt.Errorf("redirecting after logout: %w", err)
	}
	return nil
}
