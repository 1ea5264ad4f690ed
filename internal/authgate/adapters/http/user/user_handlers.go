// Package user содержит HTTP обработчики защищенных страниц пользователя.
package user

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"authgate/internal/authgate/adapters/http/dto"
	"authgate/internal/authgate/adapters/http/middleware"
	"authgate/internal/authgate/domain/entities"
	"authgate/internal/authgate/ports/api"
	"authgate/internal/authgate/validation"
	"authgate/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerDashboard = "user handler: dashboard"

	ErrorFailedToServeRequest = "failed to serve request"
)

const msgDashboard = "Bienvenue sur votre Dashboard"

// Handler содержит HTTP обработчики пользователя.
type Handler struct {
	userUseCase api.UserUseCase
}

// NewHandler создает новый экземпляр обработчика пользователя.
func NewHandler(userUseCase api.UserUseCase) *Handler {
	return &Handler{userUseCase: userUseCase}
}

// Dashboard возвращает защищенную страницу пользователя.
func (h *Handler) Dashboard(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerDashboard)

	userID := middleware.UserIDFromCtx(ctx)

	profile, err := h.userUseCase.GetUserProfile(requestCtx, userID)
	if err != nil {
		// Токен валиден, но пользователя уже нет: сессию пора обновить.
		if errors.Is(err, entities.ErrUserNotFound) || errors.Is(err, entities.ErrEmptyUserID) {
			if sendErr := ctx.Status(http.StatusForbidden).JSON(fiber.Map{
				"message": validation.MsgReauthRequired,
			}); sendErr != nil {
				return fmt.Errorf("sending response: %w", sendErr)
			}
			return nil
		}

		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		if sendErr := ctx.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": ErrorFailedToServeRequest,
		}); sendErr != nil {
			return fmt.Errorf("sending response: %w", sendErr)
		}
		return nil
	}

	if err := ctx.Status(http.StatusOK).JSON(fiber.Map{
		"message": msgDashboard,
		"user":    dto.NewUserResponse(profile),
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
