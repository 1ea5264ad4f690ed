// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"authgate/internal/authgate/config"
	"authgate/pkg/logger"
)

// Ключи значений запроса в Locals.
const (
	LocalsSessionID = "sessionID"
	LocalsUserID    = "userID"
)

const msgSessionIssued = "new session id issued"

// NewSessionMiddleware привязывает к каждому запросу идентификатор
// сессии: берет его из cookie или выдает новый. Сам идентификатор
// не дает никаких прав, он лишь ключ внешнего хранилища.
func NewSessionMiddleware(cfg *config.SessionConfig) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()

		sessionID := ctx.Cookies(cfg.Name)
		if sessionID == "" {
			sessionID = uuid.NewString()

			ctx.Cookie(&fiber.Cookie{
				Name:     cfg.Name,
				Value:    sessionID,
				Expires:  time.Now().Add(cfg.GetTTL()),
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})

			log := logger.Log(requestCtx).With(zap.String("middleware", "session"))
			log.Debug(requestCtx, msgSessionIssued)
		}

		ctx.Locals(LocalsSessionID, sessionID)

		return ctx.Next()
	}
}

// SessionIDFromCtx возвращает идентификатор сессии текущего запроса.
func SessionIDFromCtx(ctx fiber.Ctx) string {
	sessionID, ok := ctx.Locals(LocalsSessionID).(string)
	if !ok {
		return ""
	}
	return sessionID
}
