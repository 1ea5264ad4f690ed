package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	svc "authgate/internal/authgate/ports/services"
	"authgate/internal/authgate/validation"
	"authgate/pkg/logger"
)

// Константы для логирования.
const (
	LogAuthMiddleware = "auth middleware"

	ErrorNoCredential     = "no token in session or authorization header"
	ErrorTokenRejected    = "token verification failed"
	ErrorReadingSession   = "failed to read session token"
	ErrorMarkingLoggedOut = "failed to mark session as logged out"

	bearerPrefix = "Bearer "
)

// NewAuthMiddleware создает промежуточное ПО, охраняющее защищенные
// маршруты. Токен берется из сессии, затем из заголовка Authorization.
// Отсутствие токена и отклоненный токен различаются: первый случай
// просит аутентифицироваться, второй - переподключиться.
func NewAuthMiddleware(tokenSvc svc.TokenService, sessions svc.SessionStore) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))
		log.Debug(requestCtx, LogAuthMiddleware)

		sessionID := SessionIDFromCtx(ctx)

		token := ""
		if sessionID != "" {
			sessionToken, err := sessions.Get(requestCtx, sessionID, svc.SessionKeyToken)
			if err != nil {
				log.Error(requestCtx, ErrorReadingSession, zap.Error(err))
			} else {
				token = sessionToken
			}
		}

		if token == "" {
			authHeader := ctx.Get(fiber.HeaderAuthorization)
			if strings.HasPrefix(authHeader, bearerPrefix) {
				token = strings.TrimPrefix(authHeader, bearerPrefix)
			}
		}

		if token == "" {
			log.Debug(requestCtx, ErrorNoCredential)
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": validation.MsgAuthRequired,
			})
		}

		userID, err := tokenSvc.VerifyToken(requestCtx, token)
		if err != nil {
			log.Debug(requestCtx, ErrorTokenRejected, zap.Error(err))

			if sessionID != "" {
				if setErr := sessions.Set(requestCtx, sessionID, svc.SessionKeyLoggedIn, "false"); setErr != nil {
					log.Error(requestCtx, ErrorMarkingLoggedOut, zap.Error(setErr))
				}
			}

			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": validation.MsgReauthRequired,
			})
		}

		ctx.Locals(LocalsUserID, userID)

		return ctx.Next()
	}
}

// UserIDFromCtx возвращает идентификатор аутентифицированного пользователя.
func UserIDFromCtx(ctx fiber.Ctx) string {
	userID, ok := ctx.Locals(LocalsUserID).(string)
	if !ok {
		return ""
	}
	return userID
}
