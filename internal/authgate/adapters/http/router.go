// Package http содержит компоненты HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"

	"authgate/internal/authgate/adapters/http/auth"
	"authgate/internal/authgate/adapters/http/middleware"
	"authgate/internal/authgate/adapters/http/user"
	"authgate/internal/authgate/config"
	"authgate/internal/authgate/ports/api"
	svc "authgate/internal/authgate/ports/services"
	"authgate/pkg/db/postgres"
)

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(
	app *fiber.App,
	authUseCase api.AuthUseCase,
	userUseCase api.UserUseCase,
	tokenSvc svc.TokenService,
	sessions svc.SessionStore,
	sessionCfg *config.SessionConfig,
	database *postgres.Database,
) {
	authHandler := auth.NewHandler(authUseCase, sessionCfg)
	userHandler := user.NewHandler(userUseCase)

	// Middleware для всех запросов.
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())
	app.Use(middleware.NewSessionMiddleware(sessionCfg))

	// Проверка работоспособности.
	app.Get("/healthz", func(c fiber.Ctx) error {
		if err := database.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unavailable",
			})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Публичные маршруты. Корень исторически принимает ту же форму
	// регистрации, что и /register.
	app.Post("/", authHandler.Register)
	app.Post("/register", authHandler.Register)
	app.Post("/login", authHandler.Login)
	app.Get("/logout", authHandler.Logout)

	// Защищенные маршруты.
	dashboard := app.Group("/dashboard")
	dashboard.Use(middleware.NewAuthMiddleware(tokenSvc, sessions))
	dashboard.Get("/", userHandler.Dashboard)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
