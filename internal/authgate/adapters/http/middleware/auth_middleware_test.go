package middleware_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authgate/internal/authgate/adapters/http/middleware"
	"authgate/internal/authgate/adapters/services"
	"authgate/internal/authgate/config"
	svc "authgate/internal/authgate/ports/services"
	"authgate/internal/authgate/validation"
)

const testSecretKey = "test-secret-key-12345"

// memorySessionStore реализует SessionStore в памяти для тестов.
type memorySessionStore struct {
	sessions map[string]map[string]string
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{sessions: make(map[string]map[string]string)}
}

func (m *memorySessionStore) Get(_ context.Context, sessionID, key string) (string, error) {
	return m.sessions[sessionID][key], nil
}

func (m *memorySessionStore) Set(_ context.Context, sessionID, key, value string) error {
	if m.sessions[sessionID] == nil {
		m.sessions[sessionID] = make(map[string]string)
	}
	m.sessions[sessionID][key] = value
	return nil
}

func (m *memorySessionStore) Destroy(_ context.Context, sessionID string) error {
	delete(m.sessions, sessionID)
	return nil
}

func newGuardedApp(store svc.SessionStore, sessionCfg *config.SessionConfig) *fiber.App {
	tokenSvc := services.NewJWT(testSecretKey, 15*time.Minute)

	app := fiber.New()
	app.Use(middleware.NewSessionMiddleware(sessionCfg))
	app.Use(middleware.NewAuthMiddleware(tokenSvc, store))
	app.Get("/dashboard", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"userID": middleware.UserIDFromCtx(c)})
	})

	return app
}

func decodeMessage(t *testing.T, body io.Reader) string {
	t.Helper()

	var payload struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(body).Decode(&payload))
	return payload.Message
}

func TestAuthMiddleware(t *testing.T) {
	sessionCfg := &config.SessionConfig{Name: "authgate_sid", KeyPrefix: "session:", TTL: "24h"}
	tokenSvc := services.NewJWT(testSecretKey, 15*time.Minute)

	t.Run("запрос без токена получает 401", func(t *testing.T) {
		store := newMemorySessionStore()
		app := newGuardedApp(store, sessionCfg)

		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, validation.MsgAuthRequired, decodeMessage(t, resp.Body))
	})

	t.Run("токен из заголовка Bearer пропускается", func(t *testing.T) {
		store := newMemorySessionStore()
		app := newGuardedApp(store, sessionCfg)

		token, _, err := tokenSvc.IssueToken(context.Background(), "user-id-123")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var payload struct {
			UserID string `json:"userID"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
		assert.Equal(t, "user-id-123", payload.UserID)
	})

	t.Run("токен из сессии пропускается", func(t *testing.T) {
		store := newMemorySessionStore()
		app := newGuardedApp(store, sessionCfg)

		token, _, err := tokenSvc.IssueToken(context.Background(), "user-id-123")
		require.NoError(t, err)

		sessionID := "session-id-123"
		require.NoError(t, store.Set(context.Background(), sessionID, svc.SessionKeyToken, token))
		require.NoError(t, store.Set(context.Background(), sessionID, svc.SessionKeyLoggedIn, "true"))

		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		req.AddCookie(&http.Cookie{Name: sessionCfg.Name, Value: sessionID})

		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("поддельный токен получает 403 и сессия гасится", func(t *testing.T) {
		store := newMemorySessionStore()
		app := newGuardedApp(store, sessionCfg)

		otherIssuer := services.NewJWT("different-secret-key-67890", 15*time.Minute)
		token, _, err := otherIssuer.IssueToken(context.Background(), "user-id-123")
		require.NoError(t, err)

		sessionID := "session-id-123"
		require.NoError(t, store.Set(context.Background(), sessionID, svc.SessionKeyToken, token))
		require.NoError(t, store.Set(context.Background(), sessionID, svc.SessionKeyLoggedIn, "true"))

		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		req.AddCookie(&http.Cookie{Name: sessionCfg.Name, Value: sessionID})

		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Equal(t, validation.MsgReauthRequired, decodeMessage(t, resp.Body))

		loggedIn, err := store.Get(context.Background(), sessionID, svc.SessionKeyLoggedIn)
		require.NoError(t, err)
		assert.Equal(t, "false", loggedIn)
	})

	t.Run("просроченный токен получает 403", func(t *testing.T) {
		store := newMemorySessionStore()
		app := newGuardedApp(store, sessionCfg)

		expiredIssuer := services.NewJWT(testSecretKey, -15*time.Minute)
		token, _, err := expiredIssuer.IssueToken(context.Background(), "user-id-123")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Equal(t, validation.MsgReauthRequired, decodeMessage(t, resp.Body))
	})
}

func TestSessionMiddleware(t *testing.T) {
	sessionCfg := &config.SessionConfig{Name: "authgate_sid", KeyPrefix: "session:", TTL: "24h"}

	t.Run("новому клиенту выдается cookie сессии", func(t *testing.T) {
		app := fiber.New()
		app.Use(middleware.NewSessionMiddleware(sessionCfg))
		app.Get("/", func(c fiber.Ctx) error {
			return c.JSON(fiber.Map{"sessionID": middleware.SessionIDFromCtx(c)})
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)

		var issued string
		for _, cookie := range resp.Cookies() {
			if cookie.Name == sessionCfg.Name {
				issued = cookie.Value
			}
		}
		assert.NotEmpty(t, issued)
	})

	t.Run("существующая cookie сохраняется", func(t *testing.T) {
		app := fiber.New()
		app.Use(middleware.NewSessionMiddleware(sessionCfg))
		app.Get("/", func(c fiber.Ctx) error {
			return c.JSON(fiber.Map{"sessionID": middleware.SessionIDFromCtx(c)})
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: sessionCfg.Name, Value: "existing-session-id"})

		resp, err := app.Test(req)
		require.NoError(t, err)

		var payload struct {
			SessionID string `json:"sessionID"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
		assert.Equal(t, "existing-session-id", payload.SessionID)
	})
}
