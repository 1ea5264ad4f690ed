package session_test

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authgate/internal/authgate/adapters/session"
	"authgate/internal/authgate/config"
	svc "authgate/internal/authgate/ports/services"
)

const (
	testPrefix    = "session:"
	testTTL       = 24 * time.Hour
	testSessionID = "d2c1f0f8-6a3f-4c7a-9a42-6f3f9d6f2f11"
)

func mockRedisServer(t *testing.T) (*miniredis.Miniredis, string) {
	t.Helper()

	s, err := miniredis.Run()
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	return s, s.Addr()
}

func newTestStore(t *testing.T) (*miniredis.Miniredis, *session.RedisSessionStore) {
	t.Helper()

	s, addr := mockRedisServer(t)

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() {
		_ = client.Close()
	})

	return s, session.NewWithClient(client, testPrefix, testTTL)
}

func TestNewRedisSessionStore(t *testing.T) {
	t.Run("Успешное подключение", func(t *testing.T) {
		_, addr := mockRedisServer(t)

		host, portStr, _ := strings.Cut(addr, ":")
		port, err := strconv.Atoi(portStr)
		require.NoError(t, err)

		redisCfg := &config.RedisConfig{
			Host:            host,
			Port:            port,
			ConnectTimeout:  5 * time.Second,
			ReadTimeout:     3 * time.Second,
			WriteTimeout:    3 * time.Second,
			PoolSize:        10,
			MinIdle:         2,
			IdleTimeout:     5 * time.Minute,
			MaxConnLifetime: time.Hour,
		}
		sessionCfg := &config.SessionConfig{Name: "authgate_sid", KeyPrefix: testPrefix, TTL: "24h"}

		store, err := session.NewRedisSessionStore(context.Background(), redisCfg, sessionCfg)

		require.NoError(t, err)
		require.NotNil(t, store)
		require.NoError(t, store.Close())
	})

	t.Run("Ошибка подключения к недоступному серверу", func(t *testing.T) {
		redisCfg := &config.RedisConfig{
			Host:           "localhost",
			Port:           1,
			ConnectTimeout: 100 * time.Millisecond,
		}
		sessionCfg := &config.SessionConfig{KeyPrefix: testPrefix, TTL: "24h"}

		store, err := session.NewRedisSessionStore(context.Background(), redisCfg, sessionCfg)

		require.Error(t, err)
		assert.Nil(t, store)
		assert.Contains(t, err.Error(), session.ErrorFailedToConnect)
	})
}

func TestRedisSessionStore_SetGet(t *testing.T) {
	ctx := context.Background()

	t.Run("Запись и чтение поля сессии", func(t *testing.T) {
		s, store := newTestStore(t)

		require.NoError(t, store.Set(ctx, testSessionID, svc.SessionKeyToken, "issued-token-123"))

		value, err := store.Get(ctx, testSessionID, svc.SessionKeyToken)
		require.NoError(t, err)
		assert.Equal(t, "issued-token-123", value)

		// Сессия хранится как hash с TTL.
		assert.Equal(t, "issued-token-123", s.HGet(testPrefix+testSessionID, svc.SessionKeyToken))
		assert.Equal(t, testTTL, s.TTL(testPrefix+testSessionID))
	})

	t.Run("Отсутствующее поле читается как пустая строка", func(t *testing.T) {
		_, store := newTestStore(t)

		require.NoError(t, store.Set(ctx, testSessionID, svc.SessionKeyToken, "issued-token-123"))

		value, err := store.Get(ctx, testSessionID, svc.SessionKeyLoggedIn)
		require.NoError(t, err)
		assert.Empty(t, value)
	})

	t.Run("Отсутствующая сессия читается как пустая строка", func(t *testing.T) {
		_, store := newTestStore(t)

		value, err := store.Get(ctx, "missing-session", svc.SessionKeyToken)
		require.NoError(t, err)
		assert.Empty(t, value)
	})

	t.Run("Запись обновляет TTL сессии", func(t *testing.T) {
		s, store := newTestStore(t)

		require.NoError(t, store.Set(ctx, testSessionID, svc.SessionKeyToken, "issued-token-123"))

		s.FastForward(time.Hour)

		require.NoError(t, store.Set(ctx, testSessionID, svc.SessionKeyLoggedIn, "true"))
		assert.Equal(t, testTTL, s.TTL(testPrefix+testSessionID))
	})

	t.Run("Ошибка при закрытом соединении", func(t *testing.T) {
		s, store := newTestStore(t)
		s.Close()

		err := store.Set(ctx, testSessionID, svc.SessionKeyToken, "issued-token-123")
		require.Error(t, err)
		assert.Contains(t, err.Error(), session.ErrorFailedToSet)
	})
}

func TestRedisSessionStore_Destroy(t *testing.T) {
	ctx := context.Background()

	t.Run("Уничтожение существующей сессии", func(t *testing.T) {
		s, store := newTestStore(t)

		require.NoError(t, store.Set(ctx, testSessionID, svc.SessionKeyToken, "issued-token-123"))
		require.NoError(t, store.Set(ctx, testSessionID, svc.SessionKeyLoggedIn, "true"))

		require.NoError(t, store.Destroy(ctx, testSessionID))

		assert.False(t, s.Exists(testPrefix+testSessionID))

		value, err := store.Get(ctx, testSessionID, svc.SessionKeyToken)
		require.NoError(t, err)
		assert.Empty(t, value)
	})

	t.Run("Уничтожение отсутствующей сессии не является ошибкой", func(t *testing.T) {
		_, store := newTestStore(t)

		require.NoError(t, store.Destroy(ctx, "missing-session"))
	})
}
