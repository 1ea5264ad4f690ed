// Package session содержит хранилище серверных сессий поверх Redis.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"authgate/internal/authgate/config"
	svc "authgate/internal/authgate/ports/services"
	"authgate/pkg/logger"
)

// Константы для логирования.
const (
	LogMethodGet     = "get"
	LogMethodSet     = "set"
	LogMethodDestroy = "destroy"

	ErrorFailedToConnect = "failed to connect to redis"
	ErrorFailedToGet     = "failed to get session field"
	ErrorFailedToSet     = "failed to set session field"
	ErrorFailedToExpire  = "failed to set session ttl"
	ErrorFailedToDestroy = "failed to destroy session"
	ErrorFailedToClose   = "failed to close redis connection"
)

// RedisSessionStore реализует интерфейс SessionStore с использованием Redis.
// Каждая сессия хранится как hash с полями token и logged_in; TTL
// обновляется при каждой записи.
type RedisSessionStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisSessionStore создает новое хранилище сессий и проверяет соединение.
func NewRedisSessionStore(ctx context.Context, redisCfg *config.RedisConfig, sessionCfg *config.SessionConfig) (*RedisSessionStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:            redisCfg.GetAddress(),
		Password:        redisCfg.Password,
		DB:              redisCfg.DB,
		DialTimeout:     redisCfg.ConnectTimeout,
		ReadTimeout:     redisCfg.ReadTimeout,
		WriteTimeout:    redisCfg.WriteTimeout,
		PoolSize:        redisCfg.PoolSize,
		MinIdleConns:    redisCfg.MinIdle,
		ConnMaxIdleTime: redisCfg.IdleTimeout,
		ConnMaxLifetime: redisCfg.MaxConnLifetime,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedToConnect, err)
	}

	return &RedisSessionStore{
		client: client,
		prefix: sessionCfg.KeyPrefix,
		ttl:    sessionCfg.GetTTL(),
	}, nil
}

// NewWithClient создает хранилище поверх готового клиента Redis.
func NewWithClient(client *redis.Client, prefix string, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, prefix: prefix, ttl: ttl}
}

var _ svc.SessionStore = (*RedisSessionStore)(nil)

// Get возвращает значение поля сессии; пустая строка означает
// отсутствие поля или самой сессии.
func (s *RedisSessionStore) Get(ctx context.Context, sessionID, key string) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodGet), zap.String("key", key))

	value, err := s.client.HGet(ctx, s.sessionKey(sessionID), key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		log.Error(ctx, ErrorFailedToGet, zap.Error(err))
		return "", fmt.Errorf("%s: %w", ErrorFailedToGet, err)
	}

	return value, nil
}

// Set записывает поле сессии и продлевает ее время жизни.
func (s *RedisSessionStore) Set(ctx context.Context, sessionID, key, value string) error {
	log := logger.Log(ctx).With(zap.String("method", LogMethodSet), zap.String("key", key))

	sessionKey := s.sessionKey(sessionID)

	if err := s.client.HSet(ctx, sessionKey, key, value).Err(); err != nil {
		log.Error(ctx, ErrorFailedToSet, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToSet, err)
	}

	if err := s.client.Expire(ctx, sessionKey, s.ttl).Err(); err != nil {
		log.Error(ctx, ErrorFailedToExpire, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToExpire, err)
	}

	return nil
}

// Destroy удаляет сессию целиком. Удаление отсутствующей сессии не
// считается ошибкой.
func (s *RedisSessionStore) Destroy(ctx context.Context, sessionID string) error {
	log := logger.Log(ctx).With(zap.String("method", LogMethodDestroy))

	if err := s.client.Del(ctx, s.sessionKey(sessionID)).Err(); err != nil {
		log.Error(ctx, ErrorFailedToDestroy, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToDestroy, err)
	}

	return nil
}

// Close закрывает соединение с Redis.
func (s *RedisSessionStore) Close() error {
	if err := s.client.Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrorFailedToClose, err)
	}
	return nil
}

func (s *RedisSessionStore) sessionKey(sessionID string) string {
	return s.prefix + sessionID
}
