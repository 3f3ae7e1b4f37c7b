package credstore

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/autoassess-client/internal/config"
	"github.com/spec-kit/autoassess-client/internal/domain"
)

// RedisStore persists tokens in Redis, for headless environments where
// several client processes share one login.
type RedisStore struct {
	client *redis.Client
	prefix string
	logger *zap.Logger
}

// NewRedisStore connects to Redis using the provided configuration.
func NewRedisStore(cfg config.RedisConfig, appName string, logger *zap.Logger) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.Error(err))
	} else {
		logger.Info("connected to redis")
	}

	return &RedisStore{client: client, prefix: appName + ":", logger: logger}
}

// Get returns the stored token for the role, or absent on any error.
func (s *RedisStore) Get(ctx context.Context, role domain.Role) (string, bool) {
	key, ok := storageKey(role)
	if !ok {
		return "", false
	}
	token, err := s.client.Get(ctx, s.prefix+key).Result()
	if err != nil || token == "" {
		return "", false
	}
	return token, true
}

// Set persists the token, overwriting any prior one. Tokens carry no
// client-side expiry; the backend rejects stale ones.
func (s *RedisStore) Set(ctx context.Context, role domain.Role, token string) {
	key, ok := storageKey(role)
	if !ok {
		return
	}
	if err := s.client.Set(ctx, s.prefix+key, token, 0).Err(); err != nil {
		s.logger.Warn("store credential", zap.Error(err), zap.String("role", string(role)))
	}
}

// Clear removes the stored token for the role.
func (s *RedisStore) Clear(ctx context.Context, role domain.Role) {
	key, ok := storageKey(role)
	if !ok {
		return
	}
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		s.logger.Warn("clear credential", zap.Error(err), zap.String("role", string(role)))
	}
}

// Close closes the underlying client.
func (s *RedisStore) Close() {
	if s != nil && s.client != nil {
		_ = s.client.Close()
	}
}
