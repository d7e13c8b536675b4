package repository

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/duber-parra/minominapro/backend/internal/domain"
)

// RedisStore es el backend por defecto del almacén clave-valor.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrNoValue
		}
		return "", err
	}
	return value, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	// Sin expiración: las instantáneas viven hasta la siguiente escritura.
	return s.client.Set(ctx, key, value, 0).Err()
}
