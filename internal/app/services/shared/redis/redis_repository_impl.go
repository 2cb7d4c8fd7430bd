package redis

import (
	"context"

	"platform-client/internal/app/contracts"
	"platform-client/internal/pkg/exceptions"

	"github.com/redis/go-redis/v9"
)

type redisTokenStorage struct {
	client *redis.Client
}

// NewRedisTokenStorage persists bearer credentials in redis so a session can
// be restored across process restarts. Tokens are stored without expiry; the
// platform decides when they stop being honored.
func NewRedisTokenStorage(client *redis.Client) contracts.TokenStorage {
	return &redisTokenStorage{client: client}
}

func (r *redisTokenStorage) GetToken(ctx context.Context, key string) (string, error) {
	token, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	} else if err != nil {
		return "", exceptions.ErrTokenStorageGet(err, key)
	}
	return token, nil
}

func (r *redisTokenStorage) SetToken(ctx context.Context, key, token string) error {
	err := r.client.Set(ctx, key, token, 0).Err()
	if err != nil {
		return exceptions.ErrTokenStorageSet(err, key)
	}
	return nil
}

func (r *redisTokenStorage) DeleteToken(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		return exceptions.ErrTokenStorageDelete(err, key)
	}
	return nil
}
