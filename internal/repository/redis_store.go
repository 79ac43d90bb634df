package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type redisDocument struct {
	client *redis.Client
	key    string
}

func NewRedisOverrideStore(client *redis.Client, key string) *DocumentOverrideStore {
	return &DocumentOverrideStore{backend: &redisDocument{client: client, key: key}}
}

func (r *redisDocument) Read(ctx context.Context) ([]byte, bool, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", r.key, err)
	}
	return data, true, nil
}

func (r *redisDocument) Write(ctx context.Context, data []byte) error {
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", r.key, err)
	}
	return nil
}
