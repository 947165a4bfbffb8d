package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const refreshPrefix = "refresh:"

// TokenStore is the allow-list of live refresh tokens, keyed by jti. A jti
// missing from the store is treated as revoked regardless of its signature.
type TokenStore interface {
	GuardarRefresh(ctx context.Context, jti, usuarioID string, ttl time.Duration) error
	ValidarRefresh(ctx context.Context, jti string) (string, error)
	RevocarRefresh(ctx context.Context, jti string) error
}

type redisTokenStore struct {
	rdb *redis.Client
}

func NewTokenStore(rdb *redis.Client) TokenStore {
	return &redisTokenStore{rdb: rdb}
}

func (s *redisTokenStore) GuardarRefresh(ctx context.Context, jti, usuarioID string, ttl time.Duration) error {
	return s.rdb.Set(ctx, refreshPrefix+jti, usuarioID, ttl).Err()
}

// ValidarRefresh returns the usuario id the jti was issued for, or
// redis.Nil when the token was revoked or expired.
func (s *redisTokenStore) ValidarRefresh(ctx context.Context, jti string) (string, error) {
	return s.rdb.Get(ctx, refreshPrefix+jti).Result()
}

func (s *redisTokenStore) RevocarRefresh(ctx context.Context, jti string) error {
	return s.rdb.Del(ctx, refreshPrefix+jti).Err()
}
