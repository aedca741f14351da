package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/expensio/expense-tracker/internal/logger"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RefreshTokenRepository tracks issued refresh tokens in Redis.
// A token is honored on refresh only while its jti key exists; the TTL
// matches the token lifetime, so revocation is a key deletion away.
type RefreshTokenRepository struct {
	client *redis.Client
	exp    time.Duration // expiration for stored tokens
}

// NewRefreshTokenRepository creates a new repository instance with the given TTL.
func NewRefreshTokenRepository(client *redis.Client, expiration time.Duration) *RefreshTokenRepository {
	return &RefreshTokenRepository{
		client: client,
		exp:    expiration,
	}
}

func refreshTokenKey(jti string) string {
	return fmt.Sprintf("refresh_token:%s", jti)
}

// Save records an issued refresh token under its jti.
func (r *RefreshTokenRepository) Save(ctx context.Context, jti string, userID uuid.UUID) error {
	key := refreshTokenKey(jti)
	err := r.client.Set(ctx, key, userID.String(), r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"user_id", userID,
		"error", err,
	)

	return err
}

// Exists reports whether the refresh token with the given jti is still honored.
func (r *RefreshTokenRepository) Exists(ctx context.Context, jti string) (bool, error) {
	key := refreshTokenKey(jti)

	_, err := r.client.Get(ctx, key).Result()

	logger.Log.Infow(
		"key", key,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Delete revokes a refresh token.
func (r *RefreshTokenRepository) Delete(ctx context.Context, jti string) error {
	key := refreshTokenKey(jti)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"error", err,
	)

	return err
}
