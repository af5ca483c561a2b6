package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/landsetu/landsetu/internal/repository"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

type sessionRepository struct {
	client *redis.Client
}

func NewSessionRepository(client *redis.Client) repository.SessionRepository {
	return &sessionRepository{client: client}
}

func sessionKey(userID string) string {
	return sessionKeyPrefix + userID
}

func (r *sessionRepository) Set(ctx context.Context, userID, token string, ttl time.Duration) error {
	if err := r.client.Set(ctx, sessionKey(userID), token, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache session token for user %s: %w", userID, err)
	}
	return nil
}

func (r *sessionRepository) Get(ctx context.Context, userID string) (string, error) {
	token, err := r.client.Get(ctx, sessionKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", repository.ErrNotFound
		}
		return "", fmt.Errorf("failed to get session token for user %s: %w", userID, err)
	}
	return token, nil
}

func (r *sessionRepository) Delete(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate session for user %s: %w", userID, err)
	}
	return nil
}
