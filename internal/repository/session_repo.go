package repository

import (
	"context"
	"time"
)

// SessionRepository stores the active session token per user. A token that
// does not match the cached one is rejected, which makes logout take effect
// immediately even though the JWT itself is still unexpired.
type SessionRepository interface {
	Set(ctx context.Context, userID, token string, ttl time.Duration) error
	Get(ctx context.Context, userID string) (string, error)
	Delete(ctx context.Context, userID string) error
}
