package repository

import (
	"context"
	"time"
)

// SessionRepository keeps track of issued session tokens so they can be revoked on logout.
type SessionRepository interface {
	Save(ctx context.Context, userID int, tokenID string, ttl time.Duration) error
	Exists(ctx context.Context, userID int, tokenID string) (bool, error)
	Delete(ctx context.Context, userID int, tokenID string) error
}
