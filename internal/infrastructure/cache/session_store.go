package cache

import (
	"context"
	"fmt"
	"time"

	domainRepo "go-clinic-management/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session"

type sessionStore struct {
	client *redis.Client
}

// NewSessionStore keeps one Redis key per issued session token
func NewSessionStore(client *redis.Client) domainRepo.SessionRepository {
	return &sessionStore{client: client}
}

func sessionKey(userID int, tokenID string) string {
	return fmt.Sprintf("%s:%d:%s", sessionKeyPrefix, userID, tokenID)
}

// Save records the token. A zero ttl keeps the key until it is deleted.
func (s *sessionStore) Save(ctx context.Context, userID int, tokenID string, ttl time.Duration) error {
	return s.client.Set(ctx, sessionKey(userID, tokenID), "valid", ttl).Err()
}

func (s *sessionStore) Exists(ctx context.Context, userID int, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, sessionKey(userID, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *sessionStore) Delete(ctx context.Context, userID int, tokenID string) error {
	return s.client.Del(ctx, sessionKey(userID, tokenID)).Err()
}
