package bot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// RedisSessionStore keeps sessions in Redis so that wizard progress survives
// bot restarts and can be shared between instances.
type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(addr string) *RedisSessionStore {
	return &RedisSessionStore{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func sessionKey(userID int64) string {
	return fmt.Sprintf("wizard:session:%d", userID)
}

func (r *RedisSessionStore) Get(ctx context.Context, userID int64) (*Session, error) {
	payload, err := r.client.Get(ctx, sessionKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var s Session
	if err := json.Unmarshal([]byte(payload), &s); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}

	return &s, nil
}

func (r *RedisSessionStore) Put(ctx context.Context, userID int64, s *Session) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := r.client.Set(ctx, sessionKey(userID), payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	return nil
}

func (r *RedisSessionStore) Remove(ctx context.Context, userID int64) error {
	if err := r.client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to remove session: %w", err)
	}

	return nil
}
