package redis

import (
	"context"
	"errors"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ErrKeyNotFound is returned when a key or session does not exist or has expired.
var ErrKeyNotFound = errors.New("redis: key not found")

// Repository defines methods for interacting with Redis key-values
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (uint64, error)
	DeleteSession(ctx context.Context, sessionID string) error
	PushNotification(ctx context.Context, userIDs []uint64, payload string, maxLen int64) error
	ListNotifications(ctx context.Context, userID uint64, limit int64) ([]string, error)
}

type redis struct {
	client *goredis.Client
}

// NewRepository returns a Redis Repository implementation
func NewRepository(client *goredis.Client) Repository {
	return &redis{client: client}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

func notificationKey(userID uint64) string {
	return "notifications:" + strconv.FormatUint(userID, 10)
}

// Get retrieves a value by key from Redis
func (r *redis) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// SetWithTTL stores a key/value pair with time-to-live
func (r *redis) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

// Delete removes a key from Redis
func (r *redis) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// SetSession stores a session with userID and TTL
func (r *redis) SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error {
	return r.client.Set(ctx, sessionKey(sessionID), userID, ttl).Err()
}

// GetSession retrieves userID from session
func (r *redis) GetSession(ctx context.Context, sessionID string) (uint64, error) {
	val, err := r.client.Get(ctx, sessionKey(sessionID)).Uint64()
	if errors.Is(err, goredis.Nil) {
		return 0, ErrKeyNotFound
	}
	if err != nil {
		return 0, err
	}
	return val, nil
}

// DeleteSession removes a session from Redis
func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, sessionKey(sessionID)).Err()
}

// PushNotification prepends payload to every user's feed and trims each feed to
// maxLen entries. All feeds are written in one MULTI/EXEC.
func (r *redis) PushNotification(ctx context.Context, userIDs []uint64, payload string, maxLen int64) error {
	if len(userIDs) == 0 {
		return nil
	}
	_, err := r.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		for _, userID := range userIDs {
			key := notificationKey(userID)
			pipe.LPush(ctx, key, payload)
			if maxLen > 0 {
				pipe.LTrim(ctx, key, 0, maxLen-1)
			}
		}
		return nil
	})
	return err
}

// ListNotifications returns up to limit entries, newest first.
func (r *redis) ListNotifications(ctx context.Context, userID uint64, limit int64) ([]string, error) {
	if limit <= 0 {
		return []string{}, nil
	}
	return r.client.LRange(ctx, notificationKey(userID), 0, limit-1).Result()
}
