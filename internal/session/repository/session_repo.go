package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cyberhouse-gh/cyberhouse-portal/internal/auth/domain"
)

const (
	sessionKeyPrefix   = "portal:session:" // credentials for a browser session: portal:session:{sid}
	expiryIndexKey     = "portal:session-expiry"
	eventChannelPrefix = "portal:auth:" // auth-state pushes: portal:auth:{sid}
	DefaultTTL         = 30 * 24 * time.Hour
)

// SessionRepository keeps platform credentials per browser session in Redis
// and publishes an auth-state push on every change.
type SessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionRepository(client *redis.Client, ttl time.Duration) *SessionRepository {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &SessionRepository{client: client, ttl: ttl}
}

// Save stores the credentials and publishes the identity to subscribers.
func (r *SessionRepository) Save(ctx context.Context, sid string, creds domain.Credentials) error {
	data, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}

	identity := creds.Identity
	event, err := json.Marshal(domain.AuthEvent{Identity: &identity})
	if err != nil {
		return fmt.Errorf("failed to marshal auth event: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.sessionKey(sid), data, r.ttl)
	pipe.ZAdd(ctx, expiryIndexKey, redis.Z{Score: float64(creds.ExpiresAt.Unix()), Member: sid})
	pipe.Publish(ctx, r.channel(sid), event)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Get(ctx context.Context, sid string) (*domain.Credentials, error) {
	data, err := r.client.Get(ctx, r.sessionKey(sid)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var creds domain.Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &creds, nil
}

// Delete clears the session and publishes a signed-out push.
func (r *SessionRepository) Delete(ctx context.Context, sid string) error {
	event, err := json.Marshal(domain.AuthEvent{})
	if err != nil {
		return fmt.Errorf("failed to marshal auth event: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.sessionKey(sid))
	pipe.ZRem(ctx, expiryIndexKey, sid)
	pipe.Publish(ctx, r.channel(sid), event)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Forget drops a session id from the expiry index without publishing.
func (r *SessionRepository) Forget(ctx context.Context, sid string) error {
	if err := r.client.ZRem(ctx, expiryIndexKey, sid).Err(); err != nil {
		return fmt.Errorf("failed to forget session: %w", err)
	}
	return nil
}

// ExpiringBefore lists session ids whose ID token expires at or before t.
func (r *SessionRepository) ExpiringBefore(ctx context.Context, t time.Time) ([]string, error) {
	ids, err := r.client.ZRangeByScore(ctx, expiryIndexKey, &redis.ZRangeBy{
		Min: "-inf",
		Max: strconv.FormatInt(t.Unix(), 10),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list expiring sessions: %w", err)
	}
	return ids, nil
}

// Subscribe opens the auth-state channel for sid. Callers own the PubSub.
func (r *SessionRepository) Subscribe(ctx context.Context, sid string) *redis.PubSub {
	return r.client.Subscribe(ctx, r.channel(sid))
}

func (r *SessionRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *SessionRepository) sessionKey(sid string) string {
	return sessionKeyPrefix + sid
}

func (r *SessionRepository) channel(sid string) string {
	return eventChannelPrefix + sid
}
