package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cyberhouse-gh/cyberhouse-portal/internal/auth/domain"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/logging"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/session/repository"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/subscription"
)

var errChannelClosed = errors.New("auth-state channel closed")

// Subscriber opens the auth-state push channel of one browser session.
type Subscriber interface {
	Subscribe(ctx context.Context, sid string) (*subscription.Subscription[domain.AuthEvent], error)
}

// Source is the Redis-backed auth-state channel.
type Source struct {
	repo *repository.SessionRepository
	log  *logging.Logger
}

func NewSource(repo *repository.SessionRepository, log *logging.Logger) *Source {
	return &Source{repo: repo, log: log.Component("session-source")}
}

// Subscribe listens on the session channel first, then pushes the stored
// state, then forwards every published push.
func (s *Source) Subscribe(ctx context.Context, sid string) (*subscription.Subscription[domain.AuthEvent], error) {
	ps := s.repo.Subscribe(ctx, sid)
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, fmt.Errorf("subscribe auth channel: %w", err)
	}

	return subscription.Start(ctx, func(ctx context.Context, emit subscription.Emit[domain.AuthEvent]) error {
		defer ps.Close()

		var first domain.AuthEvent
		creds, err := s.repo.Get(ctx, sid)
		switch {
		case err == nil:
			identity := creds.Identity
			first.Identity = &identity
		case errors.Is(err, domain.ErrSessionNotFound):
		default:
			return err
		}
		if !emit(first) {
			return nil
		}

		messages := ps.Channel()
		for {
			select {
			case <-ctx.Done():
				return nil
			case msg, ok := <-messages:
				if !ok {
					return errChannelClosed
				}
				var ev domain.AuthEvent
				if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
					s.log.FromContext(ctx).LogWarn("decode_auth_event", err)
					continue
				}
				if !emit(ev) {
					return nil
				}
			}
		}
	}), nil
}
