package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/cyberhouse-gh/cyberhouse-portal/internal/auth/domain"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/failure"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/logging"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/session/repository"
)

type TokenRefresher interface {
	Refresh(ctx context.Context, refreshToken string) (*domain.Credentials, error)
}

// Refresher renews ID tokens that are about to expire. A rejected refresh
// token signs the session out.
type Refresher struct {
	repo   *repository.SessionRepository
	tokens TokenRefresher
	window time.Duration
	log    *logging.Logger
	now    func() time.Time
}

func NewRefresher(repo *repository.SessionRepository, tokens TokenRefresher, window time.Duration, log *logging.Logger) *Refresher {
	if window <= 0 {
		window = 5 * time.Minute
	}
	return &Refresher{
		repo:   repo,
		tokens: tokens,
		window: window,
		log:    log.Component("session-refresher"),
		now:    time.Now,
	}
}

type RefreshStats struct {
	Refreshed int
	Cleared   int
	Skipped   int
}

func (r *Refresher) RunOnce(ctx context.Context) (RefreshStats, error) {
	var stats RefreshStats

	ids, err := r.repo.ExpiringBefore(ctx, r.now().Add(r.window))
	if err != nil {
		return stats, err
	}

	for _, sid := range ids {
		creds, err := r.repo.Get(ctx, sid)
		if errors.Is(err, domain.ErrSessionNotFound) {
			_ = r.repo.Forget(ctx, sid)
			stats.Skipped++
			continue
		}
		if err != nil {
			return stats, err
		}

		fresh, err := r.tokens.Refresh(ctx, creds.RefreshToken)
		if err != nil {
			if signsOut(err) {
				if derr := r.repo.Delete(ctx, sid); derr != nil {
					return stats, fmt.Errorf("clear session after refresh failure: %w", derr)
				}
				stats.Cleared++
				continue
			}
			r.log.LogWarn("refresh_token", err)
			stats.Skipped++
			continue
		}

		creds.IDToken = fresh.IDToken
		creds.ExpiresAt = fresh.ExpiresAt
		if fresh.RefreshToken != "" {
			creds.RefreshToken = fresh.RefreshToken
		}
		if err := r.repo.Save(ctx, sid, *creds); err != nil {
			return stats, err
		}
		stats.Refreshed++
	}

	return stats, nil
}

func signsOut(err error) bool {
	switch failure.From(err).Kind {
	case failure.KindUnauthenticated, failure.KindUserDisabled, failure.KindUserNotFound:
		return true
	default:
		return false
	}
}

// Schedule registers RunOnce on a cron spec. The caller starts and stops
// the returned scheduler.
func (r *Refresher) Schedule(spec string) (*cron.Cron, error) {
	c := cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))

	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		stats, err := r.RunOnce(ctx)
		if err != nil {
			r.log.LogError("refresh_sessions", err)
			return
		}
		if stats.Refreshed+stats.Cleared > 0 {
			r.log.LogInfof("refresh_sessions", "refreshed=%d cleared=%d skipped=%d", stats.Refreshed, stats.Cleared, stats.Skipped)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("schedule session refresher: %w", err)
	}
	return c, nil
}
