package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyberhouse-gh/cyberhouse-portal/internal/auth/domain"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/logging"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/session/repository"
)

func setupTestRedis(t *testing.T) *repository.SessionRepository {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return repository.NewSessionRepository(client, time.Hour)
}

func nextEvent(t *testing.T, ch <-chan domain.AuthEvent) domain.AuthEvent {
	t.Helper()
	select {
	case ev, ok := <-ch:
		require.True(t, ok, "subscription closed")
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("no auth event")
		return domain.AuthEvent{}
	}
}

func TestSource_FirstPushIsStoredState(t *testing.T) {
	repo := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "sid-1", domain.Credentials{
		Identity:  domain.Identity{UID: "uid-1"},
		IDToken:   "t",
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	src := NewSource(repo, logging.Nop())
	sub, err := src.Subscribe(ctx, "sid-1")
	require.NoError(t, err)
	defer sub.Stop()

	ev := nextEvent(t, sub.Updates())
	require.NotNil(t, ev.Identity)
	assert.Equal(t, "uid-1", ev.Identity.UID)
}

func TestSource_ForwardsPublishedPushes(t *testing.T) {
	repo := setupTestRedis(t)
	ctx := context.Background()

	src := NewSource(repo, logging.Nop())
	sub, err := src.Subscribe(ctx, "sid-2")
	require.NoError(t, err)
	defer sub.Stop()

	first := nextEvent(t, sub.Updates())
	assert.Nil(t, first.Identity)

	require.NoError(t, repo.Save(ctx, "sid-2", domain.Credentials{
		Identity:  domain.Identity{UID: "uid-2"},
		ExpiresAt: time.Now().Add(time.Hour),
	}))
	signed := nextEvent(t, sub.Updates())
	require.NotNil(t, signed.Identity)
	assert.Equal(t, "uid-2", signed.Identity.UID)

	require.NoError(t, repo.Delete(ctx, "sid-2"))
	out := nextEvent(t, sub.Updates())
	assert.Nil(t, out.Identity)
}

func TestSource_DrivesStore(t *testing.T) {
	repo := setupTestRedis(t)
	ctx := context.Background()

	store := NewStore()
	defer store.Close()
	require.NoError(t, store.Start(ctx, NewSource(repo, logging.Nop()), "sid-3"))

	snap, err := store.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, StateAnonymous, snap.State)

	require.NoError(t, repo.Save(ctx, "sid-3", domain.Credentials{
		Identity:  domain.Identity{UID: "uid-3"},
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	require.Eventually(t, func() bool {
		return store.Snapshot().Authenticated()
	}, 2*time.Second, 10*time.Millisecond)
}
