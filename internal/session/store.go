// Package session mirrors the hosted platform's auth state for one browser
// session and exposes it to views and API handlers.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/cyberhouse-gh/cyberhouse-portal/internal/auth/domain"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/subscription"
)

type State int

const (
	StateUnresolved State = iota
	StateAnonymous
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unresolved"
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Snapshot is a read-only copy of the store's state.
type Snapshot struct {
	State    State            `json:"state"`
	Identity *domain.Identity `json:"identity,omitempty"`
	Err      string           `json:"error,omitempty"`
}

func (s Snapshot) Resolved() bool {
	return s.State != StateUnresolved
}

func (s Snapshot) Authenticated() bool {
	return s.State == StateAuthenticated && s.Identity != nil
}

var ErrAlreadyStarted = errors.New("session store already started")

// Store is written only by its push goroutine. It starts Unresolved and
// resolves exactly once, on the first push or on a channel error.
type Store struct {
	mu       sync.RWMutex
	snap     Snapshot
	resolved bool
	started  bool
	sub      *subscription.Subscription[domain.AuthEvent]

	resolvedCh chan struct{}
	changes    chan Snapshot
	done       chan struct{}
	closeOnce  sync.Once
}

func NewStore() *Store {
	return &Store{
		resolvedCh: make(chan struct{}),
		changes:    make(chan Snapshot, 1),
		done:       make(chan struct{}),
	}
}

// Start subscribes once to the session's auth-state channel.
func (s *Store) Start(ctx context.Context, src Subscriber, sid string) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return ErrAlreadyStarted
	}
	s.started = true
	s.mu.Unlock()

	sub, err := src.Subscribe(ctx, sid)
	if err != nil {
		s.fail(err)
		close(s.done)
		return err
	}

	s.mu.Lock()
	s.sub = sub
	s.mu.Unlock()

	go s.run(sub)
	return nil
}

func (s *Store) run(sub *subscription.Subscription[domain.AuthEvent]) {
	defer close(s.done)

	updates := sub.Updates()
	errs := sub.Err()
	for {
		select {
		case ev, ok := <-updates:
			if !ok {
				select {
				case err := <-errs:
					s.fail(err)
				default:
				}
				return
			}
			s.apply(ev)
		case err := <-errs:
			s.fail(err)
			errs = nil
		}
	}
}

func (s *Store) apply(ev domain.AuthEvent) {
	s.mu.Lock()
	switch {
	case ev.Identity == nil:
		s.snap = Snapshot{State: StateAnonymous}
	case ev.Identity.Anonymous:
		identity := *ev.Identity
		s.snap = Snapshot{State: StateAnonymous, Identity: &identity}
	default:
		identity := *ev.Identity
		s.snap = Snapshot{State: StateAuthenticated, Identity: &identity}
	}
	first := s.markResolved()
	snap := s.snap
	s.mu.Unlock()

	s.publish(snap, first)
}

func (s *Store) fail(err error) {
	s.mu.Lock()
	s.snap.Err = err.Error()
	if !s.resolved {
		s.snap.State = StateAnonymous
		s.snap.Identity = nil
	}
	first := s.markResolved()
	snap := s.snap
	s.mu.Unlock()

	s.publish(snap, first)
}

// markResolved must be called with mu held.
func (s *Store) markResolved() bool {
	if s.resolved {
		return false
	}
	s.resolved = true
	return true
}

func (s *Store) publish(snap Snapshot, first bool) {
	if first {
		close(s.resolvedCh)
	}
	select {
	case s.changes <- snap:
	default:
		// keep only the latest snapshot
		select {
		case <-s.changes:
		default:
		}
		select {
		case s.changes <- snap:
		default:
		}
	}
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := s.snap
	if snap.Identity != nil {
		identity := *snap.Identity
		snap.Identity = &identity
	}
	return snap
}

// Resolved is closed once the first push (or a channel error) arrives.
func (s *Store) Resolved() <-chan struct{} {
	return s.resolvedCh
}

// Changes delivers the latest snapshot after each push. Intermediate
// snapshots may be coalesced.
func (s *Store) Changes() <-chan Snapshot {
	return s.changes
}

// Wait blocks until the store resolves or ctx ends.
func (s *Store) Wait(ctx context.Context) (Snapshot, error) {
	select {
	case <-s.resolvedCh:
		return s.Snapshot(), nil
	case <-ctx.Done():
		return s.Snapshot(), ctx.Err()
	}
}

// Close releases the subscription and waits for the push goroutine.
func (s *Store) Close() {
	s.closeOnce.Do(func() {
		s.mu.RLock()
		sub, started := s.sub, s.started
		s.mu.RUnlock()

		if sub != nil {
			sub.Stop()
		}
		if started {
			<-s.done
		}
	})
}
