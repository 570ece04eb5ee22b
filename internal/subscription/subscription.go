// Package subscription provides a cancellable stream of pushed values owned
// by whoever started it.
package subscription

import (
	"context"
	"errors"
	"sync"
)

// Subscription delivers values produced by a background goroutine until
// Stop is called, its parent context ends or the producer returns.
type Subscription[T any] struct {
	updates chan T
	errs    chan error
	done    chan struct{}
	cancel  context.CancelFunc
	once    sync.Once
}

// Emit hands one value to the subscriber. It returns false once the
// subscription has been stopped.
type Emit[T any] func(T) bool

// Start runs produce in its own goroutine. A non-nil error returned by
// produce, other than cancellation, is delivered once on Err.
func Start[T any](ctx context.Context, produce func(ctx context.Context, emit Emit[T]) error) *Subscription[T] {
	ctx, cancel := context.WithCancel(ctx)
	s := &Subscription[T]{
		updates: make(chan T),
		errs:    make(chan error, 1),
		done:    make(chan struct{}),
		cancel:  cancel,
	}

	emit := func(v T) bool {
		select {
		case s.updates <- v:
			return true
		case <-ctx.Done():
			return false
		}
	}

	go func() {
		defer close(s.done)
		defer close(s.updates)
		err := produce(ctx, emit)
		if err != nil && !errors.Is(err, context.Canceled) && ctx.Err() == nil {
			s.errs <- err
		}
	}()

	return s
}

// Updates is closed when the producer exits.
func (s *Subscription[T]) Updates() <-chan T {
	return s.updates
}

func (s *Subscription[T]) Err() <-chan error {
	return s.errs
}

func (s *Subscription[T]) Done() <-chan struct{} {
	return s.done
}

// Stop cancels the producer and waits for it to exit. Safe to call more
// than once.
func (s *Subscription[T]) Stop() {
	s.once.Do(s.cancel)
	<-s.done
}
