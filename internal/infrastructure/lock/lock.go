package lock

import (
	"context"
	"fmt"
	"sync"

	appErrors "interview-scheduler/internal/pkg/errors"
)

// Locker serialises changes per key. Lock blocks until the key is free or
// ctx is done, in which case it returns apperrors.ErrCandidateBusy.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

// Local is a process-local keyed mutex.
type Local struct {
	mu   sync.Mutex
	held map[string]chan struct{}
}

// NewLocal creates a process-local Locker.
func NewLocal() *Local {
	return &Local{held: make(map[string]chan struct{})}
}

func (l *Local) Lock(ctx context.Context, key string) (func(), error) {
	for {
		l.mu.Lock()
		ch, busy := l.held[key]
		if !busy {
			ch = make(chan struct{})
			l.held[key] = ch
			l.mu.Unlock()
			var once sync.Once
			return func() {
				once.Do(func() {
					l.mu.Lock()
					delete(l.held, key)
					l.mu.Unlock()
					close(ch)
				})
			}, nil
		}
		l.mu.Unlock()

		select {
		case <-ch:
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", appErrors.ErrCandidateBusy, ctx.Err())
		}
	}
}
