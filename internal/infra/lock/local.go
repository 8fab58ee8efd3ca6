package lock

import (
	"context"
	"sync"

	domain "github.com/Math-l7/scheduling-modular-api/internal/domain/appointment"
)

// Local serializes per staff inside one process. Entries are reference
// counted and dropped when no goroutine holds or waits for them.
type Local struct {
	mu    sync.Mutex
	locks map[uint]*localEntry
}

type localEntry struct {
	ch   chan struct{}
	refs int
}

func NewLocal() *Local {
	return &Local{locks: make(map[uint]*localEntry)}
}

func (l *Local) WithStaffLock(ctx context.Context, staffID uint, fn func(ctx context.Context) error) error {
	e := l.ref(staffID)
	defer l.unref(staffID)

	select {
	case e.ch <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-e.ch }()

	return fn(ctx)
}

func (l *Local) ref(staffID uint) *localEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.locks[staffID]
	if !ok {
		e = &localEntry{ch: make(chan struct{}, 1)}
		l.locks[staffID] = e
	}
	e.refs++
	return e
}

func (l *Local) unref(staffID uint) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e := l.locks[staffID]
	e.refs--
	if e.refs == 0 {
		delete(l.locks, staffID)
	}
}

func (l *Local) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}

var _ domain.StaffLocker = (*Local)(nil)
