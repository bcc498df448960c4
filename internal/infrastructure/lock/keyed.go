// Package lock provides an in-process OrderLocker for deployments that run
// a single gateway instance against the embedded store.
package lock

import (
	"context"
	"sync"

	"github.com/DanielPopoola/webpay-gateway/internal/application"
	"golang.org/x/sync/semaphore"
)

type entry struct {
	sem  *semaphore.Weighted
	refs int
}

// KeyedLocker hands out one weighted semaphore per key and drops it once
// no caller holds or waits for it.
type KeyedLocker struct {
	mu      sync.Mutex
	entries map[string]*entry
}

func NewKeyedLocker() *KeyedLocker {
	return &KeyedLocker{entries: make(map[string]*entry)}
}

var _ application.OrderLocker = (*KeyedLocker)(nil)

func (l *KeyedLocker) Lock(ctx context.Context, key string) (func(), error) {
	e := l.acquireEntry(key)

	if err := e.sem.Acquire(ctx, 1); err != nil {
		l.releaseEntry(key, e)
		return nil, err
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			e.sem.Release(1)
			l.releaseEntry(key, e)
		})
	}, nil
}

// Len reports how many keys are currently tracked.
func (l *KeyedLocker) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func (l *KeyedLocker) acquireEntry(key string) *entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]
	if !ok {
		e = &entry{sem: semaphore.NewWeighted(1)}
		l.entries[key] = e
	}
	e.refs++
	return e
}

func (l *KeyedLocker) releaseEntry(key string, e *entry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e.refs--
	if e.refs == 0 {
		delete(l.entries, key)
	}
}
