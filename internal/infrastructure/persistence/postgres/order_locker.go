package postgres

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/DanielPopoola/webpay-gateway/internal/application"
)

const unlockTimeout = 5 * time.Second

// AdvisoryLocker serializes callbacks for one buy order across every
// gateway instance sharing the database. Each held lock pins a pooled
// connection because session advisory locks belong to the connection.
type AdvisoryLocker struct {
	db *DB
}

func NewAdvisoryLocker(db *DB) *AdvisoryLocker {
	return &AdvisoryLocker{db: db}
}

var _ application.OrderLocker = (*AdvisoryLocker)(nil)

func (l *AdvisoryLocker) Lock(ctx context.Context, key string) (func(), error) {
	conn, err := l.db.Pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection for order lock: %w", err)
	}

	if _, err := conn.Exec(ctx, `SELECT pg_advisory_lock(hashtextextended($1, 0))`, key); err != nil {
		conn.Release()
		return nil, fmt.Errorf("acquire order lock: %w", err)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			unlockCtx, cancel := context.WithTimeout(context.Background(), unlockTimeout)
			defer cancel()

			if _, err := conn.Exec(unlockCtx, `SELECT pg_advisory_unlock(hashtextextended($1, 0))`, key); err != nil {
				// Closing the session is the only other way to drop the lock.
				l.db.logger.Error("failed to release order lock, discarding connection", "error", err)
				_ = conn.Hijack().Close(unlockCtx)
				return
			}
			conn.Release()
		})
	}, nil
}
