package interfaces

import (
	"context"
	"errors"
)

// ErrLockHeld is returned by ILocker.WithLock when another process holds key.
var ErrLockHeld = errors.New("lock is held by another process")

// ILocker serializes work across processes.
type ILocker interface {
	// WithLock runs fn while holding key. fn is not called when the lock is
	// taken; ErrLockHeld is returned instead.
	WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error
}
