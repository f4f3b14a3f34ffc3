package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

const lockRetryDelay = 100 * time.Millisecond

// Lock is an advisory lock guarding one store file.
type Lock struct {
	path string
	lock *flock.Flock
}

// LockPath returns the lock file used for the store at storePath.
func LockPath(storePath string) string {
	return storePath + ".lock"
}

// Acquire blocks until the lock for storePath is held or ctx is done.
func Acquire(ctx context.Context, storePath string) (*Lock, error) {
	lockPath := LockPath(storePath)
	if err := os.MkdirAll(filepath.Dir(lockPath), 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	fl := flock.New(lockPath)
	ok, err := fl.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", lockPath, err)
	}
	if !ok {
		return nil, fmt.Errorf("acquire lock %s: held by another process", lockPath)
	}
	return &Lock{path: lockPath, lock: fl}, nil
}

// Path returns the lock file path.
func (l *Lock) Path() string {
	return l.path
}

// Release drops the lock. It is safe to call on a nil Lock.
func (l *Lock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	if err := l.lock.Unlock(); err != nil {
		return fmt.Errorf("release lock %s: %w", l.path, err)
	}
	return nil
}
