package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another session holds the store lock.
var ErrLocked = errors.New("library is in use by another bookshelf session")

// Lock is an advisory lock guarding one store path.
type Lock struct {
	path string
	fl   *flock.Flock
}

// LockPath returns the lock file used for storePath.
func LockPath(storePath string) string {
	return storePath + ".lock"
}

// AcquireLock takes the lock for storePath without blocking.
func AcquireLock(storePath string) (*Lock, error) {
	lockPath := LockPath(storePath)
	if err := os.MkdirAll(filepath.Dir(lockPath), 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	fl := flock.New(lockPath)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w (lock file %s)", ErrLocked, lockPath)
	}
	return &Lock{path: lockPath, fl: fl}, nil
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	return l.path
}

// Release unlocks. It is safe to call on a nil Lock.
func (l *Lock) Release() error {
	if l == nil || l.fl == nil {
		return nil
	}
	return l.fl.Unlock()
}
