package scan

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrScanLocked is returned when another scan already holds the lock.
var ErrScanLocked = errors.New("another scan is already running")

// Lock takes an exclusive, non-blocking lock on path. The caller releases it
// with Unlock.
func Lock(path string) (*flock.Flock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}
	lock := flock.New(path)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire scan lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w (lock file %s)", ErrScanLocked, path)
	}
	return lock, nil
}
