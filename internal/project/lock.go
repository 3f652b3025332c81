package project

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"

	"cutline/internal/config"
)

// SessionLock serializes compute+apply+save cycles against one project
// database. The ripple engine offers no transactional guarantee spanning
// compute and apply, so the command layer holds this lock across both steps.
type SessionLock struct {
	path string
	lock *flock.Flock
}

// NewSessionLock builds a lock rooted in the configured data directory.
func NewSessionLock(cfg *config.Config) *SessionLock {
	path := filepath.Join(cfg.Paths.DataDir, "cutline.lock")
	return &SessionLock{path: path, lock: flock.New(path)}
}

// Acquire takes the lock, failing fast when another editing session holds it.
func (l *SessionLock) Acquire() error {
	ok, err := l.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire session lock: %w", err)
	}
	if !ok {
		return errors.New("another cutline session is editing this project")
	}
	return nil
}

// Release drops the lock. Safe to call when the lock was never acquired.
func (l *SessionLock) Release() error {
	return l.lock.Unlock()
}

// Path returns the lock file location.
func (l *SessionLock) Path() string {
	return l.path
}
