package lock

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sys/unix"
)

const (
	retryInterval = 10 * time.Millisecond
	acquireBudget = 100 * time.Millisecond
)

// Handle is an exclusively held advisory lock on a well-known path.
// The kernel drops a flock when its descriptor closes, so even a
// killed process cannot leave the lock held.
type Handle struct {
	f *os.File
}

// Path returns the lock file location for the named program.
// The file is created on first use and never deleted.
func Path(program string) string {
	return filepath.Join(os.TempDir(), program+".lock")
}

// Acquire opens (creating if absent) the lock file for program and
// takes an exclusive non-blocking flock on it, retrying for up to
// 100ms. A second overlapping invocation fails fast instead of
// interleaving its mutations with ours.
func Acquire(program string) (*Handle, error) {
	path := Path(program)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file %s: %w", path, err)
	}

	deadline := time.Now().Add(acquireBudget)
	for {
		err = unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB)
		if err == nil {
			return &Handle{f: f}, nil
		}
		if err != unix.EWOULDBLOCK {
			f.Close()
			return nil, fmt.Errorf("failed to lock %s: %w", path, err)
		}
		if time.Now().After(deadline) {
			f.Close()
			return nil, fmt.Errorf("could not lock %s: another instance is likely running", path)
		}
		time.Sleep(retryInterval)
	}
}

// Release drops the lock. Calling it on a nil or already released
// handle is a no-op; closing the descriptor releases the flock even
// when the explicit unlock fails.
func (h *Handle) Release() {
	if h == nil || h.f == nil {
		return
	}
	_ = unix.Flock(int(h.f.Fd()), unix.LOCK_UN)
	h.f.Close()
	h.f = nil
}
