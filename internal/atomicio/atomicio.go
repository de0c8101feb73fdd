// Package atomicio implements repoctl's write-once guarantee: every file
// this system touches is replaced via a lock -> temp file -> fsync ->
// rename sequence, so a reader never observes a partial write and a
// crash never leaves a half-written target.
package atomicio

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"github.com/wgergely/repoctl/internal/constants"
	"github.com/wgergely/repoctl/internal/rerrors"
)

// Config controls how Write behaves.
type Config struct {
	// LockTimeout bounds how long Write waits to acquire the companion
	// lock before failing with rerrors.KindLock. Zero means use
	// DefaultLockTimeout.
	LockTimeout time.Duration
	// EnableFsync forces the temp file to be fsynced before rename.
	EnableFsync bool
}

// DefaultLockTimeout is used when Config.LockTimeout is zero.
const DefaultLockTimeout = 10 * time.Second

// DefaultConfig returns the configuration repoctl uses unless a caller
// overrides it: a bounded lock wait and fsync enabled, since most writes
// here are small configuration files where durability matters more than
// raw throughput.
func DefaultConfig() Config {
	return Config{LockTimeout: DefaultLockTimeout, EnableFsync: true}
}

// Write replaces path's contents with data. Either the target ends up
// with exactly data, or the previous bytes are left untouched.
func Write(path string, data []byte, cfg Config) error {
	if cfg.LockTimeout <= 0 {
		cfg.LockTimeout = DefaultLockTimeout
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return rerrors.WithPath(rerrors.KindIO, "failed to create parent directories", dir, err)
	}

	lockPath := path + constants.LockFileSuffix
	fl := flock.New(lockPath)

	locked, err := tryLockWithTimeout(fl, cfg.LockTimeout)
	if err != nil {
		return rerrors.WithPath(rerrors.KindIO, "failed to acquire lock", lockPath, err)
	}
	if !locked {
		return rerrors.WithPath(rerrors.KindLock, fmt.Sprintf("timed out after %s waiting for lock", cfg.LockTimeout), lockPath, nil)
	}
	defer func() {
		_ = fl.Unlock()
		_ = os.Remove(lockPath)
	}()

	tempPath := fmt.Sprintf("%s.%d.tmp", path, os.Getpid())
	// Clean up any stray temp file from a previous crash before writing ours.
	_ = os.Remove(tempPath)

	f, err := os.OpenFile(tempPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, constants.FilePermissions)
	if err != nil {
		return rerrors.WithPath(rerrors.KindIO, "failed to create temp file", tempPath, err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tempPath)
		return rerrors.WithPath(rerrors.KindIO, "failed to write temp file", tempPath, err)
	}

	if cfg.EnableFsync {
		if err := f.Sync(); err != nil {
			_ = f.Close()
			_ = os.Remove(tempPath)
			return rerrors.WithPath(rerrors.KindIO, "failed to fsync temp file", tempPath, err)
		}
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(tempPath)
		return rerrors.WithPath(rerrors.KindIO, "failed to close temp file", tempPath, err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return rerrors.WithPath(rerrors.KindIO, "failed to rename temp file into place", path, err)
	}

	return nil
}

// tryLockWithTimeout polls fl.TryLock until it succeeds or the deadline
// passes. flock does not expose a context-aware blocking lock on all
// platforms, so we poll at a short fixed interval rather than spin.
func tryLockWithTimeout(fl *flock.Flock, timeout time.Duration) (bool, error) {
	deadline := time.Now().Add(timeout)
	const pollInterval = 10 * time.Millisecond

	for {
		locked, err := fl.TryLock()
		if err != nil {
			return false, err
		}
		if locked {
			return true, nil
		}
		if time.Now().After(deadline) {
			return false, nil
		}
		time.Sleep(pollInterval)
	}
}
