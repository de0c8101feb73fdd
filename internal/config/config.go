// Package config holds the small set of settings that apply across an
// entire repoctl invocation, independent of any one manifest or tool:
// where the repository root is, how long a write waits for its
// companion lock, and whether writes are fsynced before rename.
package config

import (
	"time"

	"github.com/wgergely/repoctl/internal/atomicio"
)

// Config is the CLI-wide configuration threaded into every command.
type Config struct {
	// Root is the repository root a command operates against.
	Root string
	// LockTimeout bounds how long a write waits for its companion lock.
	LockTimeout time.Duration
	// EnableFsync forces every write to fsync its temp file before rename.
	EnableFsync bool
}

// DefaultConfig returns the configuration used when a caller doesn't
// override anything: the current directory as root, and atomicio's own
// durability defaults.
func DefaultConfig() *Config {
	d := atomicio.DefaultConfig()
	return &Config{
		Root:        ".",
		LockTimeout: d.LockTimeout,
		EnableFsync: d.EnableFsync,
	}
}

// AtomicioConfig converts c into the atomicio.Config every store write
// in the repository is performed with.
func (c *Config) AtomicioConfig() atomicio.Config {
	return atomicio.Config{LockTimeout: c.LockTimeout, EnableFsync: c.EnableFsync}
}
