// Package constants holds the small set of filesystem literals shared
// across the repository-sync packages, so permission bits and file
// naming don't drift between atomicio, the ledger, and the writers.
package constants

import "os"

// File permissions used when writing managed configuration and state.
const (
	// DirPermissions is the mode used when creating directories that
	// hold rendered tool config or repository state.
	DirPermissions os.FileMode = 0755

	// FilePermissions is the mode used when writing rendered tool
	// config files and the rule/manifest/ledger stores.
	FilePermissions os.FileMode = 0644
)

// LockFileSuffix is appended to a store's path to derive its advisory
// lock file path (".repository/ledger.toml" -> ".repository/ledger.toml.lock").
const LockFileSuffix = ".lock"

// RepositoryConfigDir is the name of the directory, relative to a
// repository's root, holding the manifest, rule registry, and ledger.
const RepositoryConfigDir = ".repository"
