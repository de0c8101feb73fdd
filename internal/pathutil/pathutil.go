// Package pathutil provides a normalized path value used across every
// public repoctl interface, so callers never have to reason about
// backslashes, repeated separators, or OS-specific join semantics.
package pathutil

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var repeatedSlashRegex = regexp.MustCompile(`/{2,}`)

// Normalized wraps a canonical, forward-slash path. The zero value is the
// empty path.
type Normalized struct {
	value string
}

// Normalize canonicalizes a native path: backslashes become forward
// slashes, and runs of slashes collapse to one, except for a leading "//"
// UNC prefix which is preserved.
func Normalize(native string) Normalized {
	s := strings.ReplaceAll(native, "\\", "/")

	uncPrefix := false
	if strings.HasPrefix(s, "//") {
		uncPrefix = true
	}

	s = repeatedSlashRegex.ReplaceAllString(s, "/")

	if uncPrefix && !strings.HasPrefix(s, "//") {
		s = "/" + s
	}

	return Normalized{value: s}
}

// AsStr returns the canonical forward-slash form.
func (n Normalized) AsStr() string { return n.value }

// String implements fmt.Stringer.
func (n Normalized) String() string { return n.value }

// ToNative returns the path rewritten using the host OS's separator.
func (n Normalized) ToNative() string {
	if filepath.Separator == '/' {
		return n.value
	}
	return strings.ReplaceAll(n.value, "/", string(filepath.Separator))
}

// Join appends one or more segments, normalizing the result.
func (n Normalized) Join(segments ...string) Normalized {
	parts := append([]string{n.value}, segments...)
	return Normalize(strings.Join(parts, "/"))
}

// Parent returns the normalized parent directory, following
// path/filepath.Dir: the parent of "/" is itself, and the parent of a
// single relative segment is ".".
func (n Normalized) Parent() Normalized {
	native := n.ToNative()
	return Normalize(filepath.Dir(native))
}

// Extension returns the final extension, including the leading dot, or
// the empty string if there is none.
func (n Normalized) Extension() string {
	return filepath.Ext(n.value)
}

// Base returns the final path component.
func (n Normalized) Base() string {
	return filepath.Base(n.ToNative())
}

// Exists reports whether the path exists on disk.
func (n Normalized) Exists() bool {
	_, err := os.Stat(n.ToNative())
	return err == nil
}

// IsDir reports whether the path exists and is a directory.
func (n Normalized) IsDir() bool {
	info, err := os.Stat(n.ToNative())
	return err == nil && info.IsDir()
}

// Equal compares two normalized paths by their canonical string form.
func (n Normalized) Equal(other Normalized) bool {
	return n.value == other.value
}
