// Package extensions implements the catalog of known, installable
// repository extensions - third-party rule/tool bundles pulled in from
// a git source - plus parsing for a repository's own `[extensions.*]`
// declarations.
package extensions

import "github.com/wgergely/repoctl/internal/rerrors"

// Entry is one known extension's catalog metadata.
type Entry struct {
	Name        string
	Description string
	Source      string
}

// Validate reports whether e has a well-formed name and a non-empty
// source. Name characters are restricted to the same alphanumeric +
// hyphen/underscore set a rule or tool slug uses, since extension names
// end up as directory and config-key components.
func (e Entry) Validate() error {
	if e.Name == "" {
		return rerrors.New(rerrors.KindInvalidName, "extension name must not be empty")
	}
	for _, c := range e.Name {
		if !isNameChar(c) {
			return rerrors.Newf(rerrors.KindInvalidName,
				"extension name %q must contain only alphanumeric characters, hyphens, or underscores", e.Name)
		}
	}
	if e.Source == "" {
		return rerrors.Newf(rerrors.KindInvalidSource, "extension %q source must not be empty", e.Name)
	}
	return nil
}

func isNameChar(c rune) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '-' || c == '_':
		return true
	default:
		return false
	}
}
