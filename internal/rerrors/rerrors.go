// Package rerrors defines the typed error taxonomy shared across repoctl's
// packages. Every exported operation returns one of these kinds (wrapped
// with context via fmt.Errorf and %w) rather than a bare string, so callers
// can branch on failure class with errors.As.
package rerrors

import "fmt"

// Kind identifies the taxonomy bucket a repoctl error belongs to.
type Kind string

const (
	KindParse             Kind = "parse"
	KindBlockNotFound      Kind = "block_not_found"
	KindNotFound           Kind = "not_found"
	KindInvalidName        Kind = "invalid_name"
	KindInvalidSource      Kind = "invalid_source"
	KindIO                 Kind = "io"
	KindLock               Kind = "lock"
	KindUnsupportedFormat  Kind = "unsupported_format"
	KindGit                Kind = "git"
	KindLayout             Kind = "layout"
	KindSync               Kind = "sync"
	KindUser               Kind = "user"
)

// Error is a typed repoctl error. Fields beyond Kind/Message are optional
// context used by callers that want to recover structured detail (a path,
// a UUID, command output) without parsing the message string.
type Error struct {
	Kind    Kind
	Message string
	Path    string
	Wrapped error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Path)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Wrapped }

// Is supports errors.Is(err, rerrors.KindX) style comparisons by checking
// Kind equality against a target *Error with the same Kind and no message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// New builds a new *Error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf builds a new *Error with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds a new *Error of the given kind wrapping an underlying error.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Wrapped: err}
}

// WithPath builds a new *Error carrying a path, used by the IO and Lock
// kinds whose message is naturally "operation failed for <path>".
func WithPath(kind Kind, message, path string, err error) *Error {
	return &Error{Kind: kind, Message: message, Path: path, Wrapped: err}
}

// Sentinel values usable with errors.Is(err, rerrors.ErrBlockNotFound).
var (
	ErrBlockNotFound     = New(KindBlockNotFound, "block not found")
	ErrNotFound          = New(KindNotFound, "not found")
	ErrLock              = New(KindLock, "lock timeout")
	ErrUnsupportedFormat = New(KindUnsupportedFormat, "unsupported format")
)
