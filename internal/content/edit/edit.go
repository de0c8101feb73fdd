// Package edit implements the Edit/Inverse/Apply trio the content
// substrate uses to record and undo structural changes. Every mutation
// the substrate makes - a raw span replacement or a block/path-level
// operation - is expressed as one Edit, so callers get a uniform undo
// story regardless of which format produced the change.
package edit

// Kind identifies what kind of structural change an Edit represents.
type Kind string

const (
	KindInsert      Kind = "insert"
	KindDelete      Kind = "delete"
	KindReplace     Kind = "replace"
	KindBlockInsert Kind = "block_insert"
	KindBlockUpdate Kind = "block_update"
	KindBlockRemove Kind = "block_remove"
	KindPathSet     Kind = "path_set"
	KindPathRemove  Kind = "path_remove"
)

// Edit records one structural change to a document's source bytes. Span
// is always expressed in terms of the source the edit is about to be
// applied to; OldContent must equal src[Span[0]:Span[1]] at construction
// time for Inverse to round-trip correctly.
type Edit struct {
	Kind       Kind
	Span       [2]int
	OldContent string
	NewContent string
	// UUID is set for the three Block* kinds.
	UUID string
	// Path is the dotted JSON/structured path for the two Path* kinds.
	Path string
}

// New builds an Edit from a source string and the byte span being
// replaced with newContent. OldContent is captured from src so Inverse
// has what it needs.
func New(kind Kind, src string, span [2]int, newContent string) Edit {
	return Edit{
		Kind:       kind,
		Span:       span,
		OldContent: src[span[0]:span[1]],
		NewContent: newContent,
	}
}

// Apply splices NewContent into src at Span, returning the resulting
// string.
func Apply(e Edit, src string) string {
	return src[:e.Span[0]] + e.NewContent + src[e.Span[1]:]
}

// Inverse returns the Edit that undoes e: applying Inverse(e) to
// Apply(e, src) reproduces src exactly, for every Kind.
func Inverse(e Edit) Edit {
	newSpan := [2]int{e.Span[0], e.Span[0] + len(e.NewContent)}
	return Edit{
		Kind:       inverseKind(e.Kind),
		Span:       newSpan,
		OldContent: e.NewContent,
		NewContent: e.OldContent,
		UUID:       e.UUID,
		Path:       e.Path,
	}
}

func inverseKind(k Kind) Kind {
	switch k {
	case KindInsert:
		return KindDelete
	case KindDelete:
		return KindInsert
	case KindBlockInsert:
		return KindBlockRemove
	case KindBlockRemove:
		return KindBlockInsert
	case KindPathSet:
		return KindPathSet
	case KindPathRemove:
		return KindPathSet
	default:
		return k
	}
}
