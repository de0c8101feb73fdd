// Package content defines the format-agnostic substrate every managed
// config file is read and written through. A Handler knows how to find,
// insert, update and remove UUID-addressed blocks in one file format and
// how to reduce a document to a canonical value for equality and diffing;
// everything above this package (writers, the sync engine, governance)
// works only in terms of the Handler interface, never a concrete format.
package content

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/wgergely/repoctl/internal/content/block"
	"github.com/wgergely/repoctl/internal/content/edit"
)

// Format identifies one of the file formats the substrate understands.
type Format string

const (
	FormatPlainText Format = "plaintext"
	FormatMarkdown  Format = "markdown"
	FormatJSON      Format = "json"
	FormatTOML      Format = "toml"
	FormatYAML      Format = "yaml"
)

// Handler is the capability set a format must provide: managed-block
// CRUD plus a canonical normalized value for semantic comparison.
type Handler interface {
	Format() Format
	FindBlocks(source []byte) []block.Block
	InsertBlock(source []byte, uuid, content string, loc block.Location) ([]byte, edit.Edit, error)
	UpdateBlock(source []byte, uuid, content string) ([]byte, edit.Edit, error)
	RemoveBlock(source []byte, uuid string) ([]byte, edit.Edit, error)
	// Normalize reduces source to a canonical value (built from
	// map[string]any, []any, and JSON scalar types) suitable for
	// semantic-equality comparison and diffing across formats.
	Normalize(source []byte) (any, error)
}

// Registry maps file extensions to the Handler that owns them.
type Registry struct {
	byExt map[string]Handler
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{byExt: make(map[string]Handler)}
}

// Register associates a Handler with one or more extensions (including
// the leading dot, e.g. ".json").
func (r *Registry) Register(h Handler, exts ...string) {
	for _, ext := range exts {
		r.byExt[ext] = h
	}
}

// ForExt returns the handler registered for ext, if any.
func (r *Registry) ForExt(ext string) (Handler, bool) {
	h, ok := r.byExt[ext]
	return h, ok
}

// canonicalJSON serializes a normalized value with recursively sorted
// object keys, giving two semantically-equal documents byte-identical
// serialized forms regardless of source format or original key order.
func canonicalJSON(v any) ([]byte, error) {
	return json.Marshal(sortedValue(v))
}

// sortedValue walks v (built only from the JSON-ish types Normalize
// produces) into a form whose maps are ordered, for deterministic
// marshaling. encoding/json already sorts map[string]any keys when
// marshaling, so this mainly exists to make the recursion explicit and
// to guard against handlers returning unsupported concrete map types.
func sortedValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = sortedValue(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = sortedValue(val)
		}
		return out
	default:
		return t
	}
}

// SemanticEqual reports whether a and b are equal under h's normalize
// function: a.semantic_eq(b) <=> a.normalize() == b.normalize().
func SemanticEqual(h Handler, a, b []byte) (bool, error) {
	na, err := h.Normalize(a)
	if err != nil {
		return false, err
	}
	nb, err := h.Normalize(b)
	if err != nil {
		return false, err
	}
	ja, err := canonicalJSON(na)
	if err != nil {
		return false, err
	}
	jb, err := canonicalJSON(nb)
	if err != nil {
		return false, err
	}
	return string(ja) == string(jb), nil
}

// ChangeKind classifies one entry in a Diff result.
type ChangeKind string

const (
	ChangeAdded    ChangeKind = "added"
	ChangeRemoved  ChangeKind = "removed"
	ChangeModified ChangeKind = "modified"
)

// Change is one difference between two normalized documents, keyed by a
// dotted path ("a.b.2" for the third element of array b under object a).
type Change struct {
	Path     string
	Kind     ChangeKind
	OldValue any
	NewValue any
}

// DiffResult is the ordered set of differences between two documents,
// plus a [0,1] similarity score derived from character overlap of their
// canonical serialized forms.
type DiffResult struct {
	Changes    []Change
	Similarity float64
}

// Diff compares a and b under h's normalize function and returns an
// ordered list of Added/Removed/Modified records plus a similarity score.
func Diff(h Handler, a, b []byte) (DiffResult, error) {
	na, err := h.Normalize(a)
	if err != nil {
		return DiffResult{}, err
	}
	nb, err := h.Normalize(b)
	if err != nil {
		return DiffResult{}, err
	}

	var changes []Change
	diffValues("", na, nb, &changes)
	sort.Slice(changes, func(i, j int) bool { return changes[i].Path < changes[j].Path })

	ja, err := canonicalJSON(na)
	if err != nil {
		return DiffResult{}, err
	}
	jb, err := canonicalJSON(nb)
	if err != nil {
		return DiffResult{}, err
	}

	return DiffResult{Changes: changes, Similarity: similarity(string(ja), string(jb))}, nil
}

func diffValues(path string, a, b any, out *[]Change) {
	am, aIsMap := a.(map[string]any)
	bm, bIsMap := b.(map[string]any)
	if aIsMap && bIsMap {
		keys := make(map[string]struct{}, len(am)+len(bm))
		for k := range am {
			keys[k] = struct{}{}
		}
		for k := range bm {
			keys[k] = struct{}{}
		}
		sortedKeys := make([]string, 0, len(keys))
		for k := range keys {
			sortedKeys = append(sortedKeys, k)
		}
		sort.Strings(sortedKeys)
		for _, k := range sortedKeys {
			childPath := joinPath(path, k)
			av, aok := am[k]
			bv, bok := bm[k]
			switch {
			case aok && !bok:
				*out = append(*out, Change{Path: childPath, Kind: ChangeRemoved, OldValue: av})
			case !aok && bok:
				*out = append(*out, Change{Path: childPath, Kind: ChangeAdded, NewValue: bv})
			default:
				diffValues(childPath, av, bv, out)
			}
		}
		return
	}

	aa, aIsArr := a.([]any)
	ba, bIsArr := b.([]any)
	if aIsArr && bIsArr {
		max := len(aa)
		if len(ba) > max {
			max = len(ba)
		}
		for i := 0; i < max; i++ {
			childPath := fmt.Sprintf("%s.%d", path, i)
			switch {
			case i >= len(aa):
				*out = append(*out, Change{Path: childPath, Kind: ChangeAdded, NewValue: ba[i]})
			case i >= len(ba):
				*out = append(*out, Change{Path: childPath, Kind: ChangeRemoved, OldValue: aa[i]})
			default:
				diffValues(childPath, aa[i], ba[i], out)
			}
		}
		return
	}

	if !valuesEqual(a, b) {
		*out = append(*out, Change{Path: path, Kind: ChangeModified, OldValue: a, NewValue: b})
	}
}

func valuesEqual(a, b any) bool {
	ja, errA := json.Marshal(a)
	jb, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return false
	}
	return string(ja) == string(jb)
}

func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

// similarity derives a [0,1] score from character overlap between two
// strings: twice the size of their common rune multiset over the sum of
// their lengths, a cheap Sorensen-Dice style measure that is 1 for
// identical strings and 0 for disjoint ones.
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	if len(a) == 0 && len(b) == 0 {
		return 1
	}

	counts := make(map[rune]int)
	for _, r := range a {
		counts[r]++
	}
	common := 0
	for _, r := range b {
		if counts[r] > 0 {
			common++
			counts[r]--
		}
	}
	total := len([]rune(a)) + len([]rune(b))
	if total == 0 {
		return 1
	}
	return 2 * float64(common) / float64(total)
}
