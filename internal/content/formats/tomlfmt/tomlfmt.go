// Package tomlfmt implements the content.Handler for TOML files using
// hash-comment block markers. Block content between markers is a literal
// TOML fragment (e.g. "[managed]\nkey = \"value\""), not a wrapped value;
// there is no reserved container table the way JSON has _repo_managed.
package tomlfmt

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/wgergely/repoctl/internal/content"
	"github.com/wgergely/repoctl/internal/content/block"
	"github.com/wgergely/repoctl/internal/content/edit"
	"github.com/wgergely/repoctl/internal/content/formats/commentops"
	"github.com/wgergely/repoctl/internal/rerrors"
)

// Handler is the TOML content.Handler.
type Handler struct{}

// New constructs a TOML handler.
func New() Handler { return Handler{} }

func (Handler) Format() content.Format { return content.FormatTOML }

func (Handler) FindBlocks(source []byte) []block.Block {
	return block.Find(source, block.Hash)
}

func (Handler) InsertBlock(source []byte, uuid, text string, loc block.Location) ([]byte, edit.Edit, error) {
	return commentops.InsertBlock(source, block.Hash, uuid, text, loc)
}

func (Handler) UpdateBlock(source []byte, uuid, text string) ([]byte, edit.Edit, error) {
	return commentops.UpdateBlock(source, block.Hash, uuid, text)
}

func (Handler) RemoveBlock(source []byte, uuid string) ([]byte, edit.Edit, error) {
	return commentops.RemoveBlock(source, block.Hash, uuid)
}

// Normalize decodes source as TOML into a generic value tree and
// re-expresses it through encoding/json so nested tables, inline tables
// and arrays of tables all compare as sorted-key JSON values regardless
// of source key order.
func (Handler) Normalize(source []byte) (any, error) {
	var decoded map[string]any
	if _, err := toml.NewDecoder(bytes.NewReader(source)).Decode(&decoded); err != nil {
		return nil, rerrors.Wrap(rerrors.KindParse, "parse TOML", err)
	}

	// Round-trip through encoding/json to collapse TOML-specific
	// concrete types (toml.Marshaler wrappers, time.Time) down to the
	// same plain JSON scalar/array/object shape jsonfmt and yamlfmt
	// normalize to, then re-decode into generic any values so sortValue
	// can walk it.
	raw, err := json.Marshal(decoded)
	if err != nil {
		return nil, rerrors.Wrap(rerrors.KindParse, "normalize TOML", err)
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, rerrors.Wrap(rerrors.KindParse, "normalize TOML", err)
	}
	return sortValue(generic), nil
}

func sortValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make(map[string]any, len(t))
		for _, k := range keys {
			out[k] = sortValue(t[k])
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = sortValue(val)
		}
		return out
	default:
		return t
	}
}
