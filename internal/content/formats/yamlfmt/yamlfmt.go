// Package yamlfmt implements the content.Handler for YAML files using
// hash-comment block markers, the same family TOML uses.
package yamlfmt

import (
	"encoding/json"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/wgergely/repoctl/internal/content"
	"github.com/wgergely/repoctl/internal/content/block"
	"github.com/wgergely/repoctl/internal/content/edit"
	"github.com/wgergely/repoctl/internal/content/formats/commentops"
	"github.com/wgergely/repoctl/internal/rerrors"
)

// Handler is the YAML content.Handler.
type Handler struct{}

// New constructs a YAML handler.
func New() Handler { return Handler{} }

func (Handler) Format() content.Format { return content.FormatYAML }

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

// Normalize decodes source as YAML and recursively lowers it to a
// sorted-key JSON value, matching jsonfmt/tomlfmt's canonical shape so
// documents compare equal across formats regardless of mapping key
// order.
func (Handler) Normalize(source []byte) (any, error) {
	var decoded any
	if err := yaml.Unmarshal(source, &decoded); err != nil {
		return nil, rerrors.Wrap(rerrors.KindParse, "parse YAML", err)
	}
	return sortValue(yamlToJSONish(decoded)), nil
}

// yamlToJSONish converts yaml.v3's decoded value tree (map[string]any
// with interface{} keys/values in nested maps) into the map[string]any /
// []any / scalar shape the rest of the substrate expects, mirroring what
// a YAML-to-JSON lowering pass does.
func yamlToJSONish(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = yamlToJSONish(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			key, ok := k.(string)
			if !ok {
				raw, err := json.Marshal(k)
				if err != nil {
					continue
				}
				key = string(raw)
			}
			out[key] = yamlToJSONish(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = yamlToJSONish(val)
		}
		return out
	default:
		return t
	}
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
