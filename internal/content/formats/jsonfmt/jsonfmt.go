// Package jsonfmt implements the content.Handler for JSON files. JSON has
// no comment syntax, so managed blocks live under a reserved top-level
// key, "_repo_managed", mapping block UUID to its JSON value (or a plain
// string, if the content does not parse as JSON). Block edits cannot be
// expressed as a precise byte span without a format-preserving JSON
// parser, so every block edit reports span [0, len(source)) - the whole
// document was re-marshaled.
package jsonfmt

import (
	"encoding/json"
	"sort"

	"github.com/wgergely/repoctl/internal/content"
	"github.com/wgergely/repoctl/internal/content/block"
	"github.com/wgergely/repoctl/internal/content/edit"
	"github.com/wgergely/repoctl/internal/rerrors"
)

const managedKey = "_repo_managed"

// Handler is the JSON content.Handler.
type Handler struct{}

// New constructs a JSON handler.
func New() Handler { return Handler{} }

func (Handler) Format() content.Format { return content.FormatJSON }

func (Handler) FindBlocks(source []byte) []block.Block {
	var value map[string]any
	if err := json.Unmarshal(source, &value); err != nil {
		return nil
	}
	managed, ok := value[managedKey].(map[string]any)
	if !ok {
		return nil
	}

	uuids := make([]string, 0, len(managed))
	for uuid := range managed {
		uuids = append(uuids, uuid)
	}
	sort.Strings(uuids)

	blocks := make([]block.Block, 0, len(uuids))
	for _, uuid := range uuids {
		raw, err := json.MarshalIndent(managed[uuid], "", "  ")
		if err != nil {
			continue
		}
		blocks = append(blocks, block.Block{UUID: uuid, Content: string(raw), Span: [2]int{0, 0}})
	}
	return blocks
}

func (Handler) InsertBlock(source []byte, uuid, text string, _ block.Location) ([]byte, edit.Edit, error) {
	value, err := decodeObject(source)
	if err != nil {
		return nil, edit.Edit{}, err
	}

	managed, _ := value[managedKey].(map[string]any)
	if managed == nil {
		managed = make(map[string]any)
	}
	managed[uuid] = contentValue(text)
	value[managedKey] = managed

	out, err := encode(value)
	if err != nil {
		return nil, edit.Edit{}, err
	}

	e := edit.New(edit.KindBlockInsert, string(source), [2]int{0, len(source)}, string(out))
	e.UUID = uuid
	return out, e, nil
}

func (Handler) UpdateBlock(source []byte, uuid, text string) ([]byte, edit.Edit, error) {
	value, err := decodeObject(source)
	if err != nil {
		return nil, edit.Edit{}, err
	}

	managed, ok := value[managedKey].(map[string]any)
	if !ok {
		return nil, edit.Edit{}, rerrors.WithPath(rerrors.KindBlockNotFound, "block not found", uuid, nil)
	}
	if _, ok := managed[uuid]; !ok {
		return nil, edit.Edit{}, rerrors.WithPath(rerrors.KindBlockNotFound, "block not found", uuid, nil)
	}

	managed[uuid] = contentValue(text)
	value[managedKey] = managed

	out, err := encode(value)
	if err != nil {
		return nil, edit.Edit{}, err
	}

	e := edit.New(edit.KindBlockUpdate, string(source), [2]int{0, len(source)}, string(out))
	e.UUID = uuid
	return out, e, nil
}

func (Handler) RemoveBlock(source []byte, uuid string) ([]byte, edit.Edit, error) {
	value, err := decodeObject(source)
	if err != nil {
		return nil, edit.Edit{}, err
	}

	managed, ok := value[managedKey].(map[string]any)
	if !ok {
		return nil, edit.Edit{}, rerrors.WithPath(rerrors.KindBlockNotFound, "block not found", uuid, nil)
	}
	if _, ok := managed[uuid]; !ok {
		return nil, edit.Edit{}, rerrors.WithPath(rerrors.KindBlockNotFound, "block not found", uuid, nil)
	}
	delete(managed, uuid)

	if len(managed) == 0 {
		delete(value, managedKey)
	} else {
		value[managedKey] = managed
	}

	out, err := encode(value)
	if err != nil {
		return nil, edit.Edit{}, err
	}

	e := edit.New(edit.KindBlockRemove, string(source), [2]int{0, len(source)}, string(out))
	e.UUID = uuid
	return out, e, nil
}

// Normalize strips the reserved managed-block key and recursively sorts
// object keys, giving a canonical value comparable across formats.
func (Handler) Normalize(source []byte) (any, error) {
	var value any
	if err := json.Unmarshal(source, &value); err != nil {
		return nil, rerrors.Wrap(rerrors.KindParse, "parse JSON", err)
	}
	if obj, ok := value.(map[string]any); ok {
		delete(obj, managedKey)
		value = obj
	}
	return sortValue(value), nil
}

func decodeObject(source []byte) (map[string]any, error) {
	if len(source) == 0 {
		return map[string]any{}, nil
	}
	var value map[string]any
	if err := json.Unmarshal(source, &value); err != nil {
		return nil, rerrors.Wrap(rerrors.KindParse, "parse JSON", err)
	}
	return value, nil
}

func encode(value map[string]any) ([]byte, error) {
	out, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return nil, rerrors.Wrap(rerrors.KindParse, "encode JSON", err)
	}
	return out, nil
}

// contentValue parses text as JSON; if it does not parse, it is stored
// as a plain string, matching the source-format handler's content
// semantics for block content supplied as free text.
func contentValue(text string) any {
	var v any
	if err := json.Unmarshal([]byte(text), &v); err == nil {
		return v
	}
	return text
}

func sortValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = sortValue(val)
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
