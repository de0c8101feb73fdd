package writer

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/wgergely/repoctl/internal/atomicio"
	"github.com/wgergely/repoctl/internal/translator"
)

// JSONWriter semantically merges content into an existing JSON config:
// it preserves every key it doesn't own, places instructions/MCP data
// at the keys SchemaKeys names, and deep-merges any map-valued key
// (mcpServers included) instead of clobbering it outright.
type JSONWriter struct{}

func (w *JSONWriter) Write(path string, content translator.Content, keys *SchemaKeys) error {
	existing := parseExistingJSON(path)

	if content.HasInstructions && keys != nil && keys.InstructionKey != "" {
		existing[keys.InstructionKey] = content.Instructions
	}

	if content.MCPServers != nil && keys != nil && keys.MCPKey != "" {
		existing[keys.MCPKey] = mergeJSONValue(existing[keys.MCPKey], content.MCPServers)
	}

	for key, value := range content.Data {
		existing[key] = mergeJSONValue(existing[key], value)
	}

	data, err := json.MarshalIndent(existing, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return atomicio.Write(path, data, atomicio.DefaultConfig())
}

func (w *JSONWriter) CanHandle(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".json")
}

// ReadJSONKey returns the current value at key in path's JSON object,
// and whether path exists at all, letting a caller compare it against
// freshly rendered content without going through Write.
func ReadJSONKey(path, key string) (value any, exists bool) {
	if _, err := os.Stat(path); err != nil {
		return nil, false
	}
	existing := parseExistingJSON(path)
	value, ok := existing[key]
	return value, ok
}

// parseExistingJSON reads path and decodes it as a JSON object,
// returning an empty object when the file is absent, unreadable, or
// not itself an object.
func parseExistingJSON(path string) map[string]any {
	data, err := os.ReadFile(path)
	if err != nil {
		return map[string]any{}
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil || out == nil {
		return map[string]any{}
	}
	return out
}

// mergeJSONValue merges src into dst key by key when both are objects,
// with src's values taking precedence on conflict; any other shape
// (src replacing a scalar or array) just returns src, mirroring how a
// managed key is meant to be fully owned by the writer once present.
func mergeJSONValue(dst, src any) any {
	dstMap, dstOK := dst.(map[string]any)
	srcMap, srcOK := src.(map[string]any)
	if !dstOK || !srcOK {
		return src
	}

	merged := make(map[string]any, len(dstMap)+len(srcMap))
	for k, v := range dstMap {
		merged[k] = v
	}
	for k, v := range srcMap {
		merged[k] = mergeJSONValue(merged[k], v)
	}
	return merged
}
