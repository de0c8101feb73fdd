package atomicio

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/wgergely/repoctl/internal/rerrors"
)

// Load reads path and unmarshals it into a new T, dispatching on the
// file extension (.toml, .json, .yml/.yaml).
func Load[T any](path string) (T, error) {
	var zero T

	data, err := os.ReadFile(path)
	if err != nil {
		return zero, rerrors.WithPath(rerrors.KindIO, "failed to read config file", path, err)
	}

	var out T
	switch filepath.Ext(path) {
	case ".toml":
		if _, err := toml.Decode(string(data), &out); err != nil {
			return zero, rerrors.Wrap(rerrors.KindParse, "failed to parse TOML", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &out); err != nil {
			return zero, rerrors.Wrap(rerrors.KindParse, "failed to parse JSON", err)
		}
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(data, &out); err != nil {
			return zero, rerrors.Wrap(rerrors.KindParse, "failed to parse YAML", err)
		}
	default:
		return zero, rerrors.Newf(rerrors.KindUnsupportedFormat, "unrecognized config extension %q", filepath.Ext(path))
	}

	return out, nil
}

// Save marshals value according to path's extension and writes it
// atomically via Write.
func Save[T any](path string, value T, cfg Config) error {
	var data []byte
	var err error

	switch filepath.Ext(path) {
	case ".toml":
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(value); err != nil {
			return rerrors.Wrap(rerrors.KindParse, "failed to encode TOML", err)
		}
		data = buf.Bytes()
	case ".json":
		data, err = json.MarshalIndent(value, "", "  ")
		if err != nil {
			return rerrors.Wrap(rerrors.KindParse, "failed to encode JSON", err)
		}
		data = append(data, '\n')
	case ".yml", ".yaml":
		data, err = yaml.Marshal(value)
		if err != nil {
			return rerrors.Wrap(rerrors.KindParse, "failed to encode YAML", err)
		}
	default:
		return rerrors.Newf(rerrors.KindUnsupportedFormat, "unrecognized config extension %q", filepath.Ext(path))
	}

	return Write(path, data, cfg)
}
