package extensions

// Config is a single repository's `[extensions."<name>"]` declaration:
// where to fetch the extension from, an optional pinned ref, and any
// extension-specific settings beyond those two fields.
//
// It's parsed from the already-decoded map a manifest's TOML table
// produces (BurntSushi/toml decodes untyped tables as map[string]any),
// rather than its own struct tags, so that arbitrary extension-specific
// keys fall through to Extra without needing struct-tag flatten support.
type Config struct {
	Source string
	Ref    string
	Extra  map[string]any
}

// ParseConfig extracts Source/Ref from raw and collects every other key
// into Extra.
func ParseConfig(raw map[string]any) Config {
	cfg := Config{Extra: make(map[string]any, len(raw))}
	for key, value := range raw {
		switch key {
		case "source":
			if s, ok := value.(string); ok {
				cfg.Source = s
			}
		case "ref", "ref_pin":
			if s, ok := value.(string); ok {
				cfg.Ref = s
			}
		default:
			cfg.Extra[key] = value
		}
	}
	return cfg
}
