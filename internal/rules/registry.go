package rules

import (
	"os"

	"github.com/wgergely/repoctl/internal/atomicio"
	"github.com/wgergely/repoctl/internal/rerrors"
)

const registryVersion = "1.0"

// Registry is the on-disk collection of all rules, persisted as TOML.
// Rule UUIDs are used as managed-block markers in tool config files.
type Registry struct {
	Version string `toml:"version"`
	Rules   []Rule `toml:"rules"`
	path    string
	saveCfg atomicio.Config
}

// New creates an empty registry bound to path. Save writes to path; it
// is not created until the first Save.
func New(path string) *Registry {
	return &Registry{Version: registryVersion, path: path, saveCfg: atomicio.DefaultConfig()}
}

// Load reads a registry from path.
func Load(path string) (*Registry, error) {
	reg, err := atomicio.Load[Registry](path)
	if err != nil {
		return nil, err
	}
	reg.path = path
	reg.saveCfg = atomicio.DefaultConfig()
	return &reg, nil
}

// SetSaveConfig overrides the atomicio.Config used by Save, letting a
// caller apply CLI-wide lock/fsync settings (internal/config) instead
// of the package defaults.
func (r *Registry) SetSaveConfig(cfg atomicio.Config) {
	r.saveCfg = cfg
}

// LoadOrCreate loads the registry at path, or returns a new empty one
// bound to path if it does not exist yet.
func LoadOrCreate(path string) (*Registry, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return New(path), nil
		}
		return nil, rerrors.Wrap(rerrors.KindIO, "stat rule registry", err)
	}
	return Load(path)
}

// Save persists the registry to its bound path, creating parent
// directories as needed.
func (r *Registry) Save() error {
	return atomicio.Save(r.path, *r, r.saveCfg)
}

// Path returns the registry's bound file path.
func (r *Registry) Path() string { return r.path }

// AddRule creates a new rule, appends it to the registry, saves, and
// returns the added rule.
func (r *Registry) AddRule(id, content string, tags []string) (*Rule, error) {
	rule := New(id, content, tags)
	r.Rules = append(r.Rules, rule)
	if err := r.Save(); err != nil {
		return nil, err
	}
	return &r.Rules[len(r.Rules)-1], nil
}

// GetRule returns the rule with the given UUID.
func (r *Registry) GetRule(ruleUUID string) (*Rule, bool) {
	for i := range r.Rules {
		if r.Rules[i].UUID == ruleUUID {
			return &r.Rules[i], true
		}
	}
	return nil, false
}

// GetRuleByID returns the first rule with the given human-readable ID.
func (r *Registry) GetRuleByID(id string) (*Rule, bool) {
	for i := range r.Rules {
		if r.Rules[i].ID == id {
			return &r.Rules[i], true
		}
	}
	return nil, false
}

// UpdateRule replaces a rule's content and persists the registry.
func (r *Registry) UpdateRule(ruleUUID, newContent string) error {
	rule, ok := r.GetRule(ruleUUID)
	if !ok {
		return rerrors.WithPath(rerrors.KindNotFound, "rule not found", ruleUUID, nil)
	}
	rule.UpdateContent(newContent)
	return r.Save()
}

// RemoveRule deletes the rule with the given UUID, persists the
// registry, and returns the removed rule.
func (r *Registry) RemoveRule(ruleUUID string) (Rule, bool) {
	for i := range r.Rules {
		if r.Rules[i].UUID == ruleUUID {
			removed := r.Rules[i]
			r.Rules = append(r.Rules[:i], r.Rules[i+1:]...)
			if err := r.Save(); err != nil {
				return Rule{}, false
			}
			return removed, true
		}
	}
	return Rule{}, false
}

// AllRules returns every rule in the registry.
func (r *Registry) AllRules() []Rule { return r.Rules }

// RulesByTag returns every rule carrying the given tag.
func (r *Registry) RulesByTag(tag string) []Rule {
	var out []Rule
	for _, rule := range r.Rules {
		for _, t := range rule.Tags {
			if t == tag {
				out = append(out, rule)
				break
			}
		}
	}
	return out
}

// HasRuleID reports whether a rule with the given human-readable ID
// already exists.
func (r *Registry) HasRuleID(id string) bool {
	_, ok := r.GetRuleByID(id)
	return ok
}
