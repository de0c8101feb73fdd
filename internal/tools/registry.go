package tools

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/wgergely/repoctl/internal/atomicio"
)

// Registry is the full set of tool registrations: the built-ins plus
// any custom definitions loaded from a directory of TOML files.
type Registry struct {
	regs     map[string]Registration
	Warnings []string
}

// NewRegistry returns a registry pre-populated with the built-in tools.
func NewRegistry() *Registry {
	r := &Registry{regs: make(map[string]Registration, BuiltinCount)}
	for _, b := range Builtins() {
		r.regs[b.Slug] = b
	}
	return r
}

// LoadCustomDir reads every *.toml file in dir as a custom tool
// Definition and registers it, overriding a built-in of the same slug
// if present. A file that fails to parse is recorded in Warnings and
// skipped, rather than aborting the whole load - one malformed custom
// tool should not take every built-in down with it.
func (r *Registry) LoadCustomDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".toml" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		def, err := atomicio.Load[Definition](path)
		if err != nil {
			r.Warnings = append(r.Warnings, "skipping "+path+": "+err.Error())
			continue
		}
		if def.Meta.Slug == "" {
			r.Warnings = append(r.Warnings, "skipping "+path+": missing meta.slug")
			continue
		}
		r.regs[def.Meta.Slug] = NewRegistration(def.Meta.Slug, def.Meta.Name, categoryOrDefault(r, def.Meta.Slug), def)
	}
	return nil
}

func categoryOrDefault(r *Registry, slug string) Category {
	if existing, ok := r.regs[slug]; ok {
		return existing.Category
	}
	return CategoryIDE
}

// Register adds or replaces a registration, overriding any existing
// entry of the same slug.
func (r *Registry) Register(reg Registration) {
	r.regs[reg.Slug] = reg
}

// Get returns the registration for slug.
func (r *Registry) Get(slug string) (Registration, bool) {
	reg, ok := r.regs[slug]
	return reg, ok
}

// Has reports whether slug is registered.
func (r *Registry) Has(slug string) bool {
	_, ok := r.regs[slug]
	return ok
}

// All returns every registration, ordered by priority then slug.
func (r *Registry) All() []Registration {
	out := make([]Registration, 0, len(r.regs))
	for _, reg := range r.regs {
		out = append(out, reg)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority < out[j].Priority
		}
		return out[i].Slug < out[j].Slug
	})
	return out
}

// ByCategory returns every registration in the given category, ordered
// by priority then slug.
func (r *Registry) ByCategory(cat Category) []Registration {
	var out []Registration
	for _, reg := range r.All() {
		if reg.Category == cat {
			out = append(out, reg)
		}
	}
	return out
}
