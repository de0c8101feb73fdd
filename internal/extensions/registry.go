package extensions

import "sort"

// Registry is a catalog of known extensions, keyed by name.
type Registry struct {
	entries map[string]Entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// WithKnown returns a registry pre-populated with repoctl's built-in
// extension catalog.
func WithKnown() *Registry {
	r := NewRegistry()
	// Entries below are statically known to be valid; Register's error
	// is only reachable through a programming mistake here.
	_ = r.Register(Entry{
		Name:        "vaultspec",
		Description: "A governed development framework for AI agents",
		Source:      "https://github.com/vaultspec/vaultspec.git",
	})
	return r
}

// Register validates and adds entry, replacing any existing entry of
// the same name.
func (r *Registry) Register(entry Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	r.entries[entry.Name] = entry
	return nil
}

// Get looks up an extension by name.
func (r *Registry) Get(name string) (Entry, bool) {
	e, ok := r.entries[name]
	return e, ok
}

// Contains reports whether name is a known extension.
func (r *Registry) Contains(name string) bool {
	_, ok := r.entries[name]
	return ok
}

// KnownExtensions returns every registered name, sorted.
func (r *Registry) KnownExtensions() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered extensions.
func (r *Registry) Len() int { return len(r.entries) }

// IsEmpty reports whether the registry has no entries.
func (r *Registry) IsEmpty() bool { return len(r.entries) == 0 }
