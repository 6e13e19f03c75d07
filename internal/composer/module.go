package composer

import (
	"fmt"
	"sort"
)

// Module is a named unit of configuration applied once per run.
type Module struct {
	// Name is the registry key.
	Name string

	// Summary is a one-line description shown by listings.
	Summary string

	// Doc is a markdown description of what the module configures.
	Doc string

	// Requires names modules that must be applied earlier in the same run.
	Requires []string

	// Provides lists capability tags enabled once the module applies.
	Provides []string

	// Variant is the group of mutually exclusive alternatives this module
	// belongs to. Empty means the module has no alternatives.
	Variant string

	// PostInstallTasks are surfaced to the user after the run completes.
	PostInstallTasks []string

	// Apply performs the module's mutations against the context.
	Apply func(cc *Context) error
}

// Registry maps module names to modules, keeping registration order.
type Registry struct {
	modules map[string]Module
	order   []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{modules: make(map[string]Module)}
}

// Register adds m to the registry. Names must be unique and Apply set.
func (r *Registry) Register(m Module) error {
	if m.Name == "" {
		return fmt.Errorf("register module: empty name")
	}
	if m.Apply == nil {
		return fmt.Errorf("register module %q: Apply is nil", m.Name)
	}
	if _, ok := r.modules[m.Name]; ok {
		return fmt.Errorf("register module %q: already registered", m.Name)
	}
	r.modules[m.Name] = m
	r.order = append(r.order, m.Name)
	return nil
}

// MustRegister is like Register but panics on error.
// Use only for built-in module tables.
func (r *Registry) MustRegister(modules ...Module) {
	for _, m := range modules {
		if err := r.Register(m); err != nil {
			panic(err)
		}
	}
}

// Lookup returns the module registered under name.
func (r *Registry) Lookup(name string) (Module, bool) {
	m, ok := r.modules[name]
	return m, ok
}

// Names returns module names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Modules returns every module in registration order.
func (r *Registry) Modules() []Module {
	out := make([]Module, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.modules[name])
	}
	return out
}

// Variants returns each variant group with its member modules in
// registration order.
func (r *Registry) Variants() map[string][]string {
	groups := make(map[string][]string)
	for _, name := range r.order {
		if v := r.modules[name].Variant; v != "" {
			groups[v] = append(groups[v], name)
		}
	}
	return groups
}

// VariantNames returns the variant group names, sorted.
func (r *Registry) VariantNames() []string {
	groups := r.Variants()
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
