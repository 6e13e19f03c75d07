package project

import (
	"fmt"
	"strings"
)

// Mount is an engine mounted under a route namespace.
type Mount struct {
	Engine     string // Ruby expression, e.g. "Blazer::Engine"
	At         string
	Constraint string // optional Ruby expression
	Comment    string
}

func (m Mount) lines() []string {
	var out []string
	if m.Comment != "" {
		out = append(out, "# "+m.Comment)
	}
	line := fmt.Sprintf("mount %s, at: '%s'", m.Engine, m.At)
	if m.Constraint != "" {
		line += ", constraints: " + m.Constraint
	}
	return append(out, line)
}

// Namespace is the frame written around a namespace's mounts.
type Namespace struct {
	Name string
	Head []string // lines before the mounts
	Tail []string // lines after the mounts
}

// Routes writes config/routes.rb through the routes.draw marker and holds the
// mounts registered for namespaces that have not been finalized yet.
type Routes struct {
	tree      *Tree
	mounts    map[string][]Mount
	finalized map[string]bool
}

// NewRoutes returns a Routes writing through t.
func NewRoutes(t *Tree) *Routes {
	return &Routes{
		tree:      t,
		mounts:    make(map[string][]Mount),
		finalized: make(map[string]bool),
	}
}

// Draw inserts a route block at the routes.draw marker.
func (r *Routes) Draw(block string) error {
	return r.tree.InsertAt(MarkerRoutes, block)
}

// Mount registers m under namespace. The mount is written when the namespace
// is finalized.
func (r *Routes) Mount(namespace string, m Mount) error {
	if r.finalized[namespace] {
		return &NamespaceFinalizedError{Namespace: namespace}
	}
	if m.Engine == "" || m.At == "" {
		return fmt.Errorf("mount under %s: engine and path are required", namespace)
	}
	r.mounts[namespace] = append(r.mounts[namespace], m)
	return nil
}

// Pending returns the mounts registered under namespace, in registration order.
func (r *Routes) Pending(namespace string) []Mount {
	return append([]Mount(nil), r.mounts[namespace]...)
}

// Finalized reports whether namespace has been written.
func (r *Routes) Finalized(namespace string) bool {
	return r.finalized[namespace]
}

// Finalize writes the namespace block with every pending mount before its
// closing end. A namespace can be finalized once.
func (r *Routes) Finalize(ns Namespace) error {
	if r.finalized[ns.Name] {
		return &NamespaceFinalizedError{Namespace: ns.Name}
	}

	var sections [][]string
	if len(ns.Head) > 0 {
		sections = append(sections, ns.Head)
	}
	for _, m := range r.mounts[ns.Name] {
		sections = append(sections, m.lines())
	}
	if len(ns.Tail) > 0 {
		sections = append(sections, ns.Tail)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "namespace :%s do\n", ns.Name)
	for i, section := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		for _, line := range section {
			if line != "" {
				b.WriteString("  ")
				b.WriteString(line)
			}
			b.WriteString("\n")
		}
	}
	b.WriteString("end\n")

	if err := r.tree.InsertAt(MarkerRoutes, b.String()); err != nil {
		return err
	}
	r.finalized[ns.Name] = true
	delete(r.mounts, ns.Name)
	return nil
}
