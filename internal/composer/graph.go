package composer

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// UnknownRequirementError reports a module requiring a name nothing in the
// registry provides.
type UnknownRequirementError struct {
	Module   string
	Requires string
}

func (e *UnknownRequirementError) Error() string {
	return fmt.Sprintf("%s requires unregistered module %s", e.Module, e.Requires)
}

// RequirementCycleError reports modules that require each other. None of
// them can ever be applied.
type RequirementCycleError struct {
	Path []string // first element repeated at the end
}

func (e *RequirementCycleError) Error() string {
	return "requirement cycle: " + strings.Join(e.Path, " -> ")
}

// Check verifies the registry's requirement graph: every required module is
// registered and no module depends on itself, directly or not. All problems
// are returned joined.
func (r *Registry) Check() error {
	var errs []error
	for _, name := range r.order {
		for _, req := range r.modules[name].Requires {
			if _, ok := r.modules[req]; !ok {
				errs = append(errs, &UnknownRequirementError{Module: name, Requires: req})
			}
		}
	}
	for _, scc := range r.components() {
		if len(scc) > 1 || slices.Contains(r.modules[scc[0]].Requires, scc[0]) {
			errs = append(errs, &RequirementCycleError{Path: r.cyclePath(scc)})
		}
	}
	return errors.Join(errs...)
}

// components returns the strongly connected components of the requirement
// graph (Tarjan), visiting modules in registration order.
func (r *Registry) components() [][]string {
	var (
		index   int
		stack   []string
		indices = make(map[string]int)
		lowlink = make(map[string]int)
		onStack = make(map[string]bool)
		sccs    [][]string
	)

	var connect func(string)
	connect = func(v string) {
		indices[v] = index
		lowlink[v] = index
		index++
		stack = append(stack, v)
		onStack[v] = true

		for _, w := range r.modules[v].Requires {
			if _, ok := r.modules[w]; !ok {
				continue
			}
			if _, visited := indices[w]; !visited {
				connect(w)
				lowlink[v] = min(lowlink[v], lowlink[w])
			} else if onStack[w] {
				lowlink[v] = min(lowlink[v], indices[w])
			}
		}

		if lowlink[v] == indices[v] {
			var scc []string
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				scc = append(scc, w)
				if w == v {
					break
				}
			}
			sccs = append(sccs, scc)
		}
	}

	for _, name := range r.order {
		if _, visited := indices[name]; !visited {
			connect(name)
		}
	}
	return sccs
}

// cyclePath walks requirement edges inside scc from its earliest registered
// member back to itself.
func (r *Registry) cyclePath(scc []string) []string {
	in := make(map[string]bool, len(scc))
	for _, n := range scc {
		in[n] = true
	}
	start := scc[0]
	for _, name := range r.order {
		if in[name] {
			start = name
			break
		}
	}

	path := []string{start}
	seen := map[string]bool{start: true}
	current := start
	for {
		next := ""
		for _, req := range r.modules[current].Requires {
			if req == start {
				return append(path, start)
			}
			if in[req] && !seen[req] && next == "" {
				next = req
			}
		}
		if next == "" {
			// Dead end inside the component; the members still form a cycle.
			return append(path, start)
		}
		seen[next] = true
		path = append(path, next)
		current = next
	}
}
