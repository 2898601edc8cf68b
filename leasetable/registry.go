// Package leasetable implements the lease manager core: a static
// resource registry, a per-resource lease table with epoch generation,
// and a liveness monitor that reclaims leases from silent holders.
package leasetable

import (
	"fmt"
	"sort"
)

// ResourceDef describes a single resource supplied at startup. Parent
// is empty for root resources.
type ResourceDef struct {
	Name   string
	Parent string
}

// Registry is the static catalogue of resources. It's read-only after
// construction and safe for concurrent use without locking.
type Registry struct {
	nodes map[string]*resourceNode
}

type resourceNode struct {
	name     string
	parent   *resourceNode
	children []*resourceNode
}

// NewRegistry builds a Registry from resource definitions. Definitions
// may reference parents in any order. An error is returned for empty
// or duplicate names, unknown parents, or parent cycles.
func NewRegistry(defs []ResourceDef) (*Registry, error) {
	r := &Registry{nodes: map[string]*resourceNode{}}

	// First pass: create all nodes.
	for _, d := range defs {
		if d.Name == "" {
			return nil, fmt.Errorf("resource with empty name")
		}
		if _, exists := r.nodes[d.Name]; exists {
			return nil, fmt.Errorf("duplicate resource %q", d.Name)
		}
		r.nodes[d.Name] = &resourceNode{name: d.Name}
	}

	// Second pass: link parents.
	for _, d := range defs {
		if d.Parent == "" {
			continue
		}
		p, exists := r.nodes[d.Parent]
		if !exists {
			return nil, fmt.Errorf("resource %q references unknown parent %q", d.Name, d.Parent)
		}
		n := r.nodes[d.Name]
		n.parent = p
		p.children = append(p.children, n)
	}

	// Walk each node rootward; a walk longer than the node count is a cycle.
	for _, n := range r.nodes {
		steps := 0
		for p := n.parent; p != nil; p = p.parent {
			if steps++; steps > len(r.nodes) {
				return nil, fmt.Errorf("parent cycle involving resource %q", n.name)
			}
		}
	}

	return r, nil
}

// Exists returns whether a resource name is registered.
func (r *Registry) Exists(name string) bool {
	_, exists := r.nodes[name]
	return exists
}

// Names returns all resource names ascending.
func (r *Registry) Names() []string {
	var names = []string{}
	for n := range r.nodes {
		names = append(names, n)
	}

	sort.Strings(names)

	return names
}

// Descendants returns all transitive children of a resource, ascending.
// The resource itself is excluded. An unknown name yields an empty list.
func (r *Registry) Descendants(name string) []string {
	var names = []string{}

	n, exists := r.nodes[name]
	if !exists {
		return names
	}

	var walk func(*resourceNode)
	walk = func(n *resourceNode) {
		for _, c := range n.children {
			names = append(names, c.name)
			walk(c)
		}
	}
	walk(n)

	sort.Strings(names)

	return names
}
