package leasetable

import "fmt"

// CascadePolicy determines which additional resources a claim on a
// resource spans. Exact parent/child cascade semantics are deployment
// policy, not table mechanics, so they're pluggable here.
type CascadePolicy interface {
	// Span returns the resources covered by a claim on the named
	// resource, excluding the resource itself.
	Span(r *Registry, resource string) []string
}

// SingleResource is the default policy: a claim covers only the
// resource it names.
type SingleResource struct{}

// Span returns no additional resources.
func (SingleResource) Span(r *Registry, resource string) []string {
	return nil
}

// Subtree makes a claim on a parent span all of its descendants:
// Acquire on a parent conflicts with any held descendant, and Take on
// a parent invalidates all descendant leases.
type Subtree struct{}

// Span returns all descendants of the resource.
func (Subtree) Span(r *Registry, resource string) []string {
	return r.Descendants(resource)
}

// PolicyFromName maps a policy name to a CascadePolicy.
func PolicyFromName(name string) (CascadePolicy, error) {
	switch name {
	case "", "none":
		return SingleResource{}, nil
	case "subtree":
		return Subtree{}, nil
	}

	return nil, fmt.Errorf("unknown cascade policy %q", name)
}
