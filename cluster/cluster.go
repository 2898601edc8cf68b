// package cluster specifies clustering primitives for multi-instance
// service coordination.
package cluster

import (
	"context"
)

// Authority reports whether this instance is the current source of
// truth for lease decisions. A non-authoritative instance answers
// every lease call with NOT_AUTHORITATIVE and the caller must locate
// the authoritative instance elsewhere; that discovery isn't
// negotiated through this interface.
type Authority interface {
	// Campaign enters this instance into the election. It returns once
	// the candidacy is registered; it doesn't block waiting to win.
	Campaign(context.Context) error
	// Authoritative reports whether this instance currently holds
	// authority.
	Authoritative(context.Context) bool
	// Resign withdraws this instance's candidacy.
	Resign(context.Context) error
}

// Standalone is the single-instance Authority: always authoritative.
type Standalone struct{}

func (Standalone) Campaign(ctx context.Context) error    { return nil }
func (Standalone) Authoritative(ctx context.Context) bool { return true }
func (Standalone) Resign(ctx context.Context) error      { return nil }
