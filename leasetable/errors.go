package leasetable

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownResource is returned for resource names absent from the
	// Registry. Retrying the same name will never succeed.
	ErrUnknownResource = errors.New("unknown resource")
	// ErrNotActiveLease is returned when a presented lease doesn't match
	// the entry's active lease; the caller's lease is already invalid.
	ErrNotActiveLease = errors.New("presented lease is not the active lease")
)

// ErrClaimed is returned by Acquire when the resource (or a resource
// its claim spans) is already held. It carries the current holder so
// the caller can decide whether to escalate to Take.
type ErrClaimed struct {
	Lease Lease
	Owner Owner
}

func (e ErrClaimed) Error() string {
	return fmt.Sprintf("resource %q already claimed by %q", e.Lease.Resource, e.Owner.ClientName)
}
