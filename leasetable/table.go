package leasetable

import (
	"sort"
	"sync"
	"time"

	"github.com/juju/clock"
	"go.uber.org/zap"

	"github.com/fleetrobotics/lease-kit/metrics"
)

// Lease is a grant of exclusive use of one resource. Epoch identifies
// the grant; Sequence is the last sequence number the holder presented.
type Lease struct {
	Resource string
	Epoch    uint64
	Sequence uint64
}

// Owner identifies the holder of an active lease.
type Owner struct {
	ClientName string
	UserName   string
}

// UseStatus is the verdict for a presented lease.
type UseStatus int

const (
	// UseInvalid is the zero verdict; it's never produced deliberately.
	UseInvalid UseStatus = iota
	// UseOK means the presented lease is the active lease.
	UseOK
	// UseStale means the presented epoch is no longer the active one;
	// the lease was taken, returned or revoked since it was granted.
	UseStale
	// UseUnknownResource means the resource isn't in the Registry.
	UseUnknownResource
)

// UseResult is the transient verdict computed per Retain keep-alive.
// Current carries the entry's active lease when one exists and the
// presented lease is stale.
type UseResult struct {
	Status    UseStatus
	Attempted Lease
	Current   *Lease
	Owner     *Owner
}

// Row is one entry in a table snapshot.
type Row struct {
	Resource   string
	Lease      *Lease
	Owner      *Owner
	LastRetain time.Time
}

// entry is one lease table row. epochs is the resource-scoped grant
// counter; it only ever increases and survives clears, so no two
// grants of the same resource share an epoch.
type entry struct {
	mu         sync.Mutex
	epochs     uint64
	lease      *Lease
	owner      *Owner
	lastRetain time.Time
}

// Config holds Table configuration.
type Config struct {
	// Clock supplies time; defaults to the wall clock.
	Clock clock.Clock
	// Policy determines claim spans; defaults to SingleResource.
	Policy CascadePolicy
}

// Table is the mutable lease table: one entry per registered resource.
// Entries are created at construction and never destroyed; mutual
// exclusion is per entry, so operations on unrelated resources proceed
// independently.
type Table struct {
	reg     *Registry
	clock   clock.Clock
	policy  CascadePolicy
	entries map[string]*entry
}

// NewTable initializes a Table with one empty entry per resource in
// the Registry.
func NewTable(reg *Registry, cfg Config) *Table {
	if cfg.Clock == nil {
		cfg.Clock = clock.WallClock
	}
	if cfg.Policy == nil {
		cfg.Policy = SingleResource{}
	}

	t := &Table{
		reg:     reg,
		clock:   cfg.Clock,
		policy:  cfg.Policy,
		entries: map[string]*entry{},
	}

	for _, name := range reg.Names() {
		t.entries[name] = &entry{}
	}

	return t
}

// Registry returns the resource catalogue the table was built from.
func (t *Table) Registry() *Registry {
	return t.reg
}

// span returns the entry names a claim on resource covers, resource
// first, remainder sorted. All are known to exist in the table.
func (t *Table) span(resource string) []string {
	covered := t.policy.Span(t.reg, resource)
	sort.Strings(covered)
	return append([]string{resource}, covered...)
}

// lockSpan locks a set of entries in name order and returns them in
// the same order as names. Name-ordered acquisition keeps concurrent
// overlapping spans deadlock free.
func (t *Table) lockSpan(names []string) []*entry {
	ordered := append([]string{}, names...)
	sort.Strings(ordered)
	for _, n := range ordered {
		t.entries[n].mu.Lock()
	}

	var es = make([]*entry, len(names))
	for i, n := range names {
		es[i] = t.entries[n]
	}

	return es
}

func (t *Table) unlockSpan(names []string) {
	for _, n := range names {
		t.entries[n].mu.Unlock()
	}
}

// Acquire grants a new lease on resource to o if the entry, and every
// entry the claim spans, is empty. On conflict it returns an ErrClaimed
// carrying the current holder.
func (t *Table) Acquire(resource string, o Owner) (Lease, Owner, error) {
	if !t.reg.Exists(resource) {
		return Lease{}, Owner{}, ErrUnknownResource
	}

	names := t.span(resource)
	es := t.lockSpan(names)
	defer t.unlockSpan(names)

	// Any held entry in the span blocks the claim.
	for _, e := range es {
		if e.lease != nil {
			return Lease{}, Owner{}, ErrClaimed{Lease: *e.lease, Owner: *e.owner}
		}
	}

	lease := t.grant(resource, es[0], o)
	metrics.ActiveLeases.Inc()

	zap.L().Info("lease granted",
		zap.String("resource", resource),
		zap.Uint64("epoch", lease.Epoch),
		zap.String("client", o.ClientName))

	return lease, o, nil
}

// Take unconditionally grants a new lease on resource to o, replacing
// any current holder. Prior epochs for the resource, and for any
// resources the claim spans, become immediately invalid.
func (t *Table) Take(resource string, o Owner) (Lease, Owner, error) {
	if !t.reg.Exists(resource) {
		return Lease{}, Owner{}, ErrUnknownResource
	}

	names := t.span(resource)
	es := t.lockSpan(names)
	defer t.unlockSpan(names)

	// Clear spanned entries, bumping their grant counters so any
	// outstanding leases on them read as stale.
	for _, e := range es[1:] {
		if e.lease != nil {
			e.epochs++
			e.lease, e.owner = nil, nil
			e.lastRetain = time.Time{}
			metrics.ActiveLeases.Dec()
		}
	}

	prior := es[0].owner
	if prior == nil {
		metrics.ActiveLeases.Inc()
	}
	lease := t.grant(resource, es[0], o)

	if prior != nil {
		zap.L().Info("lease taken over",
			zap.String("resource", resource),
			zap.Uint64("epoch", lease.Epoch),
			zap.String("client", o.ClientName),
			zap.String("previous_client", prior.ClientName))
	} else {
		zap.L().Info("lease granted",
			zap.String("resource", resource),
			zap.Uint64("epoch", lease.Epoch),
			zap.String("client", o.ClientName))
	}

	return lease, o, nil
}

// grant installs a fresh lease into a locked entry.
func (t *Table) grant(resource string, e *entry, o Owner) Lease {
	e.epochs++
	l := Lease{Resource: resource, Epoch: e.epochs}
	e.lease = &l
	e.owner = &o
	e.lastRetain = t.clock.Now()

	return l
}

// Return clears the entry for l's resource if l is its active lease,
// making the resource acquirable again. A mismatched epoch, or an
// already empty entry, fails with ErrNotActiveLease and leaves the
// entry untouched.
func (t *Table) Return(l Lease) error {
	e, exists := t.entries[l.Resource]
	if !exists {
		return ErrUnknownResource
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.lease == nil || e.lease.Epoch != l.Epoch {
		return ErrNotActiveLease
	}

	e.lease, e.owner = nil, nil
	e.lastRetain = time.Time{}
	metrics.ActiveLeases.Dec()

	zap.L().Info("lease returned",
		zap.String("resource", l.Resource),
		zap.Uint64("epoch", l.Epoch))

	return nil
}

// Retain processes one keep-alive for l. A current lease refreshes the
// entry's last-retain time and ratchets the last-known sequence; a
// stale one reports the active lease, if any, without mutating state.
func (t *Table) Retain(l Lease) UseResult {
	res := UseResult{Attempted: l}

	e, exists := t.entries[l.Resource]
	if !exists {
		res.Status = UseUnknownResource
		return res
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.lease == nil || e.lease.Epoch != l.Epoch {
		res.Status = UseStale
		if e.lease != nil {
			cur, o := *e.lease, *e.owner
			res.Current, res.Owner = &cur, &o
		}
		return res
	}

	e.lastRetain = t.clock.Now()
	if l.Sequence > e.lease.Sequence {
		e.lease.Sequence = l.Sequence
	}

	res.Status = UseOK
	cur, o := *e.lease, *e.owner
	res.Current, res.Owner = &cur, &o

	return res
}

// Snapshot returns a copy of every entry, ordered by resource name.
// Each entry is copied under its own lock, so no row is ever torn.
func (t *Table) Snapshot() []Row {
	var rows = []Row{}

	for _, name := range t.reg.Names() {
		e := t.entries[name]
		e.mu.Lock()

		row := Row{Resource: name, LastRetain: e.lastRetain}
		if e.lease != nil {
			l, o := *e.lease, *e.owner
			row.Lease, row.Owner = &l, &o
		}

		e.mu.Unlock()
		rows = append(rows, row)
	}

	return rows
}

// ExpireStale clears every occupied entry whose last-retain time is
// older than ttl, returning the revoked leases. Each entry is checked
// and cleared under its own lock, the same lock the API operations
// take, so a revocation can never race a fresh grant.
func (t *Table) ExpireStale(ttl time.Duration) []Lease {
	var revoked = []Lease{}
	now := t.clock.Now()

	for _, name := range t.reg.Names() {
		e := t.entries[name]
		e.mu.Lock()

		if e.lease != nil && now.Sub(e.lastRetain) > ttl {
			revoked = append(revoked, *e.lease)

			zap.L().Info("lease revoked",
				zap.String("resource", name),
				zap.Uint64("epoch", e.lease.Epoch),
				zap.String("client", e.owner.ClientName),
				zap.Time("last_retain", e.lastRetain))

			e.lease, e.owner = nil, nil
			e.lastRetain = time.Time{}
			metrics.ActiveLeases.Dec()
		}

		e.mu.Unlock()
	}

	return revoked
}
