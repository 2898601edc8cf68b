package zookeeper

import (
	"context"
	"fmt"
	"sort"

	"github.com/go-zookeeper/zk"
)

// candidateEntries is a container of election candidates.
type candidateEntries struct {
	// Map of candidate ID integer to the full znode path.
	m map[int]string
	// List of IDs ascending.
	l []int
}

// Campaign registers this instance's candidacy by entering an
// ephemeral sequential znode under the election path. Calling Campaign
// with a live candidacy is a no-op.
func (e *Elector) Campaign(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.znode != "" {
		return nil
	}

	candidatePath := fmt.Sprintf("%s/candidate-", e.Path)
	node, err := e.c.CreateProtectedEphemeralSequential(candidatePath, nil, zk.WorldACL(31))
	if err != nil {
		return ErrCampaignFailed{message: err.Error()}
	}

	e.znode = node

	return nil
}

// Authoritative reports whether this instance holds the lowest
// candidate ID. Any lookup failure reads as not authoritative; it's
// never safe to assume authority.
func (e *Elector) Authoritative(ctx context.Context) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.znode == "" {
		return false
	}

	thisID, err := idFromZnode(e.znode)
	if err != nil {
		return false
	}

	candidates, err := e.candidates()
	if err != nil {
		return false
	}

	firstClaim, err := candidates.First()
	if err != nil {
		return false
	}

	return thisID == firstClaim
}

// Resign withdraws this instance's candidacy.
func (e *Elector) Resign(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.znode == "" {
		return ErrNotCandidate
	}

	if err := e.c.Delete(e.znode, -1); err != nil {
		return err
	}

	e.znode = ""

	return nil
}

// candidates returns a candidateEntries of all current candidates.
func (e *Elector) candidates() (candidateEntries, error) {
	var candidates = candidateEntries{
		m: map[int]string{},
		l: []int{},
	}

	// Get all nodes in the election path.
	nodes, _, err := e.c.Children(e.Path)
	// Get the int IDs for all candidates.
	for _, n := range nodes {
		id, e2 := idFromZnode(n)
		// Ignore junk entries.
		if e2 == ErrInvalidSeqNode {
			continue
		}
		// Append the znode to the map.
		candidates.m[id] = fmt.Sprintf("%s/%s", e.Path, n)
		// Append the ID to the list.
		candidates.l = append(candidates.l, id)
	}

	sort.Ints(candidates.l)

	return candidates, err
}

// IDs returns all candidate IDs ascending.
func (ce candidateEntries) IDs() []int {
	return ce.l
}

// First returns the ID with the lowest value.
func (ce candidateEntries) First() (int, error) {
	if len(ce.IDs()) == 0 {
		return 0, fmt.Errorf("no candidates")
	}

	return ce.IDs()[0], nil
}
