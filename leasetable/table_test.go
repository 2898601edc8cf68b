package leasetable

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAcquire(t *testing.T) {
	tbl, _ := testTable(nil)

	lease, owner, err := tbl.Acquire("arm", Owner{ClientName: "client-a"})
	assert.Nil(t, err)
	assert.Equal(t, "arm", lease.Resource)
	assert.Equal(t, uint64(1), lease.Epoch)
	assert.Equal(t, "client-a", owner.ClientName)
}

func TestAcquireUnknownResource(t *testing.T) {
	tbl, _ := testTable(nil)

	_, _, err := tbl.Acquire("leg", Owner{ClientName: "client-a"})
	assert.Equal(t, ErrUnknownResource, err)
}

func TestAcquireClaimed(t *testing.T) {
	tbl, _ := testTable(nil)

	winner, _, _ := tbl.Acquire("arm", Owner{ClientName: "client-a"})

	// The loser sees the winner's lease and owner.
	_, _, err := tbl.Acquire("arm", Owner{ClientName: "client-b"})
	claimed, ok := err.(ErrClaimed)
	assert.True(t, ok)
	assert.Equal(t, winner, claimed.Lease)
	assert.Equal(t, "client-a", claimed.Owner.ClientName)
}

func TestEpochsStrictlyIncrease(t *testing.T) {
	tbl, _ := testTable(nil)

	var last uint64

	// Epochs increase across any mix of grants, including grants after
	// a Return; none is ever reused.
	l1, _, _ := tbl.Acquire("arm", Owner{ClientName: "a"})
	l2, _, _ := tbl.Take("arm", Owner{ClientName: "b"})
	l3, _, _ := tbl.Take("arm", Owner{ClientName: "c"})
	assert.Nil(t, tbl.Return(l3))
	l4, _, _ := tbl.Acquire("arm", Owner{ClientName: "a"})

	for _, l := range []Lease{l1, l2, l3, l4} {
		assert.Greater(t, l.Epoch, last)
		last = l.Epoch
	}
}

func TestTake(t *testing.T) {
	tbl, _ := testTable(nil)

	l1, _, _ := tbl.Acquire("arm", Owner{ClientName: "client-a"})

	// Take always succeeds for a known resource and invalidates the
	// prior epoch.
	l2, owner, err := tbl.Take("arm", Owner{ClientName: "client-b"})
	assert.Nil(t, err)
	assert.Greater(t, l2.Epoch, l1.Epoch)
	assert.Equal(t, "client-b", owner.ClientName)

	res := tbl.Retain(l1)
	assert.Equal(t, UseStale, res.Status)
	assert.Equal(t, l2.Epoch, res.Current.Epoch)

	_, _, err = tbl.Take("leg", Owner{ClientName: "client-b"})
	assert.Equal(t, ErrUnknownResource, err)
}

func TestReturn(t *testing.T) {
	tbl, _ := testTable(nil)

	lease, _, _ := tbl.Acquire("arm", Owner{ClientName: "client-a"})

	assert.Nil(t, tbl.Return(lease))

	// The entry is now empty; a second Return fails, a fresh Acquire
	// succeeds.
	assert.Equal(t, ErrNotActiveLease, tbl.Return(lease))

	_, _, err := tbl.Acquire("arm", Owner{ClientName: "client-b"})
	assert.Nil(t, err)
}

func TestReturnStaleEpoch(t *testing.T) {
	tbl, _ := testTable(nil)

	l1, _, _ := tbl.Acquire("arm", Owner{ClientName: "client-a"})
	l2, _, _ := tbl.Take("arm", Owner{ClientName: "client-b"})

	// Returning the superseded lease fails and doesn't mutate the entry.
	assert.Equal(t, ErrNotActiveLease, tbl.Return(l1))
	assert.Equal(t, ErrUnknownResource, tbl.Return(Lease{Resource: "leg", Epoch: 1}))

	res := tbl.Retain(l2)
	assert.Equal(t, UseOK, res.Status)
}

func TestRetain(t *testing.T) {
	tbl, c := testTable(nil)

	lease, _, _ := tbl.Acquire("arm", Owner{ClientName: "client-a"})
	c.Advance(5 * time.Second)

	// A current lease refreshes last-retain and ratchets the sequence.
	lease.Sequence = 3
	res := tbl.Retain(lease)
	assert.Equal(t, UseOK, res.Status)
	assert.Equal(t, uint64(3), res.Current.Sequence)

	rows := tbl.Snapshot()
	assert.Equal(t, t0.Add(5*time.Second), rows[0].LastRetain)

	// A lower sequence is still a valid liveness signal; the ratchet
	// doesn't move backwards.
	lease.Sequence = 2
	res = tbl.Retain(lease)
	assert.Equal(t, UseOK, res.Status)
	assert.Equal(t, uint64(3), res.Current.Sequence)

	res = tbl.Retain(Lease{Resource: "leg", Epoch: 1})
	assert.Equal(t, UseUnknownResource, res.Status)

	res = tbl.Retain(Lease{Resource: "camera", Epoch: 1})
	assert.Equal(t, UseStale, res.Status)
	assert.Nil(t, res.Current)
}

func TestSnapshot(t *testing.T) {
	tbl, _ := testTable(nil)

	lease, _, _ := tbl.Acquire("arm", Owner{ClientName: "client-a"})

	rows := tbl.Snapshot()
	assert.Equal(t, 4, len(rows))

	// Rows are ordered by resource name.
	assert.Equal(t, "arm", rows[0].Resource)
	assert.Equal(t, lease, *rows[0].Lease)
	assert.Equal(t, "client-a", rows[0].Owner.ClientName)

	for _, row := range rows[1:] {
		assert.Nil(t, row.Lease)
		assert.Nil(t, row.Owner)
	}
}

func TestConcurrentAcquire(t *testing.T) {
	tbl, _ := testTable(nil)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var wins, claims int

	// An acquire storm on one resource: exactly one caller wins, every
	// loser observes ALREADY_CLAIMED with the winner's owner.
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, _, err := tbl.Acquire("arm", Owner{ClientName: "client"})

			mu.Lock()
			defer mu.Unlock()

			switch e := err.(type) {
			case nil:
				wins++
			case ErrClaimed:
				claims++
				assert.Equal(t, "client", e.Owner.ClientName)
			default:
				t.Errorf("unexpected error %v", err)
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, 1, wins)
	assert.Equal(t, 49, claims)
}

func TestSubtreeAcquireConflict(t *testing.T) {
	tbl, _ := testTable(Subtree{})

	childLease, _, _ := tbl.Acquire("gripper", Owner{ClientName: "client-a"})

	// A held descendant blocks a parent claim; the conflict carries the
	// descendant's lease.
	_, _, err := tbl.Acquire("body", Owner{ClientName: "client-b"})
	claimed, ok := err.(ErrClaimed)
	assert.True(t, ok)
	assert.Equal(t, childLease, claimed.Lease)

	// An unrelated resource is unaffected.
	_, _, err = tbl.Acquire("camera", Owner{ClientName: "client-b"})
	assert.Nil(t, err)
}

func TestSubtreeTakeCascade(t *testing.T) {
	tbl, _ := testTable(Subtree{})

	childLease, _, _ := tbl.Acquire("arm", Owner{ClientName: "client-a"})

	_, _, err := tbl.Take("body", Owner{ClientName: "client-b"})
	assert.Nil(t, err)

	// The descendant's lease was invalidated by the parent Take.
	res := tbl.Retain(childLease)
	assert.Equal(t, UseStale, res.Status)
	assert.Equal(t, ErrNotActiveLease, tbl.Return(childLease))

	// A later grant on the descendant gets a fresh epoch.
	l, _, err := tbl.Take("arm", Owner{ClientName: "client-c"})
	assert.Nil(t, err)
	assert.Greater(t, l.Epoch, childLease.Epoch)
}

// TestScenario walks the contended-takeover sequence end to end.
func TestScenario(t *testing.T) {
	tbl, _ := testTable(nil)

	// First client claims an unclaimed arm.
	l1, _, err := tbl.Acquire("arm", Owner{ClientName: "first"})
	assert.Nil(t, err)

	// Second client's Acquire loses, showing the first client.
	_, _, err = tbl.Acquire("arm", Owner{ClientName: "second"})
	claimed := err.(ErrClaimed)
	assert.Equal(t, "first", claimed.Owner.ClientName)

	// Second client escalates to Take.
	l2, _, err := tbl.Take("arm", Owner{ClientName: "second"})
	assert.Nil(t, err)
	assert.Greater(t, l2.Epoch, l1.Epoch)

	// First client's keep-alive now reads stale.
	res := tbl.Retain(l1)
	assert.Equal(t, UseStale, res.Status)

	// Second client returns; the table shows arm unclaimed.
	assert.Nil(t, tbl.Return(l2))
	rows := tbl.Snapshot()
	assert.Equal(t, "arm", rows[0].Resource)
	assert.Nil(t, rows[0].Lease)
}
