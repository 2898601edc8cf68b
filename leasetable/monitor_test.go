package leasetable

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExpireStale(t *testing.T) {
	tbl, c := testTable(nil)

	armLease, _, _ := tbl.Acquire("arm", Owner{ClientName: "client-a"})
	camLease, _, _ := tbl.Acquire("camera", Owner{ClientName: "client-b"})

	// The camera holder keeps retaining; the arm holder goes silent.
	c.Advance(3 * time.Second)
	tbl.Retain(camLease)
	c.Advance(3 * time.Second)

	revoked := tbl.ExpireStale(5 * time.Second)
	assert.Equal(t, []Lease{armLease}, revoked)

	// The arm is immediately acquirable again; the camera is untouched.
	l, _, err := tbl.Acquire("arm", Owner{ClientName: "client-c"})
	assert.Nil(t, err)
	assert.Greater(t, l.Epoch, armLease.Epoch)

	res := tbl.Retain(camLease)
	assert.Equal(t, UseOK, res.Status)
}

func TestExpireStaleNoop(t *testing.T) {
	tbl, c := testTable(nil)

	lease, _, _ := tbl.Acquire("arm", Owner{ClientName: "client-a"})
	c.Advance(time.Second)

	revoked := tbl.ExpireStale(5 * time.Second)
	assert.Equal(t, []Lease{}, revoked)

	res := tbl.Retain(lease)
	assert.Equal(t, UseOK, res.Status)
}

func TestRevokedLeaseStaysStale(t *testing.T) {
	tbl, c := testTable(nil)

	lease, _, _ := tbl.Acquire("arm", Owner{ClientName: "client-a"})
	c.Advance(time.Minute)
	tbl.ExpireStale(5 * time.Second)

	// A keep-alive for the revoked lease reads stale and must not
	// resurrect it.
	res := tbl.Retain(lease)
	assert.Equal(t, UseStale, res.Status)
	assert.Equal(t, ErrNotActiveLease, tbl.Return(lease))
}

func TestMonitorShutdown(t *testing.T) {
	tbl, _ := testTable(nil)
	m := NewMonitor(tbl, MonitorConfig{Interval: time.Minute, TTL: time.Minute})

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}
	wg.Add(1)

	go m.Run(ctx, wg)

	cancel()
	wg.Wait()
}
