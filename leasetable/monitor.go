package leasetable

import (
	"context"
	"sync"
	"time"

	"github.com/juju/clock"
	"go.uber.org/zap"

	"github.com/fleetrobotics/lease-kit/metrics"
)

// MonitorConfig specifies the liveness sweep interval and the
// retention TTL after which a silent holder is revoked.
type MonitorConfig struct {
	Interval time.Duration
	TTL      time.Duration
}

// Monitor periodically scans the Table and revokes leases whose
// holders have not retained within the TTL. It's the only component
// besides the API operations that mutates table entries.
type Monitor struct {
	table *Table
	cfg   MonitorConfig
	clock clock.Clock
}

// NewMonitor initializes a Monitor over t using t's clock.
func NewMonitor(t *Table, cfg MonitorConfig) *Monitor {
	return &Monitor{
		table: t,
		cfg:   cfg,
		clock: t.clock,
	}
}

// Run sweeps the table on the configured interval until the context is
// cancelled. The WaitGroup is marked done on exit for blocking on
// graceful shutdowns in main.
func (m *Monitor) Run(ctx context.Context, wg *sync.WaitGroup) {
	timer := m.clock.NewTimer(m.cfg.Interval)
	defer timer.Stop()

	zap.L().Info("liveness monitor running",
		zap.Duration("interval", m.cfg.Interval),
		zap.Duration("ttl", m.cfg.TTL))

	for {
		select {
		case <-ctx.Done():
			wg.Done()
			return
		case <-timer.Chan():
			m.sweep()
			timer.Reset(m.cfg.Interval)
		}
	}
}

// sweep revokes stale entries and accounts for them.
func (m *Monitor) sweep() {
	revoked := m.table.ExpireStale(m.cfg.TTL)

	for range revoked {
		metrics.RevocationsTotal.Inc()
	}
}
