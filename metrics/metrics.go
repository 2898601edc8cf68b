// Package metrics holds the prometheus collectors exported by the
// lease manager.
package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "leaseman"

var (
	// GrantsTotal counts lease grants by mode (acquire, take).
	GrantsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lease_grants_total",
			Help:      "Lease grants by mode.",
		}, []string{"mode"})

	// ReturnsTotal counts successful lease returns.
	ReturnsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lease_returns_total",
			Help:      "Successful lease returns.",
		})

	// RevocationsTotal counts liveness-timeout revocations.
	RevocationsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lease_revocations_total",
			Help:      "Leases revoked by the liveness monitor.",
		})

	// RetainVerdicts counts Retain keep-alive verdicts by status.
	RetainVerdicts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lease_retain_verdicts_total",
			Help:      "Retain keep-alive verdicts by status.",
		}, []string{"status"})

	// ActiveLeases tracks the number of currently held leases.
	ActiveLeases = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_leases",
			Help:      "Currently held leases.",
		})
)

func init() {
	prometheus.MustRegister(
		GrantsTotal,
		ReturnsTotal,
		RevocationsTotal,
		RetainVerdicts,
		ActiveLeases,
	)
}
