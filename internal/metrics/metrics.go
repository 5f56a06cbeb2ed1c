// Package metrics exposes Prometheus counters for ledger operations.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

const namespace = "clubledger"

// Metrics holds the counters updated by the finance engine.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	operations    *prometheus.CounterVec
	bailouts      prometheus.Counter
	bailoutAmount prometheus.Counter
	revocations   prometheus.Counter
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Ledger operations by name and outcome.",
		}, []string{"operation", "outcome"}),
		bailouts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "member_fund_bailouts_total",
			Help:      "Times the team fund covered a negative member fund.",
		}),
		bailoutAmount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "member_fund_bailout_amount_total",
			Help:      "Total amount transferred from the team fund in bailouts.",
		}),
		revocations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "membership_revocations_total",
			Help:      "Memberships revoked by insolvency recovery.",
		}),
	}
	reg.MustRegister(m.operations, m.bailouts, m.bailoutAmount, m.revocations)
	return m
}

// Operation counts one finished operation.
func (m *Metrics) Operation(name, outcome string) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(name, outcome).Inc()
}

// Bailout records a committed member-fund bailout.
func (m *Metrics) Bailout(amount decimal.Decimal, revoked int64) {
	if m == nil {
		return
	}
	m.bailouts.Inc()
	m.bailoutAmount.Add(amount.InexactFloat64())
	m.revocations.Add(float64(revoked))
}
