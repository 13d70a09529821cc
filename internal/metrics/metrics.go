// Package metrics exposes the Prometheus counters shared across engines.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	LedgerEntriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "equibridge_ledger_entries_total",
		Help: "Ledger entries appended, by kind.",
	}, []string{"kind"})

	PayoutsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "equibridge_job_payouts_total",
		Help: "Job payouts credited to workers.",
	})

	InvestmentsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "equibridge_investments_total",
		Help: "Completed invest operations.",
	})

	RecoveriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "equibridge_investment_recoveries_total",
		Help: "Full investment liquidations.",
	})

	RepaymentsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "equibridge_repayments_total",
		Help: "Monthly education-debt repayments recorded.",
	})
)
