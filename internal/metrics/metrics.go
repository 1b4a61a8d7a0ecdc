package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TransportSolvesTotal counts transport solves by status
	TransportSolvesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deplete_transport_solves_total",
			Help: "Total number of transport solves",
		},
		[]string{"status"},
	)

	// SolveDuration tracks transport solve time
	SolveDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "deplete_transport_solve_duration_seconds",
			Help:    "Transport solve duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// RunsTotal counts scoped runs by status
	RunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deplete_runs_total",
			Help: "Total number of scoped depletion runs",
		},
		[]string{"status"},
	)

	// RunDuration tracks wall time spent inside the run scope
	RunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "deplete_run_duration_seconds",
			Help:    "Scoped run duration in seconds",
			Buckets: []float64{0.1, 1, 10, 60, 600, 3600, 21600},
		},
	)

	// LastEigenvalue tracks the eigenvalue of the most recent solve
	LastEigenvalue = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "deplete_last_eigenvalue",
			Help: "Eigenvalue returned by the most recent transport solve",
		},
	)

	// ChainNuclides tracks the size of the loaded depletion chain
	ChainNuclides = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "deplete_chain_nuclides",
			Help: "Number of nuclides in the loaded depletion chain",
		},
	)
)
