package pagination

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for page orchestration.
var (
	museumPageFetchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "museum_page_fetches_total",
		Help: "Total page fetches by backend and result",
	}, []string{"backend", "result"})

	museumPageFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "museum_page_fetch_duration_seconds",
		Help:    "Page fetch duration including id-list resolution and hydration",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
	}, []string{"backend"})

	museumHydrationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "museum_hydrations_total",
		Help: "Total per-id hydration calls by backend and result",
	}, []string{"backend", "result"})

	museumStaleResultsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "museum_stale_results_total",
		Help: "Page results discarded because a newer request superseded them",
	}, []string{"backend"})
)

func resultLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
