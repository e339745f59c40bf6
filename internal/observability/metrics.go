package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for imports and
// geocoding. Exposed over /metrics when the serve command is running.
type Metrics struct {
	RowsImported   prometheus.Counter
	RowFailures    prometheus.Counter
	VisitsRecorded prometheus.Counter
	ImportDuration prometheus.Histogram

	// Geocoding metrics.
	GeocodeRequests *prometheus.CounterVec   // labels: outcome={success,not_found,error}
	GeocodeCache    *prometheus.CounterVec   // labels: result={hit,miss}
	GeocodeDuration prometheus.Histogram
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.RowsImported,
		m.RowFailures,
		m.VisitsRecorded,
		m.ImportDuration,
		m.GeocodeRequests,
		m.GeocodeCache,
		m.GeocodeDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		RowsImported: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "footprint",
			Name:      "rows_imported_total",
			Help:      "Total rows successfully converted into visit records.",
		}),
		RowFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "footprint",
			Name:      "row_failures_total",
			Help:      "Total rows skipped during import.",
		}),
		VisitsRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "footprint",
			Name:      "visits_recorded_total",
			Help:      "Total visits added interactively.",
		}),
		ImportDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "footprint",
			Name:      "import_duration_seconds",
			Help:      "Duration of a complete bulk import batch.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "footprint",
			Name:      "geocode_requests_total",
			Help:      "Geocoding lookups by outcome.",
		}, []string{"outcome"}),
		GeocodeCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "footprint",
			Name:      "geocode_cache_total",
			Help:      "Geocoding cache lookups by result.",
		}, []string{"result"}),
		GeocodeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "footprint",
			Name:      "geocode_duration_seconds",
			Help:      "Geocoding provider request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}
}
