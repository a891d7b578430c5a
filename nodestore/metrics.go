package nodestore

import "github.com/prometheus/client_golang/prometheus"

// storeMetrics are the Prometheus counters exported by a Store. The counters
// are package-level, registered once in init() and shared by every Store, so
// opening another store within a process (see Registry) never registers them
// a second time.
type storeMetrics struct {
	puts   prometheus.Counter
	gets   prometheus.Counter
	misses prometheus.Counter
}

func newStoreMetrics() *storeMetrics {
	return &storeMetrics{
		puts:   storePutsTotal,
		gets:   storeGetsTotal,
		misses: storeMissesTotal,
	}
}

var (
	storePutsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "mttrie",
		Subsystem: "nodestore",
		Name:      "puts_total",
		Help:      "Number of blobs written to the content-addressed node store.",
	})
	storeGetsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "mttrie",
		Subsystem: "nodestore",
		Name:      "gets_total",
		Help:      "Number of blob lookups issued against the content-addressed node store.",
	})
	storeMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "mttrie",
		Subsystem: "nodestore",
		Name:      "misses_total",
		Help:      "Number of node store lookups that found nothing for the given hash.",
	})
)

func init() {
	prometheus.MustRegister(storePutsTotal, storeGetsTotal, storeMissesTotal)
}
