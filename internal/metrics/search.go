package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search metrics, registered explicitly from main (no init()).
var (
	// SearchRequestsTotal counts searches per entity kind ("all", "materials",
	// "comments", "subjects", "suggestions").
	SearchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "studyfind",
			Name:      "search_requests_total",
			Help:      "Total number of search requests by entity",
		},
		[]string{"entity"},
	)

	// SearchFetchFailuresTotal counts candidate fetches that degraded an
	// entity search to an empty result.
	SearchFetchFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "studyfind",
			Name:      "search_fetch_failures_total",
			Help:      "Total number of degraded candidate fetches by entity",
		},
		[]string{"entity"},
	)

	// SubjectCacheTotal counts subject reference-cache lookups by result
	// ("hit"/"miss").
	SubjectCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "studyfind",
			Name:      "subject_cache_total",
			Help:      "Subject reference cache lookups by result",
		},
		[]string{"result"},
	)
)

// Register registers every collector in this package with the default
// prometheus registry. Called once from main.
func Register() {
	prometheus.MustRegister(
		httpRequestsTotal,
		httpRequestDuration,
		SearchRequestsTotal,
		SearchFetchFailuresTotal,
		SubjectCacheTotal,
	)
}
