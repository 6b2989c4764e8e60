package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Item resolution metrics
var (
	TextureResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTextureResolutions,
			Help: HelpTextTextureResolutions,
		},
		[]string{LabelVariant},
	)

	NameFormats = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameNameFormats,
			Help: HelpTextNameFormats,
		},
	)

	Searches = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSearches,
			Help: HelpTextSearches,
		},
	)

	SearchResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameSearchResults,
			Help:    HelpTextSearchResults,
			Buckets: SearchResultBuckets,
		},
	)

	CatalogueEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameCatalogueEntries,
			Help: HelpTextCatalogueEntries,
		},
		[]string{LabelSource},
	)
)

// RecordTextureResolution counts a resolved path by where its variant came from
func RecordTextureResolution(embedded bool, metadataVariant string) {
	switch {
	case embedded:
		TextureResolutions.WithLabelValues(VariantEmbedded).Inc()
	case metadataVariant != "":
		TextureResolutions.WithLabelValues(VariantMetadata).Inc()
	default:
		TextureResolutions.WithLabelValues(VariantNone).Inc()
	}
}

// RecordSearch counts a search and its result size
func RecordSearch(results int) {
	Searches.Inc()
	SearchResults.Observe(float64(results))
}
