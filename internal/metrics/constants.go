package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Item resolution metric names
const (
	MetricNameTextureResolutions = "itemicon_texture_resolutions_total"
	MetricNameNameFormats        = "itemicon_name_formats_total"
	MetricNameSearches           = "itemicon_searches_total"
	MetricNameSearchResults      = "itemicon_search_results"
	MetricNameCatalogueEntries   = "itemicon_catalogue_entries"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextTextureResolutions   = "Total number of texture paths resolved"
	HelpTextNameFormats          = "Total number of display names formatted"
	HelpTextSearches             = "Total number of catalogue searches"
	HelpTextSearchResults        = "Number of ids returned per catalogue search"
	HelpTextCatalogueEntries     = "Number of entries in the loaded catalogue"
)

// ============================================================================
// Metric Label Names and Values
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelVariant = "variant"
	LabelSource  = "source"
)

// Values of the variant label
const (
	VariantNone     = "none"
	VariantEmbedded = "embedded"
	VariantMetadata = "metadata"
)

// PathUnmatched labels requests that matched no route
const PathUnmatched = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets range from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// SearchResultBuckets cover empty searches up to the full catalogue
var SearchResultBuckets = []float64{0, 1, 5, 10, 25, 50, 100, 250}
