package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counterValue reads a counter from the default registry; missing series read as zero
func counterValue(t *testing.T, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
	metric:
		for _, m := range mf.GetMetric() {
			matched := 0
			for _, lp := range m.GetLabel() {
				want, ok := labels[lp.GetName()]
				if !ok {
					continue
				}
				if want != lp.GetValue() {
					continue metric
				}
				matched++
			}
			if matched == len(labels) {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func TestRecordTextureResolution(t *testing.T) {
	read := func(variant string) float64 {
		return counterValue(t, MetricNameTextureResolutions, map[string]string{LabelVariant: variant})
	}
	none, embedded, metadata := read(VariantNone), read(VariantEmbedded), read(VariantMetadata)

	RecordTextureResolution(false, "")
	RecordTextureResolution(true, "minecraft:swiftness")
	RecordTextureResolution(false, "minecraft:swiftness")
	RecordTextureResolution(false, "minecraft:swiftness")

	assert.Equal(t, none+1, read(VariantNone))
	assert.Equal(t, embedded+1, read(VariantEmbedded))
	assert.Equal(t, metadata+2, read(VariantMetadata))
}

func TestRecordSearch(t *testing.T) {
	before := counterValue(t, MetricNameSearches, nil)
	RecordSearch(3)
	assert.Equal(t, before+1, counterValue(t, MetricNameSearches, nil))
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/api/v1/categories/{category}/items", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	labels := map[string]string{
		LabelMethod: http.MethodGet,
		LabelPath:   "/api/v1/categories/{category}/items",
		LabelStatus: "418",
	}
	before := counterValue(t, MetricNameHTTPRequestsTotal, labels)

	for _, category := range []string{"tools", "combat"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/categories/"+category+"/items", nil))
		assert.Equal(t, http.StatusTeapot, rec.Code)
	}

	assert.Equal(t, before+2, counterValue(t, MetricNameHTTPRequestsTotal, labels))
}
