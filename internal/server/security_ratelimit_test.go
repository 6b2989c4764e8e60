package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitMiddleware_PerClient(t *testing.T) {
	const limit = 3
	detector := NewActivityDetector(limit, DefaultRateWindow)
	handler := RateLimitMiddleware(NewTrustedProxies(nil), detector)(okHandler())

	serve := func(remote string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/items/search?q=sword", nil)
		req.RemoteAddr = remote
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := range limit {
		require.Equal(t, http.StatusOK, serve("192.168.1.100:1234"), "request %d", i)
	}
	assert.Equal(t, http.StatusTooManyRequests, serve("192.168.1.100:5678"))

	// Another client keeps its own budget
	assert.Equal(t, http.StatusOK, serve("192.168.1.101:1234"))
}

func TestRateLimitMiddleware_ForwardedClients(t *testing.T) {
	detector := NewActivityDetector(1, DefaultRateWindow)
	handler := RateLimitMiddleware(NewTrustedProxies([]string{"10.0.0.0/8"}), detector)(okHandler())

	serve := func(forwardedFor string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/items/texture?id=minecraft:stone", nil)
		req.RemoteAddr = "10.1.2.3:443"
		req.Header.Set(HeaderForwardedFor, forwardedFor)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, serve("203.0.113.7"))
	assert.Equal(t, http.StatusOK, serve("203.0.113.8"))
	assert.Equal(t, http.StatusTooManyRequests, serve("203.0.113.7"))
}

func TestServer_SecurityHeaders(t *testing.T) {
	captureLogs(t)
	ts := newTestServer(t, Options{APIKey: "secret"})

	// Headers are set before auth runs, so rejected requests carry them too
	for _, path := range []string{"/healthz", "/api/v1/items/name?id=minecraft:stone"} {
		resp, _ := get(t, ts, path, nil)
		h := resp.Header
		assert.Equal(t, HeaderValueNoSniff, h.Get(HeaderContentType), path)
		assert.Equal(t, HeaderValueSameOrigin, h.Get(HeaderFrameOptions), path)
		assert.Equal(t, HeaderValueXSSBlock, h.Get(HeaderXSSProtection), path)
		assert.Equal(t, HeaderValueReferrerStrictOrigin, h.Get(HeaderReferrerPolicy), path)
	}
}
