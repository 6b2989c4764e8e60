package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	apiKey := "secret-key"
	detector := NewActivityDetector(DefaultRateLimit, DefaultRateWindow)
	handler := AuthMiddleware(apiKey, NewTrustedProxies(nil), detector)(okHandler())

	tests := []struct {
		name           string
		providedKey    string
		path           string
		expectedStatus int
	}{
		{"Valid API Key", apiKey, "/api/v1/items/name", http.StatusOK},
		{"Invalid API Key", "wrong-key", "/api/v1/items/name", http.StatusUnauthorized},
		{"Missing API Key", "", "/api/v1/items/name", http.StatusUnauthorized},
		{"Key prefix is not enough", "secret", "/api/v1/items/name", http.StatusUnauthorized},
		{"Public Path - Healthz", "", "/healthz", http.StatusOK},
		{"Public Path - Metrics", "", "/metrics", http.StatusOK},
		{"Public Path - Swagger", "", "/swagger/index.html", http.StatusOK},
		{"Public Path - Version", "", "/version", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.providedKey != "" {
				req.Header.Set(HeaderAPIKey, tt.providedKey)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestAuthMiddleware_DisabledWithoutKey(t *testing.T) {
	detector := NewActivityDetector(DefaultRateLimit, DefaultRateWindow)
	handler := AuthMiddleware("", NewTrustedProxies(nil), detector)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/items/name", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_RecordsFailures(t *testing.T) {
	detector := NewActivityDetector(DefaultRateLimit, DefaultRateWindow)
	handler := AuthMiddleware("k", NewTrustedProxies(nil), detector)(okHandler())

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/potions", nil)
		req.RemoteAddr = "203.0.113.9:5000"
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	detector.mu.Lock()
	defer detector.mu.Unlock()
	assert.Equal(t, 3, detector.failedAuthByIP["203.0.113.9"])
}

func TestTrustedProxies_ClientIP(t *testing.T) {
	proxies := NewTrustedProxies([]string{"10.0.0.1", "192.168.0.0/16", "not-an-ip", ""})

	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		expected   string
	}{
		{"untrusted peer ignores header", "203.0.113.5:1234", "1.2.3.4", "203.0.113.5"},
		{"trusted ip uses rightmost entry", "10.0.0.1:1234", "1.2.3.4, 5.6.7.8", "5.6.7.8"},
		{"trusted cidr", "192.168.4.20:80", "9.9.9.9", "9.9.9.9"},
		{"trusted without header", "10.0.0.1:1234", "", "10.0.0.1"},
		{"unparseable remote addr", "garbage", "1.2.3.4", "garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			assert.Equal(t, tt.expected, proxies.ClientIP(req))
		})
	}

	assert.Len(t, proxies.prefixes, 2)
}

func TestActivityDetector_WindowResets(t *testing.T) {
	d := NewActivityDetector(2, time.Minute)
	now := time.Now()
	d.now = func() time.Time { return now }
	d.windowStart = now

	assert.True(t, d.RecordRequest("a"))
	assert.True(t, d.RecordRequest("a"))
	assert.False(t, d.RecordRequest("a"))
	assert.True(t, d.RecordRequest("b"), "limits are per ip")

	now = now.Add(2 * time.Minute)
	assert.True(t, d.RecordRequest("a"))
}
