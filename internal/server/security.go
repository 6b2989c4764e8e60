package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strings"
	"sync"
	"time"

	"github.com/osse101/MinecraftItemIcon_Go/internal/logger"
)

// AuthMiddleware requires a matching X-API-Key on every non-public path.
// An empty apiKey disables the check; the item API is then open.
func AuthMiddleware(apiKey string, proxies *TrustedProxies, detector *ActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if apiKey == "" {
			return next
		}

		expected := []byte(apiKey)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			providedKey := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(providedKey), expected) != 1 {
				ip := proxies.ClientIP(r)
				detector.RecordFailedAuth(ip)

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isPublicPath(path string) bool {
	for _, prefix := range PublicPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// ActivityDetector counts requests and failed authentications per client IP
// over a fixed window
type ActivityDetector struct {
	mu               sync.Mutex
	limit            int
	window           time.Duration
	failedAuthByIP   map[string]int
	requestCountByIP map[string]int
	windowStart      time.Time
	now              func() time.Time
}

// NewActivityDetector allows limit requests per IP in each window
func NewActivityDetector(limit int, window time.Duration) *ActivityDetector {
	return &ActivityDetector{
		limit:            limit,
		window:           window,
		failedAuthByIP:   make(map[string]int),
		requestCountByIP: make(map[string]int),
		windowStart:      time.Now(),
		now:              time.Now,
	}
}

// RecordFailedAuth records a failed authentication attempt
func (d *ActivityDetector) RecordFailedAuth(ip string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.rollWindowLocked()
	d.failedAuthByIP[ip]++

	if d.failedAuthByIP[ip] >= FailedAuthAlertThreshold {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", d.failedAuthByIP[ip])
	}
}

// RecordRequest counts a request and reports whether ip is still under its limit
func (d *ActivityDetector) RecordRequest(ip string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.rollWindowLocked()
	d.requestCountByIP[ip]++

	count := d.requestCountByIP[ip]
	if count <= d.limit {
		return true
	}
	// Log every 100th rejected request
	if (count-d.limit)%100 == 1 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", count, "window", d.window)
	}
	return false
}

func (d *ActivityDetector) rollWindowLocked() {
	if d.now().Sub(d.windowStart) > d.window {
		clear(d.requestCountByIP)
		clear(d.failedAuthByIP)
		d.windowStart = d.now()
	}
}

// RateLimitMiddleware answers 429 once a client exceeds the detector's limit
func RateLimitMiddleware(proxies *TrustedProxies, detector *ActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !detector.RecordRequest(proxies.ClientIP(r)) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// TrustedProxies holds the addresses and networks whose X-Forwarded-For is honored
type TrustedProxies struct {
	prefixes []netip.Prefix
}

// NewTrustedProxies parses IPs ("10.0.0.1") and CIDRs ("10.0.0.0/8").
// Invalid entries are logged and skipped.
func NewTrustedProxies(entries []string) *TrustedProxies {
	tp := &TrustedProxies{}
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if strings.Contains(entry, "/") {
			prefix, err := netip.ParsePrefix(entry)
			if err != nil {
				slog.Warn(LogMsgInvalidProxy, "entry", entry, "error", err)
				continue
			}
			tp.prefixes = append(tp.prefixes, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(entry)
		if err != nil {
			slog.Warn(LogMsgInvalidProxy, "entry", entry, "error", err)
			continue
		}
		tp.prefixes = append(tp.prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return tp
}

func (tp *TrustedProxies) trusts(ip string) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, p := range tp.prefixes {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

// ClientIP returns the client address of r. X-Forwarded-For is only read when
// the direct peer is trusted, and then its rightmost entry is used.
func (tp *TrustedProxies) ClientIP(r *http.Request) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	if tp == nil || !tp.trusts(remoteIP) {
		return remoteIP
	}

	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return remoteIP
	}
	ips := strings.Split(forwarded, ",")
	return strings.TrimSpace(ips[len(ips)-1])
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set(HeaderContentType, HeaderValueNoSniff)
			h.Set(HeaderFrameOptions, HeaderValueSameOrigin)
			h.Set(HeaderXSSProtection, HeaderValueXSSBlock)
			h.Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)
			next.ServeHTTP(w, r)
		})
	}
}
