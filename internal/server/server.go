package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/MinecraftItemIcon_Go/docs"
	"github.com/osse101/MinecraftItemIcon_Go/internal/database"
	"github.com/osse101/MinecraftItemIcon_Go/internal/handler"
	"github.com/osse101/MinecraftItemIcon_Go/internal/itemicon"
	"github.com/osse101/MinecraftItemIcon_Go/internal/logger"
	"github.com/osse101/MinecraftItemIcon_Go/internal/metrics"
)

// Options configures the HTTP surface
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	TextureBaseURL string
	SearchLimit    int
	RateLimit      int
	RateWindow     time.Duration
}

type Server struct {
	httpServer *http.Server
	engine     *itemicon.Engine
	dbPool     database.Pool
}

// NewServer wires the item API routes over engine. dbPool may be nil when the
// catalogue is embedded.
func NewServer(opts Options, engine *itemicon.Engine, dbPool database.Pool) *Server {
	if opts.RateLimit <= 0 {
		opts.RateLimit = DefaultRateLimit
	}
	if opts.RateWindow <= 0 {
		opts.RateWindow = DefaultRateWindow
	}

	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewActivityDetector(opts.RateLimit, opts.RateWindow)
	proxies := NewTrustedProxies(opts.TrustedProxies)
	if opts.APIKey == "" {
		slog.Warn(LogMsgAuthDisabled)
	}

	r.Use(middleware.Recoverer)
	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(proxies, detector))
	r.Use(AuthMiddleware(opts.APIKey, proxies, detector))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion(engine.Version()))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			r.Get("/texture", handler.HandleResolveTexture(engine, opts.TextureBaseURL))
			r.Get("/name", handler.HandleFormatName(engine))
			r.Get("/parse", handler.HandleParseIdentifier(engine))
			r.Get("/search", handler.HandleSearch(engine, opts.SearchLimit, opts.TextureBaseURL))
			r.Get("/fallback", handler.HandleFallback(engine))
			r.Get("/entry", handler.HandleGetEntry(engine))
		})

		r.Get("/categories", handler.HandleListCategories(engine))
		r.Get("/categories/{category}/items", handler.HandleCategoryItems(engine))

		r.Get("/potions", handler.HandleListPotions(engine))
		r.Get("/potions/effect", handler.HandleGetPotion(engine))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
			WriteTimeout:      WriteTimeout,
			IdleTimeout:       IdleTimeout,
		},
		engine: engine,
		dbPool: dbPool,
	}
}

// Handler returns the root handler, for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func isQuietPath(path string) bool {
	for _, prefix := range quietPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// loggingMiddleware tags each request with an id (reusing X-Request-ID when
// the caller sent one) and logs its start and completion
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()

		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" || len(requestID) > 64 {
			requestID = logger.GenerateRequestID()
		}
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"query", r.URL.RawQuery,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start serves until Stop is called. A graceful stop is not reported as an error.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr, "minecraft_version", s.engine.Version().ID)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
