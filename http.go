package main

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/olgasafonova/wordpress-mcp-server/internal/config"
	"github.com/olgasafonova/wordpress-mcp-server/metrics"
)

// DefaultMaxBodySize caps a single MCP request body.
const DefaultMaxBodySize = 1 << 20

const shutdownTimeout = 10 * time.Second

// SecurityConfig configures the HTTP transport middleware.
type SecurityConfig struct {
	// MaxBodySize limits request bodies in bytes (0 means DefaultMaxBodySize)
	MaxBodySize int64

	// AuthToken, when set, must be presented as "Authorization: Bearer <token>"
	AuthToken string
}

// SecurityMiddleware wraps the MCP handler for network exposure.
type SecurityMiddleware struct {
	next   http.Handler
	logger *slog.Logger
	config SecurityConfig
}

// NewSecurityMiddleware wraps next with body limits, security headers and
// optional bearer authentication.
func NewSecurityMiddleware(next http.Handler, logger *slog.Logger, config SecurityConfig) *SecurityMiddleware {
	if config.MaxBodySize <= 0 {
		config.MaxBodySize = DefaultMaxBodySize
	}
	return &SecurityMiddleware{next: next, logger: logger, config: config}
}

func (m *SecurityMiddleware) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := r.Header.Get("X-Request-ID")
	if requestID == "" {
		requestID = uuid.NewString()
	}

	h := w.Header()
	h.Set("X-Request-ID", requestID)
	h.Set("X-Content-Type-Options", "nosniff")
	h.Set("X-Frame-Options", "DENY")
	h.Set("Cache-Control", "no-store")

	defer func() {
		if rec := recover(); rec != nil {
			metrics.PanicsRecovered.WithLabelValues("http").Inc()
			m.logger.Error("Panic recovered",
				"operation", "http",
				"request_id", requestID,
				"panic", rec,
				"stack", string(debug.Stack()))
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
	}()

	if m.config.AuthToken != "" && !m.authorized(r) {
		m.logger.Warn("Rejected unauthenticated request",
			"request_id", requestID,
			"remote_addr", r.RemoteAddr)
		h.Set("WWW-Authenticate", `Bearer realm="mcp"`)
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if r.ContentLength > m.config.MaxBodySize {
		http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, m.config.MaxBodySize)

	m.next.ServeHTTP(w, r)
}

func (m *SecurityMiddleware) authorized(r *http.Request) bool {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(strings.TrimSpace(token)), []byte(m.config.AuthToken)) == 1
}

// newHTTPMux exposes the MCP endpoint alongside metrics and a health check.
func newHTTPMux(server *mcp.Server, cfg *config.Config, logger *slog.Logger) *http.ServeMux {
	mcpHandler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)

	mux := http.NewServeMux()
	mux.Handle("/mcp", NewSecurityMiddleware(mcpHandler, logger, SecurityConfig{
		AuthToken: cfg.AuthToken,
	}))
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	return mux
}

// serveHTTP runs the streamable HTTP transport until ctx is cancelled.
func serveHTTP(ctx context.Context, server *mcp.Server, cfg *config.Config, logger *slog.Logger) error {
	if cfg.AuthToken == "" {
		logger.Warn("HTTP transport has no auth token; set MCP_AUTH_TOKEN before exposing it beyond localhost")
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           newHTTPMux(server, cfg, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer recoverPanic(logger, "http listener")
		logger.Info("Listening", "addr", cfg.HTTPAddr, "endpoint", "/mcp")
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("Shutting down HTTP transport")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
