// Package server exposes the calculator over HTTP.
package server

import (
	"context"
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lexcalc/dintilhac/internal/calculation"
	"github.com/lexcalc/dintilhac/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"
)

// CaseStore persists case calculation records.
type CaseStore interface {
	SaveCalculation(ctx context.Context, rec domain.CaseRecord) error
	GetCalculation(ctx context.Context, caseID string) (*domain.CaseRecord, error)
}

// Server serves the calculation API.
type Server struct {
	engine   *calculation.CalculationEngine
	store    CaseStore
	log      *zap.Logger
	metrics  *Metrics
	registry *prometheus.Registry
	metricsH fasthttp.RequestHandler
	srv      *fasthttp.Server

	// Now stamps stored records.
	Now func() time.Time
}

// New creates a server. store may be nil, in which case the case routes
// answer 503.
func New(engine *calculation.CalculationEngine, store CaseStore, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	s := &Server{
		engine:   engine,
		store:    store,
		log:      log,
		metrics:  NewMetrics(reg),
		registry: reg,
		metricsH: fasthttpadaptor.NewFastHTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
		Now:      time.Now,
	}
	s.srv = &fasthttp.Server{
		Handler:      s.Handler(),
		Name:         "dintilhac",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return s
}

// Registry returns the prometheus registry served on /metrics.
func (s *Server) Registry() *prometheus.Registry {
	return s.registry
}

// Handler returns the routed request handler wrapped with request logging.
func (s *Server) Handler() fasthttp.RequestHandler {
	return s.observe(s.route)
}

// Serve accepts connections on ln until Shutdown.
func (s *Server) Serve(ln net.Listener) error {
	return s.srv.Serve(ln)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", zap.String("addr", addr))
		errCh <- s.srv.ListenAndServe(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.log.Info("server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.srv.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return nil
	}
}

func (s *Server) route(ctx *fasthttp.RequestCtx) string {
	path := string(ctx.Path())
	method := string(ctx.Method())

	switch {
	case path == "/healthz":
		s.handleHealth(ctx)
		return "/healthz"
	case path == "/metrics":
		s.metricsH(ctx)
		return "/metrics"
	case path == "/v1/calculate":
		if method != fasthttp.MethodPost {
			methodNotAllowed(ctx, fasthttp.MethodPost)
		} else {
			s.handleCalculate(ctx)
		}
		return "/v1/calculate"
	case path == "/v1/tables":
		if method != fasthttp.MethodGet {
			methodNotAllowed(ctx, fasthttp.MethodGet)
		} else {
			s.handleTables(ctx)
		}
		return "/v1/tables"
	}

	if caseID, ok := caseRoute(path); ok {
		switch method {
		case fasthttp.MethodPut:
			s.handleSaveCase(ctx, caseID)
		case fasthttp.MethodGet:
			s.handleGetCase(ctx, caseID)
		default:
			methodNotAllowed(ctx, fasthttp.MethodGet+", "+fasthttp.MethodPut)
		}
		return "/v1/cases/{id}/calculation"
	}

	writeError(ctx, fasthttp.StatusNotFound, "not found")
	return "unmatched"
}

// caseRoute extracts {id} from /v1/cases/{id}/calculation.
func caseRoute(path string) (string, bool) {
	rest, ok := strings.CutPrefix(path, "/v1/cases/")
	if !ok {
		return "", false
	}
	id, ok := strings.CutSuffix(rest, "/calculation")
	if !ok || id == "" || strings.Contains(id, "/") {
		return "", false
	}
	return id, true
}

const requestIDHeader = "X-Request-ID"

func (s *Server) observe(next func(*fasthttp.RequestCtx) string) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		start := time.Now()
		reqID := string(ctx.Request.Header.Peek(requestIDHeader))
		if reqID == "" {
			reqID = uuid.New().String()
		}
		ctx.Response.Header.Set(requestIDHeader, reqID)

		route := next(ctx)

		status := ctx.Response.StatusCode()
		elapsed := time.Since(start)
		s.metrics.RequestDuration.
			WithLabelValues(route, string(ctx.Method()), strconv.Itoa(status)).
			Observe(elapsed.Seconds())

		fields := []zap.Field{
			zap.String("request_id", reqID),
			zap.ByteString("method", ctx.Method()),
			zap.ByteString("path", ctx.Path()),
			zap.Int("status", status),
			zap.Duration("duration", elapsed),
		}
		if status >= fasthttp.StatusInternalServerError {
			s.log.Error("request failed", fields...)
		} else {
			s.log.Info("request", fields...)
		}
	}
}
