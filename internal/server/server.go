// Package server exposes health, metrics and live simulation progress over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/DropLuck_Go/internal/domain"
	"github.com/osse101/DropLuck_Go/internal/metrics"
	"github.com/osse101/DropLuck_Go/internal/simulation"
	"github.com/osse101/DropLuck_Go/internal/sse"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ProgressSource exposes the latest coordinator event.
type ProgressSource interface {
	Latest() (simulation.Event, bool)
}

// RunReader reads persisted simulation results.
type RunReader interface {
	ListRuns(ctx context.Context, limit int) ([]domain.SimulationRun, error)
	GetRun(ctx context.Context, id string) (*domain.SimulationRun, error)
	GetHistogram(ctx context.Context, runID string) ([]domain.HistogramRecord, error)
	GetBest(ctx context.Context, runID string) (*domain.ScoredSummary, error)
}

// RunDetail is the body of a single-run lookup. Best is absent for runs
// stored without a luckiest stream.
type RunDetail struct {
	Run  domain.SimulationRun  `json:"run"`
	Best *domain.ScoredSummary `json:"best,omitempty"`
}

// Deps are the optional collaborators of the server; nil ones disable
// their routes (or, for Store, make /readyz always ready).
type Deps struct {
	Hub      *sse.Hub
	Progress ProgressSource
	Runs     RunReader
	Store    Pinger
}

// HealthResponse is the body of /healthz and /readyz.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Server wraps the HTTP listener.
type Server struct {
	httpServer *http.Server
}

// NewServer builds the router and listener for port.
func NewServer(port int, deps Deps) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           NewRouter(deps),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter wires every route.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(securityHeaders)
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get(RouteHealthz, handleHealthz)
	r.Get(RouteReadyz, handleReadyz(deps.Store))
	r.Handle(RouteMetrics, promhttp.Handler())

	if deps.Hub != nil {
		r.Get(RouteEvents, sse.Handler(deps.Hub))
	}

	r.Route(RouteAPIPrefix, func(r chi.Router) {
		if deps.Progress != nil {
			r.Get(RouteProgress, handleProgress(deps.Progress))
		}
		if deps.Runs != nil {
			r.Get(RouteRuns, handleListRuns(deps.Runs))
			r.Get(RouteRun, handleRun(deps.Runs))
			r.Get(RouteRunHistogram, handleHistogram(deps.Runs))
			r.Get(RouteRunBest, handleBest(deps.Runs))
		}
	})

	return r
}

// Start serves until Stop is called.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
}

func handleReadyz(store Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			writeJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), ReadyCheckTimeout)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			slog.Error(LogMsgReadyCheckFailed, "error", err)
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: StatusUnavailable, Message: "result store unreachable"})
			return
		}
		writeJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}

func handleProgress(src ProgressSource) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		ev, ok := src.Latest()
		if !ok {
			writeJSON(w, http.StatusNoContent, nil)
			return
		}
		writeJSON(w, http.StatusOK, sse.NewProgressPayload(ev))
	}
}

func handleListRuns(runs RunReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := DefaultRunsLimit
		if raw := r.URL.Query().Get(QueryParamLimit); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 || n > MaxRunsLimit {
				writeError(w, http.StatusBadRequest, "limit must be between 1 and "+strconv.Itoa(MaxRunsLimit))
				return
			}
			limit = n
		}

		list, err := runs.ListRuns(r.Context(), limit)
		if err != nil {
			slog.Error(LogMsgHandlerError, "path", r.URL.Path, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to list runs")
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

func handleHistogram(runs RunReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, URLParamRunID)
		records, err := runs.GetHistogram(r.Context(), id)
		switch {
		case errors.Is(err, domain.ErrRunNotFound):
			writeError(w, http.StatusNotFound, domain.ErrMsgRunNotFound)
		case err != nil:
			slog.Error(LogMsgHandlerError, "path", r.URL.Path, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to load histogram")
		default:
			writeJSON(w, http.StatusOK, records)
		}
	}
}

func handleRun(runs RunReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, URLParamRunID)
		run, err := runs.GetRun(r.Context(), id)
		switch {
		case errors.Is(err, domain.ErrRunNotFound):
			writeError(w, http.StatusNotFound, domain.ErrMsgRunNotFound)
			return
		case err != nil:
			slog.Error(LogMsgHandlerError, "path", r.URL.Path, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to load run")
			return
		}

		detail := RunDetail{Run: *run}
		best, err := runs.GetBest(r.Context(), id)
		switch {
		case errors.Is(err, domain.ErrRunNotFound):
		case err != nil:
			slog.Error(LogMsgHandlerError, "path", r.URL.Path, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to load best stream")
			return
		default:
			detail.Best = best
		}
		writeJSON(w, http.StatusOK, detail)
	}
}

func handleBest(runs RunReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, URLParamRunID)
		best, err := runs.GetBest(r.Context(), id)
		switch {
		case errors.Is(err, domain.ErrRunNotFound):
			writeError(w, http.StatusNotFound, domain.ErrMsgRunNotFound)
		case err != nil:
			slog.Error(LogMsgHandlerError, "path", r.URL.Path, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to load best stream")
		default:
			writeJSON(w, http.StatusOK, best)
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	if body == nil {
		w.WriteHeader(status)
		return
	}
	w.Header().Set(HeaderContentType, ContentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(HeaderNoSniff, HeaderValueNoSniff)
		w.Header().Set(HeaderFrameOptions, HeaderValueSameOrigin)
		w.Header().Set(HeaderReferrerPolicy, HeaderValueStrictReferer)
		next.ServeHTTP(w, r)
	})
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, RouteHealthz) ||
			strings.HasPrefix(r.URL.Path, RouteReadyz) ||
			strings.HasPrefix(r.URL.Path, RouteMetrics) ||
			strings.HasPrefix(r.URL.Path, RouteEvents) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		slog.Info(LogMsgRequestCompleted,
			"request_id", middleware.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration_ms", time.Since(start).Milliseconds())
	})
}
