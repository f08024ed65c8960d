package web

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"benchdash/internal/db"
	"benchdash/internal/perf"
	"benchdash/internal/telemetry"
)

// Server exposes stored perf reports over HTTP. It is the
// measurement-fetching collaborator the console client consumes.
type Server struct {
	store   db.Store
	metrics *telemetry.Metrics
	port    int
}

// NewServer creates a perf API server; metrics may be nil.
func NewServer(store db.Store, metrics *telemetry.Metrics, port int) *Server {
	return &Server{store: store, metrics: metrics, port: port}
}

// Handler builds the route mux. Split out from Start for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/v0/perf", s.instrument("/v0/perf", s.handlePerf))
	mux.HandleFunc("/v0/reports", s.instrument("/v0/reports", s.handleReports))
	mux.HandleFunc("/healthz", s.instrument("/healthz", s.handleHealthz))
	if s.metrics != nil {
		mux.Handle("/metrics", s.metrics.Handler())
	}
	return mux
}

// Start starts the HTTP server, bound to localhost.
func (s *Server) Start() error {
	addr := fmt.Sprintf("127.0.0.1:%d", s.port)
	slog.Info("Starting perf API server", "addr", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handlePerf serves the latest stored payload for a project and kind.
// A project with no stored report gets an empty payload rather than
// an error; the console renders nothing for it.
func (s *Server) handlePerf(w http.ResponseWriter, r *http.Request) int {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return http.StatusMethodNotAllowed
	}

	project := r.URL.Query().Get("project")
	kind := r.URL.Query().Get("kind")
	if project == "" || kind == "" {
		http.Error(w, "project and kind are required", http.StatusBadRequest)
		return http.StatusBadRequest
	}

	payload, err := s.store.LatestPayload(project, kind)
	if err != nil {
		slog.Error("Failed to load perf payload", "project", project, "kind", kind, "error", err)
		http.Error(w, "failed to load payload", http.StatusInternalServerError)
		return http.StatusInternalServerError
	}
	if payload == nil {
		payload = &perf.Payload{Kind: string(perf.ParseKind(kind)), PerfData: []perf.Series{}}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
	return http.StatusOK
}

// reportRequest is the POST /v0/reports body.
type reportRequest struct {
	Project string `json:"project"`
	perf.Payload
}

func (s *Server) handleReports(w http.ResponseWriter, r *http.Request) int {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return http.StatusMethodNotAllowed
	}

	var req reportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid report body", http.StatusBadRequest)
		return http.StatusBadRequest
	}
	if req.Project == "" || !perf.ParseKind(req.Kind).Known() {
		http.Error(w, "project and a known kind are required", http.StatusBadRequest)
		return http.StatusBadRequest
	}

	if err := s.store.SaveReport(req.Project, req.Payload); err != nil {
		slog.Error("Failed to save report", "project", req.Project, "error", err)
		http.Error(w, "failed to save report", http.StatusInternalServerError)
		return http.StatusInternalServerError
	}

	w.WriteHeader(http.StatusAccepted)
	return http.StatusAccepted
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) int {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
	return http.StatusOK
}

// instrument wraps a handler with request counting and timing.
func (s *Server) instrument(path string, fn func(http.ResponseWriter, *http.Request) int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		status := fn(w, r)
		if s.metrics == nil {
			return
		}
		s.metrics.HTTPRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(status)).Inc()
		s.metrics.HTTPRequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
	}
}
