// SPDX-License-Identifier: MIT

// Package httpapi exposes the basket splitter over HTTP.
//
// Routes:
//
//	POST /v1/split           JSON array of products -> JSON object label -> products
//	GET  /v1/groups          configured delivery groups
//	GET  /v1/groups/{label}  categories served by one group
//	GET  /healthz            liveness
//	GET  /metrics            Prometheus exposition (when a gatherer is set)
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/basketsplit/basket"
	"github.com/katalvlaran/basketsplit/setcover"
)

// RequestIDHeader carries the request identifier in and out.
const RequestIDHeader = "X-Request-ID"

// maxBodyBytes caps the size of a split request body.
const maxBodyBytes = 1 << 20

// Server serves split requests with a shared Splitter.
type Server struct {
	splitter *basket.Splitter
	logger   *slog.Logger
	gatherer prometheus.Gatherer
	router   *mux.Router
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithGatherer exposes g on /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = g
	}
}

// New builds a Server around splitter.
func New(splitter *basket.Splitter, opts ...Option) *Server {
	s := &Server{
		splitter: splitter,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := mux.NewRouter()
	r.Use(s.requestID)
	r.HandleFunc("/v1/split", s.handleSplit).Methods(http.MethodPost)
	r.HandleFunc("/v1/groups", s.handleGroups).Methods(http.MethodGet)
	r.HandleFunc("/v1/groups/{label}", s.handleGroup).Methods(http.MethodGet)
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}
	s.router = r

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("http server shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

type ctxKey struct{}

// requestID propagates or assigns X-Request-ID.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))
	})
}

type errorBody struct {
	Error string `json:"error"`
}

func (s *Server) handleSplit(w http.ResponseWriter, r *http.Request) {
	id, _ := r.Context().Value(ctxKey{}).(string)
	log := s.logger.With("request_id", id)

	var products []string
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(&products); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "body must be a JSON array of product names"})
		return
	}

	groups, err := s.splitter.SplitContext(r.Context(), products)
	if err != nil {
		status := statusOf(err)
		log.Warn("split failed", "status", status, "error", err)
		writeJSON(w, status, errorBody{Error: err.Error()})
		return
	}
	log.Debug("split served", "products", len(products), "groups", len(groups))
	writeJSON(w, http.StatusOK, groups)
}

func (s *Server) handleGroups(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.splitter.Config().Groups)
}

func (s *Server) handleGroup(w http.ResponseWriter, r *http.Request) {
	label := mux.Vars(r)["label"]
	categories, ok := s.splitter.Config().Groups[label]
	if !ok {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "unknown delivery group " + label})
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// statusOf maps split errors onto HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, basket.ErrUnknownProduct), errors.Is(err, basket.ErrNoDeliveryGroup):
		return http.StatusUnprocessableEntity
	case errors.Is(err, setcover.ErrBudgetExceeded),
		errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
