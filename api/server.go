// Package api serves flop summaries over HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/luca-patrignani/flopstats/calculation"
	"github.com/luca-patrignani/flopstats/config"
	"github.com/luca-patrignani/flopstats/domain/poker"
	"github.com/luca-patrignani/flopstats/report"
	"github.com/luca-patrignani/flopstats/solverdata"
)

// DefaultTimeout bounds a single summary request.
const DefaultTimeout = 30 * time.Second

type Server struct {
	store   *solverdata.Store
	logger  *slog.Logger
	timeout time.Duration
}

type option func(Server) Server

// WithLogger sets the logger used for request and failure logs.
func WithLogger(logger *slog.Logger) option {
	return func(s Server) Server {
		s.logger = logger
		return s
	}
}

// WithTimeout bounds each request to d.
func WithTimeout(d time.Duration) option {
	return func(s Server) Server {
		s.timeout = d
		return s
	}
}

// New returns a Server answering from store.
func New(store *solverdata.Store, opts ...option) *Server {
	s := Server{
		store:   store,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		s = opt(s)
	}
	return &s
}

// Router returns the handler for /api/health and /api/summary.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.timeout))
	r.Use(s.logRequests)

	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})
	r.Get("/api/summary", s.summary)
	return r
}

func (s *Server) summary(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req, err := config.RawRequest{
		Positions:   q["positions"],
		Betsizes:    q["betsizes"],
		Actions:     q["actions"],
		Heights:     q["heights"],
		Suits:       q["suits"],
		Connections: q["connections"],
		Pairings:    q["pairing"],
	}.Parse()
	if err != nil {
		s.fail(w, r, err)
		return
	}

	res, err := calculation.BuildAllVariants(r.Context(), req.Betsizes, s.store.Source(req.Positions, req.Actions), req.Filter)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report.NewDocument(res))
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	s.logger.Warn("summary failed",
		"request_id", middleware.GetReqID(r.Context()),
		"status", status,
		"error", err)
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// statusOf maps request errors onto HTTP status codes. Corrupt solver
// output is a server side failure.
func statusOf(err error) int {
	var (
		parseErr  *poker.ParseError
		notFound  *solverdata.NotFoundError
		noMatch   *calculation.NoMatchingBoardsError
		invalid   *calculation.InvalidBoardError
		badLine   *calculation.InvalidLineError
		duplicate *calculation.DuplicateBoardError
		mismatch  *calculation.SituationMismatchError
	)
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &invalid), errors.As(err, &badLine), errors.As(err, &duplicate), errors.As(err, &mismatch):
		return http.StatusInternalServerError
	case errors.As(err, &noMatch):
		return http.StatusUnprocessableEntity
	case errors.As(err, &parseErr):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"request_id", middleware.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
