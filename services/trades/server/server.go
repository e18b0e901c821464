// Package server exposes the trade command surface over HTTP. One
// endpoint per front-end concern: command dispatch for the bot gateway,
// read-only listings for dashboards.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"arctraders-backend/services/trades"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("services/trades/server")

type Server struct {
	svc        *trades.Service
	dispatcher *trades.Dispatcher
}

func New(svc *trades.Service) *Server {
	return &Server{
		svc:        svc,
		dispatcher: trades.NewDispatcher(svc),
	}
}

func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/commands/{name}", s.handleCommand)
	mux.HandleFunc("GET /v1/trades/recent", s.handleRecent)
	mux.HandleFunc("GET /v1/trades/active", s.handleActive)
}

type failure struct {
	Error      string             `json:"error"`
	Kind       string             `json:"kind"`
	Candidates []trades.Candidate `json:"candidates,omitempty"`
}

func writeJson(w http.ResponseWriter, status int, body any) {
	w.Header().Set("content-type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		slog.Warn("failed to encode response body", "err", err)
	}
}

// writeError maps the tagged error kinds onto http statuses. Expected
// resolution failures stay 4xx; only storage trouble is a 5xx.
func writeError(w http.ResponseWriter, err error) {
	var ambiguous *trades.AmbiguousMatch
	if errors.As(err, &ambiguous) {
		writeJson(w, http.StatusConflict, failure{
			Error:      ambiguous.Error(),
			Kind:       "ambiguous_match",
			Candidates: ambiguous.Candidates,
		})
		return
	}

	var verr *trades.ValidationError
	if errors.As(err, &verr) {
		writeJson(w, http.StatusBadRequest, failure{Error: verr.Error(), Kind: "validation"})
		return
	}

	if errors.Is(err, trades.NoMatch) || errors.Is(err, trades.NotFound) {
		writeJson(w, http.StatusNotFound, failure{Error: err.Error(), Kind: "no_match"})
		return
	}

	var serr *trades.StorageError
	if errors.As(err, &serr) && serr.Transient {
		writeJson(w, http.StatusServiceUnavailable, failure{
			Error: "storage is temporarily unavailable, try again",
			Kind:  "transient",
		})
		return
	}

	slog.Error("command failed", "err", err)
	writeJson(w, http.StatusInternalServerError, failure{Error: "internal failure", Kind: "internal"})
}

func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "handleCommand")
	defer span.End()

	name := r.PathValue("name")
	span.SetAttributes(attribute.String("command", name))

	var inv trades.Invocation
	err := json.NewDecoder(r.Body).Decode(&inv)
	if err != nil {
		writeJson(w, http.StatusBadRequest, failure{Error: "invalid request body", Kind: "validation"})
		return
	}

	reply, err := s.dispatcher.Dispatch(ctx, name, inv)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJson(w, http.StatusOK, reply)
}

func countParam(r *http.Request) int {
	raw := r.URL.Query().Get("count")
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

func (s *Server) handleRecent(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "handleRecent")
	defer span.End()

	offers, err := s.svc.Recent(ctx, countParam(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJson(w, http.StatusOK, offers)
}

func (s *Server) handleActive(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "handleActive")
	defer span.End()

	offers, err := s.svc.InProgress(ctx, countParam(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJson(w, http.StatusOK, offers)
}
