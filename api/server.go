package api

import (
	"encoding/json"
	"net/http"
	"time"

	"greenwatt/core/market"
	"greenwatt/core/preset"
	"greenwatt/internal/collector"
	"greenwatt/internal/errors"
	"greenwatt/internal/recorder"
)

// Server is the dashboard API server
type Server struct {
	handler   *Handler
	mux       *http.ServeMux
	version   string
	store     *market.Store
	recorder  recorder.Recorder
	collector *collector.Client
}

// NewServer creates an API server
func NewServer(version string, registry *preset.Registry, store *market.Store, rec recorder.Recorder, col *collector.Client) *Server {
	s := &Server{
		handler:   NewHandler(registry, store),
		mux:       http.NewServeMux(),
		version:   version,
		store:     store,
		recorder:  rec,
		collector: col,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	// Core endpoint
	s.mux.HandleFunc("POST /estimate", s.handleEstimate)

	// Market and regional data
	s.mux.HandleFunc("GET /market/prices", s.handlePrices)
	s.mux.HandleFunc("GET /scores/{region}", s.handleScore)

	// Thin proxy routes to the public portals
	s.mux.HandleFunc("GET /energy/status", s.handleEnergyStatus)
	s.mux.HandleFunc("GET /news", s.handleNews)
	s.mux.HandleFunc("GET /policies", s.handlePolicies)

	// Supporting endpoints
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// handleEstimate handles POST /estimate
func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	var req EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	result, err := s.handler.execute(&req)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	s.writeJSON(w, result, http.StatusOK)
}

// handlePrices handles GET /market/prices. Recorder history is preferred
// over the fixture history when observations exist.
func (s *Server) handlePrices(w http.ResponseWriter, r *http.Request) {
	snapshot, err := s.store.Snapshot()
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	history := snapshot.History
	if recorded, err := s.recorder.History(30); err == nil && len(recorded) > 0 {
		history = recorded
	}

	s.writeJSON(w, &PricesResponse{
		Current: snapshot.Current,
		History: history,
		Shares:  snapshot.Shares,
	}, http.StatusOK)
}

// handleScore handles GET /scores/{region}
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	score, err := s.store.Score(r.PathValue("region"))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, &ScoreResponse{Score: score}, http.StatusOK)
}

// handleEnergyStatus handles GET /energy/status
func (s *Server) handleEnergyStatus(w http.ResponseWriter, r *http.Request) {
	status, err := s.collector.FetchEnergyStatus(r.Context())
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, status, http.StatusOK)
}

// handleNews handles GET /news
func (s *Server) handleNews(w http.ResponseWriter, r *http.Request) {
	items, err := s.collector.FetchNews(r.Context())
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, &NewsResponse{Items: items}, http.StatusOK)
}

// handlePolicies handles GET /policies
func (s *Server) handlePolicies(w http.ResponseWriter, r *http.Request) {
	policies, err := s.collector.FetchPolicies(r.Context())
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, &PoliciesResponse{Policies: policies}, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version":     s.version,
		"engine":      "greenwatt",
		"api_version": "v1",
	}, http.StatusOK)
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	s.writeJSON(w, map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	}, status)
}

// writeDomainError maps the error taxonomy to HTTP status codes
func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	code := string(errors.TypeInternal)
	status := http.StatusInternalServerError

	if e, ok := err.(*errors.Error); ok {
		code = string(e.Type)
		switch e.Type {
		case errors.TypeInput:
			status = http.StatusBadRequest
		case errors.TypeUndefined:
			status = http.StatusUnprocessableEntity
		case errors.TypeNotFound:
			status = http.StatusNotFound
		case errors.TypeNetwork, errors.TypeParsing:
			status = http.StatusBadGateway
		}
	}

	s.writeError(w, code, err.Error(), status)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the server
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
