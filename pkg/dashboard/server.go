// Package dashboard exposes the dealer checks over HTTP for the web
// dashboard and for programmatic callers.
package dashboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"dealershield/modules"
	"dealershield/pkg/catalog"
	"dealershield/pkg/costs"
	"dealershield/pkg/version"
)

// Server serves the dashboard API.
type Server struct {
	port    int
	checker *modules.Checker
	tracker *costs.Tracker
	started time.Time
	server  *http.Server
}

func NewServer(port int, checker *modules.Checker, tracker *costs.Tracker) *Server {
	return &Server{port: port, checker: checker, tracker: tracker}
}

// Routes builds the chi router for the API surface.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/health", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/validate/{cnpj}", s.handleValidate)
		r.Get("/check/{cnpj}", s.handleComprehensive)
		r.Get("/status/{cnpj}", s.checkHandler(modules.KindStatus))
		r.Get("/reputation/{cnpj}", s.checkHandler(modules.KindReputation))
		r.Get("/legal/{cnpj}", s.checkHandler(modules.KindLegal))
		r.Get("/images/{cnpj}", s.checkHandler(modules.KindImages))
		r.Get("/costs", s.handleCosts)
		r.Get("/resources", s.handleResources)
		r.Get("/resources/read", s.handleResourceRead)
		r.Get("/prompts", s.handlePrompts)
	})
	return r
}

// Start blocks serving HTTP until Stop is called or the listener fails.
func (s *Server) Start() error {
	s.started = time.Now()
	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.port),
		Handler: s.Routes(),
	}
	slog.Info("starting dashboard server", "port", s.port)
	return s.server.ListenAndServe()
}

// Stop shuts the server down.
func (s *Server) Stop() error {
	if s.server != nil {
		return s.server.Close()
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"version":   version.Version(),
		"uptime":    time.Since(s.started).Round(time.Second).String(),
		"timestamp": time.Now().UTC(),
	})
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	cnpj := chi.URLParam(r, "cnpj")
	valid := modules.ValidateCNPJ(cnpj)
	resp := map[string]any{
		"cnpj":  cnpj,
		"valid": valid,
	}
	if valid {
		resp["formatted"] = modules.FormatCNPJ(cnpj)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleComprehensive(w http.ResponseWriter, r *http.Request) {
	cnpj := chi.URLParam(r, "cnpj")
	name := r.URL.Query().Get("name")

	res, err := s.checker.ComprehensiveCheck(r.Context(), cnpj, name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) checkHandler(kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cnpj := chi.URLParam(r, "cnpj")
		name := r.URL.Query().Get("name")

		var (
			rec modules.Record
			err error
		)
		switch kind {
		case modules.KindStatus:
			rec, err = s.checker.VerifyStatus(r.Context(), cnpj)
		case modules.KindReputation:
			rec, err = s.checker.CheckReputation(r.Context(), cnpj, name)
		case modules.KindLegal:
			rec, err = s.checker.CheckLegalIssues(r.Context(), cnpj, name)
		case modules.KindImages:
			rec, err = s.checker.SearchBusinessImages(r.Context(), cnpj, name)
		}
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rec)
	}
}

func (s *Server) handleCosts(w http.ResponseWriter, r *http.Request) {
	if s.tracker == nil {
		writeJSON(w, http.StatusOK, costs.Summary{})
		return
	}
	writeJSON(w, http.StatusOK, s.tracker.Summary())
}

func (s *Server) handleResources(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"resources": catalog.ListResources()})
}

func (s *Server) handleResourceRead(w http.ResponseWriter, r *http.Request) {
	uri := r.URL.Query().Get("uri")
	content, err := catalog.ReadResource(uri)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"uri":       uri,
		"mime_type": "text/markdown",
		"content":   content,
	})
}

func (s *Server) handlePrompts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"prompts": catalog.ListPrompts()})
}

func writeError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	if errors.Is(err, modules.ErrInvalidCNPJ) {
		code = http.StatusBadRequest
	}
	writeJSON(w, code, map[string]any{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("response encode failed", "error", err)
	}
}
