// Package server implements the anchorage preview server.
//
// The server exposes a JSON API for scene documents plus rendering
// endpoints that turn stored scenes into blueprint frames and
// constraint diagrams. Scenes live in a pluggable SceneStore (file or
// MongoDB); rendered artifacts are cached in a pluggable cache (file,
// Redis, or disabled).
//
// # Endpoints
//
//	GET    /healthz                          liveness probe
//	GET    /api/scenes                       list scenes
//	POST   /api/scenes                       create scene
//	GET    /api/scenes/{id}                  fetch scene
//	PUT    /api/scenes/{id}                  replace scene
//	DELETE /api/scenes/{id}                  delete scene
//	GET    /api/scenes/{id}/frame.png        render blueprint frame
//	GET    /api/scenes/{id}/diagram.svg      render constraint diagram
//	GET    /api/scenes/{id}/diagram.png      render constraint diagram
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/anchorlayer/anchorage/pkg/cache"
	apperrors "github.com/anchorlayer/anchorage/pkg/errors"
	"github.com/anchorlayer/anchorage/pkg/pipeline"
)

// Config configures the preview server.
type Config struct {
	// Store persists scene documents. Required.
	Store SceneStore

	// Cache holds rendered frames and diagrams. Defaults to a null
	// cache (rendering on every request).
	Cache cache.Cache

	// Keyer derives cache keys. Defaults to cache.NewDefaultKeyer.
	Keyer cache.Keyer

	// Logger receives request and render logs. Defaults to log.Default.
	Logger *log.Logger
}

// Server handles HTTP requests for the scene API and rendering
// endpoints.
type Server struct {
	store  SceneStore
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// New creates a preview server with the given configuration.
func New(cfg Config) *Server {
	s := &Server{
		store:  cfg.Store,
		logger: cfg.Logger,
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	s.runner = pipeline.NewRunner(cfg.Cache, cfg.Keyer, s.logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/scenes", func(r chi.Router) {
		r.Get("/", s.handleListScenes)
		r.Post("/", s.handleCreateScene)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetScene)
			r.Put("/", s.handlePutScene)
			r.Delete("/", s.handleDeleteScene)
			r.Get("/frame.png", s.handleFrame)
			r.Get("/diagram.svg", s.handleDiagram)
			r.Get("/diagram.png", s.handleDiagram)
		})
	})

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// logRequests logs method, path, status, and duration for every
// request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Millisecond))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeJSON writes v as an indented JSON response.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}

// writeError maps an error to an HTTP status and writes a JSON error
// body.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, cache.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, cache.ErrNetwork):
		status = http.StatusBadGateway
	default:
		if code := apperrors.GetCode(err); code != "" {
			status = statusForCode(code)
		}
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

// statusForCode maps application error codes to HTTP statuses.
func statusForCode(code apperrors.Code) int {
	switch code {
	case apperrors.ErrCodeInvalidInput,
		apperrors.ErrCodeInvalidScene,
		apperrors.ErrCodeInvalidSceneID,
		apperrors.ErrCodeInvalidConnection,
		apperrors.ErrCodeInvalidFormat,
		apperrors.ErrCodeInvalidScale:
		return http.StatusBadRequest
	case apperrors.ErrCodeNotFound,
		apperrors.ErrCodeSceneNotFound,
		apperrors.ErrCodeWidgetNotFound,
		apperrors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeNetwork, apperrors.ErrCodeTimeout:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// queryFloat parses a float query parameter, falling back to def when
// absent or malformed.
func queryFloat(r *http.Request, name string, def float64) float64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return v
}

// queryBool parses a boolean query parameter, treating absence as
// false.
func queryBool(r *http.Request, name string) bool {
	v, _ := strconv.ParseBool(r.URL.Query().Get(name))
	return v
}
