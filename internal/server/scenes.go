package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/anchorlayer/anchorage/pkg/errors"
	"github.com/anchorlayer/anchorage/pkg/observability"
	"github.com/anchorlayer/anchorage/pkg/scene"
)

func (s *Server) handleListScenes(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	scenes, err := s.store.List(r.Context())
	observability.Store().OnStoreOp(r.Context(), "list", time.Since(start), err)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if scenes == nil {
		scenes = []*scene.Scene{}
	}
	s.writeJSON(w, http.StatusOK, scenes)
}

func (s *Server) handleCreateScene(w http.ResponseWriter, r *http.Request) {
	sc, err := decodeScene(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if sc.ID == "" {
		sc.ID = scene.NewID()
	}

	start := time.Now()
	err = s.store.Put(r.Context(), sc)
	observability.Store().OnStoreOp(r.Context(), "put", time.Since(start), err)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.logger.Info("scene created", "id", sc.ID, "name", sc.Name)
	s.writeJSON(w, http.StatusCreated, sc)
}

func (s *Server) handleGetScene(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	sc, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	observability.Store().OnStoreOp(r.Context(), "get", time.Since(start), err)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, sc)
}

func (s *Server) handlePutScene(w http.ResponseWriter, r *http.Request) {
	sc, err := decodeScene(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	// The URL is authoritative for the scene ID.
	sc.ID = chi.URLParam(r, "id")

	start := time.Now()
	err = s.store.Put(r.Context(), sc)
	observability.Store().OnStoreOp(r.Context(), "put", time.Since(start), err)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, sc)
}

func (s *Server) handleDeleteScene(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	err := s.store.Delete(r.Context(), chi.URLParam(r, "id"))
	observability.Store().OnStoreOp(r.Context(), "delete", time.Since(start), err)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// decodeScene parses and validates a scene document from the request
// body. Validation builds the constraint graph, so structural problems
// (unknown widgets, incompatible anchors, duplicate names) are rejected
// before the scene is stored.
func decodeScene(r *http.Request) (*scene.Scene, error) {
	var sc scene.Scene
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&sc); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "parsing scene document")
	}
	if sc.ID != "" {
		if err := apperrors.ValidateSceneID(sc.ID); err != nil {
			return nil, err
		}
	}
	if _, err := scene.ToGraph(sc); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidScene, err, "invalid scene")
	}
	return &sc, nil
}
