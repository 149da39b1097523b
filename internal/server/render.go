package server

import (
	"net/http"
	"path"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/anchorlayer/anchorage/pkg/observability"
	"github.com/anchorlayer/anchorage/pkg/pipeline"
	"github.com/anchorlayer/anchorage/pkg/scene"
)

// handleFrame renders a scene as a blueprint PNG frame.
//
// Query parameters:
//   - scale: render scale factor (default 1)
//   - all: show constraints of unselected widgets
//   - text: render widget names inside frames
//   - selected: name of the widget to render as selected
func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	sc, err := s.loadScene(r, chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	res, err := s.runner.RenderFrame(r.Context(), *sc, pipeline.FrameOptions{
		Scale:              queryFloat(r, "scale", 1),
		ShowAllConstraints: queryBool(r, "all"),
		ShowTextUI:         queryBool(r, "text"),
		Selected:           r.URL.Query().Get("selected"),
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	serveImage(w, "png", res.Data)
}

// handleDiagram renders a scene's constraint graph as a node-link
// diagram. The output format follows the URL extension (.svg or .png);
// the detailed query parameter adds geometry and visibility to labels.
func (s *Server) handleDiagram(w http.ResponseWriter, r *http.Request) {
	sc, err := s.loadScene(r, chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	format := path.Ext(r.URL.Path)[1:]
	res, err := s.runner.RenderDiagram(r.Context(), *sc, pipeline.DiagramOptions{
		Format:   format,
		Detailed: queryBool(r, "detailed"),
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	serveImage(w, format, res.Data)
}

// loadScene fetches a scene from the store.
func (s *Server) loadScene(r *http.Request, id string) (*scene.Scene, error) {
	start := time.Now()
	sc, err := s.store.Get(r.Context(), id)
	observability.Store().OnStoreOp(r.Context(), "get", time.Since(start), err)
	return sc, err
}

func serveImage(w http.ResponseWriter, format string, data []byte) {
	switch format {
	case "png":
		w.Header().Set("Content-Type", "image/png")
	case "svg":
		w.Header().Set("Content-Type", "image/svg+xml")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
