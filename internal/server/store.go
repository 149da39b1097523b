package server

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/anchorlayer/anchorage/pkg/cache"
	apperrors "github.com/anchorlayer/anchorage/pkg/errors"
	"github.com/anchorlayer/anchorage/pkg/scene"
)

// SceneStore is the interface for scene persistence backends.
type SceneStore interface {
	// Get retrieves a scene by ID. Returns cache.ErrNotFound if the
	// scene does not exist.
	Get(ctx context.Context, id string) (*scene.Scene, error)

	// List returns all stored scenes, sorted by ID.
	List(ctx context.Context) ([]*scene.Scene, error)

	// Put stores a scene, overwriting any existing scene with the same ID.
	Put(ctx context.Context, sc *scene.Scene) error

	// Delete removes a scene. Deleting a missing scene is not an error.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close() error
}

// FileStore is a file-based scene store for single-process deployments.
// Each scene is stored as a JSON document named after its ID.
type FileStore struct {
	mu  sync.RWMutex
	dir string
}

// NewFileStore creates a file-based scene store in dir, creating the
// directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create scene dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) scenePath(id string) string {
	// IDs are validated before reaching the filesystem so a crafted ID
	// cannot escape the store directory.
	return filepath.Join(s.dir, id+".json")
}

func validID(id string) bool {
	return apperrors.ValidateSceneID(id) == nil
}

func (s *FileStore) Get(ctx context.Context, id string) (*scene.Scene, error) {
	if !validID(id) {
		return nil, cache.ErrNotFound
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.scenePath(id))
	if os.IsNotExist(err) {
		return nil, cache.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read scene file: %w", err)
	}

	var sc scene.Scene
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scene %s: %w", id, err)
	}
	return &sc, nil
}

func (s *FileStore) List(ctx context.Context) ([]*scene.Scene, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read scene dir: %w", err)
	}

	var scenes []*scene.Scene
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			continue
		}
		var sc scene.Scene
		if err := json.Unmarshal(data, &sc); err != nil {
			continue
		}
		scenes = append(scenes, &sc)
	}

	sort.Slice(scenes, func(i, j int) bool { return scenes[i].ID < scenes[j].ID })
	return scenes, nil
}

func (s *FileStore) Put(ctx context.Context, sc *scene.Scene) error {
	if err := apperrors.ValidateSceneID(sc.ID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(sc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}
	if err := os.WriteFile(s.scenePath(sc.ID), data, 0o644); err != nil {
		return fmt.Errorf("write scene file: %w", err)
	}
	return nil
}

func (s *FileStore) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.scenePath(id)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove scene file: %w", err)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }

var _ SceneStore = (*FileStore)(nil)
