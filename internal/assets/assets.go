// Package assets loads furniture and environment models and derives the
// geometry summaries the scene builders consume.
package assets

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/loftlab/roomforge/pkg/geom"
	"github.com/loftlab/roomforge/pkg/wavefront"
)

// maxVertexSamples caps the vertex-Y subsample taken per model. A coarse
// fixed-stride sample is enough for floor-plane detection.
const maxVertexSamples = 4096

// Model is the resolved geometry summary of one loaded mesh.
type Model struct {
	Bounds      geom.AABB
	VertexYs    []float32
	VertexCount int
}

// Manager loads OBJ models from a directory and caches the derived
// summaries. Load failures are returned to the caller, which substitutes
// placeholder geometry; the manager never retries.
type Manager struct {
	dir   string
	cache map[string]*Model
	mu    sync.RWMutex
}

// NewManager creates a manager rooted at the given model directory.
func NewManager(dir string) *Manager {
	return &Manager{
		dir:   dir,
		cache: make(map[string]*Model),
	}
}

// Load resolves a model reference to its geometry summary. References
// without an extension resolve to "<name>.obj" under the manager's
// directory.
func (m *Manager) Load(name string) (*Model, error) {
	m.mu.RLock()
	model, ok := m.cache[name]
	m.mu.RUnlock()
	if ok {
		return model, nil
	}

	path := name
	if filepath.Ext(path) == "" {
		path += ".obj"
	}
	path = filepath.Join(m.dir, path)

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening model %s", name)
	}
	defer f.Close()

	mesh, err := wavefront.Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading model %s", name)
	}

	model = summarize(mesh)

	m.mu.Lock()
	m.cache[name] = model
	m.mu.Unlock()

	return model, nil
}

// summarize derives the bounding box and vertex-Y subsample from a mesh.
func summarize(mesh *wavefront.Model) *Model {
	model := &Model{
		Bounds:      geom.FromPoints(mesh.Positions),
		VertexCount: len(mesh.Positions),
	}

	stride := 1
	if len(mesh.Positions) > maxVertexSamples {
		stride = len(mesh.Positions) / maxVertexSamples
	}
	for i := 0; i < len(mesh.Positions); i += stride {
		model.VertexYs = append(model.VertexYs, mesh.Positions[i].Y())
	}

	return model
}
