// Package viewer owns the loaded model bundle: the packed geometry, its GPU
// handles, the resolved material slots, and the statistics shown to the user.
//
// A load runs start to finish on the calling goroutine. Replacing the current
// bundle only happens after the new one is fully built, so a failed load
// leaves the previous model intact.
package viewer

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/Faultbox/hotdog/internal/engine/geometry"
	"github.com/Faultbox/hotdog/internal/engine/material"
	"github.com/Faultbox/hotdog/internal/engine/render"
	"github.com/Faultbox/hotdog/internal/logger"
	"github.com/Faultbox/hotdog/pkg/formats"
	"github.com/Faultbox/hotdog/pkg/math"
)

var (
	// ErrLoadInFlight is returned when a load is requested while another is
	// still running. Callers must serialize load requests.
	ErrLoadInFlight = errors.New("a model load is already in progress")

	// ErrUnsupportedFormat is returned for mesh file extensions the viewer
	// cannot parse.
	ErrUnsupportedFormat = errors.New("unsupported mesh format")
)

// Stats summarizes a loaded mesh for display.
type Stats struct {
	Vertices  int
	Triangles int
	Edges     int
}

// Bundle is one fully loaded model: geometry on the GPU, resolved textures,
// and the numbers derived during ingestion. It is immutable after Load except
// for active-slot switching on Slots.
type Bundle struct {
	Path   string
	Mesh   render.MeshHandle
	Slots  *material.Slots
	Stats  Stats
	Bounds formats.Bounds

	indexCount int
}

// IndexCount returns the number of indices uploaded for this bundle.
func (b *Bundle) IndexCount() int { return b.indexCount }

// Center returns the bounding-box center, for camera framing.
func (b *Bundle) Center() math.Vec3 { return b.Bounds.Center() }

// ModelScale returns a uniform scale that fits the model in a unit view.
func (b *Bundle) ModelScale() float32 { return b.Bounds.ModelScale() }

// Viewer loads model files and owns at most one bundle at a time.
type Viewer struct {
	backend render.Backend
	loading atomic.Bool

	current *Bundle
}

// New returns a viewer that uploads through the given backend.
func New(backend render.Backend) *Viewer {
	return &Viewer{backend: backend}
}

// Current returns the loaded bundle, or nil when nothing is loaded.
func (v *Viewer) Current() *Bundle { return v.current }

// Load ingests the mesh at path and replaces the current bundle. On any
// failure the previous bundle is left untouched. A second Load while one is
// running fails with ErrLoadInFlight.
func (v *Viewer) Load(path string) (*Bundle, error) {
	if !v.loading.CompareAndSwap(false, true) {
		return nil, ErrLoadInFlight
	}
	defer v.loading.Store(false)

	mesh, err := parseMesh(path)
	if err != nil {
		return nil, err
	}

	slots := material.Resolve(v.backend, path)
	return v.install(path, mesh, slots)
}

// LoadPrimitive replaces the current bundle with a built-in model, either
// "cube" or "sphere". Primitives carry no textures. The same single-flight
// rule as Load applies.
func (v *Viewer) LoadPrimitive(name string, sphereResolution int) (*Bundle, error) {
	if !v.loading.CompareAndSwap(false, true) {
		return nil, ErrLoadInFlight
	}
	defer v.loading.Store(false)

	var mesh *formats.Mesh
	switch name {
	case "cube":
		mesh = geometry.Cube()
	case "sphere":
		mesh = geometry.Sphere(sphereResolution)
	default:
		return nil, fmt.Errorf("unknown primitive %q", name)
	}

	return v.install(name, mesh, material.NewSlots())
}

// install runs the common back half of a load: triangulate, pack, compute
// tangents, upload, and swap the bundle in. The previous bundle is released
// only once the new one is fully built.
func (v *Viewer) install(path string, mesh *formats.Mesh, slots *material.Slots) (*Bundle, error) {
	tris := geometry.Triangulate(mesh.Polygons)
	packed, indices := geometry.Pack(mesh, tris)
	geometry.ComputeTangents(packed)

	handle, err := v.backend.UploadMesh(packed, indices)
	if err != nil {
		slots.Release(v.backend)
		return nil, fmt.Errorf("uploading mesh: %w", err)
	}

	bundle := &Bundle{
		Path:  path,
		Mesh:  handle,
		Slots: slots,
		Stats: Stats{
			Vertices:  len(mesh.Vertices),
			Triangles: len(tris),
			Edges:     geometry.CountEdges(tris),
		},
		Bounds:     mesh.Bounds,
		indexCount: len(indices),
	}

	v.release()
	v.current = bundle

	logger.Info("model loaded",
		zap.String("path", path),
		zap.Int("vertices", bundle.Stats.Vertices),
		zap.Int("triangles", bundle.Stats.Triangles),
		zap.Int("edges", bundle.Stats.Edges),
	)
	return bundle, nil
}

// Close releases the current bundle's GPU resources.
func (v *Viewer) Close() {
	v.release()
}

func (v *Viewer) release() {
	if v.current == nil {
		return
	}
	v.current.Slots.Release(v.backend)
	v.backend.ReleaseMesh(v.current.Mesh)
	v.current = nil
}

func parseMesh(path string) (*formats.Mesh, error) {
	switch {
	case strings.EqualFold(filepath.Ext(path), ".obj"):
		return formats.ParseOBJFile(path)
	case formats.IsGLTFPath(path):
		return formats.ParseGLTFFile(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}
