// Package formats provides parsers for the mesh and material file formats
// understood by the viewer.
package formats

import (
	gomath "math"

	"github.com/Faultbox/hotdog/pkg/math"
)

// Corner holds one polygon corner's indices into the three attribute arrays.
// Positions, texture coordinates and normals are independent index spaces.
type Corner struct {
	Vertex   int
	TexCoord int
	Normal   int
}

// Polygon is a face record with n >= 3 corners, prior to triangulation.
type Polygon struct {
	Corners []Corner
}

// Mesh holds the raw parsed mesh data.
type Mesh struct {
	Vertices  []math.Vec3
	TexCoords []math.Vec2
	Normals   []math.Vec3
	Polygons  []Polygon
	Bounds    Bounds
}

// NewMesh returns an empty mesh with an inverted bounding box, ready for
// accumulation.
func NewMesh() *Mesh {
	return &Mesh{Bounds: NewBounds()}
}

// AddVertex appends a position and folds it into the bounding box.
func (m *Mesh) AddVertex(v math.Vec3) {
	m.Vertices = append(m.Vertices, v)
	m.Bounds.Extend(v)
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// NewBounds returns an inverted bounding box so that the first Extend sets
// both corners.
func NewBounds() Bounds {
	inf := float32(gomath.Inf(1))
	return Bounds{
		Min: math.Vec3{X: inf, Y: inf, Z: inf},
		Max: math.Vec3{X: -inf, Y: -inf, Z: -inf},
	}
}

// Extend grows the box to contain the point.
func (b *Bounds) Extend(p math.Vec3) {
	b.Min = b.Min.Min(p)
	b.Max = b.Max.Max(p)
}

// Size returns the box dimensions.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Center returns the box midpoint.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// ModelScale returns the largest box dimension, used for camera framing.
func (b Bounds) ModelScale() float32 {
	s := b.Size()
	scale := s.X
	if s.Y > scale {
		scale = s.Y
	}
	if s.Z > scale {
		scale = s.Z
	}
	return scale
}
