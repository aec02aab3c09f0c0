// Package geometry turns raw parsed meshes into GPU-ready vertex data:
// fan triangulation, edge statistics, interleaved packing and tangent
// generation.
package geometry

// Triangle references one index per corner into each of the three attribute
// spaces of a parsed mesh.
type Triangle struct {
	Vertex   [3]int
	TexCoord [3]int
	Normal   [3]int
}

// Interleaved vertex layout: position, normal, UV, tangent.
const (
	Stride        = 11
	posOffset     = 0
	normalOffset  = 3
	uvOffset      = 6
	tangentOffset = 8
)
