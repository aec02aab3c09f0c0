package geometry

import (
	"github.com/Faultbox/hotdog/pkg/formats"
	"github.com/Faultbox/hotdog/pkg/math"
)

// Attribute fallbacks for corners whose normal or UV index is out of range.
// Malformed meshes still render, just degraded.
var (
	defaultNormal = math.Vec3{Y: 1}
	defaultUV     = math.Vec2{}
)

// Pack interleaves the triangle list into a single vertex arena plus an
// index list, ready for upload.
//
// Every triangle corner owns its own Stride-sized record; no vertex welding
// is attempted, so the index buffer is simply 0..3n-1 in emission order.
// Tangent lanes are left zeroed for ComputeTangents to fill in a second
// pass over the same arena.
func Pack(mesh *formats.Mesh, tris []Triangle) ([]float32, []uint32) {
	packed := make([]float32, 0, len(tris)*3*Stride)
	indices := make([]uint32, 0, len(tris)*3)

	for _, tri := range tris {
		for c := 0; c < 3; c++ {
			pos := math.Vec3{}
			if vi := tri.Vertex[c]; vi >= 0 && vi < len(mesh.Vertices) {
				pos = mesh.Vertices[vi]
			}

			normal := defaultNormal
			if ni := tri.Normal[c]; ni >= 0 && ni < len(mesh.Normals) {
				normal = mesh.Normals[ni]
			}

			uv := defaultUV
			if ti := tri.TexCoord[c]; ti >= 0 && ti < len(mesh.TexCoords) {
				uv = mesh.TexCoords[ti]
			}

			indices = append(indices, uint32(len(packed)/Stride))
			packed = append(packed,
				pos.X, pos.Y, pos.Z,
				normal.X, normal.Y, normal.Z,
				uv.U, uv.V,
				0, 0, 0, // tangent placeholder
			)
		}
	}

	return packed, indices
}

// CornerPosition reads a corner's position back out of a packed arena.
func CornerPosition(packed []float32, corner int) math.Vec3 {
	base := corner*Stride + posOffset
	return math.Vec3{X: packed[base], Y: packed[base+1], Z: packed[base+2]}
}

// CornerUV reads a corner's texture coordinate out of a packed arena.
func CornerUV(packed []float32, corner int) math.Vec2 {
	base := corner*Stride + uvOffset
	return math.Vec2{U: packed[base], V: packed[base+1]}
}

// CornerTangent reads a corner's tangent out of a packed arena.
func CornerTangent(packed []float32, corner int) math.Vec3 {
	base := corner*Stride + tangentOffset
	return math.Vec3{X: packed[base], Y: packed[base+1], Z: packed[base+2]}
}
