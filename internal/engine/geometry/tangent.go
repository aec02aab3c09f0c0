package geometry

import "github.com/Faultbox/hotdog/pkg/math"

// tangentEpsilon keeps the UV-determinant division finite when a triangle's
// texture coordinates are degenerate or absent.
const tangentEpsilon = 1e-4

// ComputeTangents fills the tangent lanes of a packed vertex arena, reading
// the position and UV lanes written by Pack.
//
// For each triangle the standard normal-mapping tangent is derived from the
// two position edges and their UV deltas, normalized, and written to all
// three corners. The tangent is flat per face, not smoothed across the mesh,
// which is close enough for normal mapping at this fidelity. When the UV
// determinant collapses the epsilon guard keeps the result finite instead of
// producing NaNs.
func ComputeTangents(packed []float32) {
	cornerCount := len(packed) / Stride

	for tri := 0; tri+2 < cornerCount; tri += 3 {
		p0 := CornerPosition(packed, tri)
		p1 := CornerPosition(packed, tri+1)
		p2 := CornerPosition(packed, tri+2)

		uv0 := CornerUV(packed, tri)
		uv1 := CornerUV(packed, tri+1)
		uv2 := CornerUV(packed, tri+2)

		edge1 := p1.Sub(p0)
		edge2 := p2.Sub(p0)
		deltaUV1 := uv1.Sub(uv0)
		deltaUV2 := uv2.Sub(uv0)

		f := 1 / (deltaUV1.U*deltaUV2.V - deltaUV2.U*deltaUV1.V + tangentEpsilon)

		tangent := edge1.Scale(deltaUV2.V).Sub(edge2.Scale(deltaUV1.V)).Scale(f).Normalize()
		if tangent.Length() == 0 {
			// Fully collapsed UVs or positions leave no direction to work
			// with; any unit vector keeps shaders well-behaved.
			tangent = math.Vec3{X: 1}
		}

		for c := tri; c < tri+3; c++ {
			base := c*Stride + tangentOffset
			packed[base] = tangent.X
			packed[base+1] = tangent.Y
			packed[base+2] = tangent.Z
		}
	}
}
