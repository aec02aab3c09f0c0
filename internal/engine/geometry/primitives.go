package geometry

import (
	gomath "math"

	"github.com/Faultbox/hotdog/pkg/formats"
	"github.com/Faultbox/hotdog/pkg/math"
)

// Cube returns a unit cube mesh centered on the origin, built from six quad
// polygons. It is the placeholder model shown before any file is loaded.
func Cube() *formats.Mesh {
	mesh := formats.NewMesh()

	for _, v := range []math.Vec3{
		{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1},
		{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1},
	} {
		mesh.AddVertex(v)
	}

	mesh.TexCoords = []math.Vec2{{U: 0, V: 0}, {U: 1, V: 0}, {U: 1, V: 1}, {U: 0, V: 1}}

	mesh.Normals = []math.Vec3{
		{Z: -1}, {Z: 1}, {X: -1}, {X: 1}, {Y: 1}, {Y: -1},
	}

	// One quad per cube face: vertex ring plus the face normal index.
	faces := []struct {
		ring   [4]int
		normal int
	}{
		{[4]int{0, 1, 2, 3}, 0}, // front
		{[4]int{5, 4, 7, 6}, 1}, // back
		{[4]int{4, 0, 3, 7}, 2}, // left
		{[4]int{1, 5, 6, 2}, 3}, // right
		{[4]int{3, 2, 6, 7}, 4}, // top
		{[4]int{4, 5, 1, 0}, 5}, // bottom
	}

	for _, f := range faces {
		poly := formats.Polygon{Corners: make([]formats.Corner, 4)}
		for i, vi := range f.ring {
			poly.Corners[i] = formats.Corner{Vertex: vi, TexCoord: i, Normal: f.normal}
		}
		mesh.Polygons = append(mesh.Polygons, poly)
	}

	return mesh
}

// Sphere returns a unit UV-sphere with the given grid resolution. Vertices
// double as their own normals; the longitude seam duplicates a column so
// texture coordinates do not wrap.
func Sphere(resolution int) *formats.Mesh {
	if resolution < 3 {
		resolution = 3
	}

	mesh := formats.NewMesh()

	for i := 0; i <= resolution; i++ {
		lat := gomath.Pi * float64(i) / float64(resolution)
		sinLat, cosLat := gomath.Sin(lat), gomath.Cos(lat)

		for j := 0; j <= resolution; j++ {
			lon := 2 * gomath.Pi * float64(j) / float64(resolution)
			sinLon, cosLon := gomath.Sin(lon), gomath.Cos(lon)

			p := math.Vec3{
				X: float32(sinLat * cosLon),
				Y: float32(cosLat),
				Z: float32(sinLat * sinLon),
			}
			mesh.AddVertex(p)
			mesh.Normals = append(mesh.Normals, p)
			mesh.TexCoords = append(mesh.TexCoords, math.Vec2{
				U: float32(j) / float32(resolution),
				V: float32(i) / float32(resolution),
			})
		}
	}

	cols := resolution + 1
	for i := 0; i < resolution; i++ {
		for j := 0; j < resolution; j++ {
			v1 := i*cols + j
			v2 := v1 + 1
			v3 := v1 + cols
			v4 := v2 + cols

			quad := [4]int{v1, v2, v4, v3}
			poly := formats.Polygon{Corners: make([]formats.Corner, 4)}
			for k, vi := range quad {
				poly.Corners[k] = formats.Corner{Vertex: vi, TexCoord: vi, Normal: vi}
			}
			mesh.Polygons = append(mesh.Polygons, poly)
		}
	}

	return mesh
}
