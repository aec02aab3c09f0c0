package geometry

import (
	gomath "math"
	"strings"
	"testing"

	"github.com/Faultbox/hotdog/pkg/formats"
	"github.com/Faultbox/hotdog/pkg/math"
)

func quadMesh(t *testing.T) *formats.Mesh {
	t.Helper()
	objData := `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`
	mesh, err := formats.ParseOBJ(strings.NewReader(objData))
	if err != nil {
		t.Fatalf("ParseOBJ() error: %v", err)
	}
	return mesh
}

func TestTriangulate_Quad(t *testing.T) {
	mesh := quadMesh(t)
	tris := Triangulate(mesh.Polygons)

	if len(tris) != 2 {
		t.Fatalf("got %d triangles, want 2", len(tris))
	}
	if tris[0].Vertex != [3]int{0, 1, 2} {
		t.Errorf("first triangle = %v, want (0,1,2)", tris[0].Vertex)
	}
	if tris[1].Vertex != [3]int{0, 2, 3} {
		t.Errorf("second triangle = %v, want (0,2,3)", tris[1].Vertex)
	}

	// 4 boundary edges plus the shared diagonal, counted once.
	if got := CountEdges(tris); got != 5 {
		t.Errorf("CountEdges() = %d, want 5", got)
	}
}

func TestTriangulate_FanProperties(t *testing.T) {
	// For every n-gon: n-2 triangles whose vertex set equals the corner set.
	for n := 3; n <= 8; n++ {
		corners := make([]formats.Corner, n)
		for i := range corners {
			corners[i] = formats.Corner{Vertex: i}
		}
		tris := Triangulate([]formats.Polygon{{Corners: corners}})

		if len(tris) != n-2 {
			t.Errorf("n=%d: got %d triangles, want %d", n, len(tris), n-2)
		}

		used := make(map[int]bool)
		for _, tri := range tris {
			for _, v := range tri.Vertex {
				used[v] = true
			}
		}
		if len(used) != n {
			t.Errorf("n=%d: triangles reference %d distinct corners, want %d", n, len(used), n)
		}
	}
}

func TestTriangulate_SkipsDegeneratePolygons(t *testing.T) {
	polys := []formats.Polygon{
		{Corners: []formats.Corner{{Vertex: 0}, {Vertex: 1}}},
		{},
	}
	if tris := Triangulate(polys); len(tris) != 0 {
		t.Errorf("got %d triangles from degenerate polygons, want 0", len(tris))
	}
}

func TestCountEdges_SharedAcrossTriangles(t *testing.T) {
	// Two triangles sharing edge (0,2), written in opposite directions.
	tris := []Triangle{
		{Vertex: [3]int{0, 1, 2}},
		{Vertex: [3]int{2, 0, 3}},
	}
	if got := CountEdges(tris); got != 5 {
		t.Errorf("CountEdges() = %d, want 5", got)
	}
}

func TestPack_RoundTripPositions(t *testing.T) {
	mesh := quadMesh(t)
	tris := Triangulate(mesh.Polygons)
	packed, indices := Pack(mesh, tris)

	if len(packed) != len(tris)*3*Stride {
		t.Fatalf("packed length = %d, want %d", len(packed), len(tris)*3*Stride)
	}
	if len(indices) != len(tris)*3 {
		t.Fatalf("index count = %d, want %d", len(indices), len(tris)*3)
	}

	// Indices are emission order with no welding.
	for i, idx := range indices {
		if idx != uint32(i) {
			t.Fatalf("indices[%d] = %d, want %d", i, idx, i)
		}
	}

	// Positions survive packing bit for bit.
	corner := 0
	for _, tri := range tris {
		for c := 0; c < 3; c++ {
			want := mesh.Vertices[tri.Vertex[c]]
			if got := CornerPosition(packed, corner); got != want {
				t.Errorf("corner %d position = %v, want %v", corner, got, want)
			}
			corner++
		}
	}
}

func TestPack_AttributeFallbacks(t *testing.T) {
	// One triangle with normal/UV indices far out of range.
	mesh := formats.NewMesh()
	mesh.AddVertex(math.Vec3{})
	mesh.AddVertex(math.Vec3{X: 1})
	mesh.AddVertex(math.Vec3{Y: 1})

	tris := []Triangle{{
		Vertex:   [3]int{0, 1, 2},
		TexCoord: [3]int{9, 9, 9},
		Normal:   [3]int{9, 9, 9},
	}}
	packed, _ := Pack(mesh, tris)

	for c := 0; c < 3; c++ {
		base := c * Stride
		n := math.Vec3{X: packed[base+3], Y: packed[base+4], Z: packed[base+5]}
		if n != defaultNormal {
			t.Errorf("corner %d normal = %v, want %v", c, n, defaultNormal)
		}
		if uv := CornerUV(packed, c); uv != defaultUV {
			t.Errorf("corner %d uv = %v, want %v", c, uv, defaultUV)
		}
	}
}

func TestComputeTangents_UnitLength(t *testing.T) {
	objData := `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 0 1
f 1/1/1 2/2/1 3/3/1 4/4/1
`
	mesh, err := formats.ParseOBJ(strings.NewReader(objData))
	if err != nil {
		t.Fatalf("ParseOBJ() error: %v", err)
	}
	tris := Triangulate(mesh.Polygons)
	packed, _ := Pack(mesh, tris)
	ComputeTangents(packed)

	for corner := 0; corner < len(packed)/Stride; corner++ {
		tan := CornerTangent(packed, corner)
		l := tan.Length()
		if l < 0.999 || l > 1.001 {
			t.Errorf("corner %d tangent length = %v, want ~1", corner, l)
		}
	}

	// With these UVs the tangent follows the U axis.
	tan := CornerTangent(packed, 0)
	if tan.X < 0.99 {
		t.Errorf("tangent = %v, want ~(1,0,0)", tan)
	}

	// All three corners of a triangle share the flat tangent.
	if CornerTangent(packed, 1) != tan || CornerTangent(packed, 2) != tan {
		t.Error("tangent differs across the corners of one triangle")
	}
}

func TestComputeTangents_DegenerateUVsStayFinite(t *testing.T) {
	// No texture coordinates at all: every corner falls back to (0,0) and
	// the UV determinant collapses.
	mesh := formats.NewMesh()
	mesh.AddVertex(math.Vec3{})
	mesh.AddVertex(math.Vec3{X: 1})
	mesh.AddVertex(math.Vec3{Y: 1})

	tris := []Triangle{{Vertex: [3]int{0, 1, 2}}}
	packed, _ := Pack(mesh, tris)
	ComputeTangents(packed)

	for corner := 0; corner < 3; corner++ {
		tan := CornerTangent(packed, corner)
		for _, f := range []float32{tan.X, tan.Y, tan.Z} {
			if gomath.IsNaN(float64(f)) || gomath.IsInf(float64(f), 0) {
				t.Fatalf("corner %d tangent = %v, want finite", corner, tan)
			}
		}
		// Collapsed UVs leave no tangent direction; the X axis stands in so
		// the lane still carries a unit vector.
		if tan != (math.Vec3{X: 1}) {
			t.Errorf("corner %d tangent = %v, want (1,0,0)", corner, tan)
		}
	}
}

func TestCube(t *testing.T) {
	mesh := Cube()
	if len(mesh.Vertices) != 8 {
		t.Errorf("cube has %d vertices, want 8", len(mesh.Vertices))
	}
	tris := Triangulate(mesh.Polygons)
	if len(tris) != 12 {
		t.Errorf("cube triangulates to %d triangles, want 12", len(tris))
	}
	if mesh.Bounds.Min != (math.Vec3{X: -1, Y: -1, Z: -1}) || mesh.Bounds.Max != (math.Vec3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("cube bounds = %v..%v", mesh.Bounds.Min, mesh.Bounds.Max)
	}
	// Closed cube of quads: 12 boundary edges plus 6 diagonals.
	if got := CountEdges(tris); got != 18 {
		t.Errorf("cube CountEdges() = %d, want 18", got)
	}
}

func TestSphere(t *testing.T) {
	res := 8
	mesh := Sphere(res)

	wantVerts := (res + 1) * (res + 1)
	if len(mesh.Vertices) != wantVerts {
		t.Errorf("sphere has %d vertices, want %d", len(mesh.Vertices), wantVerts)
	}
	if len(mesh.Polygons) != res*res {
		t.Errorf("sphere has %d polygons, want %d", len(mesh.Polygons), res*res)
	}

	for i, v := range mesh.Vertices {
		if l := v.Length(); l > 1.001 {
			t.Fatalf("vertex %d at radius %v, want <= 1", i, l)
		}
	}
}
