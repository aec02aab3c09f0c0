package geometry

import "github.com/Faultbox/hotdog/pkg/formats"

// Triangulate converts n-gon polygons into a flat triangle list by fan
// triangulation: a polygon with corners c0..c(k-1) yields the k-2 triangles
// (c0, ci, ci+1). Triangles are the k==3 case of the same loop. The fan
// assumes convex, planar polygons; a non-convex polygon produces a
// geometrically wrong but still renderable fan, which is not detected.
func Triangulate(polygons []formats.Polygon) []Triangle {
	var tris []Triangle
	for _, poly := range polygons {
		if len(poly.Corners) < 3 {
			continue
		}
		for i := 1; i+1 < len(poly.Corners); i++ {
			c0, ci, cj := poly.Corners[0], poly.Corners[i], poly.Corners[i+1]
			tris = append(tris, Triangle{
				Vertex:   [3]int{c0.Vertex, ci.Vertex, cj.Vertex},
				TexCoord: [3]int{c0.TexCoord, ci.TexCoord, cj.TexCoord},
				Normal:   [3]int{c0.Normal, ci.Normal, cj.Normal},
			})
		}
	}
	return tris
}

// edge is an undirected vertex-index pair, normalized low/high.
type edge struct {
	a, b int
}

func makeEdge(v1, v2 int) edge {
	if v1 > v2 {
		v1, v2 = v2, v1
	}
	return edge{v1, v2}
}

// CountEdges returns the number of distinct undirected edges across all
// triangles. An edge shared by several triangles (a quad's diagonal, a seam)
// is counted once.
func CountEdges(tris []Triangle) int {
	seen := make(map[edge]struct{}, len(tris)*3)
	for _, t := range tris {
		seen[makeEdge(t.Vertex[0], t.Vertex[1])] = struct{}{}
		seen[makeEdge(t.Vertex[1], t.Vertex[2])] = struct{}{}
		seen[makeEdge(t.Vertex[2], t.Vertex[0])] = struct{}{}
	}
	return len(seen)
}
