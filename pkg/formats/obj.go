// OBJ (Wavefront) mesh format parser.
package formats

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Faultbox/hotdog/pkg/math"
)

// OBJ format errors.
var (
	ErrMalformedVertex   = errors.New("malformed vertex record")
	ErrMalformedTexCoord = errors.New("malformed texture coordinate record")
	ErrMalformedNormal   = errors.New("malformed normal record")
	ErrMalformedFace     = errors.New("malformed face record")
)

// ParseOBJ parses an OBJ mesh from a reader.
//
// Recognized records are `v x y z`, `vt u v`, `vn x y z` and
// `f v[/vt[/vn]] ...` with at least 3 corners. Blank lines, comment lines and
// records with too few fields are skipped. The bounding box is accumulated
// while positions are read, so no second traversal is needed.
//
// Face sub-indices are 1-based in the file and converted to 0-based here. An
// empty or absent texcoord/normal sub-index maps to index 0. That biases
// malformed faces toward vertex 0's attributes, but existing assets depend on
// it, so it is preserved.
func ParseOBJ(r io.Reader) (*Mesh, error) {
	mesh := NewMesh()

	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if len(line) == 0 || line[0] == '#' {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				continue
			}
			v, err := parseVec3(fields[1:4])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w: %v", lineNum, ErrMalformedVertex, err)
			}
			mesh.AddVertex(v)

		case "vt":
			if len(fields) < 3 {
				continue
			}
			// Extra fields (3D texture coordinates) are ignored.
			u, err := parseFloat(fields[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w: %v", lineNum, ErrMalformedTexCoord, err)
			}
			v, err := parseFloat(fields[2])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w: %v", lineNum, ErrMalformedTexCoord, err)
			}
			mesh.TexCoords = append(mesh.TexCoords, math.Vec2{U: u, V: v})

		case "vn":
			if len(fields) < 4 {
				continue
			}
			n, err := parseVec3(fields[1:4])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w: %v", lineNum, ErrMalformedNormal, err)
			}
			mesh.Normals = append(mesh.Normals, n)

		case "f":
			if len(fields) < 4 {
				continue
			}
			poly := Polygon{Corners: make([]Corner, 0, len(fields)-1)}
			for _, token := range fields[1:] {
				corner, err := parseFaceCorner(token)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w: %v", lineNum, ErrMalformedFace, err)
				}
				poly.Corners = append(poly.Corners, corner)
			}
			mesh.Polygons = append(mesh.Polygons, poly)

		default:
			// Unknown directives (o, g, s, mtllib, usemtl, ...) are ignored.
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading OBJ: %w", err)
	}

	return mesh, nil
}

// ParseOBJFile parses an OBJ file from disk.
func ParseOBJFile(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening OBJ file: %w", err)
	}
	defer f.Close()
	return ParseOBJ(f)
}

// parseFaceCorner splits a face corner token (v, v/vt, v/vt/vn, v//vn) into
// zero-based attribute indices. Missing texcoord/normal parts map to index 0.
func parseFaceCorner(token string) (Corner, error) {
	parts := strings.Split(token, "/")

	vi, err := strconv.Atoi(parts[0])
	if err != nil {
		return Corner{}, fmt.Errorf("vertex index %q: %v", parts[0], err)
	}

	corner := Corner{Vertex: vi - 1}

	if len(parts) > 1 && parts[1] != "" {
		ti, err := strconv.Atoi(parts[1])
		if err != nil {
			return Corner{}, fmt.Errorf("texcoord index %q: %v", parts[1], err)
		}
		corner.TexCoord = ti - 1
	}

	if len(parts) > 2 && parts[2] != "" {
		ni, err := strconv.Atoi(parts[2])
		if err != nil {
			return Corner{}, fmt.Errorf("normal index %q: %v", parts[2], err)
		}
		corner.Normal = ni - 1
	}

	return corner, nil
}

func parseVec3(fields []string) (math.Vec3, error) {
	x, err := parseFloat(fields[0])
	if err != nil {
		return math.Vec3{}, err
	}
	y, err := parseFloat(fields[1])
	if err != nil {
		return math.Vec3{}, err
	}
	z, err := parseFloat(fields[2])
	if err != nil {
		return math.Vec3{}, err
	}
	return math.Vec3{X: x, Y: y, Z: z}, nil
}

func parseFloat(s string) (float32, error) {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, err
	}
	return float32(f), nil
}
