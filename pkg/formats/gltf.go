// glTF/GLB importer. Converts triangulated glTF primitives into the same
// multi-index mesh the OBJ parser produces, so the rest of the pipeline does
// not care where a model came from.
package formats

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/Faultbox/hotdog/pkg/math"
)

// IsGLTFPath reports whether the path looks like a glTF asset.
func IsGLTFPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gltf", ".glb":
		return true
	}
	return false
}

// ParseGLTFFile imports a glTF or GLB file from disk.
//
// Node hierarchies are flattened: every mesh primitive is baked into world
// space through its node's accumulated transform. Non-triangle primitives are
// skipped. Texture V is flipped to match the OBJ bottom-left origin.
func ParseGLTFFile(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening glTF file: %w", err)
	}

	mesh := NewMesh()

	if len(doc.Scenes) > 0 {
		sceneIdx := 0
		if doc.Scene != nil {
			sceneIdx = int(*doc.Scene)
		}
		for _, nodeIdx := range doc.Scenes[sceneIdx].Nodes {
			if err := importNode(doc, int(nodeIdx), math.Identity(), mesh); err != nil {
				return nil, err
			}
		}
	} else {
		for i := range doc.Nodes {
			if err := importNode(doc, i, math.Identity(), mesh); err != nil {
				return nil, err
			}
		}
	}

	return mesh, nil
}

// importNode bakes one node's mesh into the output and recurses into children.
func importNode(doc *gltf.Document, nodeIdx int, parent math.Mat4, mesh *Mesh) error {
	node := doc.Nodes[nodeIdx]

	world := parent.Mul(nodeTransform(node))

	if node.Mesh != nil {
		for _, prim := range doc.Meshes[*node.Mesh].Primitives {
			if err := importPrimitive(doc, prim, world, mesh); err != nil {
				return fmt.Errorf("node %d: %w", nodeIdx, err)
			}
		}
	}

	for _, child := range node.Children {
		if err := importNode(doc, int(child), world, mesh); err != nil {
			return err
		}
	}

	return nil
}

// nodeTransform builds a node's local transform. An explicit matrix wins over
// the TRS components, per the glTF spec.
func nodeTransform(node *gltf.Node) math.Mat4 {
	identity := [16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
	if node.Matrix != identity && node.Matrix != [16]float64{} {
		var m math.Mat4
		for i, f := range node.Matrix {
			m[i] = float32(f)
		}
		return m
	}

	local := math.Identity()
	if node.Translation != [3]float64{} {
		local = local.Mul(math.Translate(
			float32(node.Translation[0]),
			float32(node.Translation[1]),
			float32(node.Translation[2]),
		))
	}
	if node.Rotation != [4]float64{0, 0, 0, 1} && node.Rotation != [4]float64{} {
		q := math.Quat{
			X: float32(node.Rotation[0]),
			Y: float32(node.Rotation[1]),
			Z: float32(node.Rotation[2]),
			W: float32(node.Rotation[3]),
		}
		local = local.Mul(q.ToMat4())
	}
	if node.Scale != [3]float64{1, 1, 1} && node.Scale != [3]float64{} {
		local = local.Mul(math.Scale(
			float32(node.Scale[0]),
			float32(node.Scale[1]),
			float32(node.Scale[2]),
		))
	}
	return local
}

// importPrimitive appends one triangulated primitive to the mesh.
func importPrimitive(doc *gltf.Document, prim *gltf.Primitive, world math.Mat4, mesh *Mesh) error {
	if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
		return nil
	}

	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil
	}

	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return fmt.Errorf("reading positions: %w", err)
	}

	var normals [][3]float32
	if normIdx, ok := prim.Attributes[gltf.NORMAL]; ok {
		normals, err = modeler.ReadNormal(doc, doc.Accessors[normIdx], nil)
		if err != nil {
			return fmt.Errorf("reading normals: %w", err)
		}
	}

	var uvs [][2]float32
	if uvIdx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
		uvs, err = modeler.ReadTextureCoord(doc, doc.Accessors[uvIdx], nil)
		if err != nil {
			return fmt.Errorf("reading texture coordinates: %w", err)
		}
	}

	baseVertex := len(mesh.Vertices)
	baseTexCoord := len(mesh.TexCoords)
	baseNormal := len(mesh.Normals)

	for i, p := range positions {
		mesh.AddVertex(world.TransformPoint(math.Vec3{X: p[0], Y: p[1], Z: p[2]}))

		uv := math.Vec2{}
		if i < len(uvs) {
			// glTF puts V=0 at the top; flip to the OBJ convention.
			uv = math.Vec2{U: uvs[i][0], V: 1 - uvs[i][1]}
		}
		mesh.TexCoords = append(mesh.TexCoords, uv)

		n := math.Vec3{Y: 1}
		if i < len(normals) {
			n = world.TransformDirection(math.Vec3{
				X: normals[i][0], Y: normals[i][1], Z: normals[i][2],
			}).Normalize()
		}
		mesh.Normals = append(mesh.Normals, n)
	}

	appendTriangle := func(a, b, c int) {
		mesh.Polygons = append(mesh.Polygons, Polygon{Corners: []Corner{
			{Vertex: baseVertex + a, TexCoord: baseTexCoord + a, Normal: baseNormal + a},
			{Vertex: baseVertex + b, TexCoord: baseTexCoord + b, Normal: baseNormal + b},
			{Vertex: baseVertex + c, TexCoord: baseTexCoord + c, Normal: baseNormal + c},
		}})
	}

	if prim.Indices != nil {
		indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return fmt.Errorf("reading indices: %w", err)
		}
		for i := 0; i+2 < len(indices); i += 3 {
			appendTriangle(int(indices[i]), int(indices[i+1]), int(indices[i+2]))
		}
	} else {
		for i := 0; i+2 < len(positions); i += 3 {
			appendTriangle(i, i+1, i+2)
		}
	}

	return nil
}
