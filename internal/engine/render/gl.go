package render

import (
	"errors"
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/hotdog/internal/engine/geometry"
	"github.com/Faultbox/hotdog/internal/logger"
)

// GLBackend uploads textures and meshes to an OpenGL 4.1 core context.
// IMPORTANT: the context must be current on the calling thread before any
// method is used.
type GLBackend struct {
	meshes     map[MeshHandle]glMesh
	nextMeshID MeshHandle
}

type glMesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

// NewGLBackend initializes OpenGL and returns a backend.
func NewGLBackend() (*GLBackend, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	return &GLBackend{meshes: make(map[MeshHandle]glMesh)}, nil
}

// UploadTexture uploads an RGBA image with mipmaps and returns its handle.
func (b *GLBackend) UploadTexture(img *image.RGBA) (TextureHandle, error) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w <= 0 || h <= 0 || len(img.Pix) == 0 {
		return NoTexture, errors.New("empty texture image")
	}

	var texID uint32
	gl.GenTextures(1, &texID)
	gl.BindTexture(gl.TEXTURE_2D, texID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)

	return TextureHandle(texID), nil
}

// ReleaseTexture frees an uploaded texture.
func (b *GLBackend) ReleaseTexture(h TextureHandle) {
	if !h.Valid() {
		return
	}
	texID := uint32(h)
	gl.DeleteTextures(1, &texID)
}

// UploadMesh uploads the interleaved vertex arena and index list produced by
// the geometry package. Attribute locations: 0 position, 1 normal, 2 UV,
// 3 tangent.
func (b *GLBackend) UploadMesh(vertices []float32, indices []uint32) (MeshHandle, error) {
	if len(vertices) == 0 || len(indices) == 0 {
		return NoMesh, errors.New("empty mesh data")
	}

	var m glMesh
	stride := int32(geometry.Stride * 4)

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	// TexCoord
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(2)
	// Tangent
	gl.VertexAttribPointerWithOffset(3, 3, gl.FLOAT, false, stride, 8*4)
	gl.EnableVertexAttribArray(3)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	m.indexCount = int32(len(indices))
	gl.BindVertexArray(0)

	b.nextMeshID++
	handle := b.nextMeshID
	b.meshes[handle] = m
	return handle, nil
}

// ReleaseMesh frees uploaded geometry.
func (b *GLBackend) ReleaseMesh(h MeshHandle) {
	m, ok := b.meshes[h]
	if !ok {
		return
	}
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
	gl.DeleteVertexArrays(1, &m.vao)
	delete(b.meshes, h)
}

// IndexCount returns the index count of an uploaded mesh, for draw calls.
func (b *GLBackend) IndexCount(h MeshHandle) int32 {
	return b.meshes[h].indexCount
}

// VAO returns the vertex array object of an uploaded mesh, for draw calls.
func (b *GLBackend) VAO(h MeshHandle) uint32 {
	return b.meshes[h].vao
}
