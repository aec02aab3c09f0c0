// Package render defines the upload boundary between the ingestion pipeline
// and the GPU. The pipeline hands over decoded pixels and packed vertex data
// and gets back opaque handles; it never issues draw calls itself.
package render

import "image"

// TextureHandle is an opaque GPU texture reference. NoTexture marks an
// absent material slot.
type TextureHandle int64

// NoTexture is the absent-slot sentinel.
const NoTexture TextureHandle = -1

// Valid reports whether the handle refers to an uploaded texture.
func (h TextureHandle) Valid() bool {
	return h != NoTexture
}

// MeshHandle is an opaque GPU geometry reference (vertex array plus its
// buffers, on backends that have them).
type MeshHandle int64

// NoMesh marks unuploaded geometry.
const NoMesh MeshHandle = -1

// Backend uploads decoded pixel and vertex data to the GPU and releases it
// again. Implementations are not safe for concurrent use; the load pipeline
// is single-threaded by design.
type Backend interface {
	// UploadTexture uploads an RGBA image and returns its handle.
	UploadTexture(img *image.RGBA) (TextureHandle, error)
	// ReleaseTexture frees an uploaded texture. NoTexture is a no-op.
	ReleaseTexture(h TextureHandle)

	// UploadMesh uploads an interleaved vertex buffer and index list.
	UploadMesh(vertices []float32, indices []uint32) (MeshHandle, error)
	// ReleaseMesh frees uploaded geometry. NoMesh is a no-op.
	ReleaseMesh(h MeshHandle)
}
