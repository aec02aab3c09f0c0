package render

import "image"

// NullBackend counts uploads without touching a GPU. It backs headless tools
// and tests that exercise the load pipeline without an OpenGL context.
type NullBackend struct {
	nextTexture TextureHandle
	nextMesh    MeshHandle

	Textures map[TextureHandle]image.Point
	Meshes   map[MeshHandle]int
}

func NewNullBackend() *NullBackend {
	return &NullBackend{
		Textures: make(map[TextureHandle]image.Point),
		Meshes:   make(map[MeshHandle]int),
	}
}

func (b *NullBackend) UploadTexture(img *image.RGBA) (TextureHandle, error) {
	b.nextTexture++
	b.Textures[b.nextTexture] = img.Bounds().Size()
	return b.nextTexture, nil
}

func (b *NullBackend) ReleaseTexture(h TextureHandle) {
	delete(b.Textures, h)
}

func (b *NullBackend) UploadMesh(vertices []float32, indices []uint32) (MeshHandle, error) {
	b.nextMesh++
	b.Meshes[b.nextMesh] = len(indices)
	return b.nextMesh, nil
}

func (b *NullBackend) ReleaseMesh(h MeshHandle) {
	delete(b.Meshes, h)
}
