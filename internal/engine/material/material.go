// Package material resolves the texture set that accompanies a mesh file.
//
// Resolution tries a companion material file first (same base name, .mtl
// extension) and falls back to probing the mesh directory for a same-name
// image when no color map was found. Texture failures are soft: a missing
// or undecodable image leaves its slot absent, never aborting the load.
package material

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/hotdog/internal/engine/render"
	"github.com/Faultbox/hotdog/internal/engine/texture"
	"github.com/Faultbox/hotdog/internal/logger"
	"github.com/Faultbox/hotdog/pkg/formats"
)

// MaterialExt is the companion material file extension tried next to a mesh.
const MaterialExt = ".mtl"

// Slots holds up to one GPU texture per material channel. Absent channels
// carry render.NoTexture. Exactly one resolved slot is active for display.
type Slots struct {
	handles [formats.SlotCount]render.TextureHandle
	active  formats.MaterialSlot
}

// NewSlots returns a slot set with every channel absent.
func NewSlots() *Slots {
	s := &Slots{active: formats.SlotColor}
	for i := range s.handles {
		s.handles[i] = render.NoTexture
	}
	return s
}

// Handle returns the texture handle for a slot, or render.NoTexture.
func (s *Slots) Handle(slot formats.MaterialSlot) render.TextureHandle {
	if slot < 0 || slot >= formats.SlotCount {
		return render.NoTexture
	}
	return s.handles[slot]
}

// Resolved reports whether a slot carries a texture.
func (s *Slots) Resolved(slot formats.MaterialSlot) bool {
	return s.Handle(slot).Valid()
}

// ActiveSlot returns the slot currently selected for display.
func (s *Slots) ActiveSlot() formats.MaterialSlot {
	return s.active
}

// SetActiveSlot switches the displayed channel. It reports false and leaves
// the selection unchanged when the requested slot is absent.
func (s *Slots) SetActiveSlot(slot formats.MaterialSlot) bool {
	if !s.Resolved(slot) {
		return false
	}
	s.active = slot
	return true
}

// Release frees every resolved texture and marks all slots absent.
func (s *Slots) Release(backend render.Backend) {
	for i, h := range s.handles {
		if h.Valid() {
			backend.ReleaseTexture(h)
		}
		s.handles[i] = render.NoTexture
	}
	s.active = formats.SlotColor
}

// Resolve populates a slot set for the mesh at meshPath. It never fails:
// a missing material file or broken texture only leaves slots absent.
func Resolve(backend render.Backend, meshPath string) *Slots {
	slots := NewSlots()

	dir := filepath.Dir(meshPath)
	base := strings.TrimSuffix(filepath.Base(meshPath), filepath.Ext(meshPath))

	mtlPath := filepath.Join(dir, base+MaterialExt)
	if mat, err := formats.ParseMTLFile(mtlPath); err == nil {
		for slot, texPath := range mat.Maps {
			if !filepath.IsAbs(texPath) {
				texPath = filepath.Join(dir, texPath)
			}
			slots.handles[slot] = loadTexture(backend, texPath)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("material file unreadable", zap.String("path", mtlPath), zap.Error(err))
	}

	// No albedo from the material file: probe for a same-name image.
	if !slots.Resolved(formats.SlotColor) {
		for _, ext := range texture.Extensions {
			candidate := filepath.Join(dir, base+ext)
			if _, err := os.Stat(candidate); err != nil {
				continue
			}
			if h := loadTexture(backend, candidate); h.Valid() {
				slots.handles[formats.SlotColor] = h
				break
			}
		}
	}

	return slots
}

func loadTexture(backend render.Backend, path string) render.TextureHandle {
	img, err := texture.DecodeFile(path)
	if err != nil {
		logger.Warn("texture skipped", zap.String("path", path), zap.Error(err))
		return render.NoTexture
	}
	h, err := backend.UploadTexture(img)
	if err != nil {
		logger.Warn("texture upload failed", zap.String("path", path), zap.Error(err))
		return render.NoTexture
	}
	return h
}
