// Package texture provides image decoding for model textures.
//
// The two legacy containers (DDS, TGA) have hand-rolled decoders to stay
// byte-compatible with existing assets; every other raster format goes
// through image.Decode with the formats below registered.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Extensions lists the file extensions Decode understands, in the order the
// material resolver probes them when looking for a companion texture.
var Extensions = []string{".dds", ".tga", ".png", ".jpg", ".jpeg", ".bmp", ".webp"}

// Decode decodes raw texture bytes, picking the decoder by file extension.
func Decode(data []byte, path string) (*image.RGBA, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".dds":
		return DecodeDDS(data)
	case ".tga":
		return DecodeTGA(data)
	default:
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
		}
		return ImageToRGBA(img), nil
	}
}

// DecodeFile reads and decodes a texture file from disk.
func DecodeFile(path string) (*image.RGBA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading texture: %w", err)
	}
	return Decode(data, path)
}

// ImageToRGBA converts any image.Image to *image.RGBA.
func ImageToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r16, g16, b16, a16 := img.At(x, y).RGBA()
			rgba.SetRGBA(x, y, color.RGBA{
				R: uint8(r16 >> 8),
				G: uint8(g16 >> 8),
				B: uint8(b16 >> 8),
				A: uint8(a16 >> 8),
			})
		}
	}
	return rgba
}
