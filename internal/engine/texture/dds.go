package texture

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"
)

// DDS format errors.
var (
	ErrInvalidDDSMagic    = errors.New("invalid DDS magic: expected 'DDS '")
	ErrTruncatedDDS       = errors.New("truncated DDS data")
	ErrInvalidDDSDimensions = errors.New("invalid DDS dimensions")
)

// The header region is the 4-byte magic plus the 124-byte DDS_HEADER.
const ddsHeaderSize = 128

// DecodeDDS decodes an uncompressed 32-bit DDS image.
//
// Only the magic and the dimension fields are interpreted: height sits at
// byte offset 12 and width at offset 16 — height first, which trips up
// anyone expecting the usual order. The rest of the header is skipped and
// the payload is read as raw BGRA rows in stored order.
func DecodeDDS(data []byte) (*image.RGBA, error) {
	if len(data) < ddsHeaderSize {
		return nil, ErrTruncatedDDS
	}
	if string(data[0:4]) != "DDS " {
		return nil, ErrInvalidDDSMagic
	}

	height := int(int32(binary.LittleEndian.Uint32(data[12:16])))
	width := int(int32(binary.LittleEndian.Uint32(data[16:20])))

	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDDSDimensions, width, height)
	}
	// Divide instead of multiplying so a crafted header claiming huge
	// dimensions cannot overflow the payload-size computation.
	if rows := (len(data) - ddsHeaderSize) / 4 / width; rows < height {
		return nil, ErrTruncatedDDS
	}

	pixelData := data[ddsHeaderSize:]

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := (y*width + x) * 4
			img.SetRGBA(x, y, color.RGBA{
				R: pixelData[i+2],
				G: pixelData[i+1],
				B: pixelData[i],
				A: pixelData[i+3],
			})
		}
	}

	return img, nil
}
