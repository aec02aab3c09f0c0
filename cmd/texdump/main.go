// texdump converts game texture containers to standard image formats.
package main

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"

	"github.com/Faultbox/hotdog/internal/engine/texture"
)

func main() {
	if len(os.Args) < 3 {
		printUsage()
		os.Exit(1)
	}

	inPath := os.Args[1]
	outPath := os.Args[2]

	img, err := texture.DecodeFile(inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding %s: %v\n", inPath, err)
		os.Exit(1)
	}

	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	switch strings.ToLower(filepath.Ext(outPath)) {
	case ".png":
		err = png.Encode(out, img)
	case ".webp":
		err = nativewebp.Encode(out, img, nil)
	default:
		fmt.Fprintf(os.Stderr, "Unsupported output format: %s (use .png or .webp)\n", filepath.Ext(outPath))
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding %s: %v\n", outPath, err)
		os.Exit(1)
	}

	b := img.Bounds()
	fmt.Printf("%s: %dx%d -> %s\n", filepath.Base(inPath), b.Dx(), b.Dy(), outPath)
}

func printUsage() {
	fmt.Println(`texdump - texture conversion utility

Usage:
  texdump <input> <output.png|output.webp>

Reads DDS, TGA, PNG, JPEG, BMP or WebP input.

Examples:
  texdump crate.dds crate.png
  texdump crate.tga crate.webp`)
}
