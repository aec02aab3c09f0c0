// meshinfo is a CLI utility for inspecting model files without a window.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/Faultbox/hotdog/internal/engine/render"
	"github.com/Faultbox/hotdog/internal/viewer"
	"github.com/Faultbox/hotdog/pkg/formats"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "stats":
		cmdStats(args)
	case "bounds":
		cmdBounds(args)
	case "materials", "mat":
		cmdMaterials(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`meshinfo - model file inspection utility

Usage:
  meshinfo <command> [options]

Commands:
  stats <model>       Show vertex, triangle and edge counts
  bounds <model>      Show bounding box, center and framing scale
  materials <model>   Show which texture channels resolve

Examples:
  meshinfo stats crate.obj
  meshinfo bounds scene.gltf
  meshinfo materials crate.obj`)
}

func loadBundle(path string) (*viewer.Viewer, *viewer.Bundle) {
	v := viewer.New(render.NewNullBackend())
	bundle, err := v.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return v, bundle
}

func cmdStats(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshinfo stats <model>")
		os.Exit(1)
	}

	v, bundle := loadBundle(args[0])
	defer v.Close()

	fmt.Printf("File:      %s\n", bundle.Path)
	fmt.Printf("Vertices:  %d\n", bundle.Stats.Vertices)
	fmt.Printf("Triangles: %d\n", bundle.Stats.Triangles)
	fmt.Printf("Edges:     %d\n", bundle.Stats.Edges)
	fmt.Printf("Indices:   %d\n", bundle.IndexCount())
}

func cmdBounds(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshinfo bounds <model>")
		os.Exit(1)
	}

	v, bundle := loadBundle(args[0])
	defer v.Close()

	b := bundle.Bounds
	size := b.Size()
	center := bundle.Center()

	fmt.Printf("Min:    (%g, %g, %g)\n", b.Min.X, b.Min.Y, b.Min.Z)
	fmt.Printf("Max:    (%g, %g, %g)\n", b.Max.X, b.Max.Y, b.Max.Z)
	fmt.Printf("Size:   (%g, %g, %g)\n", size.X, size.Y, size.Z)
	fmt.Printf("Center: (%g, %g, %g)\n", center.X, center.Y, center.Z)
	fmt.Printf("Scale:  %g\n", bundle.ModelScale())
}

func cmdMaterials(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshinfo materials <model>")
		os.Exit(1)
	}

	v, bundle := loadBundle(args[0])
	defer v.Close()

	var names []string
	resolved := make(map[string]bool)
	for slot := formats.MaterialSlot(0); slot < formats.SlotCount; slot++ {
		names = append(names, slot.String())
		resolved[slot.String()] = bundle.Slots.Resolved(slot)
	}
	sort.Strings(names)

	for _, name := range names {
		state := "absent"
		if resolved[name] {
			state = "resolved"
		}
		fmt.Printf("%-10s %s\n", name, state)
	}
}
