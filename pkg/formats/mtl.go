// MTL (Wavefront material library) parser.
package formats

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// MaterialSlot identifies one of the six texture channels a model may bind.
type MaterialSlot int

// Material slots, in display-button order.
const (
	SlotColor MaterialSlot = iota
	SlotNormal
	SlotSpecular
	SlotRoughness
	SlotMetallic
	SlotOpacity

	SlotCount
)

// String returns a human-readable slot name.
func (s MaterialSlot) String() string {
	switch s {
	case SlotColor:
		return "color"
	case SlotNormal:
		return "normal"
	case SlotSpecular:
		return "specular"
	case SlotRoughness:
		return "roughness"
	case SlotMetallic:
		return "metallic"
	case SlotOpacity:
		return "opacity"
	default:
		return fmt.Sprintf("slot(%d)", int(s))
	}
}

// MaterialFile maps texture slots to the (usually relative) paths named by a
// material library file.
type MaterialFile struct {
	Maps map[MaterialSlot]string
}

// ParseMTL parses a material library from a reader.
//
// Each line is `mapType texturePath`; the path is the remainder of the line so
// names with spaces survive. Later lines overwrite earlier ones for the same
// slot. Unrecognized map types are ignored for forward compatibility.
func ParseMTL(r io.Reader) (*MaterialFile, error) {
	mf := &MaterialFile{Maps: make(map[MaterialSlot]string)}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || line[0] == '#' {
			continue
		}

		token, rest, ok := strings.Cut(line, " ")
		if !ok {
			continue
		}
		rest = strings.TrimSpace(rest)
		if rest == "" {
			continue
		}

		slot, ok := slotForMapType(token)
		if !ok {
			continue
		}
		mf.Maps[slot] = rest
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading MTL: %w", err)
	}

	return mf, nil
}

// ParseMTLFile parses a material library file from disk.
func ParseMTLFile(path string) (*MaterialFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening MTL file: %w", err)
	}
	defer f.Close()
	return ParseMTL(f)
}

// slotForMapType maps an MTL map directive to a texture slot.
func slotForMapType(token string) (MaterialSlot, bool) {
	switch strings.ToLower(token) {
	case "map_kd":
		return SlotColor, true
	case "map_bump", "bump", "norm":
		return SlotNormal, true
	case "map_ks":
		return SlotSpecular, true
	case "map_pr", "map_ns":
		return SlotRoughness, true
	case "map_pm":
		return SlotMetallic, true
	case "map_d":
		return SlotOpacity, true
	default:
		return 0, false
	}
}
