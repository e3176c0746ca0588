// Package palette holds the named stroke colors offered by the color picker.
package palette

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/image/colornames"
)

// Entry is a palette color with its display name.
type Entry struct {
	Name  string
	Color color.RGBA
}

// DefaultIndex is the palette slot selected at start up (black).
const DefaultIndex = 0

var (
	mu      sync.RWMutex
	entries = []Entry{
		{"Black", color.RGBA{0, 0, 0, 255}},
		{"White", color.RGBA{255, 255, 255, 255}},
		{"Red", color.RGBA{255, 0, 0, 255}},
		{"Lime", color.RGBA{0, 255, 0, 255}},
		{"Blue", color.RGBA{0, 0, 255, 255}},
		{"Yellow", color.RGBA{255, 255, 0, 255}},
		{"Cyan", color.RGBA{0, 255, 255, 255}},
		{"Magenta", color.RGBA{255, 0, 255, 255}},
		{"Maroon", color.RGBA{128, 0, 0, 255}},
		{"Green", color.RGBA{0, 128, 0, 255}},
		{"Navy", color.RGBA{0, 0, 128, 255}},
		{"Olive", color.RGBA{128, 128, 0, 255}},
		{"Teal", color.RGBA{0, 128, 128, 255}},
		{"Purple", color.RGBA{128, 0, 128, 255}},
		{"Silver", color.RGBA{192, 192, 192, 255}},
		{"Gray", color.RGBA{128, 128, 128, 255}},
	}
)

// Entries returns a copy of the palette.
func Entries() []Entry {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Len returns the number of palette entries.
func Len() int {
	mu.RLock()
	defer mu.RUnlock()
	return len(entries)
}

// At returns the entry at idx, clamped to the palette.
func At(idx int) Entry {
	mu.RLock()
	defer mu.RUnlock()
	if len(entries) == 0 {
		return Entry{}
	}
	return entries[max(0, min(len(entries)-1, idx))]
}

// IndexOf returns the slot holding col or -1.
func IndexOf(col color.RGBA) int {
	mu.RLock()
	defer mu.RUnlock()
	for i, e := range entries {
		if e.Color == col {
			return i
		}
	}
	return -1
}

// Ensure makes sure col is present and returns its index. A missing name
// becomes the hex form of the color.
func Ensure(col color.RGBA, name string) int {
	mu.Lock()
	defer mu.Unlock()
	for idx, existing := range entries {
		if existing.Color == col {
			if name != "" && existing.Name == "" {
				entries[idx].Name = name
			}
			return idx
		}
	}
	if name == "" {
		name = Hex(col)
	}
	entries = append(entries, Entry{Name: name, Color: col})
	return len(entries) - 1
}

// Hex formats col as #RRGGBB, or #RRGGBBAA when it is not opaque.
func Hex(col color.RGBA) string {
	if col.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", col.R, col.G, col.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", col.R, col.G, col.B, col.A)
}

// Parse resolves a color spec. It accepts palette names, SVG color names
// and #RRGGBB or #RRGGBBAA hex values.
func Parse(s string) (color.RGBA, error) {
	spec := strings.ToLower(strings.TrimSpace(s))
	if spec == "" {
		return color.RGBA{}, fmt.Errorf("color cannot be empty")
	}
	mu.RLock()
	for _, e := range entries {
		if strings.EqualFold(e.Name, spec) {
			mu.RUnlock()
			return e.Color, nil
		}
	}
	mu.RUnlock()
	if c, ok := colornames.Map[spec]; ok {
		return c, nil
	}
	if strings.HasPrefix(spec, "#") {
		return ParseHex(spec)
	}
	return color.RGBA{}, fmt.Errorf("unknown color %q", s)
}

// ParseHex parses #RRGGBB or #RRGGBBAA.
func ParseHex(s string) (color.RGBA, error) {
	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, fmt.Errorf("color must start with #")
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid hex length in %q", s)
	}
	val, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		return color.RGBA{R: uint8(val >> 16), G: uint8(val >> 8), B: uint8(val), A: 255}, nil
	}
	return color.RGBA{R: uint8(val >> 24), G: uint8(val >> 16), B: uint8(val >> 8), A: uint8(val)}, nil
}
