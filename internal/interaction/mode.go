package interaction

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind selects which shape a drag produces.
type Kind int

const (
	KindPolygon Kind = iota
	KindCircle
	KindLine
)

// Side count limits offered by the mode selector.
const (
	MinSides     = 3
	MaxSides     = 19
	DefaultSides = MinSides
)

// Mode is the active shape mode. Sides is only meaningful for KindPolygon.
type Mode struct {
	Kind  Kind
	Sides int
}

// Polygon returns the polygon mode with n sides clamped to the supported range.
func Polygon(n int) Mode {
	return Mode{Kind: KindPolygon, Sides: ClampSides(n)}
}

// Circle returns the circle mode.
func Circle() Mode { return Mode{Kind: KindCircle} }

// Line returns the line mode.
func Line() Mode { return Mode{Kind: KindLine} }

// DefaultMode is the mode selected at start up.
func DefaultMode() Mode { return Polygon(DefaultSides) }

// ClampSides limits n to [MinSides, MaxSides].
func ClampSides(n int) int {
	return max(MinSides, min(MaxSides, n))
}

func (m Mode) String() string {
	switch m.Kind {
	case KindPolygon:
		return fmt.Sprintf("polygon:%d", m.Sides)
	case KindCircle:
		return "circle"
	case KindLine:
		return "line"
	}
	return fmt.Sprintf("Mode(%d)", int(m.Kind))
}

// Label is the human readable form shown in window titles and listings.
func (m Mode) Label() string {
	switch m.Kind {
	case KindPolygon:
		return fmt.Sprintf("Polygon (%d sides)", m.Sides)
	case KindCircle:
		return "Circle"
	case KindLine:
		return "Line"
	}
	return m.String()
}

// Modes lists every selectable mode in selector order.
func Modes() []Mode {
	out := []Mode{Circle(), Line()}
	for n := MinSides; n <= MaxSides; n++ {
		out = append(out, Polygon(n))
	}
	return out
}

// ParseMode accepts "circle", "line", "polygon", "polygon:N" or a bare
// side count. Side counts outside the supported range are rejected.
func ParseMode(s string) (Mode, error) {
	spec := strings.ToLower(strings.TrimSpace(s))
	switch spec {
	case "":
		return Mode{}, fmt.Errorf("mode cannot be empty")
	case "circle", "oval":
		return Circle(), nil
	case "line":
		return Line(), nil
	case "polygon", "poly":
		return Polygon(DefaultSides), nil
	}
	num := spec
	if name, rest, ok := strings.Cut(spec, ":"); ok {
		if name != "polygon" && name != "poly" {
			return Mode{}, fmt.Errorf("unknown mode %q", s)
		}
		num = rest
	}
	n, err := ParseSides(num)
	if err != nil {
		return Mode{}, fmt.Errorf("mode %q: %w", s, err)
	}
	return Polygon(n), nil
}

// ParseSides parses a polygon side count.
func ParseSides(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid side count %q", s)
	}
	if n < MinSides || n > MaxSides {
		return 0, fmt.Errorf("side count %d out of range %d-%d", n, MinSides, MaxSides)
	}
	return n, nil
}
