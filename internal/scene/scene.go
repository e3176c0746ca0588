// Package scene stores committed shapes and turns them into draw commands.
package scene

import (
	"image"
	"image/color"
)

// Canvas dimensions of the drawing surface.
const (
	Width  = 800
	Height = 600
)

var (
	// Background fills the canvas before any shape is drawn.
	Background = color.RGBA{255, 255, 255, 255}
	// DefaultStroke is the stroke color of a fresh scene.
	DefaultStroke = color.RGBA{0, 0, 0, 255}
)

// Polygon is a committed regular polygon.
type Polygon struct {
	Sides    int
	Vertices []image.Point
}

// Circle is a committed circle addressed by the top-left corner of its
// bounding square.
type Circle struct {
	TopLeft image.Point
	Radius  int
}

// Diameter returns the side of the bounding square.
func (c Circle) Diameter() int { return 2 * c.Radius }

// Line is a committed straight segment.
type Line struct {
	Start, End image.Point
}

// Scene holds every committed shape in insertion order together with the
// single stroke color used to draw all of them.
type Scene struct {
	Polygons []Polygon
	Circles  []Circle
	Lines    []Line
	Stroke   color.RGBA
}

// New returns an empty scene with the default stroke.
func New() *Scene {
	return &Scene{Stroke: DefaultStroke}
}

// AddPolygon appends p.
func (s *Scene) AddPolygon(p Polygon) {
	s.Polygons = append(s.Polygons, p)
}

// AddCircle appends c only while the scene holds no circle yet. It reports
// whether the circle was stored.
func (s *Scene) AddCircle(c Circle) bool {
	if len(s.Circles) > 0 {
		return false
	}
	s.Circles = append(s.Circles, c)
	return true
}

// AddLine appends l unless it equals the most recently committed line.
func (s *Scene) AddLine(l Line) bool {
	if last, ok := s.LastLine(); ok && last == l {
		return false
	}
	s.Lines = append(s.Lines, l)
	return true
}

// LastCircle returns the most recently committed circle.
func (s *Scene) LastCircle() (Circle, bool) {
	if len(s.Circles) == 0 {
		return Circle{}, false
	}
	return s.Circles[len(s.Circles)-1], true
}

// LastLine returns the most recently committed line.
func (s *Scene) LastLine() (Line, bool) {
	if len(s.Lines) == 0 {
		return Line{}, false
	}
	return s.Lines[len(s.Lines)-1], true
}

// SetStroke replaces the global stroke color. Every shape picks it up on the
// next render.
func (s *Scene) SetStroke(c color.Color) {
	s.Stroke = color.RGBAModel.Convert(c).(color.RGBA)
}

// Len returns the number of committed shapes.
func (s *Scene) Len() int {
	return len(s.Polygons) + len(s.Circles) + len(s.Lines)
}
