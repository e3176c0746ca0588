// Package geom holds the integer geometry shared by the drag preview and the
// shape commit path.
package geom

import (
	"image"
	"math"
)

// DragRadius returns half the shorter side of the box spanned by a and b.
func DragRadius(a, b image.Point) int {
	return min(abs(a.X-b.X), abs(a.Y-b.Y)) / 2
}

// Midpoint returns the integer midpoint of a and b, truncated toward zero.
func Midpoint(a, b image.Point) image.Point {
	return image.Pt((a.X+b.X)/2, (a.Y+b.Y)/2)
}

// RegularPolygon returns the vertices of a regular polygon with the given
// number of sides inscribed in the drag box from a to b.
//
// Vertex 0 sits due east of the center and the following vertices advance
// by 2π/sides with increasing screen Y. Coordinates are truncated toward
// zero. A zero sized drag collapses every vertex onto the center.
func RegularPolygon(a, b image.Point, sides int) []image.Point {
	if sides < 1 {
		return nil
	}
	center := Midpoint(a, b)
	radius := float64(DragRadius(a, b))
	step := 2 * math.Pi / float64(sides)
	pts := make([]image.Point, sides)
	for i := range pts {
		angle := float64(i) * step
		pts[i] = image.Pt(
			int(float64(center.X)+radius*math.Cos(angle)),
			int(float64(center.Y)+radius*math.Sin(angle)),
		)
	}
	return pts
}

// CircleFromDrag returns the top-left corner and radius of the circle
// committed by a drag from anchor to cursor. The corner is the anchor offset
// by the radius on both axes, so the result depends on drag direction.
func CircleFromDrag(anchor, cursor image.Point) (image.Point, int) {
	r := DragRadius(anchor, cursor)
	return anchor.Sub(image.Pt(r, r)), r
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
