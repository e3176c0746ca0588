// Package render rasterizes scene frames onto RGBA images.
package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/example/polypaint/internal/scene"
)

// Rasterize returns a new image of the frame's size with f drawn on it.
func Rasterize(f scene.Frame) *image.RGBA {
	img := image.NewRGBA(image.Rectangle{Max: f.Size})
	Draw(img, f)
	return img
}

// Draw clears dst to the frame background and executes every command with
// the frame's stroke color. Pixels outside dst are clipped.
func Draw(dst *image.RGBA, f scene.Frame) {
	draw.Draw(dst, dst.Bounds(), &image.Uniform{f.Background}, image.Point{}, draw.Src)
	for _, c := range f.Commands {
		Command(dst, c, f.Stroke)
	}
}

// Command draws a single command in col.
func Command(dst *image.RGBA, c scene.Command, col color.RGBA) {
	switch c.Kind {
	case scene.CommandPolygon:
		Polygon(dst, c.Points, col)
	case scene.CommandOval:
		r := c.Diameter / 2
		Circle(dst, c.Origin.X+r, c.Origin.Y+r, r, col)
	case scene.CommandLine:
		if len(c.Points) == 2 {
			Line(dst, c.Points[0].X, c.Points[0].Y, c.Points[1].X, c.Points[1].Y, col)
		}
	}
}

func setPixel(img *image.RGBA, x, y int, col color.RGBA) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.SetRGBA(x, y, col)
	}
}

// Line draws a one pixel Bresenham segment including both end points.
func Line(img *image.RGBA, x0, y0, x1, y1 int, col color.RGBA) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		setPixel(img, x0, y0, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Polygon draws the closed outline through pts.
func Polygon(img *image.RGBA, pts []image.Point, col color.RGBA) {
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		Line(img, p.X, p.Y, q.X, q.Y, col)
	}
}

// Circle draws a midpoint circle outline centered on (cx, cy).
func Circle(img *image.RGBA, cx, cy, r int, col color.RGBA) {
	if r <= 0 {
		setPixel(img, cx, cy, col)
		return
	}
	x := r
	y := 0
	err := 1 - r
	for x >= y {
		setPixel(img, cx+x, cy+y, col)
		setPixel(img, cx+y, cy+x, col)
		setPixel(img, cx-y, cy+x, col)
		setPixel(img, cx-x, cy+y, col)
		setPixel(img, cx-x, cy-y, col)
		setPixel(img, cx-y, cy-x, col)
		setPixel(img, cx+y, cy-x, col)
		setPixel(img, cx+x, cy-y, col)
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2 * (y - x + 1)
		}
	}
}

// Rect draws the one pixel outline just inside rect.
func Rect(img *image.RGBA, rect image.Rectangle, col color.RGBA) {
	Line(img, rect.Min.X, rect.Min.Y, rect.Max.X-1, rect.Min.Y, col)
	Line(img, rect.Max.X-1, rect.Min.Y, rect.Max.X-1, rect.Max.Y-1, col)
	Line(img, rect.Max.X-1, rect.Max.Y-1, rect.Min.X, rect.Max.Y-1, col)
	Line(img, rect.Min.X, rect.Max.Y-1, rect.Min.X, rect.Min.Y, col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
