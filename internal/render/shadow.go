package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/anthonynsimon/bild/blur"
)

// ShadowOptions configures the drop shadow cast by the canvas.
type ShadowOptions struct {
	Radius  int
	Offset  image.Point
	Opacity float64
}

// DefaultShadowOptions returns a subtle shadow for the window backdrop.
func DefaultShadowOptions() ShadowOptions {
	return ShadowOptions{
		Radius:  6,
		Offset:  image.Pt(4, 4),
		Opacity: 0.35,
	}
}

// Shadow is the precomputed blurred shadow of an opaque rectangle.
type Shadow struct {
	size  image.Point
	mask  *image.RGBA
	alpha uint8
	opts  ShadowOptions
}

// NewShadow blurs the shadow of a size.X by size.Y rectangle. The result is
// nil when there is nothing to draw.
func NewShadow(size image.Point, opts ShadowOptions) *Shadow {
	if size.X <= 0 || size.Y <= 0 || opts.Opacity <= 0 {
		return nil
	}
	radius := max(0, opts.Radius)
	opts.Radius = radius

	mask := image.NewRGBA(image.Rect(0, 0, size.X+2*radius, size.Y+2*radius))
	draw.Draw(mask, image.Rect(radius, radius, radius+size.X, radius+size.Y), image.White, image.Point{}, draw.Src)
	if radius > 0 {
		mask = blur.Box(mask, float64(radius))
	}
	return &Shadow{
		size:  size,
		mask:  mask,
		alpha: uint8(min(1, opts.Opacity)*255 + 0.5),
		opts:  opts,
	}
}

// Size is the rectangle size the shadow was built for.
func (s *Shadow) Size() image.Point {
	if s == nil {
		return image.Point{}
	}
	return s.size
}

// Draw composites the shadow of rect onto dst. Callers draw the rectangle
// itself afterwards.
func (s *Shadow) Draw(dst *image.RGBA, rect image.Rectangle) {
	if s == nil {
		return
	}
	origin := rect.Min.Add(s.opts.Offset).Sub(image.Pt(s.opts.Radius, s.opts.Radius))
	r := s.mask.Bounds().Add(origin)
	draw.DrawMask(dst, r, image.NewUniform(color.RGBA{0, 0, 0, s.alpha}), image.Point{}, s.mask, s.mask.Bounds().Min, draw.Over)
}
