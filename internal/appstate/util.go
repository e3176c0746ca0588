package appstate

import (
	"image"
	"image/color"
	"image/draw"
	"log"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var messageFace font.Face

func init() {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Fatalf("parse font: %v", err)
	}
	messageFace, err = opentype.NewFace(f, &opentype.FaceOptions{Size: 24, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		log.Fatalf("font face: %v", err)
	}
}

func fill(dst *image.RGBA, r image.Rectangle, col color.Color) {
	draw.Draw(dst, r, &image.Uniform{col}, image.Point{}, draw.Src)
}

func textWidth(s string) int {
	d := &font.Drawer{Face: basicfont.Face7x13}
	return d.MeasureString(s).Ceil()
}

// drawLabel writes s with its baseline vertically centered in r.
func drawLabel(dst *image.RGBA, r image.Rectangle, s string, col color.Color) {
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(col), Face: basicfont.Face7x13,
		Dot: fixed.P(r.Min.X+4, r.Min.Y+(r.Dy()+10)/2)}
	d.DrawString(s)
}

// drawMessage paints s in a box centered on the window.
func drawMessage(dst *image.RGBA, s string, fg, bg, border color.RGBA) {
	b := dst.Bounds()
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(fg), Face: messageFace}
	w := d.MeasureString(s).Ceil()
	ascent := messageFace.Metrics().Ascent.Ceil()
	descent := messageFace.Metrics().Descent.Ceil()
	px := b.Min.X + (b.Dx()-w)/2
	py := b.Min.Y + (b.Dy()-ascent-descent)/2 + ascent
	box := image.Rect(px-8, py-ascent-8, px+w+8, py+descent+8)
	draw.Draw(dst, box, &image.Uniform{bg}, image.Point{}, draw.Over)
	outline(dst, box, border)
	d.Dot = fixed.P(px, py)
	d.DrawString(s)
}

func outline(dst *image.RGBA, r image.Rectangle, col color.RGBA) {
	fill(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), col)
	fill(dst, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), col)
	fill(dst, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), col)
	fill(dst, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), col)
}
