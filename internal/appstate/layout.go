package appstate

import (
	"image"
	"math"

	"github.com/example/polypaint/internal/scene"
)

const (
	toolbarHeight = 28
	statusHeight  = 24
	buttonHeight  = 20
	swatchSize    = 16
)

// windowSize is the initial window size: the canvas at full scale plus the
// bars above and below it.
func windowSize() (int, int) {
	return scene.Width, scene.Height + toolbarHeight + statusHeight
}

// viewport places the canvas inside the window. The canvas is anchored just
// below the toolbar and only ever scaled down.
type viewport struct {
	rect image.Rectangle
	zoom float64
}

func fitZoom(winW, winH int) float64 {
	availW := winW
	availH := winH - toolbarHeight - statusHeight
	if availW <= 0 || availH <= 0 {
		return 1
	}
	z := math.Min(float64(availW)/scene.Width, float64(availH)/scene.Height)
	return math.Min(1, z)
}

func canvasViewport(winW, winH int) viewport {
	z := fitZoom(winW, winH)
	w := int(float64(scene.Width) * z)
	h := int(float64(scene.Height) * z)
	return viewport{rect: image.Rect(0, toolbarHeight, w, toolbarHeight+h), zoom: z}
}

// toCanvas maps a window pixel to canvas coordinates. Points outside the
// canvas map outside its bounds.
func (v viewport) toCanvas(p image.Point) image.Point {
	d := p.Sub(v.rect.Min)
	return image.Pt(
		int(math.Floor(float64(d.X)/v.zoom)),
		int(math.Floor(float64(d.Y)/v.zoom)),
	)
}

func (v viewport) contains(p image.Point) bool {
	return p.In(v.rect)
}
