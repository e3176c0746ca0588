package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/example/polypaint/internal/scene"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	red   = color.RGBA{255, 0, 0, 255}
)

func TestRasterizeEmptyFrameIsWhite(t *testing.T) {
	img := Rasterize(scene.New().Render(scene.RenderOptions{}))
	if got := img.Bounds(); got != image.Rect(0, 0, 800, 600) {
		t.Fatalf("unexpected bounds %v", got)
	}
	for _, p := range []image.Point{{0, 0}, {799, 599}, {400, 300}} {
		if c := img.RGBAAt(p.X, p.Y); c != white {
			t.Fatalf("pixel %v = %v, want white", p, c)
		}
	}
}

func TestLineEndpoints(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	Line(img, 2, 3, 15, 9, red)
	if img.RGBAAt(2, 3) != red || img.RGBAAt(15, 9) != red {
		t.Fatalf("expected both end points to be set")
	}
	count := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if img.RGBAAt(x, y) == red {
				count++
			}
		}
	}
	// a Bresenham line covers one pixel per step along the major axis
	if count != 14 {
		t.Fatalf("expected 14 pixels, got %d", count)
	}
}

func TestLineClipsOutsideImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	Line(img, -20, 5, 30, 5, red)
	for x := 0; x < 10; x++ {
		if img.RGBAAt(x, 5) != red {
			t.Fatalf("pixel %d,5 not drawn", x)
		}
	}
}

func TestPolygonIsClosed(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	Polygon(img, []image.Point{{2, 2}, {12, 2}, {12, 12}}, red)
	// the closing edge runs from (12,12) back to (2,2)
	if img.RGBAAt(7, 7) != red {
		t.Fatalf("closing edge missing")
	}
}

func TestCircleTouchesBoundingSquare(t *testing.T) {
	sc := scene.New()
	sc.SetStroke(red)
	sc.AddCircle(scene.Circle{TopLeft: image.Pt(10, 10), Radius: 20})
	img := Rasterize(sc.Render(scene.RenderOptions{}))
	for _, p := range []image.Point{{50, 30}, {10, 30}, {30, 10}, {30, 50}} {
		if img.RGBAAt(p.X, p.Y) != red {
			t.Fatalf("expected circle pixel at %v", p)
		}
	}
	if img.RGBAAt(30, 30) != white {
		t.Fatalf("circle must not be filled")
	}
}

func TestDrawUsesFrameStroke(t *testing.T) {
	sc := scene.New()
	sc.AddLine(scene.Line{Start: image.Pt(0, 0), End: image.Pt(5, 0)})
	sc.SetStroke(red)
	img := Rasterize(sc.Render(scene.RenderOptions{ShowLines: true}))
	if img.RGBAAt(3, 0) != red {
		t.Fatalf("line not drawn in the current stroke color")
	}
}

func TestZeroRadiusCircleIsAPoint(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 5, 5))
	Circle(img, 2, 2, 0, red)
	if img.RGBAAt(2, 2) != red {
		t.Fatalf("expected center pixel")
	}
}
