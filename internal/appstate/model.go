package appstate

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"time"

	"github.com/example/polypaint/internal/clipboard"
	"github.com/example/polypaint/internal/interaction"
	"github.com/example/polypaint/internal/palette"
	"github.com/example/polypaint/internal/render"
	"github.com/example/polypaint/internal/scene"
	"golang.org/x/mobile/event/mouse"
)

var (
	writeImage = clipboard.WriteImage
	writeText  = clipboard.WriteText
)

const messageDuration = 2 * time.Second

// Notifier announces clipboard copies.
type Notifier interface {
	Copy(detail string, img image.Image)
	CopyText(detail string)
}

// model is the window's state apart from the chrome. It is only touched
// from the event loop once the window is open.
type model struct {
	scene    *scene.Scene
	state    *interaction.State
	notifier Notifier
	canvas   *image.RGBA

	// sides is the polygon side selector. It survives switching to the
	// circle or line modes.
	sides int

	message      string
	messageUntil time.Time
	quit         bool
}

func newModel(sc *scene.Scene, mode interaction.Mode) *model {
	m := &model{
		scene:  sc,
		state:  interaction.New(interaction.DefaultMode()),
		sides:  interaction.DefaultSides,
		canvas: image.NewRGBA(image.Rect(0, 0, scene.Width, scene.Height)),
	}
	m.setMode(mode)
	return m
}

func (m *model) setMode(mode interaction.Mode) {
	m.state.SetMode(mode)
	if m.state.Mode.Kind == interaction.KindPolygon {
		m.sides = m.state.Mode.Sides
	}
}

func (m *model) selectCircle()  { m.setMode(interaction.Circle()) }
func (m *model) selectLine()    { m.setMode(interaction.Line()) }
func (m *model) selectPolygon() { m.setMode(interaction.Polygon(m.sides)) }

// setSides moves the selector and switches straight to polygon mode.
func (m *model) setSides(n int) {
	m.setMode(interaction.Polygon(interaction.ClampSides(n)))
}

func (m *model) adjustSides(delta int) { m.setSides(m.sides + delta) }

func (m *model) setColor(c color.RGBA) { m.scene.SetStroke(c) }

func (m *model) pickColor(idx int) { m.setColor(palette.At(idx).Color) }

// colorIndex returns the palette slot of the stroke color or -1.
func (m *model) colorIndex() int { return palette.IndexOf(m.scene.Stroke) }

func (m *model) cycleColor(delta int) {
	n := palette.Len()
	if n == 0 {
		return
	}
	i := m.colorIndex()
	switch {
	case i < 0 && delta > 0:
		i = 0
	case i < 0:
		i = n - 1
	default:
		i = ((i+delta)%n + n) % n
	}
	m.pickColor(i)
}

func (m *model) colorName() string {
	if i := m.colorIndex(); i >= 0 {
		return palette.At(i).Name
	}
	return palette.Hex(m.scene.Stroke)
}

func (m *model) frame() scene.Frame { return m.state.Frame(m.scene) }

// raster redraws the current frame into the reusable canvas image.
func (m *model) raster() *image.RGBA {
	render.Draw(m.canvas, m.frame())
	return m.canvas
}

func (m *model) copyImage() {
	img := render.Rasterize(m.frame())
	if err := writeImage(img); err != nil {
		log.Printf("copy image: %v", err)
		m.flash("Copy failed")
		return
	}
	m.flash("Copied to clipboard")
	if m.notifier != nil {
		m.notifier.Copy(fmt.Sprintf("%d shapes", m.scene.Len()), img)
	}
}

func (m *model) copyText() {
	if err := writeText(m.frame().String()); err != nil {
		log.Printf("copy text: %v", err)
		m.flash("Copy failed")
		return
	}
	m.flash("Copied frame listing")
	if m.notifier != nil {
		m.notifier.CopyText(fmt.Sprintf("%d shapes", m.scene.Len()))
	}
}

func (m *model) flash(msg string) {
	m.message = msg
	m.messageUntil = time.Now().Add(messageDuration)
}

func (m *model) activeMessage(now time.Time) string {
	if m.message == "" || !now.Before(m.messageUntil) {
		return ""
	}
	return m.message
}

// handleMouse routes a window mouse event to the drag state machine or the
// chrome. It reports whether the window needs a repaint.
func handleMouse(m *model, ui *chrome, vp viewport, e mouse.Event) bool {
	p := image.Pt(int(e.X), int(e.Y))
	if m.state.Dragging() {
		c := vp.toCanvas(p)
		switch {
		case e.Direction == mouse.DirRelease && e.Button == mouse.ButtonLeft:
			m.state.PointerUp(c, m.scene)
			return true
		case e.Direction == mouse.DirNone:
			return m.state.PointerMove(c, m.scene)
		}
		return false
	}
	if vp.contains(p) {
		redraw := ui.setHover(nil)
		if e.Direction == mouse.DirPress && e.Button == mouse.ButtonLeft {
			m.state.PointerDown(vp.toCanvas(p))
		}
		return redraw
	}
	b := ui.hit(p)
	redraw := ui.setHover(b)
	if b != nil && e.Direction == mouse.DirPress && e.Button == mouse.ButtonLeft {
		b.Activate()
		return true
	}
	return redraw
}
