package appstate

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/example/polypaint/internal/interaction"
	"github.com/example/polypaint/internal/palette"
	"github.com/example/polypaint/internal/render"
	"github.com/example/polypaint/internal/theme"
)

// ButtonState describes the visual state of a button.
type ButtonState int

const (
	StateDefault ButtonState = iota
	StateHover
	StatePressed
)

// Button represents an interactive UI element.
// Activate performs the button's action when clicked.
type Button interface {
	Draw(dst *image.RGBA, state ButtonState)
	Rect() image.Rectangle
	SetRect(r image.Rectangle)
	Activate()
}

// CacheButton wraps another Button and caches its rendered states.
type CacheButton struct {
	Button
	cache [3]*image.RGBA
}

var _ Button = (*CacheButton)(nil)

func (cb *CacheButton) Draw(dst *image.RGBA, state ButtonState) {
	if cb.cache[state] == nil {
		img := image.NewRGBA(cb.Button.Rect())
		cb.Button.Draw(img, state)
		cb.cache[state] = img
	}
	draw.Draw(dst, cb.Button.Rect(), cb.cache[state], cb.Button.Rect().Min, draw.Src)
}

func (cb *CacheButton) SetRect(r image.Rectangle) {
	if r != cb.Button.Rect() {
		cb.Button.SetRect(r)
		cb.Invalidate()
	}
}

// Invalidate drops the cached renders, e.g. after a theme change.
func (cb *CacheButton) Invalidate() { cb.cache = [3]*image.RGBA{} }

// ToolButton is a labelled toolbar button. It draws pressed while active
// reports true.
type ToolButton struct {
	label    string
	rect     image.Rectangle
	ui       *chrome
	active   func() bool
	onSelect func()
}

func (tb *ToolButton) Draw(dst *image.RGBA, state ButtonState) {
	th := tb.ui.theme
	bg, fg := th.ButtonBackground, th.ButtonText
	switch state {
	case StateHover:
		bg = th.ButtonBackgroundHover
	case StatePressed:
		bg, fg = th.ButtonBackgroundPress, th.ButtonTextPress
	}
	fill(dst, tb.rect, bg)
	outline(dst, tb.rect, th.ButtonBorder)
	drawLabel(dst, tb.rect, tb.label, fg)
}

func (tb *ToolButton) Rect() image.Rectangle     { return tb.rect }
func (tb *ToolButton) SetRect(r image.Rectangle) { tb.rect = r }

func (tb *ToolButton) Activate() {
	if tb.onSelect != nil {
		tb.onSelect()
	}
}

func (tb *ToolButton) isActive() bool { return tb.active != nil && tb.active() }

// Shortcut is a status bar hint that runs its action when clicked.
type Shortcut struct {
	label  string
	action func()
	rect   image.Rectangle
	ui     *chrome
}

func (s *Shortcut) Draw(dst *image.RGBA, state ButtonState) {
	th := s.ui.theme
	bg := th.ToolbarBackground
	switch state {
	case StateHover:
		bg = th.ButtonBackgroundHover
	case StatePressed:
		bg = th.ButtonBackgroundPress
	}
	fill(dst, s.rect, bg)
	drawLabel(dst, s.rect, s.label, th.Foreground)
}

func (s *Shortcut) Rect() image.Rectangle     { return s.rect }
func (s *Shortcut) SetRect(r image.Rectangle) { s.rect = r }

func (s *Shortcut) Activate() {
	if s.action != nil {
		s.action()
	}
}

// Swatch selects a palette color.
type Swatch struct {
	index int
	rect  image.Rectangle
	ui    *chrome
	pick  func(int)
}

func (sw *Swatch) Draw(dst *image.RGBA, state ButtonState) {
	th := sw.ui.theme
	fill(dst, sw.rect, palette.At(sw.index).Color)
	border := th.SwatchBorder
	if state == StatePressed {
		border = th.SwatchSelected
	}
	outline(dst, sw.rect, border)
	if state == StateHover {
		outline(dst, sw.rect.Inset(1), th.SwatchSelected)
	}
}

func (sw *Swatch) Rect() image.Rectangle     { return sw.rect }
func (sw *Swatch) SetRect(r image.Rectangle) { sw.rect = r }

func (sw *Swatch) Activate() {
	if sw.pick != nil {
		sw.pick(sw.index)
	}
}

// chrome holds the toolbar above the canvas and the status bar below it.
type chrome struct {
	m         *model
	theme     *theme.Theme
	tools     []*CacheButton
	swatches  []*Swatch
	shortcuts []*Shortcut
	hover     Button
	shadow    *render.Shadow

	sidesRect   image.Rectangle
	currentRect image.Rectangle
	width       int
	height      int
}

func newChrome(m *model, acts *actions, th *theme.Theme) *chrome {
	c := &chrome{m: m, theme: th}
	tool := func(label, action string, active func() bool) *CacheButton {
		return &CacheButton{Button: &ToolButton{
			label:    label,
			ui:       c,
			active:   active,
			onSelect: func() { acts.trigger(action) },
		}}
	}
	isKind := func(k interaction.Kind) func() bool {
		return func() bool { return m.state.Mode.Kind == k }
	}
	c.tools = []*CacheButton{
		tool("C:Circle", "circle", isKind(interaction.KindCircle)),
		tool("L:Line", "line", isKind(interaction.KindLine)),
		tool("P:Polygon", "polygon", isKind(interaction.KindPolygon)),
		tool("-", "sides-", nil),
		tool("+", "sides+", nil),
	}
	hints := []struct{ label, action string }{
		{"K:next color", "color+"},
		{"^C:copy image", "copy"},
		{"^Shift+C:copy text", "copytext"},
		{"Q:quit", "quit"},
	}
	for _, h := range hints {
		h := h
		c.shortcuts = append(c.shortcuts, &Shortcut{label: h.label, ui: c, action: func() { acts.trigger(h.action) }})
	}
	return c
}

func (c *chrome) setTheme(th *theme.Theme) {
	c.theme = th
	for _, b := range c.tools {
		b.Invalidate()
	}
}

// layout positions every button for a window of the given size. The
// swatch row follows the palette, which may grow at run time.
func (c *chrome) layout(width, height int) {
	c.width, c.height = width, height
	x := 4
	y := (toolbarHeight - buttonHeight) / 2
	for i, b := range c.tools {
		tb := b.Button.(*ToolButton)
		if tb.label == "-" {
			x += 8
		}
		w := textWidth(tb.label) + 8
		b.SetRect(image.Rect(x, y, x+w, y+buttonHeight))
		x += w + 4
		if i == 3 {
			c.sidesRect = image.Rect(x, y, x+textWidth("19 sides")+8, y+buttonHeight)
			x = c.sidesRect.Max.X + 4
		}
	}
	x += 8
	c.currentRect = image.Rect(x, y, x+buttonHeight, y+buttonHeight)

	n := palette.Len()
	for len(c.swatches) < n {
		c.swatches = append(c.swatches, &Swatch{index: len(c.swatches), ui: c, pick: c.m.pickColor})
	}
	c.swatches = c.swatches[:n]
	x = 4
	y = height - statusHeight + (statusHeight-swatchSize)/2
	for _, sw := range c.swatches {
		sw.SetRect(image.Rect(x, y, x+swatchSize, y+swatchSize))
		x += swatchSize + 2
	}
	x += 8
	for _, s := range c.shortcuts {
		w := textWidth(s.label) + 8
		s.SetRect(image.Rect(x, y-2, x+w, y+swatchSize+2))
		x += w + 4
	}
}

func (c *chrome) buttons() []Button {
	out := make([]Button, 0, len(c.tools)+len(c.swatches)+len(c.shortcuts))
	for _, b := range c.tools {
		out = append(out, b)
	}
	for _, b := range c.swatches {
		out = append(out, b)
	}
	for _, b := range c.shortcuts {
		out = append(out, b)
	}
	return out
}

// hit returns the button under p, if any.
func (c *chrome) hit(p image.Point) Button {
	for _, b := range c.buttons() {
		if p.In(b.Rect()) {
			return b
		}
	}
	return nil
}

// setHover reports whether the hovered button changed.
func (c *chrome) setHover(b Button) bool {
	if b == c.hover {
		return false
	}
	c.hover = b
	return true
}

func (c *chrome) stateOf(b Button) ButtonState {
	switch v := b.(type) {
	case *CacheButton:
		if tb, ok := v.Button.(*ToolButton); ok && tb.isActive() {
			return StatePressed
		}
	case *Swatch:
		if v.index == c.m.colorIndex() {
			return StatePressed
		}
	}
	if b == c.hover {
		return StateHover
	}
	return StateDefault
}

func (c *chrome) draw(dst *image.RGBA) {
	width, height := dst.Bounds().Dx(), dst.Bounds().Dy()
	c.layout(width, height)
	th := c.theme

	fill(dst, image.Rect(0, 0, width, toolbarHeight), th.ToolbarBackground)
	for _, b := range c.tools {
		b.Draw(dst, c.stateOf(b))
	}
	drawLabel(dst, c.sidesRect, fmt.Sprintf("%d sides", c.m.sides), th.Foreground)
	fill(dst, c.currentRect, c.m.scene.Stroke)
	outline(dst, c.currentRect, th.SwatchBorder)
	info := image.Rect(c.currentRect.Max.X+2, c.currentRect.Min.Y, width, c.currentRect.Max.Y)
	drawLabel(dst, info, c.m.colorName()+"  "+c.m.state.Mode.Label(), th.Foreground)

	fill(dst, image.Rect(0, height-statusHeight, width, height), th.ToolbarBackground)
	for _, sw := range c.swatches {
		sw.Draw(dst, c.stateOf(sw))
	}
	for _, s := range c.shortcuts {
		s.Draw(dst, c.stateOf(s))
	}
}
