// Package appstate runs the drawing window: a toolbar, the canvas and a
// status bar with the palette and shortcut hints.
package appstate

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"log"
	"sync"
	"time"

	xdraw "golang.org/x/image/draw"

	"github.com/example/polypaint/internal/config"
	"github.com/example/polypaint/internal/interaction"
	"github.com/example/polypaint/internal/render"
	"github.com/example/polypaint/internal/scene"
	"github.com/example/polypaint/internal/theme"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
)

// ProgramTitle is the default window title.
const ProgramTitle = "PolyPaint"

// AppState holds the window and the drawing it edits.
type AppState struct {
	title      string
	configPath string
	theme      *theme.Theme
	model      *model
	ui         *chrome

	controlMu   sync.Mutex
	sendControl func(controlEvent)

	onClose   func()
	closeOnce sync.Once
}

// Option modifies an AppState during creation.
type Option func(*AppState)

// WithScene edits sc instead of a fresh scene.
func WithScene(sc *scene.Scene) Option { return func(a *AppState) { a.model.scene = sc } }

// WithMode sets the starting shape mode.
func WithMode(m interaction.Mode) Option { return func(a *AppState) { a.model.setMode(m) } }

// WithTheme sets the chrome colors.
func WithTheme(th *theme.Theme) Option {
	return func(a *AppState) {
		if th != nil {
			a.theme = th
		}
	}
}

// WithTitle sets the window title.
func WithTitle(title string) Option { return func(a *AppState) { a.title = title } }

// WithNotifier announces clipboard copies through n.
func WithNotifier(n Notifier) Option { return func(a *AppState) { a.model.notifier = n } }

// WithConfigWatch reloads the stroke color and theme whenever the config
// file at path changes.
func WithConfigWatch(path string) Option { return func(a *AppState) { a.configPath = path } }

// WithOnClose registers fn to run once the window closes.
func WithOnClose(fn func()) Option { return func(a *AppState) { a.onClose = fn } }

// New creates the window state. The window opens on Run.
func New(opts ...Option) *AppState {
	a := &AppState{
		title: ProgramTitle,
		theme: theme.Default(),
		model: newModel(scene.New(), interaction.DefaultMode()),
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

type controlEvent struct {
	Color   *color.RGBA
	Mode    *interaction.Mode
	Theme   *theme.Theme
	Message string
}

// Scene returns the scene being edited. Read it only while the window is
// closed.
func (a *AppState) Scene() *scene.Scene { return a.model.scene }

// SetColor changes the stroke color of the whole drawing.
func (a *AppState) SetColor(c color.RGBA) { a.control(controlEvent{Color: &c}) }

// SetMode changes the shape mode.
func (a *AppState) SetMode(m interaction.Mode) { a.control(controlEvent{Mode: &m}) }

// SetTheme recolors the chrome.
func (a *AppState) SetTheme(th *theme.Theme) {
	if th != nil {
		a.control(controlEvent{Theme: th})
	}
}

// ApplyConfig takes the stroke color, palette and theme from cfg. Values
// that fail to resolve are logged and skipped.
func (a *AppState) ApplyConfig(cfg *config.Config) {
	cfg.ApplyPalette()
	ev := controlEvent{Message: "Config reloaded"}
	if col, ok, err := cfg.StrokeColor(); err != nil {
		log.Printf("config reload: %v", err)
	} else if ok {
		ev.Color = &col
	}
	if th, err := cfg.ResolveTheme(""); err != nil {
		log.Printf("config reload: %v", err)
	} else {
		ev.Theme = th
	}
	a.control(ev)
}

// control hands ev to the event loop, or applies it directly while no
// window is open.
func (a *AppState) control(ev controlEvent) {
	a.controlMu.Lock()
	defer a.controlMu.Unlock()
	if a.sendControl != nil {
		a.sendControl(ev)
		return
	}
	a.apply(ev)
}

func (a *AppState) apply(ev controlEvent) {
	if ev.Color != nil {
		a.model.setColor(*ev.Color)
	}
	if ev.Mode != nil {
		a.model.setMode(*ev.Mode)
	}
	if ev.Theme != nil {
		a.theme = ev.Theme
		if a.ui != nil {
			a.ui.setTheme(ev.Theme)
		}
	}
	if ev.Message != "" {
		a.model.flash(ev.Message)
	}
}

func (a *AppState) setControlSender(fn func(controlEvent)) {
	a.controlMu.Lock()
	a.sendControl = fn
	a.controlMu.Unlock()
}

func (a *AppState) notifyClose() {
	a.closeOnce.Do(func() {
		a.setControlSender(nil)
		if a.onClose != nil {
			a.onClose()
		}
	})
}

// Run executes the UI loop using shiny's driver.
func (a *AppState) Run() { driver.Main(a.Main) }

func (a *AppState) Main(s screen.Screen) {
	width, height := windowSize()
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: width, Height: height, Title: a.title})
	if err != nil {
		log.Printf("new window: %v", err)
		return
	}
	defer w.Release()
	defer a.notifyClose()

	acts := registerActions(a.model)
	a.ui = newChrome(a.model, acts, a.theme)
	a.setControlSender(func(ev controlEvent) { w.Send(ev) })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if a.configPath != "" {
		go a.watchConfig(ctx)
	}

	vp := canvasViewport(width, height)
	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}
		case size.Event:
			width, height = e.WidthPx, e.HeightPx
			vp = canvasViewport(width, height)
			w.Send(paint.Event{})
		case controlEvent:
			a.apply(e)
			w.Send(paint.Event{})
		case paint.Event:
			drawFrame(s, w, paintState{width: width, height: height, vp: vp, m: a.model, ui: a.ui})
		case mouse.Event:
			if handleMouse(a.model, a.ui, vp, e) {
				w.Send(paint.Event{})
			}
		case key.Event:
			if e.Direction != key.DirPress {
				continue
			}
			if name, ok := acts.lookup(e); ok {
				acts.trigger(name)
				w.Send(paint.Event{})
			}
		case error:
			log.Printf("window: %v", e)
		}
		if a.model.quit {
			return
		}
	}
}

func (a *AppState) watchConfig(ctx context.Context) {
	err := config.Watch(ctx, a.configPath, func(cfg *config.Config, err error) {
		if err != nil {
			log.Printf("config reload: %v", err)
			return
		}
		a.ApplyConfig(cfg)
	})
	if err != nil {
		log.Printf("config watch: %v", err)
	}
}

type paintState struct {
	width, height int
	vp            viewport
	m             *model
	ui            *chrome
}

func drawFrame(s screen.Screen, w screen.Window, st paintState) {
	b, err := s.NewBuffer(image.Point{st.width, st.height})
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()

	compose(b.RGBA(), st)
	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
}

// compose paints the whole window into dst.
func compose(dst *image.RGBA, st paintState) {
	th := st.ui.theme
	fill(dst, dst.Bounds(), th.Background)

	if st.ui.shadow.Size() != st.vp.rect.Size() {
		st.ui.shadow = render.NewShadow(st.vp.rect.Size(), render.DefaultShadowOptions())
	}
	st.ui.shadow.Draw(dst, st.vp.rect)

	canvas := st.m.raster()
	if st.vp.zoom == 1 {
		draw.Draw(dst, st.vp.rect, canvas, image.Point{}, draw.Src)
	} else {
		xdraw.NearestNeighbor.Scale(dst, st.vp.rect, canvas, canvas.Bounds(), draw.Src, nil)
	}

	st.ui.draw(dst)

	if msg := st.m.activeMessage(time.Now()); msg != "" {
		drawMessage(dst, msg, th.Foreground, th.ToolbarBackground, th.ButtonBorder)
	}
}
