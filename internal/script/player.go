package script

import (
	"github.com/example/polypaint/internal/interaction"
	"github.com/example/polypaint/internal/scene"
)

// Player feeds steps to an interaction state and its scene the way the
// window feeds pointer events.
type Player struct {
	State *interaction.State
	Scene *scene.Scene

	// Frame receives the frame for every render step, and for every redraw
	// request when EveryRedraw is set.
	Frame       func(scene.Frame)
	EveryRedraw bool
}

// NewPlayer returns a player over a fresh scene in mode m.
func NewPlayer(m interaction.Mode) *Player {
	return &Player{State: interaction.New(m), Scene: scene.New()}
}

// Play applies steps in order.
func (p *Player) Play(steps []Step) {
	for _, s := range steps {
		p.Apply(s)
	}
}

// Apply executes a single step.
func (p *Player) Apply(s Step) {
	st, sc := p.State, p.Scene
	switch s.Op {
	case OpMode:
		st.SetMode(s.Mode)
		p.redraw()
	case OpSides:
		st.SetMode(interaction.Polygon(s.Sides))
		p.redraw()
	case OpColor:
		sc.SetStroke(s.Color)
		p.redraw()
	case OpDown:
		st.PointerDown(s.At)
	case OpMove:
		if st.PointerMove(s.At, sc) {
			p.redraw()
		}
	case OpUp:
		st.PointerUp(s.At, sc)
		p.redraw()
	case OpDrag:
		st.PointerDown(s.At)
		if st.PointerMove(s.To, sc) {
			p.redraw()
		}
		st.PointerUp(s.To, sc)
		p.redraw()
	case OpRender:
		p.emit()
	}
}

// Current renders the scene as it looks right now.
func (p *Player) Current() scene.Frame {
	return p.State.Frame(p.Scene)
}

func (p *Player) redraw() {
	if p.EveryRedraw {
		p.emit()
	}
}

func (p *Player) emit() {
	if p.Frame != nil {
		p.Frame(p.Current())
	}
}
