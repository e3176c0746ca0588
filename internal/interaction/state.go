// Package interaction turns pointer input into shape previews and commits.
package interaction

import (
	"image"

	"github.com/example/polypaint/internal/geom"
	"github.com/example/polypaint/internal/scene"
)

// DragState tracks the pointer between press and release. Anchor and
// Cursor keep their last values after the drag ends.
type DragState struct {
	Anchor image.Point
	Cursor image.Point
	Active bool
}

// State is the drag state machine. It is Idle while Drag.Active is false
// and Dragging otherwise. Mode changes never cancel a drag.
type State struct {
	Mode Mode
	Drag DragState

	// circlePreview is the most recent circle resized to the live drag.
	circlePreview *scene.Circle
}

// New returns an idle state in mode m.
func New(m Mode) *State {
	return &State{Mode: m}
}

// SetMode switches the active mode and drops any preview tied to the old one.
func (s *State) SetMode(m Mode) {
	if m.Kind == KindPolygon {
		m.Sides = ClampSides(m.Sides)
	}
	s.Mode = m
	s.circlePreview = nil
}

// Dragging reports whether a drag is in progress.
func (s *State) Dragging() bool { return s.Drag.Active }

// PointerDown starts a drag at p.
func (s *State) PointerDown(p image.Point) {
	s.Drag = DragState{Anchor: p, Cursor: p, Active: true}
}

// PointerMove follows the pointer while dragging. In circle mode with a
// circle already on the scene the preview radius tracks the drag. The
// result is always true: every move asks for a redraw.
func (s *State) PointerMove(p image.Point, sc *scene.Scene) bool {
	if !s.Drag.Active {
		return true
	}
	s.Drag.Cursor = p
	if s.Mode.Kind == KindCircle {
		if last, ok := sc.LastCircle(); ok {
			last.Radius = geom.DragRadius(s.Drag.Anchor, s.Drag.Cursor)
			s.circlePreview = &last
		}
	}
	return true
}

// PointerUp ends the drag at p and commits the shape for the current mode.
// It reports whether the scene changed.
func (s *State) PointerUp(p image.Point, sc *scene.Scene) bool {
	if !s.Drag.Active {
		return false
	}
	s.Drag.Cursor = p
	s.Drag.Active = false
	s.circlePreview = nil

	a, b := s.Drag.Anchor, s.Drag.Cursor
	switch s.Mode.Kind {
	case KindPolygon:
		sc.AddPolygon(scene.Polygon{Sides: s.Mode.Sides, Vertices: geom.RegularPolygon(a, b, s.Mode.Sides)})
		return true
	case KindCircle:
		tl, r := geom.CircleFromDrag(a, b)
		return sc.AddCircle(scene.Circle{TopLeft: tl, Radius: r})
	case KindLine:
		return sc.AddLine(scene.Line{Start: a, End: b})
	}
	return false
}

// Preview returns the live preview commands drawn on top of the scene.
func (s *State) Preview(sc *scene.Scene) []scene.Command {
	switch s.Mode.Kind {
	case KindPolygon:
		a, b := s.Drag.Anchor, s.Drag.Cursor
		if s.Drag.Active && a.X != b.X && a.Y != b.Y {
			return []scene.Command{scene.PolygonCommand(geom.RegularPolygon(a, b, s.Mode.Sides))}
		}
	case KindCircle:
		if s.circlePreview != nil {
			return []scene.Command{scene.OvalCommand(*s.circlePreview)}
		}
		if last, ok := sc.LastCircle(); ok {
			return []scene.Command{scene.OvalCommand(last)}
		}
	}
	return nil
}

// Frame renders sc as seen in the current interaction state.
func (s *State) Frame(sc *scene.Scene) scene.Frame {
	return sc.Render(scene.RenderOptions{
		ShowLines: s.Mode.Kind == KindLine,
		Preview:   s.Preview(sc),
	})
}
