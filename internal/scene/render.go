package scene

import (
	"fmt"
	"image"
	"image/color"
	"strings"
)

// CommandKind tells a raster surface which primitive to draw.
type CommandKind int

const (
	// CommandPolygon draws a closed outline through Points.
	CommandPolygon CommandKind = iota
	// CommandOval draws a circle inscribed in the square at Origin with side Diameter.
	CommandOval
	// CommandLine draws a segment from Points[0] to Points[1].
	CommandLine
)

func (k CommandKind) String() string {
	switch k {
	case CommandPolygon:
		return "polygon"
	case CommandOval:
		return "oval"
	case CommandLine:
		return "line"
	}
	return fmt.Sprintf("CommandKind(%d)", int(k))
}

// Command is a single draw instruction in canvas coordinates.
type Command struct {
	Kind     CommandKind
	Points   []image.Point
	Origin   image.Point
	Diameter int
}

// PolygonCommand returns the outline command for pts.
func PolygonCommand(pts []image.Point) Command {
	return Command{Kind: CommandPolygon, Points: pts}
}

// OvalCommand returns the outline command for c.
func OvalCommand(c Circle) Command {
	return Command{Kind: CommandOval, Origin: c.TopLeft, Diameter: c.Diameter()}
}

// LineCommand returns the segment command for l.
func LineCommand(l Line) Command {
	return Command{Kind: CommandLine, Points: []image.Point{l.Start, l.End}}
}

func (c Command) String() string {
	var sb strings.Builder
	sb.WriteString(c.Kind.String())
	switch c.Kind {
	case CommandOval:
		fmt.Fprintf(&sb, " (%d,%d) %d", c.Origin.X, c.Origin.Y, c.Diameter)
	default:
		for _, p := range c.Points {
			fmt.Fprintf(&sb, " (%d,%d)", p.X, p.Y)
		}
	}
	return sb.String()
}

// Frame is a complete repaint of the canvas.
type Frame struct {
	Size       image.Point
	Background color.RGBA
	Stroke     color.RGBA
	Commands   []Command
}

func (f Frame) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "frame %dx%d background %s stroke %s\n",
		f.Size.X, f.Size.Y, hex(f.Background), hex(f.Stroke))
	for _, c := range f.Commands {
		sb.WriteString(c.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// RenderOptions carries the interaction state a render depends on.
type RenderOptions struct {
	// ShowLines is true while the line mode is selected. Committed lines are
	// hidden otherwise.
	ShowLines bool
	// Preview is drawn after every committed shape.
	Preview []Command
}

// Render emits polygons, circles, lines and the preview, in that order, all
// stroked with the scene's current color.
func (s *Scene) Render(opts RenderOptions) Frame {
	n := len(s.Polygons) + len(s.Circles) + len(opts.Preview)
	if opts.ShowLines {
		n += len(s.Lines)
	}
	cmds := make([]Command, 0, n)
	for _, p := range s.Polygons {
		cmds = append(cmds, PolygonCommand(p.Vertices))
	}
	for _, c := range s.Circles {
		cmds = append(cmds, OvalCommand(c))
	}
	if opts.ShowLines {
		for _, l := range s.Lines {
			cmds = append(cmds, LineCommand(l))
		}
	}
	cmds = append(cmds, opts.Preview...)
	return Frame{
		Size:       image.Pt(Width, Height),
		Background: Background,
		Stroke:     s.Stroke,
		Commands:   cmds,
	}
}

func hex(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}
