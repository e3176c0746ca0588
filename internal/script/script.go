// Package script replays drawing sessions from a line oriented text format.
//
// Each non-empty line holds one step:
//
//	mode circle|line|polygon [N]
//	sides N
//	color SPEC
//	down X Y
//	move X Y
//	up X Y
//	drag X0 Y0 X1 Y1
//	render
//
// Lines starting with # are comments.
package script

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/example/polypaint/internal/interaction"
	"github.com/example/polypaint/internal/palette"
)

// Op is a step operation.
type Op int

const (
	OpMode Op = iota
	OpSides
	OpColor
	OpDown
	OpMove
	OpUp
	OpDrag
	OpRender
)

var opNames = map[string]Op{
	"mode":   OpMode,
	"sides":  OpSides,
	"color":  OpColor,
	"down":   OpDown,
	"move":   OpMove,
	"up":     OpUp,
	"drag":   OpDrag,
	"render": OpRender,
}

// Step is one parsed script line.
type Step struct {
	Line  int
	Op    Op
	Mode  interaction.Mode
	Sides int
	Color color.RGBA
	At    image.Point
	To    image.Point
}

// Parse reads every step from r.
func Parse(r io.Reader) ([]Step, error) {
	var steps []Step
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		step, err := parseStep(strings.Fields(line))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		step.Line = lineNo
		steps = append(steps, step)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return steps, nil
}

func parseStep(fields []string) (Step, error) {
	op, ok := opNames[strings.ToLower(fields[0])]
	if !ok {
		return Step{}, fmt.Errorf("unknown step %q", fields[0])
	}
	args := fields[1:]
	s := Step{Op: op}
	switch op {
	case OpMode:
		if len(args) < 1 || len(args) > 2 {
			return Step{}, fmt.Errorf("mode takes a name and an optional side count")
		}
		m, err := interaction.ParseMode(strings.Join(args, ":"))
		if err != nil {
			return Step{}, err
		}
		s.Mode = m
	case OpSides:
		if len(args) != 1 {
			return Step{}, fmt.Errorf("sides takes one argument")
		}
		n, err := interaction.ParseSides(args[0])
		if err != nil {
			return Step{}, err
		}
		s.Sides = n
	case OpColor:
		if len(args) != 1 {
			return Step{}, fmt.Errorf("color takes one argument")
		}
		c, err := palette.Parse(args[0])
		if err != nil {
			return Step{}, err
		}
		s.Color = c
	case OpDown, OpMove, OpUp:
		pts, err := points(args, 1)
		if err != nil {
			return Step{}, err
		}
		s.At = pts[0]
	case OpDrag:
		pts, err := points(args, 2)
		if err != nil {
			return Step{}, err
		}
		s.At, s.To = pts[0], pts[1]
	case OpRender:
		if len(args) != 0 {
			return Step{}, fmt.Errorf("render takes no arguments")
		}
	}
	return s, nil
}

func points(args []string, n int) ([]image.Point, error) {
	if len(args) != 2*n {
		return nil, fmt.Errorf("expected %d coordinates, got %d", 2*n, len(args))
	}
	out := make([]image.Point, n)
	for i := range out {
		x, err := strconv.Atoi(args[2*i])
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q", args[2*i])
		}
		y, err := strconv.Atoi(args[2*i+1])
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q", args[2*i+1])
		}
		out[i] = image.Pt(x, y)
	}
	return out, nil
}
