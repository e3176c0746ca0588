package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/example/polypaint/internal/clipboard"
	"github.com/example/polypaint/internal/render"
	"github.com/example/polypaint/internal/scene"
	"github.com/example/polypaint/internal/script"
)

var writeClipboardImage = clipboard.WriteImage

// replayCmd runs a session script without a window.
type replayCmd struct {
	*root
	fs          *flag.FlagSet
	path        string
	every       bool
	final       bool
	toClipboard bool
	stdin       io.Reader
	stdout      io.Writer
}

func (c *replayCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseReplayCmd(args []string, r *root) (*replayCmd, error) {
	fs := flag.NewFlagSet("replay", flag.ExitOnError)
	c := &replayCmd{root: r.subcommand("replay"), fs: fs, stdin: os.Stdin, stdout: os.Stdout}
	fs.BoolVar(&c.every, "every", false, "print a frame for every redraw, not only for render steps")
	fs.BoolVar(&c.final, "final", false, "print the final frame after the last step")
	fs.BoolVar(&c.toClipboard, "copy", false, "copy the final canvas image to the clipboard")
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	switch fs.NArg() {
	case 0:
		c.path = "-"
	case 1:
		c.path = fs.Arg(0)
	default:
		return nil, &UsageError{of: c}
	}
	return c, nil
}

func (c *replayCmd) open() (io.ReadCloser, error) {
	if c.path == "-" {
		return io.NopCloser(c.stdin), nil
	}
	f, err := os.Open(c.path)
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}
	return f, nil
}

func (c *replayCmd) Run() error {
	in, err := c.open()
	if err != nil {
		return err
	}
	steps, err := script.Parse(in)
	in.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", c.path, err)
	}

	p := script.NewPlayer(c.mode)
	p.Scene.SetStroke(c.stroke)
	p.EveryRedraw = c.every
	n := 0
	var writeErr error
	p.Frame = func(f scene.Frame) {
		if writeErr != nil {
			return
		}
		if n > 0 {
			_, writeErr = fmt.Fprintln(c.stdout)
		}
		n++
		if writeErr == nil {
			_, writeErr = fmt.Fprint(c.stdout, f.String())
		}
	}
	p.Play(steps)
	if c.final {
		p.Frame(p.Current())
	}
	if writeErr != nil {
		return fmt.Errorf("write frame: %w", writeErr)
	}

	if c.toClipboard {
		img := render.Rasterize(p.Current())
		if err := writeClipboardImage(img); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		c.notifyCopy(fmt.Sprintf("%d shapes", p.Scene.Len()), img)
	}
	return nil
}
