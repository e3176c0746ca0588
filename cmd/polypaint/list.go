package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/example/polypaint/internal/interaction"
	"github.com/example/polypaint/internal/palette"
	"github.com/muesli/termenv"
)

type colorsCmd struct {
	*root
	fs     *flag.FlagSet
	stdout io.Writer
}

func parseColorsCmd(args []string, r *root) (*colorsCmd, error) {
	fs := flag.NewFlagSet("colors", flag.ExitOnError)
	cmd := &colorsCmd{root: r.subcommand("colors"), fs: fs, stdout: os.Stdout}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *colorsCmd) Run() error {
	entries := palette.Entries()
	if len(entries) == 0 {
		fmt.Fprintln(c.stdout, "no colors available")
		return nil
	}
	out := termenv.NewOutput(c.stdout)
	fmt.Fprintln(c.stdout, "available palette colors (* marks the active stroke color):")
	for idx, entry := range entries {
		marker := " "
		if entry.Color == c.stroke {
			marker = "*"
		}
		hex := palette.Hex(entry.Color)
		name := entry.Name
		if name == "" {
			name = hex
		}
		swatch := fmt.Sprintf("#%02X%02X%02X", entry.Color.R, entry.Color.G, entry.Color.B)
		block := out.String("  ").Background(out.Color(swatch)).String()
		fmt.Fprintf(c.stdout, "%s %2d: %-12s %s %s\n", marker, idx, name, hex, block)
	}
	return nil
}

func (c *colorsCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

type modesCmd struct {
	*root
	fs     *flag.FlagSet
	stdout io.Writer
}

func parseModesCmd(args []string, r *root) (*modesCmd, error) {
	fs := flag.NewFlagSet("modes", flag.ExitOnError)
	cmd := &modesCmd{root: r.subcommand("modes"), fs: fs, stdout: os.Stdout}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *modesCmd) Run() error {
	fmt.Fprintln(c.stdout, "available modes (* marks the starting mode):")
	for _, m := range interaction.Modes() {
		marker := " "
		if m == c.mode {
			marker = "*"
		}
		fmt.Fprintf(c.stdout, "%s %-11s %s\n", marker, m.String(), m.Label())
	}
	return nil
}

func (c *modesCmd) FlagSet() *flag.FlagSet {
	return c.fs
}
