package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"
	"strings"

	"github.com/example/polypaint/internal/config"
	"github.com/example/polypaint/internal/interaction"
	"github.com/example/polypaint/internal/notify"
	"github.com/example/polypaint/internal/palette"
	"github.com/example/polypaint/internal/scene"
	"github.com/example/polypaint/internal/theme"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs             *flag.FlagSet
	program        string
	notifier       *notify.Notifier
	config         *config.Config
	configPath     string
	copyAlerts     bool
	copyTextAlerts bool
	themeName      string
	colorSpec      string
	modeSpec       string
	sides          int

	activeTheme *theme.Theme
	stroke      color.RGBA
	mode        interaction.Mode
}

func (r *root) Program() string {
	return r.program
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func newRoot() *root {
	prefs := notify.LoadPreferences()
	loader := config.NewLoader(version, configPathOverride)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}

	r := &root{
		fs:         flag.NewFlagSet("polypaint", flag.ExitOnError),
		program:    "polypaint",
		notifier:   notify.New(prefs),
		config:     cfg,
		configPath: loader.GetConfigPath(),
	}
	r.fs.BoolVar(&r.copyAlerts, "notify-copy", cfg.Notify.Copy, "show a desktop notification after copying the canvas")
	r.fs.BoolVar(&r.copyTextAlerts, "notify-copy-text", cfg.Notify.CopyText, "show a desktop notification after copying the frame listing")

	// Precedence: CLI > Env > Config > Default
	// Flags default to empty and the fallbacks are applied in Run.
	r.fs.StringVar(&r.themeName, "theme", "", "color theme to use ("+strings.Join(theme.Embedded(), ", ")+")")
	r.fs.StringVar(&r.colorSpec, "color", "", "stroke color: palette name, SVG color name or #RRGGBB")
	r.fs.StringVar(&r.modeSpec, "mode", "", "starting mode: circle, line or polygon[:N]")
	r.fs.IntVar(&r.sides, "sides", 0, "start in polygon mode with this many sides (3-19)")
	r.fs.Usage = usageFunc(r)
	return r
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}
	if r.fs.NArg() < 1 {
		return &UsageError{of: r}
	}
	if r.notifier != nil {
		r.notifier.Enable(notify.EventCopy, r.copyAlerts)
		r.notifier.Enable(notify.EventCopyText, r.copyTextAlerts)
	}
	if err := r.resolve(); err != nil {
		return err
	}

	cmdName := r.fs.Arg(0)
	subArgs := r.fs.Args()[1:]

	var (
		cmd runnable
		err error
	)
	switch cmdName {
	case "draw":
		cmd, err = parseDrawCmd(subArgs, r)
	case "replay":
		cmd, err = parseReplayCmd(subArgs, r)
	case "colors":
		cmd, err = parseColorsCmd(subArgs, r)
	case "modes":
		cmd, err = parseModesCmd(subArgs, r)
	case "config":
		cmd, err = parseConfigCmd(subArgs, r)
	case "version":
		cmd = &versionCmd{r: r}
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

// resolve settles the theme, stroke color and mode from the flags, the
// environment and the config file.
func (r *root) resolve() error {
	r.config.ApplyPalette()
	r.activeTheme = r.resolveTheme()

	col, err := r.resolveColor()
	if err != nil {
		return err
	}
	r.stroke = col

	m, err := r.resolveMode()
	if err != nil {
		return err
	}
	r.mode = m
	return nil
}

func (r *root) resolveTheme() *theme.Theme {
	name := r.themeName
	if name == "" {
		name = os.Getenv("POLYPAINT_THEME")
	}
	t, err := r.config.ResolveTheme(name)
	if err != nil {
		if name == "" {
			name = r.config.Theme
		}
		// the default theme is silent, only an explicit request warns
		if name != "" && name != "default" {
			fmt.Fprintf(os.Stderr, "warning: failed to load theme '%s': %v. using default.\n", name, err)
		}
		return theme.Default()
	}
	return t
}

func (r *root) resolveColor() (color.RGBA, error) {
	spec := r.colorSpec
	if spec == "" {
		spec = os.Getenv("POLYPAINT_COLOR")
	}
	if spec == "" {
		col, ok, err := r.config.StrokeColor()
		if err != nil {
			return color.RGBA{}, err
		}
		if ok {
			return col, nil
		}
		return scene.DefaultStroke, nil
	}
	col, err := palette.Parse(spec)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("-color: %w", err)
	}
	return col, nil
}

func (r *root) resolveMode() (interaction.Mode, error) {
	if r.sides != 0 {
		n, err := interaction.ParseSides(fmt.Sprint(r.sides))
		if err != nil {
			return interaction.Mode{}, fmt.Errorf("-sides: %w", err)
		}
		return interaction.Polygon(n), nil
	}
	if r.modeSpec != "" {
		m, err := interaction.ParseMode(r.modeSpec)
		if err != nil {
			return interaction.Mode{}, fmt.Errorf("-mode: %w", err)
		}
		return m, nil
	}
	return r.config.ShapeMode(), nil
}

func main() {
	r := newRoot()
	err := r.Run(os.Args[1:])
	r.notifier.Close()
	if err != nil {
		var uerr *UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, uerr.Error())
		} else {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

func (r *root) notifyCopy(detail string, img image.Image) {
	if r == nil || r.notifier == nil {
		return
	}
	r.notifier.Copy(detail, img)
}

func (r *root) subcommand(name string) *root {
	sub := *r
	sub.program = strings.TrimSpace(strings.Join([]string{r.program, name}, " "))
	return &sub
}
