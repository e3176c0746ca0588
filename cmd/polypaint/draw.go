package main

import (
	"flag"

	"github.com/example/polypaint/internal/appstate"
)

// drawCmd opens the drawing window.
type drawCmd struct {
	*root
	fs      *flag.FlagSet
	noWatch bool
}

func (d *drawCmd) FlagSet() *flag.FlagSet {
	return d.fs
}

func parseDrawCmd(args []string, r *root) (*drawCmd, error) {
	fs := flag.NewFlagSet("draw", flag.ExitOnError)
	d := &drawCmd{root: r.subcommand("draw"), fs: fs}
	fs.BoolVar(&d.noWatch, "no-watch", false, "do not reload the config file when it changes")
	fs.Usage = usageFunc(d)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: d}
	}
	return d, nil
}

func (d *drawCmd) options() []appstate.Option {
	opts := []appstate.Option{
		appstate.WithMode(d.mode),
		appstate.WithTheme(d.activeTheme),
		appstate.WithTitle(windowTitle(titleOptions{Mode: d.mode.Label()})),
	}
	if d.notifier != nil {
		opts = append(opts, appstate.WithNotifier(d.notifier))
	}
	if !d.noWatch && d.configPath != "" {
		opts = append(opts, appstate.WithConfigWatch(d.configPath))
	}
	return opts
}

func (d *drawCmd) Run() error {
	st := appstate.New(d.options()...)
	st.SetColor(d.stroke)
	st.Run()
	return nil
}
