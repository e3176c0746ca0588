package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/example/polypaint/internal/palette"
	"github.com/example/polypaint/internal/theme"
)

// Notify holds notification settings.
type Notify struct {
	Copy     bool
	CopyText bool
}

// Config holds the application configuration.
type Config struct {
	Theme   string
	Color   string
	Mode    string
	Notify  Notify
	Palette []palette.Entry
	Themes  map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Themes: make(map[string]*theme.Theme),
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.Color != "" {
		fmt.Fprintf(&sb, "color = %s\n", c.Color)
	}
	if c.Mode != "" {
		fmt.Fprintf(&sb, "mode = %s\n", c.Mode)
	}
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	fmt.Fprintf(&sb, "copy_text = %v\n", c.Notify.CopyText)
	sb.WriteString("\n")

	if len(c.Palette) > 0 {
		sb.WriteString("[palette]\n")
		for _, e := range c.Palette {
			fmt.Fprintf(&sb, "%s = %s\n", e.Name, palette.Hex(e.Color))
		}
		sb.WriteString("\n")
	}

	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		for _, f := range theme.Fields(t) {
			fmt.Fprintf(&sb, "%s: %s\n", f.Name, palette.Hex(f.Color))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// ResolveTheme returns the named theme, or the configured one when name is
// empty. The config's own [theme.*] sections win over the theme search path.
func (c *Config) ResolveTheme(name string) (*theme.Theme, error) {
	if name == "" {
		name = c.Theme
	}
	if t, ok := c.Themes[name]; ok && name != "" {
		return t, nil
	}
	return theme.NewLoader().Load(name)
}
