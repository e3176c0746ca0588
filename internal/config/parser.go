package config

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/example/polypaint/internal/interaction"
	"github.com/example/polypaint/internal/palette"
	"github.com/example/polypaint/internal/theme"
)

// Parse reads configuration from an io.Reader.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	scanner := bufio.NewScanner(r)

	var currentSection string
	var currentTheme *theme.Theme
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			currentSection = strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")
			currentTheme = nil

			if name, ok := strings.CutPrefix(currentSection, "theme."); ok {
				// Start with defaults so missing keys are fine
				currentTheme = theme.Default()
				currentTheme.Name = name
				cfg.Themes[name] = currentTheme
			}
			continue
		}

		// Key = Value or Key: Value
		var key, value string
		var ok bool
		if key, value, ok = strings.Cut(line, "="); !ok {
			if key, value, ok = strings.Cut(line, ":"); !ok {
				continue
			}
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if len(value) >= 2 && strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"") {
			value = value[1 : len(value)-1]
		}

		var err error
		switch {
		case currentTheme != nil:
			err = theme.SetField(currentTheme, key, value)
		case currentSection == "notify":
			err = setNotifyField(&cfg.Notify, key, value)
		case currentSection == "palette":
			err = addPaletteEntry(cfg, key, value)
		case currentSection == "":
			err = setRootField(cfg, key, value)
		}
		if err != nil {
			section := currentSection
			if section == "" {
				section = "root"
			}
			return nil, fmt.Errorf("line %d in section [%s]: %w", lineNo, section, err)
		}
	}

	return cfg, scanner.Err()
}

func setRootField(cfg *Config, key, value string) error {
	switch strings.ToLower(key) {
	case "theme":
		cfg.Theme = value
	case "color":
		// resolved later so [palette] names may be used
		cfg.Color = value
	case "mode":
		if _, err := interaction.ParseMode(value); err != nil {
			return err
		}
		cfg.Mode = value
	case "sides":
		n, err := interaction.ParseSides(value)
		if err != nil {
			return err
		}
		cfg.Mode = interaction.Polygon(n).String()
	}
	return nil
}

func setNotifyField(n *Notify, key, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid boolean for key %s: %w", key, err)
	}
	switch strings.ToLower(key) {
	case "copy":
		n.Copy = b
	case "copy_text":
		n.CopyText = b
	}
	return nil
}

func addPaletteEntry(cfg *Config, name, value string) error {
	col, err := palette.ParseHex(value)
	if err != nil {
		return fmt.Errorf("palette color %s: %w", name, err)
	}
	cfg.Palette = append(cfg.Palette, palette.Entry{Name: name, Color: col})
	return nil
}

// ApplyPalette adds the custom [palette] colors to the picker.
func (c *Config) ApplyPalette() {
	for _, e := range c.Palette {
		palette.Ensure(e.Color, e.Name)
	}
}

// StrokeColor resolves the configured color. It returns false with a nil
// error when no color is configured.
func (c *Config) StrokeColor() (color.RGBA, bool, error) {
	if c.Color == "" {
		return color.RGBA{}, false, nil
	}
	c.ApplyPalette()
	col, err := palette.Parse(c.Color)
	if err != nil {
		return color.RGBA{}, false, fmt.Errorf("config color: %w", err)
	}
	return col, true, nil
}

// ShapeMode resolves the configured mode, falling back to the default.
func (c *Config) ShapeMode() interaction.Mode {
	if m, err := interaction.ParseMode(c.Mode); err == nil {
		return m
	}
	return interaction.DefaultMode()
}
