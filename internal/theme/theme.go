package theme

import (
	"image/color"
)

// Theme holds the colors of the window chrome around the canvas. The canvas
// itself is always white.
type Theme struct {
	Name string

	// General
	Background color.RGBA // Window area not covered by the canvas
	Foreground color.RGBA // Status text

	ToolbarBackground color.RGBA

	// Tool Buttons
	ButtonBackground      color.RGBA
	ButtonBackgroundHover color.RGBA
	ButtonBackgroundPress color.RGBA
	ButtonText            color.RGBA
	ButtonTextPress       color.RGBA
	ButtonBorder          color.RGBA

	// Swatches
	SwatchBorder   color.RGBA
	SwatchSelected color.RGBA
}

// Default returns the built-in light theme.
func Default() *Theme {
	return &Theme{
		Name:                  "Default",
		Background:            color.RGBA{180, 180, 180, 255},
		Foreground:            color.RGBA{0, 0, 0, 255},
		ToolbarBackground:     color.RGBA{220, 220, 220, 255},
		ButtonBackground:      color.RGBA{200, 200, 200, 255},
		ButtonBackgroundHover: color.RGBA{180, 180, 180, 255},
		ButtonBackgroundPress: color.RGBA{150, 150, 150, 255},
		ButtonText:            color.RGBA{0, 0, 0, 255},
		ButtonTextPress:       color.RGBA{0, 0, 0, 255},
		ButtonBorder:          color.RGBA{0, 0, 0, 255},
		SwatchBorder:          color.RGBA{96, 96, 96, 255},
		SwatchSelected:        color.RGBA{255, 255, 255, 255},
	}
}
