package core

import (
	"fmt"
	"image/color"
	"strings"
)

// Color is a 24-bit RGB color used for both raster pixels and terminal cells.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ParseHex parses "#rrggbb" or "#rgb" (the leading '#' is optional).
func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return Color{}, fmt.Errorf("invalid color %q", s)
	}

	var c Color
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBA converts to an opaque image/color value.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// FromRGBA drops alpha from a standard library color.
func FromRGBA(c color.RGBA) Color {
	return Color{R: c.R, G: c.G, B: c.B}
}
