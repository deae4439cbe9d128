package core

import (
	"fmt"
	"image/color"
	"strings"
)

// Color is a 24-bit RGB color for a screen cell or a drawn shape.
// The zero value is the terminal's default color.
type Color uint32

const colorSet = 1 << 24

// ColorDefault leaves the cell at the terminal's default color.
const ColorDefault Color = 0

// Predefined colors for game elements.
var (
	ColorBlack     = RGB(0, 0, 0)
	ColorWhite     = RGB(255, 255, 255)
	ColorRed       = RGB(255, 0, 0)
	ColorGreen     = RGB(0, 255, 0)
	ColorBlue      = RGB(0, 0, 255)
	ColorOrange    = RGB(255, 165, 0)
	ColorLightBlue = RGB(173, 216, 230)
	ColorGray      = RGB(128, 128, 128)
)

// RGB builds a Color from its components.
func RGB(r, g, b uint8) Color {
	return Color(colorSet | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// FromColor converts any image/color value, ignoring alpha.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8)) //#nosec G115 -- 16-bit channels shifted to 8 bits
}

// ParseHex parses "#rrggbb" (the leading '#' is optional).
func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return ColorDefault, fmt.Errorf("core: invalid color %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return ColorDefault, fmt.Errorf("core: invalid color %q: %w", s, err)
	}
	return RGB(r, g, b), nil
}

// IsDefault reports whether c is the terminal default.
func (c Color) IsDefault() bool {
	return c&colorSet == 0
}

// Components returns the red, green and blue channels.
func (c Color) Components() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c) //#nosec G115 -- masked by truncation
}

// Hex returns the color as "#rrggbb", or "" for the default color.
func (c Color) Hex() string {
	if c.IsDefault() {
		return ""
	}
	r, g, b := c.Components()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// RGBA implements color.Color so a Color can be handed to image and ebiten APIs.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: 0xff}.RGBA() //#nosec G115 -- masked by truncation
}
