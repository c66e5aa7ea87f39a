package cell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned when a color description cannot be resolved.
var ErrInvalidColor = errors.New("invalid color")

// Color represents a terminal color. The zero value is the terminal's
// native default color.
type Color struct {
	Type  ColorType
	Value uint32 // Indexed: 0-255, RGB: 0xRRGGBB
}

type ColorType uint8

const (
	ColorDefault ColorType = iota
	ColorIndexed
	ColorRGB
)

// Named palette entries (indices 0-15).
const (
	Black = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

var paletteNames = [...]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"brightblack", "brightred", "brightgreen", "brightyellow",
	"brightblue", "brightmagenta", "brightcyan", "brightwhite",
}

var colorNames = map[string]uint32{
	"black":         Black,
	"red":           Red,
	"green":         Green,
	"yellow":        Yellow,
	"blue":          Blue,
	"magenta":       Magenta,
	"cyan":          Cyan,
	"white":         White,
	"gray":          BrightBlack,
	"grey":          BrightBlack,
	"brightblack":   BrightBlack,
	"brightred":     BrightRed,
	"brightgreen":   BrightGreen,
	"brightyellow":  BrightYellow,
	"brightblue":    BrightBlue,
	"brightmagenta": BrightMagenta,
	"brightcyan":    BrightCyan,
	"brightwhite":   BrightWhite,
}

// Default returns the terminal default color.
func Default() Color {
	return Color{}
}

// Indexed returns a palette color.
func Indexed(n uint8) Color {
	return Color{Type: ColorIndexed, Value: uint32(n)}
}

// RGB returns a 24-bit color.
func RGB(r, g, b uint8) Color {
	return Color{Type: ColorRGB, Value: uint32(r)<<16 | uint32(g)<<8 | uint32(b)}
}

// IsDefault reports whether c is the terminal default color.
func (c Color) IsDefault() bool {
	return c.Type == ColorDefault
}

// IsNamed reports whether c is one of the 16 named ANSI colors.
func (c Color) IsNamed() bool {
	return c.Type == ColorIndexed && c.Value < 16
}

// RGB returns the 8-bit channels of an RGB color.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c.Value >> 16), uint8(c.Value >> 8), uint8(c.Value)
}

func (c Color) String() string {
	switch c.Type {
	case ColorIndexed:
		if c.Value < uint32(len(paletteNames)) {
			return paletteNames[c.Value]
		}
		return strconv.FormatUint(uint64(c.Value), 10)
	case ColorRGB:
		return fmt.Sprintf("#%06x", c.Value&0xFFFFFF)
	default:
		return "default"
	}
}

// Hex parses a "#rrggbb" or "#rgb" color.
func Hex(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if len(s) == 4 && s[0] == '#' {
		s = "#" + strings.Repeat(s[1:2], 2) + strings.Repeat(s[2:3], 2) + strings.Repeat(s[3:4], 2)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}

// ParseColor resolves a color description: "default", an ANSI color name,
// a hex triplet, or a palette index.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "" || s == "default":
		return Default(), nil
	case strings.HasPrefix(s, "#"):
		return Hex(s)
	}
	name := strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
	if idx, ok := colorNames[name]; ok {
		return Color{Type: ColorIndexed, Value: idx}, nil
	}
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return Indexed(uint8(n)), nil
}
