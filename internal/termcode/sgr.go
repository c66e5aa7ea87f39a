package termcode

import (
	"github.com/charmbracelet/x/ansi"

	"github.com/andyrewlee/termsync/internal/cell"
)

// ResetAttributes clears every SGR attribute and color.
const ResetAttributes = "\x1b[0m"

// SGR joins parameters into a single Select Graphic Rendition sequence.
// No parameters yields an empty string rather than a reset.
func SGR(params ...string) string {
	if len(params) == 0 {
		return ""
	}
	return ansi.Style(params).String()
}

// ansiColor maps a cell color onto the x/ansi color model. Default maps to
// nil, which x/ansi renders as 39/49. Palette indexes past 255 clamp to 255.
func ansiColor(c cell.Color) ansi.Color {
	switch c.Type {
	case cell.ColorIndexed:
		v := min(c.Value, 255)
		if v < 16 {
			return ansi.BasicColor(v)
		}
		return ansi.IndexedColor(v)
	case cell.ColorRGB:
		r, g, b := c.RGB()
		return ansi.RGBColor{R: r, G: g, B: b}
	}
	return nil
}

// ForegroundParam returns the SGR parameter selecting c as foreground.
func ForegroundParam(c cell.Color) string {
	return ansi.Style{}.ForegroundColor(ansiColor(c))[0]
}

// BackgroundParam returns the SGR parameter selecting c as background.
func BackgroundParam(c cell.Color) string {
	return ansi.Style{}.BackgroundColor(ansiColor(c))[0]
}

// Foreground returns the full sequence selecting c as foreground.
func Foreground(c cell.Color) string {
	return SGR(ForegroundParam(c))
}

// Background returns the full sequence selecting c as background.
func Background(c cell.Color) string {
	return SGR(BackgroundParam(c))
}

// AttrParam returns the SGR parameter turning attribute a on or off.
// Bold and dim share the same off code (22, normal intensity).
func AttrParam(a cell.Attr, on bool) string {
	var s ansi.Style
	switch a {
	case cell.AttrBold:
		if on {
			s = s.Bold()
		} else {
			s = s.Normal()
		}
	case cell.AttrDim:
		if on {
			s = s.Faint()
		} else {
			s = s.Normal()
		}
	case cell.AttrItalic:
		s = s.Italic(on)
	case cell.AttrUnderline:
		s = s.Underline(on)
	case cell.AttrBlink:
		s = s.Blink(on)
	case cell.AttrInverse:
		s = s.Reverse(on)
	case cell.AttrHidden:
		s = s.Conceal(on)
	case cell.AttrStrikethrough:
		s = s.Strikethrough(on)
	default:
		return ""
	}
	return s[0]
}

// AttrOn returns the sequence enabling a.
func AttrOn(a cell.Attr) string {
	return SGR(AttrParam(a, true))
}

// AttrOff returns the sequence disabling a.
func AttrOff(a cell.Attr) string {
	return SGR(AttrParam(a, false))
}

var (
	BoldOn           = AttrOn(cell.AttrBold)
	BoldOff          = AttrOff(cell.AttrBold)
	DimOn            = AttrOn(cell.AttrDim)
	DimOff           = AttrOff(cell.AttrDim)
	ItalicOn         = AttrOn(cell.AttrItalic)
	ItalicOff        = AttrOff(cell.AttrItalic)
	UnderlineOn      = AttrOn(cell.AttrUnderline)
	UnderlineOff     = AttrOff(cell.AttrUnderline)
	BlinkOn          = AttrOn(cell.AttrBlink)
	BlinkOff         = AttrOff(cell.AttrBlink)
	InverseOn        = AttrOn(cell.AttrInverse)
	InverseOff       = AttrOff(cell.AttrInverse)
	HiddenOn         = AttrOn(cell.AttrHidden)
	HiddenOff        = AttrOff(cell.AttrHidden)
	StrikethroughOn  = AttrOn(cell.AttrStrikethrough)
	StrikethroughOff = AttrOff(cell.AttrStrikethrough)
)
