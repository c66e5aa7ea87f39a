package vterm

import "github.com/andyrewlee/termsync/internal/cell"

// Style is the rendition a terminal actually applies. Unlike cell.Style it
// has no notion of an unset attribute.
type Style struct {
	Fg        cell.Color
	Bg        cell.Color
	Bold      bool
	Dim       bool
	Italic    bool
	Underline bool
	Blink     bool
	Reverse   bool
	Hidden    bool
	Strike    bool
}

// StyleOf returns the rendition a terminal shows for s.
func StyleOf(s cell.Style) Style {
	return Style{
		Fg:        s.Fg,
		Bg:        s.Bg,
		Bold:      s.Bold.Enabled(),
		Dim:       s.Dim.Enabled(),
		Italic:    s.Italic.Enabled(),
		Underline: s.Underline.Enabled(),
		Blink:     s.Blink.Enabled(),
		Reverse:   s.Inverse.Enabled(),
		Hidden:    s.Hidden.Enabled(),
		Strike:    s.Strikethrough.Enabled(),
	}
}

// Cell represents a single character cell
type Cell struct {
	Content string
	Style   Style
	Width   int // 1 normal, 2 wide, 0 continuation
}

// DefaultCell returns a blank cell
func DefaultCell() Cell {
	return Cell{Content: " ", Width: 1}
}

// MakeBlankLine creates a blank line
func MakeBlankLine(width int) []Cell {
	line := make([]Cell, width)
	for i := range line {
		line[i] = DefaultCell()
	}
	return line
}
