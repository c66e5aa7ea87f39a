package cell

import "github.com/mattn/go-runewidth"

// Kind distinguishes a printable cell from the trailing half of a wide glyph.
type Kind uint8

const (
	Glyph Kind = iota
	Continuation
)

// Cell represents a single character cell
type Cell struct {
	Content string // one grapheme; empty renders as a space
	Kind    Kind
	Style   Style
}

// Blank returns a space with default colors.
func Blank() Cell {
	return Cell{Content: " "}
}

// New returns a glyph cell.
func New(content string, style Style) Cell {
	return Cell{Content: content, Style: style}
}

// ContinuationCell returns the placeholder for the second column of a
// double-width glyph.
func ContinuationCell() Cell {
	return Cell{Kind: Continuation}
}

// IsContinuation reports whether c occupies the second column of a wide glyph.
func (c Cell) IsContinuation() bool {
	return c.Kind == Continuation
}

// Text returns what should be written to the terminal for c.
func (c Cell) Text() string {
	if c.Kind == Continuation {
		return ""
	}
	if c.Content == "" {
		return " "
	}
	return c.Content
}

// Width returns the number of columns c occupies.
func (c Cell) Width() int {
	if c.Kind == Continuation {
		return 0
	}
	if c.Content == "" {
		return 1
	}
	w := runewidth.StringWidth(c.Content)
	if w < 1 {
		return 1
	}
	if w > 2 {
		return 2
	}
	return w
}

// Equal reports whether two cells are identical field for field.
func (c Cell) Equal(o Cell) bool {
	return c == o
}

// MakeBlankLine creates a blank line
func MakeBlankLine(width int) []Cell {
	line := make([]Cell, width)
	for i := range line {
		line[i] = Blank()
	}
	return line
}
