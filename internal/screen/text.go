package screen

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/andyrewlee/termsync/internal/cell"
)

// WriteString places text at (x, y) one grapheme at a time. Wide graphemes
// take two columns, the second holding a continuation cell. Writing stops
// at the right edge; a wide grapheme that would straddle it is dropped.
// Only content and colors change; attribute flags of the target cells are
// kept.
func (b *Buffer) WriteString(x, y int, text string, fg, bg cell.Color) {
	if y < 0 || y >= b.size.Height {
		return
	}
	col := x
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		if col >= b.size.Width {
			break
		}
		g := gr.Str()
		width := runewidth.StringWidth(g)
		if width <= 0 {
			continue
		}
		if width > 2 {
			width = 2
		}
		if col+width > b.size.Width {
			break
		}
		if col >= 0 {
			// A wide glyph claims its continuation column in place.
			b.Apply(col, y, cell.Text(g).WithFg(fg).WithBg(bg))
		}
		col += width
	}
}
